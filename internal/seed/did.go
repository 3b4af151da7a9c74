// Package seed produces seeds for the generators. Avatars and nicknames are
// most often keyed by a did:key identifier.
package seed

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/multiformats/go-multibase"

	"github.com/systemshift/robo-identities/internal/errs"
)

const didKeyPrefix = "did:key:"

// ed25519Multicodec is the multicodec prefix for Ed25519 public keys (0xED01).
var ed25519Multicodec = []byte{0xed, 0x01}

// DIDKey encodes an Ed25519 public key as did:key:z...
func DIDKey(pub ed25519.PublicKey) (string, error) {
	if len(pub) != ed25519.PublicKeySize {
		return "", errs.Errorf(errs.ErrMissingRequiredData, "did:key", "public key is %d bytes, want %d", len(pub), ed25519.PublicKeySize)
	}
	prefixed := append(append([]byte{}, ed25519Multicodec...), pub...)
	s, err := multibase.Encode(multibase.Base58BTC, prefixed)
	if err != nil {
		return "", errs.New(errs.ErrParse, "did:key", err)
	}
	return didKeyPrefix + s, nil
}

// ParseDIDKey returns the Ed25519 public key named by a did:key identifier.
func ParseDIDKey(did string) (ed25519.PublicKey, error) {
	rest, ok := strings.CutPrefix(did, didKeyPrefix)
	if !ok {
		return nil, errs.Errorf(errs.ErrParse, "did:key", "%q is not a did:key", did)
	}
	enc, data, err := multibase.Decode(rest)
	if err != nil {
		return nil, errs.New(errs.ErrParse, "did:key", err)
	}
	if enc != multibase.Base58BTC {
		return nil, errs.Errorf(errs.ErrParse, "did:key", "unexpected multibase %c", enc)
	}
	key, ok := bytes.CutPrefix(data, ed25519Multicodec)
	if !ok || len(key) != ed25519.PublicKeySize {
		return nil, errs.Errorf(errs.ErrParse, "did:key", "not an Ed25519 key")
	}
	return ed25519.PublicKey(key), nil
}

// RandomDIDKey returns the did:key of a freshly generated Ed25519 key. The
// private key is discarded.
func RandomDIDKey() (string, error) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", errs.New(errs.ErrIO, "did:key", err)
	}
	return DIDKey(pub)
}

// RandomUUID returns a random version 4 UUID.
func RandomUUID() string {
	return uuid.NewString()
}
