package avatar

import (
	gocid "github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/systemshift/robo-identities/internal/errs"
)

// Fingerprint returns the CIDv1 (raw codec, SHA2-256) of rendered bytes in
// its default base32 form. Two machines rendering the same seed must agree
// on it.
func Fingerprint(data []byte) (string, error) {
	c, err := ComputeCID(data)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// ComputeCID computes a CIDv1 (raw codec, SHA2-256) for the given data.
func ComputeCID(data []byte) (gocid.Cid, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return gocid.Undef, errs.New(errs.ErrIO, "fingerprint", err)
	}
	return gocid.NewCidV1(gocid.Raw, mh), nil
}
