// Package identities generates deterministic robot avatars and nicknames
// from arbitrary seeds such as DIDs or public keys.
//
//	png, err := identities.GenerateAvatarPNG(ctx, did, identities.AvatarOptions{})
//	name, err := identities.NicknameForSeed(did)
package identities

import (
	"context"

	"github.com/systemshift/robo-identities/internal/assets"
	"github.com/systemshift/robo-identities/internal/avatar"
	"github.com/systemshift/robo-identities/internal/digest"
	"github.com/systemshift/robo-identities/internal/errs"
	"github.com/systemshift/robo-identities/internal/nickname"
)

type (
	// AvatarOptions configures avatar generation. The zero value is valid.
	AvatarOptions = avatar.Options
	// Assets is a layer repository.
	Assets = assets.Repository
	// Selection reports the layers chosen for a seed.
	Selection = avatar.Selection
)

// Failure kinds, for use with errors.Is.
var (
	ErrParse               = errs.ErrParse
	ErrIO                  = errs.ErrIO
	ErrImageDecode         = errs.ErrImageDecode
	ErrImageEncode         = errs.ErrImageEncode
	ErrMissingRequiredData = errs.ErrMissingRequiredData
	ErrInvalidIndex        = errs.ErrInvalidIndex
)

// OpenAssets opens a layer repository rooted at dir.
func OpenAssets(dir string) (*Assets, error) {
	return assets.Open(dir)
}

// BuiltinAssets returns the layer set compiled into the binary.
func BuiltinAssets() *Assets {
	return assets.Builtin()
}

// GenerateAvatar returns the avatar for seed as standard base64 PNG text.
func GenerateAvatar(ctx context.Context, seed string, opts AvatarOptions) (string, error) {
	return avatar.Generate(ctx, seed, opts)
}

// GenerateAvatarPNG returns the avatar for seed as PNG bytes.
func GenerateAvatarPNG(ctx context.Context, seed string, opts AvatarOptions) ([]byte, error) {
	return avatar.GeneratePNG(ctx, seed, opts)
}

// ExplainAvatar reports the layers GenerateAvatar would draw for seed.
func ExplainAvatar(seed string, opts AvatarOptions) (*Selection, error) {
	return avatar.Explain(seed, opts)
}

// GenerateNickname derives a nickname of at most 18 characters from a hex
// digest. It returns "" with a nil error if no short enough name is found.
func GenerateNickname(seedHex string) (string, error) {
	return nickname.Generate(seedHex)
}

// NicknameForSeed hashes an arbitrary seed with SHA2-256 and derives its
// nickname.
func NicknameForSeed(seed string) (string, error) {
	hx, err := digest.SHA256(seed)
	if err != nil {
		return "", err
	}
	return nickname.Generate(hx)
}

// Fingerprint returns the CIDv1 of rendered avatar bytes.
func Fingerprint(png []byte) (string, error) {
	return avatar.Fingerprint(png)
}
