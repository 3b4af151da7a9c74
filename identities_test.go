package identities

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const did = "did:key:z6MkehRgf7yJbgaGfYsdoAsKdBPE3dj2CYhowQdcjqSJgvVd"

func TestGenerateAvatar(t *testing.T) {
	ctx := context.Background()
	text, err := GenerateAvatar(ctx, did, AvatarOptions{})
	require.NoError(t, err)
	raw, err := GenerateAvatarPNG(ctx, did, AvatarOptions{})
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(text)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())

	fp1, err := Fingerprint(raw)
	require.NoError(t, err)
	again, err := GenerateAvatarPNG(ctx, did, AvatarOptions{})
	require.NoError(t, err)
	fp2, err := Fingerprint(again)
	require.NoError(t, err)
	assert.Equal(t, fp1, fp2)
}

func TestExplainAvatar(t *testing.T) {
	sel, err := ExplainAvatar("initial_string", AvatarOptions{Assets: BuiltinAssets()})
	require.NoError(t, err)
	assert.Equal(t, "blue", sel.Color)
	assert.Len(t, sel.Parts, 5)
}

func TestOpenAssets_Errors(t *testing.T) {
	_, err := OpenAssets("")
	assert.True(t, errors.Is(err, ErrMissingRequiredData))
	_, err = OpenAssets(t.TempDir() + "/nope")
	assert.True(t, errors.Is(err, ErrIO))
}

func TestNicknames(t *testing.T) {
	name, err := GenerateNickname("23d022aa5dc633f2f115e48fc1f393f051ebdec3dfae41cfcd01bdac3577017f")
	require.NoError(t, err)
	assert.Equal(t, "BrightPagoda153", name)

	name, err = NicknameForSeed("initial_string")
	require.NoError(t, err)
	assert.Equal(t, "GiftedLava5", name)

	_, err = GenerateNickname("zz")
	assert.ErrorIs(t, err, ErrParse)
}
