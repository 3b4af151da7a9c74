package avatar

import (
	"bytes"
	"image"
	"image/png"

	"github.com/multiformats/go-multibase"

	"github.com/systemshift/robo-identities/internal/errs"
)

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// EncodePNG encodes img as a lossless PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errs.Errorf(errs.ErrImageEncode, "encode png", "nil image")
	}
	var buf bytes.Buffer
	if err := pngEncoder.Encode(&buf, img); err != nil {
		return nil, errs.New(errs.ErrImageEncode, "encode png", err)
	}
	return buf.Bytes(), nil
}

// EncodeMultibase encodes img as a PNG and returns it as self-describing
// multibase text in the given base.
func EncodeMultibase(img image.Image, base multibase.Encoding) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return encodeBytes(data, base)
}

// EncodeBase64 returns img as a PNG in standard padded base64.
func EncodeBase64(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return Base64(data)
}

// Base64 returns data in standard padded base64.
func Base64(data []byte) (string, error) {
	s, err := encodeBytes(data, multibase.Base64pad)
	if err != nil {
		return "", err
	}
	// Drop the one-byte multibase prefix.
	return s[1:], nil
}

func encodeBytes(data []byte, base multibase.Encoding) (string, error) {
	s, err := multibase.Encode(base, data)
	if err != nil {
		return "", errs.New(errs.ErrImageEncode, "encode text", err)
	}
	return s, nil
}
