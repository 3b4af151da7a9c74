// Package avatar turns a seed string into a layered robot avatar.
//
// The seed is hashed, the digest is split into an index vector, and each
// slot of the vector picks one layer from an asset repository. The same
// seed and options always produce the same PNG bytes.
package avatar

import (
	"context"
	"image"

	"github.com/systemshift/robo-identities/internal/digest"
)

// Vector hashes seed with opts.Hash and splits the digest.
func Vector(seed string, opts Options) (digest.IndexVector, error) {
	opts = opts.withDefaults()
	hx, err := digest.Digest(seed, opts.Hash)
	if err != nil {
		return nil, err
	}
	return digest.Split(hx, digest.ChunkCount)
}

// Build selects and composes layers for an index vector. Unlike Render it
// does not fill in defaults: an empty set, asset root or size is an error.
func Build(ctx context.Context, v digest.IndexVector, opts Options) (*image.RGBA, error) {
	sel, err := Select(v, opts)
	if err != nil {
		return nil, err
	}
	return Compose(ctx, opts.Assets, sel, opts.Width, opts.Height)
}

// Render builds the avatar for seed.
func Render(ctx context.Context, seed string, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()
	v, err := Vector(seed, opts)
	if err != nil {
		return nil, err
	}
	return Build(ctx, v, opts)
}

// GeneratePNG renders the avatar for seed as PNG bytes.
func GeneratePNG(ctx context.Context, seed string, opts Options) ([]byte, error) {
	img, err := Render(ctx, seed, opts)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

// Generate renders the avatar for seed as base64 PNG text.
func Generate(ctx context.Context, seed string, opts Options) (string, error) {
	data, err := GeneratePNG(ctx, seed, opts)
	if err != nil {
		return "", err
	}
	return Base64(data)
}

// Explain reports which layers Render would draw for seed, without
// decoding any image.
func Explain(seed string, opts Options) (*Selection, error) {
	opts = opts.withDefaults()
	v, err := Vector(seed, opts)
	if err != nil {
		return nil, err
	}
	return Select(v, opts)
}
