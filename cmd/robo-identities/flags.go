package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/systemshift/robo-identities/internal/avatar"
	"github.com/systemshift/robo-identities/internal/digest"
	"github.com/systemshift/robo-identities/internal/seed"
)

// avatarFlags are the rendering flags shared by avatar, parts and mount.
type avatarFlags struct {
	set           string
	color         string
	backgroundSet string
	noBackground  bool
	size          int
	hue           bool
	lenient       bool
	hash          string
}

func (f *avatarFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.set, "set", avatar.DefaultSet, `Asset set, or "any" to let the seed choose`)
	fl.StringVar(&f.color, "color", "", "Color partition of set1 (default: derived from the seed)")
	fl.StringVar(&f.backgroundSet, "background-set", "", `Background set, or "any" (default: no background)`)
	fl.BoolVar(&f.noBackground, "no-background", false, "Never draw a background")
	fl.IntVar(&f.size, "size", avatar.DefaultSize, "Width and height in pixels")
	fl.BoolVar(&f.hue, "hue", false, "Rotate layer hues by a seed-derived angle")
	fl.BoolVar(&f.lenient, "lenient", false, "Skip categories that cannot be selected instead of failing")
	fl.StringVar(&f.hash, "hash", "sha2-512", "Multihash algorithm used to digest the seed")
}

func (f *avatarFlags) options(logger *log.Logger) (avatar.Options, error) {
	repo, err := openAssets()
	if err != nil {
		return avatar.Options{}, err
	}
	code, err := digest.AlgorithmByName(f.hash)
	if err != nil {
		return avatar.Options{}, err
	}
	return avatar.Options{
		Width:         f.size,
		Height:        f.size,
		UseBackground: avatar.Bool(!f.noBackground),
		Set:           f.set,
		Color:         f.color,
		BackgroundSet: f.backgroundSet,
		HueRotation:   f.hue,
		Lenient:       f.lenient,
		Hash:          code,
		Assets:        repo,
		Logger:        logger,
	}, nil
}

// seedFlags pick where the seed comes from.
type seedFlags struct {
	random    bool
	randomDID bool
}

func (f *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.random, "random", false, "Use a random UUID as the seed")
	cmd.Flags().BoolVar(&f.randomDID, "random-did", false, "Use the did:key of a fresh Ed25519 key as the seed")
}

// seed returns the seed from args or a generated one. Generated seeds are
// reported on stderr so the output can be reproduced.
func (f *seedFlags) seed(cmd *cobra.Command, args []string) (string, error) {
	var s string
	switch {
	case f.randomDID:
		did, err := seed.RandomDIDKey()
		if err != nil {
			return "", err
		}
		s = did
	case f.random:
		s = seed.RandomUUID()
	case len(args) == 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("a seed, --random or --random-did is required")
	}
	cmd.PrintErrf("seed: %s\n", s)
	return s, nil
}

func cmdLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "", 0)
}
