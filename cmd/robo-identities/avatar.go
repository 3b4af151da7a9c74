package main

import (
	"fmt"

	"github.com/multiformats/go-multibase"
	"github.com/spf13/cobra"

	"github.com/systemshift/robo-identities/internal/avatar"
	"github.com/systemshift/robo-identities/internal/fsutil"
)

var (
	avatarOpts     avatarFlags
	avatarOut      string
	avatarBase64   bool
	avatarEncoding string
	avatarSeed     seedFlags
)

func init() {
	rootCmd.AddCommand(avatarCmd)
	avatarOpts.register(avatarCmd)
	avatarCmd.Flags().StringVarP(&avatarOut, "out", "o", "", "Write to FILE instead of stdout (PNG unless --base64 or --encoding)")
	avatarCmd.Flags().BoolVar(&avatarBase64, "base64", false, "With --out, write base64 text instead of PNG")
	avatarCmd.Flags().StringVar(&avatarEncoding, "encoding", "", "Print self-describing multibase text, e.g. base58btc")
	avatarSeed.register(avatarCmd)
}

var avatarCmd = &cobra.Command{
	Use:   "avatar [seed]",
	Short: "Render the avatar for a seed",
	Long: `Render the avatar for a seed. Without --out the PNG is printed as
standard base64 text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAvatar,
}

func runAvatar(cmd *cobra.Command, args []string) error {
	seed, err := avatarSeed.seed(cmd, args)
	if err != nil {
		return err
	}
	opts, err := avatarOpts.options(cmdLogger(cmd))
	if err != nil {
		return err
	}
	png, err := avatar.GeneratePNG(cmd.Context(), seed, opts)
	if err != nil {
		return err
	}

	var text string
	if avatarEncoding != "" {
		enc, err := multibase.EncoderByName(avatarEncoding)
		if err != nil {
			return fmt.Errorf("encoding %q: %w", avatarEncoding, err)
		}
		text = enc.Encode(png)
	} else if avatarOut == "" || avatarBase64 {
		if text, err = avatar.Base64(png); err != nil {
			return err
		}
	}

	if avatarOut == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	data := png
	if text != "" {
		data = []byte(text + "\n")
	}
	return fsutil.SafeWrite(avatarOut, data, 0644)
}
