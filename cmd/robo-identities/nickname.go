package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systemshift/robo-identities/internal/digest"
	"github.com/systemshift/robo-identities/internal/nickname"
)

var (
	nicknameHex       bool
	nicknameMaxLength int
	nicknameDictDir   string
	nicknameSeed      seedFlags
)

func init() {
	rootCmd.AddCommand(nicknameCmd)
	nicknameCmd.Flags().BoolVar(&nicknameHex, "hex", false, "Treat the argument as a hex digest instead of hashing it")
	nicknameCmd.Flags().IntVar(&nicknameMaxLength, "max-length", nickname.DefaultMaxLength, "Longest acceptable nickname")
	nicknameCmd.Flags().StringVar(&nicknameDictDir, "dict-dir", "", "Directory holding adjectives.txt and nouns.txt")
	nicknameSeed.register(nicknameCmd)
}

var nicknameCmd = &cobra.Command{
	Use:   "nickname [seed]",
	Short: "Derive the nickname for a seed",
	Long: `Derive the nickname for a seed. The seed is hashed with SHA2-256 unless
--hex is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNickname,
}

func runNickname(cmd *cobra.Command, args []string) error {
	seed, err := nicknameSeed.seed(cmd, args)
	if err != nil {
		return err
	}

	opts := nickname.Options{MaxLength: nicknameMaxLength}
	if nicknameDictDir != "" {
		d, err := nickname.LoadDictionary(nicknameDictDir)
		if err != nil {
			return err
		}
		opts.Dictionary = d
	}

	hx := seed
	if !nicknameHex {
		if hx, err = digest.SHA256(seed); err != nil {
			return err
		}
	}
	name, err := nickname.Shorten(hx, opts)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("no nickname of at most %d characters within %d rehashes",
			nicknameMaxLength, nickname.DefaultMaxIterations)
	}
	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}
