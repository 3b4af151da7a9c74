package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/systemshift/robo-identities/internal/avatar"
)

var partsOpts avatarFlags

func init() {
	rootCmd.AddCommand(partsCmd)
	partsOpts.register(partsCmd)
}

var partsCmd = &cobra.Command{
	Use:   "parts <seed>",
	Short: "Show which layers the avatar for a seed is built from",
	Args:  cobra.ExactArgs(1),
	RunE:  runParts,
}

func runParts(cmd *cobra.Command, args []string) error {
	opts, err := partsOpts.options(cmdLogger(cmd))
	if err != nil {
		return err
	}
	sel, err := avatar.Explain(args[0], opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(sel)
}
