package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/systemshift/robo-identities/internal/avatar"
)

func init() {
	rootCmd.AddCommand(setsCmd)
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the sets, colors and background sets of the asset repository",
	Args:  cobra.NoArgs,
	RunE:  runSets,
}

func runSets(cmd *cobra.Command, args []string) error {
	repo, err := openAssets()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	sets, err := repo.Sets()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "assets: %s\n", repo.Root())
	for _, set := range sets {
		dir := set
		if set == avatar.DefaultSet {
			colors, err := repo.Colors(set)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "set %s colors: %s\n", set, strings.Join(colors, ", "))
			if len(colors) == 0 {
				continue
			}
			dir = set + "/" + colors[0]
		}
		cats, err := repo.Categories(dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "set %s categories: %s\n", set, strings.Join(cats, ", "))
	}

	bgs, err := repo.BackgroundSets()
	if err != nil {
		// A repository without backgrounds is valid.
		fmt.Fprintln(out, "backgrounds: none")
		return nil
	}
	fmt.Fprintf(out, "backgrounds: %s\n", strings.Join(bgs, ", "))
	return nil
}
