package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/systemshift/robo-identities/internal/assets"
)

// assetsEnv names an asset directory used when --assets is not given.
const assetsEnv = "ROBO_ASSETS"

var assetsDir string

var rootCmd = &cobra.Command{
	Use:   "robo-identities",
	Short: "Deterministic robot avatars and nicknames",
	Long: `robo-identities turns any seed (a DID, a public key, a user name) into a
layered robot avatar and a nickname. The same seed always yields the same
output.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", "",
		"Asset directory (default $"+assetsEnv+", else the built-in set)")
}

// openAssets returns the repository named by --assets or $ROBO_ASSETS, or the
// built-in one.
func openAssets() (*assets.Repository, error) {
	dir := assetsDir
	if dir == "" {
		dir = os.Getenv(assetsEnv)
	}
	if dir == "" {
		return assets.Builtin(), nil
	}
	return assets.Open(dir)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
