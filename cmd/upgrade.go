package cmd

import (
	"context"
	"os"

	"github.com/getsavvyinc/upgrade-cli"
	"github.com/getsavvyinc/upgrade-cli/release/asset"
	"github.com/spf13/cobra"

	"github.com/dotupsh/dotup-cli/config"
	"github.com/dotupsh/dotup-cli/display"
)

const owner = "dotupsh"
const repo = "dotup-cli"

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "upgrade dotup to the latest version",
	Long:  `upgrade dotup to the latest version`,
	Run: func(cmd *cobra.Command, args []string) {
		executablePath, err := os.Executable()
		if err != nil {
			display.Error(err)
			os.Exit(1)
		}
		version := config.Version()

		assetDownloader := asset.NewAssetDownloader(executablePath, asset.WithLookupArchFallback(map[string]string{
			"amd64": "x86_64",
			"386":   "i386",
		}))
		upgrader := upgrade.NewUpgrader(owner, repo, executablePath, upgrade.WithAssetDownloader(assetDownloader))

		if ok, err := upgrader.IsNewVersionAvailable(context.Background(), version); err != nil {
			display.Error(err)
			return
		} else if !ok {
			display.Info("dotup is already up to date")
			return
		}

		display.Info("Upgrading dotup...")
		if err := upgrader.Upgrade(context.Background(), version); err != nil {
			display.Error(err)
			os.Exit(1)
		} else {
			display.Success("dotup has been upgraded to the latest version")
		}
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
