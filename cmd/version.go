package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotupsh/dotup-cli/config"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the dotup cli version",
	Long:  "Shows the dotup cli version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("version:", config.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
