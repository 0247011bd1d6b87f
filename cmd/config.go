package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dotupsh/dotup-cli/config"
	"github.com/dotupsh/dotup-cli/display"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Config shows or updates per-user defaults",
	Example: "  dotup config\n  dotup config --halt-on-failure",
	Long: `
  Config shows the defaults applied to every run. Pass a flag to change
  one; flags given to dotup run still win over saved defaults.
  `,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, err := config.LoadFromFile()
		if err != nil {
			display.FatalErr(err)
			return
		}

		if !cmd.Flags().Changed("halt-on-failure") {
			display.Infof("halt_on_failure: %t", cfg.HaltOnFailure)
			return
		}

		cfg.HaltOnFailure = defaultHaltOnFailure
		if err := cfg.Save(); err != nil {
			display.FatalErr(err)
			return
		}
		display.Successf("Saved %s.", config.DefaultConfigFilePath)
	},
}

var defaultHaltOnFailure bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&defaultHaltOnFailure, "halt-on-failure", false, "stop every run at the first failed step")
}
