package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dotup",
	Short: "Set up a workstation from a declarative plan",
	Long: `Set up a workstation from a declarative plan.

dotup reads an ordered list of steps from a plan file (dotup.yaml by
default) and executes them one by one: run commands, copy dotfiles,
clone repositories, write config files, and ask for confirmation before
the scary parts.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logLevel := slog.LevelInfo
		if debugFlag {
			logLevel = slog.LevelDebug
		}
		textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     logLevel,
		})
		logger := slog.New(textHandler)
		slog.SetDefault(logger)
		cmd.SetContext(ctxWithLogger(cmd.Context(), logger))
	},
}

var debugFlag bool

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug mode")
}
