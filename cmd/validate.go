package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dotupsh/dotup-cli/display"
	"github.com/dotupsh/dotup-cli/plan"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate [plan file]",
	Short:   "Validate checks a plan file without executing anything",
	Example: "  dotup validate\n  dotup validate ~/dotfiles/dotup.yaml",
	Long: `
  Validate parses the plan file and runs every static check: required fields
  per step, file modes, shell syntax of command strings, and duplicate step
  names. Nothing is executed.
  `,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		planPath := plan.DefaultFileName
		if len(args) == 1 {
			planPath = args[0]
		}

		p, err := plan.Load(planPath)
		if err != nil {
			display.FatalErr(err)
			return
		}

		problems := p.Problems()
		if len(problems) == 0 {
			display.Successf("%s is valid: %d steps.", p.Title(), len(p.Steps))
			return
		}

		for _, problem := range problems {
			display.ErrorMsg(problem.String())
		}
		display.Warningf("Found %d problems.", len(problems))
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
