package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dotupsh/dotup-cli/cmd/component/list"
	"github.com/dotupsh/dotup-cli/display"
	"github.com/dotupsh/dotup-cli/plan"
)

// stepsCmd represents the steps command
var stepsCmd = &cobra.Command{
	Use:     "steps [plan file]",
	Short:   "Steps browses the steps of a plan",
	Example: "  dotup steps\n  dotup steps ~/dotfiles/dotup.yaml",
	Long: `
  Steps shows every step of a plan in a browsable list without executing
  anything. Press 'c' to copy a step's command to the clipboard and 'o' to
  open a clone step's repository in the browser.
  `,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		planPath := plan.DefaultFileName
		if len(args) == 1 {
			planPath = args[0]
		}

		p, err := plan.Load(planPath)
		if err != nil {
			display.FatalErrWithValidateHint(err)
			return
		}

		var items []list.Item
		for i, step := range p.Steps {
			items = append(items, list.Item{
				TitleText:       fmt.Sprintf("%d. %s", i+1, step.Title()),
				DescriptionText: describeStep(step),
				Command:         step.CommandEquivalent(),
				URL:             repoURL(step),
			})
		}

		m := list.NewModel(items, p.Title())
		programOutput := termenv.NewOutput(os.Stdout, termenv.WithColorCache(true))
		prog := tea.NewProgram(m, tea.WithOutput(programOutput), tea.WithAltScreen())
		if _, err := prog.Run(); err != nil {
			display.FatalErr(fmt.Errorf("could not display steps: %w", err))
		}
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func describeStep(s plan.Step) string {
	switch s.Kind {
	case plan.KindRun:
		desc := s.Run.String()
		if s.Dir != "" {
			desc += " (in " + s.Dir + ")"
		}
		if s.Interactive {
			desc += " [interactive]"
		}
		return desc
	case plan.KindCopy:
		return fmt.Sprintf("copy %s to %s", s.Copy.From, s.Copy.To)
	case plan.KindClone:
		return fmt.Sprintf("clone %s into %s", s.Clone.Repo, s.Clone.To)
	case plan.KindWrite:
		return fmt.Sprintf("write %d bytes to %s", len(s.Write.Content), s.Write.To)
	case plan.KindConfirm:
		return "confirm: " + s.Confirm
	}
	return string(s.Kind)
}

// repoURL returns a browsable URL for clone steps, or "".
func repoURL(s plan.Step) string {
	if s.Kind != plan.KindClone {
		return ""
	}
	if strings.HasPrefix(s.Clone.Repo, "http://") || strings.HasPrefix(s.Clone.Repo, "https://") {
		return s.Clone.Repo
	}
	return ""
}
