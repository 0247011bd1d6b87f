package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dotupsh/dotup-cli/display"
	"github.com/dotupsh/dotup-cli/plan"
	"github.com/dotupsh/dotup-cli/theme"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Init scaffolds a plan file in the current directory",
	Example: "  dotup init",
	Long: `
  Init asks a few questions and writes a starter dotup.yaml with one step
  per kind to crib from.
  `,
	Run: func(_ *cobra.Command, _ []string) {
		var (
			name         string
			description  string
			confirmFirst bool
		)

		planName := huh.NewInput().
			Title("Plan name").
			Description("Shown in progress output and `dotup show`").
			Prompt("> ").
			Value(&name)

		planDescription := huh.NewInput().
			Title("Description").
			Prompt("> ").
			Value(&description)

		askFirst := huh.NewConfirm().
			Title("Start with a confirm step?").
			Affirmative("Yes").
			Negative("No").
			Value(&confirmFirst)

		form := huh.NewForm(huh.NewGroup(planName, planDescription, askFirst)).WithTheme(theme.New())
		if err := form.Run(); err != nil {
			display.FatalErr(err)
			return
		}

		if name == "" {
			name = "workstation"
		}

		target := plan.DefaultFileName
		if _, err := os.Stat(target); err == nil {
			var overwrite bool
			confirm := huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Overwrite it?", target)).
				Affirmative("Overwrite").
				Negative("Keep existing").
				Value(&overwrite)
			if err := huh.NewForm(huh.NewGroup(confirm)).WithTheme(theme.New()).Run(); err != nil {
				display.FatalErr(err)
				return
			}
			if !overwrite {
				display.Info("Keeping the existing plan file.")
				return
			}
		}

		if err := os.WriteFile(target, []byte(scaffold(name, description, confirmFirst)), 0o644); err != nil {
			display.FatalErr(err)
			return
		}
		display.Successf("Created %s. Edit it, then check it with `dotup validate`.", target)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func scaffold(name, description string, confirmFirst bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "name: %q\n", name)
	if description != "" {
		fmt.Fprintf(&b, "description: %q\n", description)
	}
	b.WriteString("steps:\n")
	if confirmFirst {
		b.WriteString("  - confirm: \"Set up this machine?\"\n")
	}
	b.WriteString(`  - name: say hello
    run: echo "hello from dotup"
  # - name: dotfiles
  #   copy:
  #     from: bashrc
  #     to: ~/.bashrc
  # - name: fzf
  #   clone:
  #     repo: https://github.com/junegunn/fzf.git
  #     to: ~/.fzf
  # - name: git identity
  #   write:
  #     to: ~/.gitconfig
  #     mode: "0644"
  #     content: |
  #       [user]
  #         name = Your Name
`)
	return b.String()
}
