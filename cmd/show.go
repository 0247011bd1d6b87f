package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dotupsh/dotup-cli/display"
	"github.com/dotupsh/dotup-cli/export/markdown"
	"github.com/dotupsh/dotup-cli/plan"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:     "show [plan file]",
	Short:   "Show renders a plan as a readable document",
	Example: "  dotup show\n  dotup show --out setup.md\n  dotup show --copy",
	Long: `
  Show renders the plan as a markdown document in the terminal, so you can
  read through a setup before running it. Use --out to write the markdown
  to a file, or --copy to put it on the clipboard.
  `,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planPath := plan.DefaultFileName
		if len(args) == 1 {
			planPath = args[0]
		}

		p, err := plan.Load(planPath)
		if err != nil {
			display.FatalErrWithValidateHint(err)
			return
		}

		mdSvc := markdown.NewService()

		if showOut != "" {
			if _, err := mdSvc.ToMarkdownFile(cmd.Context(), p, showOut); err != nil {
				display.FatalErr(err)
			}
			return
		}

		md, err := mdSvc.Render(p)
		if err != nil {
			display.FatalErr(err)
			return
		}

		if showCopy {
			if err := clipboard.WriteAll(md); err != nil {
				display.FatalErr(fmt.Errorf("failed to copy markdown to clipboard: %w", err))
				return
			}
			display.Success("Copied plan markdown to clipboard")
			return
		}

		rendererOpts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			if w > 100 {
				w = 100
			}
			rendererOpts = append(rendererOpts, glamour.WithWordWrap(w))
		}

		renderer, err := glamour.NewTermRenderer(rendererOpts...)
		if err != nil {
			display.FatalErr(err)
			return
		}
		out, err := renderer.Render(md)
		if err != nil {
			display.FatalErr(err)
			return
		}
		fmt.Print(out)
	},
}

var (
	showCopy bool
	showOut  string
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "copy the markdown to the clipboard instead of rendering it")
	showCmd.Flags().StringVar(&showOut, "out", "", "write the markdown to this file instead of rendering it")
}
