package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dotupsh/dotup-cli/config"
	"github.com/dotupsh/dotup-cli/display"
	"github.com/dotupsh/dotup-cli/idgen"
	"github.com/dotupsh/dotup-cli/plan"
	"github.com/dotupsh/dotup-cli/report"
	"github.com/dotupsh/dotup-cli/runner"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:     "run [plan file]",
	Short:   "Run executes the steps of a plan in order",
	Example: "  dotup run\n  dotup run ~/dotfiles/dotup.yaml --halt-on-failure",
	Long: `
  Run executes the steps of a plan in order and prints one line per step.

  A failed step is recorded and the run keeps going, so one broken install
  does not block the rest of the setup. Pass --halt-on-failure to stop at
  the first failure instead. A confirm step answered "no" always stops the
  run immediately.
  `,
	Args: cobra.MaximumNArgs(1),
	Run:  dotupRun,
}

var (
	haltOnFailure bool
	autoConfirm   bool
	dryRun        bool
	verboseFlag   bool
	skipSteps     []string
	reportPath    string
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&haltOnFailure, "halt-on-failure", false, "stop at the first failed step")
	runCmd.Flags().BoolVarP(&autoConfirm, "yes", "y", false, "answer yes to every confirm step")
	runCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "list the steps without executing anything")
	runCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "stream command output instead of capturing it")
	runCmd.Flags().StringSliceVar(&skipSteps, "skip", nil, "skip steps by name (repeatable)")
	runCmd.Flags().StringVar(&reportPath, "report", "", "write a JSON report of the run to this file")
}

func dotupRun(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	logger := loggerFromCtx(ctx).With("command", "run")

	planPath := plan.DefaultFileName
	if len(args) == 1 {
		planPath = args[0]
	}

	p, err := plan.Load(planPath)
	if err != nil {
		display.FatalErrWithValidateHint(err)
		return
	}

	if problems := p.Problems(); len(problems) > 0 {
		for _, problem := range problems {
			display.ErrorMsg(problem.String())
		}
		display.ErrorWithValidateHint(fmt.Errorf("not running %s: %d problems", planPath, len(problems)))
		os.Exit(1)
	}

	cfg, err := config.LoadFromFile()
	if err != nil {
		logger.Debug("error loading config", "error", err, "message", "falling back to defaults")
		cfg = &config.Config{}
	}

	if dryRun {
		display.Infof("Dry run: %s (%d steps)", p.Title(), len(p.Steps))
	} else {
		display.Infof("Running %s (%d steps)", p.Title(), len(p.Steps))
	}

	r := runner.New(p,
		runner.WithLogger(logger),
		runner.WithHaltOnFailure(haltOnFailure || cfg.HaltOnFailure),
		runner.WithAutoConfirm(autoConfirm),
		runner.WithDryRun(dryRun),
		runner.WithVerbose(verboseFlag),
		runner.WithSkips(skipSteps),
		runner.WithSpinner(!verboseFlag && !dryRun && term.IsTerminal(int(os.Stdout.Fd()))),
	)

	startedAt := time.Now()
	results, runErr := r.Run(ctx)
	finishedAt := time.Now()

	if reportPath != "" {
		rep := report.New(idgen.New(idgen.RunPrefix), p, r.State(), startedAt, finishedAt, results)
		if err := rep.Save(reportPath); err != nil {
			display.Error(fmt.Errorf("failed to write report: %w", err))
		}
	}

	if code := summarize(p, results, runErr, dryRun); code != 0 {
		os.Exit(code)
	}
}

// summarize prints the closing line and returns the process exit code: 0
// when the run reached the end (even with failed steps), 1 when it was cut
// short.
func summarize(p *plan.Plan, results []runner.StepResult, runErr error, dry bool) int {
	failures := 0
	for _, res := range results {
		if res.Failed() {
			failures++
		}
	}

	switch {
	case errors.Is(runErr, runner.ErrUserDeclined):
		display.Warning("Stopped: declined to continue.")
		return 1
	case runErr != nil:
		display.Error(runErr)
		return 1
	case dry:
		display.Infof("Dry run finished: %d steps, nothing executed.", len(results))
		return 0
	case failures > 0:
		display.Warningf("%s finished: %d of %d steps failed.", p.Title(), failures, len(results))
		return 0
	default:
		display.Successf("%s complete: all %d steps finished.", p.Title(), len(results))
		return 0
	}
}
