// Package runner executes the steps of a plan in order.
//
// Every step that the runner reaches produces exactly one StepResult, in
// plan order. A failing step does not stop the run unless halt-on-failure
// is set; a declined confirm step always does.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	huhSpinner "github.com/charmbracelet/huh/spinner"

	"github.com/dotupsh/dotup-cli/plan"
	"github.com/dotupsh/dotup-cli/tail"
)

// outputTailLines bounds how much captured output ends up in a failure
// message.
const outputTailLines = 8

var defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

type Runner struct {
	plan      *plan.Plan
	commander Commander
	confirmer Confirmer
	logger    *slog.Logger
	out       io.Writer

	haltOnFailure bool
	autoConfirm   bool
	dryRun        bool
	verbose       bool
	spinner       bool
	skip          map[string]bool

	state State
	index int
}

type Option func(r *Runner)

func WithCommander(c Commander) Option {
	return func(r *Runner) {
		r.commander = c
	}
}

func WithConfirmer(c Confirmer) Option {
	return func(r *Runner) {
		r.confirmer = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithOutput redirects the per-step progress lines; they go to stdout by
// default.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithHaltOnFailure makes the first failed step end the run. The default is
// to keep going and report all failures at the end.
func WithHaltOnFailure(halt bool) Option {
	return func(r *Runner) {
		r.haltOnFailure = halt
	}
}

// WithAutoConfirm answers yes to every confirm step without prompting.
func WithAutoConfirm(yes bool) Option {
	return func(r *Runner) {
		r.autoConfirm = yes
	}
}

// WithDryRun skips every step instead of executing it.
func WithDryRun(dry bool) Option {
	return func(r *Runner) {
		r.dryRun = dry
	}
}

// WithVerbose streams command output to the terminal instead of capturing it.
func WithVerbose(verbose bool) Option {
	return func(r *Runner) {
		r.verbose = verbose
	}
}

// WithSpinner shows a spinner while a captured command runs. Leave it off
// when stdout is not a terminal.
func WithSpinner(spin bool) Option {
	return func(r *Runner) {
		r.spinner = spin
	}
}

// WithSkips marks steps to skip by name.
func WithSkips(names []string) Option {
	return func(r *Runner) {
		for _, name := range names {
			r.skip[name] = true
		}
	}
}

func New(p *plan.Plan, opts ...Option) *Runner {
	r := &Runner{
		plan:      p,
		confirmer: TerminalConfirmer{},
		logger:    defaultLogger,
		out:       os.Stdout,
		skip:      map[string]bool{},
		state:     StateNotStarted,
		index:     -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.commander == nil {
		r.commander = NewExecCommander(r.verbose)
	}
	return r
}

// State reports where the runner is in its lifecycle.
func (r *Runner) State() State { return r.state }

// CurrentIndex is the index of the step the runner is on, or -1 before the
// run starts. It keeps advancing as steps finish, so after a full run it
// points at the last step.
func (r *Runner) CurrentIndex() int { return r.index }

// Run executes the plan's steps in order and returns their results. The
// returned slice holds one result per reached step even when Run also
// returns an error.
//
// Run returns ErrUserDeclined when a confirm step is answered no, ErrHalted
// when halt-on-failure ends the run early, and the context error when ctx is
// done. Step failures by themselves are not errors; they are reported in the
// results.
func (r *Runner) Run(ctx context.Context) ([]StepResult, error) {
	if r.state != StateNotStarted {
		return nil, ErrAlreadyRan
	}
	r.state = StateRunning

	steps := r.plan.Steps
	results := make([]StepResult, 0, len(steps))
	p := &printer{out: r.out, total: len(steps)}

	for i := range steps {
		if err := ctx.Err(); err != nil {
			r.state = StateAborted
			return results, err
		}
		r.index = i
		step := &steps[i]

		if r.streams(step) {
			p.banner(i, step.Title())
		}

		res, err := r.runStep(ctx, i, step)
		results = append(results, res)
		p.result(res)

		if err != nil {
			r.state = StateAborted
			return results, err
		}
		if r.haltOnFailure && res.Failed() {
			r.state = StateAborted
			return results, fmt.Errorf("%w: step %d (%s)", ErrHalted, i+1, res.Title)
		}
	}

	r.state = StateCompleted
	return results, nil
}

// runStep executes one step. Failures are folded into the result; the error
// return is reserved for conditions that end the whole run.
func (r *Runner) runStep(ctx context.Context, i int, step *plan.Step) (StepResult, error) {
	res := StepResult{Index: i, Title: step.Title(), Kind: step.Kind, Status: StatusSucceeded}

	if step.Name != "" && r.skip[step.Name] {
		res.Status = StatusSkipped
		res.Message = "skipped by request"
		return res, nil
	}
	if r.dryRun {
		res.Status = StatusSkipped
		res.Message = "dry run"
		return res, nil
	}

	r.logger.Debug("running step", "step", i+1, "kind", string(step.Kind), "title", res.Title)

	start := time.Now()
	var err error
	switch step.Kind {
	case plan.KindConfirm:
		ok, cerr := r.confirm(step.Confirm)
		res.Duration = time.Since(start)
		if cerr != nil {
			res.Status = StatusSkipped
			res.Message = cerr.Error()
			return res, fmt.Errorf("confirm: %w", cerr)
		}
		if !ok {
			res.Status = StatusSkipped
			res.Message = "declined"
			return res, ErrUserDeclined
		}
		return res, nil
	case plan.KindRun:
		err = r.runCommand(ctx, step, &res)
	case plan.KindCopy:
		err = copyFile(step.Copy)
	case plan.KindClone:
		err = r.clone(ctx, step, &res)
	case plan.KindWrite:
		err = writeFile(step.Write)
	default:
		err = fmt.Errorf("unknown step kind %q", step.Kind)
	}
	res.Duration = time.Since(start)

	if err != nil {
		res.Status = StatusFailed
		res.Message = err.Error()
		r.logger.Debug("step failed", "step", i+1, "error", err.Error())
	}
	return res, nil
}

func (r *Runner) confirm(title string) (bool, error) {
	if r.autoConfirm {
		r.logger.Debug("auto-confirmed", "title", title)
		return true, nil
	}
	return r.confirmer.Confirm(title)
}

func (r *Runner) runCommand(ctx context.Context, step *plan.Step, res *StepResult) error {
	inv := Invocation{
		CommandLine: step.Run.CommandLine,
		Argv:        step.Run.Argv,
		Dir:         step.Dir,
		Interactive: step.Interactive,
	}
	out, err := r.invoke(ctx, step.Title(), inv)
	res.ExitCode = out.ExitCode
	res.Output = out.Output
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return &ExecError{ExitCode: out.ExitCode, Output: tail.LastN(out.Output, outputTailLines)}
	}
	return nil
}

func (r *Runner) clone(ctx context.Context, step *plan.Step, res *StepResult) error {
	inv := Invocation{Argv: []string{"git", "clone", step.Clone.Repo, step.Clone.To}}
	out, err := r.invoke(ctx, step.Title(), inv)
	res.ExitCode = out.ExitCode
	res.Output = out.Output
	if err != nil {
		return &CloneError{Repo: step.Clone.Repo, Err: err}
	}
	if out.ExitCode != 0 {
		return &CloneError{
			Repo: step.Clone.Repo,
			Err:  &ExecError{ExitCode: out.ExitCode, Output: tail.LastN(out.Output, outputTailLines)},
		}
	}
	return nil
}

// invoke runs inv through the commander, wrapped in a spinner when one is
// wanted and the step is not attached to the terminal. A spinner failure
// surfaces as the step's error; the action never runs twice.
func (r *Runner) invoke(ctx context.Context, title string, inv Invocation) (CommandResult, error) {
	var out CommandResult
	var err error
	run := func() {
		out, err = r.commander.Run(ctx, inv)
	}

	if r.spinner && !inv.Interactive && !r.verbose {
		if serr := huhSpinner.New().Title(title).Action(run).Run(); serr != nil {
			r.logger.Debug("error running spinner", "error", serr.Error())
			return out, serr
		}
		return out, err
	}

	run()
	return out, err
}

// streams reports whether the step writes directly to the terminal, which
// calls for a banner line before any of its output shows up.
func (r *Runner) streams(step *plan.Step) bool {
	if r.dryRun || (step.Name != "" && r.skip[step.Name]) {
		return false
	}
	switch step.Kind {
	case plan.KindRun:
		return step.Interactive || r.verbose
	case plan.KindClone:
		return r.verbose
	default:
		return false
	}
}
