package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dotupsh/dotup-cli/shell"
)

// Invocation describes one external process the runner wants started.
type Invocation struct {
	// Argv is the direct exec form: Argv[0] is resolved via PATH and no
	// shell is involved.
	Argv []string
	// CommandLine is the shell form, run via the user's shell. Exactly one
	// of Argv and CommandLine is set.
	CommandLine string
	// Dir is the working directory; empty means inherit.
	Dir string
	// Interactive attaches the process to a pseudo-terminal.
	Interactive bool
}

func (inv Invocation) String() string {
	if inv.CommandLine != "" {
		return inv.CommandLine
	}
	return strings.Join(inv.Argv, " ")
}

// CommandResult is what came back from a process that ran to completion.
type CommandResult struct {
	ExitCode int
	// Output is the combined stdout and stderr. It is empty when the
	// commander streamed or attached the process to the terminal.
	Output string
}

// Commander starts external processes on behalf of the runner. Tests swap in
// a recording implementation so no processes are spawned.
type Commander interface {
	Run(ctx context.Context, inv Invocation) (CommandResult, error)
}

// ExecCommander runs invocations with os/exec. An exit status other than
// zero is not an error here; it is reported through CommandResult so the
// runner can decide what to do with it.
type ExecCommander struct {
	// Stream copies child output to Stdout and Stderr as it happens instead
	// of capturing it.
	Stream bool
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecCommander(stream bool) *ExecCommander {
	return &ExecCommander{Stream: stream, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (c *ExecCommander) Run(ctx context.Context, inv Invocation) (CommandResult, error) {
	cmd, err := c.command(ctx, inv)
	if err != nil {
		return CommandResult{}, err
	}

	if inv.Interactive {
		code, err := shell.Attach(cmd)
		if err != nil {
			return CommandResult{}, err
		}
		return CommandResult{ExitCode: code}, nil
	}

	if c.Stream {
		cmd.Stdout = c.Stdout
		cmd.Stderr = c.Stderr
		cmd.Stdin = os.Stdin
		code, err := exitCode(cmd.Run())
		return CommandResult{ExitCode: code}, err
	}

	out, err := cmd.CombinedOutput()
	code, err := exitCode(err)
	return CommandResult{ExitCode: code, Output: string(out)}, err
}

func (c *ExecCommander) command(ctx context.Context, inv Invocation) (*exec.Cmd, error) {
	if inv.CommandLine != "" {
		return shell.Command(ctx, inv.CommandLine, inv.Dir)
	}
	if len(inv.Argv) == 0 {
		return nil, errors.New("empty invocation")
	}
	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...)
	cmd.Dir = inv.Dir
	return cmd, nil
}

// exitCode folds an *exec.ExitError into a plain status code. Anything else
// means the process never ran properly and stays an error.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
