package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrUserDeclined is returned by Run when the user answers no to a
	// confirm step. It always ends the run.
	ErrUserDeclined = errors.New("user declined to continue")

	// ErrHalted is returned by Run when halt-on-failure is enabled and a
	// step failed.
	ErrHalted = errors.New("halted on first failure")

	// ErrAlreadyRan guards against reusing a runner; build a new one per run.
	ErrAlreadyRan = errors.New("runner has already run")
)

// ExecError reports a command that ran and exited non-zero.
type ExecError struct {
	ExitCode int
	// Output holds the last few lines of combined output, when captured.
	Output string
}

func (e *ExecError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("exit status %d", e.ExitCode)
	}
	return fmt.Sprintf("exit status %d\n%s", e.ExitCode, e.Output)
}

// FileOpError reports a failed copy or write.
type FileOpError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileOpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileOpError) Unwrap() error { return e.Err }

// CloneError reports a failed git clone.
type CloneError struct {
	Repo string
	Err  error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("clone %s: %v", e.Repo, e.Err)
}

func (e *CloneError) Unwrap() error { return e.Err }
