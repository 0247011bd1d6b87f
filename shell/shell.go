// Package shell locates the user's shell and runs commands that need a
// real terminal.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

var ErrNoShell = errors.New("no shell found")

// Lookup returns the shell used for command-line steps: $SHELL if set,
// otherwise bash, otherwise sh.
func Lookup() (string, error) {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, nil
	}
	if bash, err := exec.LookPath("bash"); err == nil {
		return bash, nil
	}
	if sh, err := exec.LookPath("sh"); err == nil {
		return sh, nil
	}
	return "", ErrNoShell
}

// Command builds a command that executes commandLine through the user's
// shell. dir may be empty to inherit the working directory.
func Command(ctx context.Context, commandLine, dir string) (*exec.Cmd, error) {
	sh, err := Lookup()
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, sh, "-c", commandLine)
	cmd.Dir = dir
	return cmd, nil
}
