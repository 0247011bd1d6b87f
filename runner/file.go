package runner

import (
	"os"
	"path/filepath"

	"github.com/dotupsh/dotup-cli/plan"
)

// copyFile copies From to To with the source's mode, creating parent
// directories as needed. An existing destination is overwritten and its
// mode reset to match the source; there is no idempotence check.
func copyFile(spec *plan.CopySpec) error {
	data, err := os.ReadFile(spec.From)
	if err != nil {
		return &FileOpError{Op: "copy", Path: spec.From, Err: err}
	}
	info, err := os.Stat(spec.From)
	if err != nil {
		return &FileOpError{Op: "copy", Path: spec.From, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(spec.To), 0o755); err != nil {
		return &FileOpError{Op: "copy", Path: spec.To, Err: err}
	}
	if err := os.WriteFile(spec.To, data, info.Mode().Perm()); err != nil {
		return &FileOpError{Op: "copy", Path: spec.To, Err: err}
	}
	// WriteFile applies the mode only on create.
	if err := os.Chmod(spec.To, info.Mode().Perm()); err != nil {
		return &FileOpError{Op: "copy", Path: spec.To, Err: err}
	}
	return nil
}

// writeFile writes the literal content to To. The mode is applied even when
// the file already exists, so tightening permissions on a rerun sticks.
func writeFile(spec *plan.WriteSpec) error {
	mode, err := spec.FileMode()
	if err != nil {
		return &FileOpError{Op: "write", Path: spec.To, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(spec.To), 0o755); err != nil {
		return &FileOpError{Op: "write", Path: spec.To, Err: err}
	}
	if err := os.WriteFile(spec.To, []byte(spec.Content), mode); err != nil {
		return &FileOpError{Op: "write", Path: spec.To, Err: err}
	}
	if err := os.Chmod(spec.To, mode); err != nil {
		return &FileOpError{Op: "write", Path: spec.To, Err: err}
	}
	return nil
}
