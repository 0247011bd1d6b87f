// Package plan defines the provisioning plan document: an ordered list of
// declarative steps loaded from a YAML file. A Plan is built once per
// invocation and never mutated afterwards.
package plan

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Kind identifies what a step does.
type Kind string

const (
	KindRun     Kind = "run"
	KindCopy    Kind = "copy"
	KindClone   Kind = "clone"
	KindWrite   Kind = "write"
	KindConfirm Kind = "confirm"
)

// DefaultFileName is the plan file dotup looks for when none is given.
const DefaultFileName = "dotup.yaml"

// DefaultConfirmPrompt is used when a confirm step has an empty prompt.
const DefaultConfirmPrompt = "Continue?"

// Plan is an ordered sequence of steps. Order is significant: later steps
// routinely depend on the side effects of earlier ones, e.g. a package
// manager must be installed before it is invoked.
type Plan struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`

	path string
}

// Path returns the absolute path of the file the plan was loaded from.
// It is empty for plans built in memory.
func (p *Plan) Path() string { return p.path }

// Title returns the plan name, falling back to the file name.
func (p *Plan) Title() string {
	if p.Name != "" {
		return p.Name
	}
	if p.path != "" {
		return p.path
	}
	return "provisioning plan"
}

// Step is one declarative unit of work. Exactly one of the action fields
// (Run, Copy, Clone, Write, Confirm) is set; Kind records which one.
type Step struct {
	// Name is the optional human-readable title from the plan file.
	Name string

	Kind Kind

	Run         *RunSpec
	Dir         string
	Interactive bool

	Copy    *CopySpec
	Clone   *CloneSpec
	Write   *WriteSpec
	Confirm string
}

// RunSpec is the command of a run step. Exactly one of CommandLine and Argv
// is set: CommandLine is executed through the user's shell, Argv is executed
// directly without a shell.
type RunSpec struct {
	CommandLine string
	Argv        []string
}

// CopySpec copies a file. The destination is overwritten unconditionally;
// there is no idempotence guard.
type CopySpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// CloneSpec clones a repository by shelling out to git. A pre-existing
// destination is not handled specially; git's own error surfaces as the
// step failure.
type CloneSpec struct {
	Repo string `yaml:"repo"`
	To   string `yaml:"to"`
}

// WriteSpec writes literal content to a file. Content is never expanded:
// dotfiles legitimately contain $VARS that must survive verbatim.
type WriteSpec struct {
	To      string `yaml:"to"`
	Content string `yaml:"content"`
	// Mode is an octal string like "0600". Empty means 0644.
	Mode string `yaml:"mode"`
}

// FileMode parses the Mode string, defaulting to 0644.
func (w *WriteSpec) FileMode() (os.FileMode, error) {
	if w.Mode == "" {
		return 0o644, nil
	}
	mode, err := strconv.ParseUint(w.Mode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode %q: %w", w.Mode, err)
	}
	return os.FileMode(mode), nil
}

// Title returns the step name, or a short description derived from the
// action when no name was given.
func (s *Step) Title() string {
	if s.Name != "" {
		return s.Name
	}
	switch s.Kind {
	case KindRun:
		return s.Run.String()
	case KindCopy:
		return fmt.Sprintf("copy %s to %s", s.Copy.From, s.Copy.To)
	case KindClone:
		return fmt.Sprintf("clone %s", s.Clone.Repo)
	case KindWrite:
		return fmt.Sprintf("write %s", s.Write.To)
	case KindConfirm:
		return s.Confirm
	}
	return string(s.Kind)
}

// CommandEquivalent returns the shell command a step corresponds to, or ""
// for steps with no command form (write, confirm). It is display-only; the
// runner never executes this string for non-run steps.
func (s *Step) CommandEquivalent() string {
	switch s.Kind {
	case KindRun:
		return s.Run.String()
	case KindCopy:
		return fmt.Sprintf("cp %s %s", s.Copy.From, s.Copy.To)
	case KindClone:
		return fmt.Sprintf("git clone %s %s", s.Clone.Repo, s.Clone.To)
	}
	return ""
}

// String returns the command line, or the argv joined with spaces.
func (r *RunSpec) String() string {
	if r.CommandLine != "" {
		return r.CommandLine
	}
	return strings.Join(r.Argv, " ")
}
