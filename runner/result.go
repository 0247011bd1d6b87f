package runner

import (
	"time"

	"github.com/dotupsh/dotup-cli/plan"
)

// Status is the outcome of a single step.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// StepResult records what happened to one step. A run produces exactly one
// result per executed step, in plan order.
type StepResult struct {
	Index  int       `json:"index"`
	Title  string    `json:"title"`
	Kind   plan.Kind `json:"kind"`
	Status Status    `json:"status"`
	// Message carries the failure detail or the skip reason.
	Message string `json:"message,omitempty"`
	// ExitCode is set for run and clone steps that started a process.
	ExitCode int `json:"exit_code,omitempty"`
	// Output is the captured combined output, when the step was not
	// streaming to the terminal.
	Output   string        `json:"output,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

func (r StepResult) Failed() bool { return r.Status == StatusFailed }

// State tracks the runner through its lifecycle. A runner moves from
// NotStarted to Running exactly once and ends in Completed or Aborted.
type State string

const (
	StateNotStarted State = "not_started"
	StateRunning    State = "running"
	StateCompleted  State = "completed"
	StateAborted    State = "aborted"
)
