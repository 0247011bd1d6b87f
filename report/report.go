// Package report renders a finished run as JSON for scripts and CI logs.
package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dotupsh/dotup-cli/plan"
	"github.com/dotupsh/dotup-cli/runner"
)

// Report is the document written by `dotup run --report`.
type Report struct {
	RunID      string              `json:"run_id"`
	Plan       string              `json:"plan"`
	PlanPath   string              `json:"plan_path,omitempty"`
	State      runner.State        `json:"state"`
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at"`
	Steps      []runner.StepResult `json:"steps"`
	Failures   int                 `json:"failures"`
}

func New(runID string, p *plan.Plan, state runner.State, startedAt, finishedAt time.Time, results []runner.StepResult) *Report {
	failures := 0
	for _, res := range results {
		if res.Failed() {
			failures++
		}
	}
	return &Report{
		RunID:      runID,
		Plan:       p.Title(),
		PlanPath:   p.Path(),
		State:      state,
		StartedAt:  startedAt.UTC(),
		FinishedAt: finishedAt.UTC(),
		Steps:      results,
		Failures:   failures,
	}
}

func (r *Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Save writes the report to path, creating parent directories as needed.
func (r *Report) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Write(f)
}
