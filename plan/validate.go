package plan

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Problem is a single validation finding, tied to a step unless it concerns
// the plan as a whole.
type Problem struct {
	// StepIndex is zero-based; -1 means the problem is plan-level.
	StepIndex int
	StepName  string
	Message   string
}

func (p Problem) String() string {
	if p.StepIndex < 0 {
		return p.Message
	}
	return fmt.Sprintf("step %d (%s): %s", p.StepIndex+1, p.StepName, p.Message)
}

// Problems runs the static checks that parsing alone cannot express:
// required fields per action, file modes, option/action mismatches,
// duplicate names, and shell syntax of command strings. An empty result
// means the plan is ready to run.
func (p *Plan) Problems() []Problem {
	var problems []Problem
	add := func(i int, format string, args ...any) {
		problems = append(problems, Problem{
			StepIndex: i,
			StepName:  p.Steps[i].Title(),
			Message:   fmt.Sprintf(format, args...),
		})
	}

	shellParser := syntax.NewParser()
	seen := make(map[string]int)

	for i := range p.Steps {
		s := &p.Steps[i]

		if s.Name != "" {
			if prev, ok := seen[s.Name]; ok {
				add(i, "duplicate step name (also step %d); --skip matches by name", prev+1)
			}
			seen[s.Name] = i
		}

		if s.Kind != KindRun {
			if s.Dir != "" {
				add(i, "dir is only valid on run steps")
			}
			if s.Interactive {
				add(i, "interactive is only valid on run steps")
			}
		}

		switch s.Kind {
		case KindRun:
			switch {
			case s.Run.CommandLine == "" && len(s.Run.Argv) == 0:
				add(i, "run step has no command")
			case s.Run.CommandLine != "":
				if _, err := shellParser.Parse(strings.NewReader(s.Run.CommandLine), s.Title()); err != nil {
					add(i, "shell syntax: %v", err)
				}
			case s.Run.Argv[0] == "":
				add(i, "argv[0] must name a program")
			}
		case KindCopy:
			if s.Copy.From == "" {
				add(i, "copy step is missing from")
			}
			if s.Copy.To == "" {
				add(i, "copy step is missing to")
			}
		case KindClone:
			if s.Clone.Repo == "" {
				add(i, "clone step is missing repo")
			}
			if s.Clone.To == "" {
				add(i, "clone step is missing to")
			}
		case KindWrite:
			if s.Write.To == "" {
				add(i, "write step is missing to")
			}
			if _, err := s.Write.FileMode(); err != nil {
				add(i, "%v", err)
			}
		}
	}
	return problems
}
