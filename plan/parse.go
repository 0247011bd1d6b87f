package plan

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotupsh/dotup-cli/slice"
	"gopkg.in/yaml.v3"
)

// Load reads, parses, and finalizes a plan file. Path fields are expanded
// (~ and $VARS) and relative paths are resolved against the plan file's
// directory, so the returned plan carries absolute paths only.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	p.path = abs

	if err := p.expand(filepath.Dir(abs)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a plan document. Unknown top-level and step-level keys are
// rejected; each step must declare exactly one action.
func Parse(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}

	if len(p.Steps) == 0 {
		return nil, fmt.Errorf("plan has no steps")
	}
	return &p, nil
}

// stepFields are the keys a step mapping may carry.
var stepFields = []string{"name", "run", "dir", "interactive", "copy", "clone", "write", "confirm"}

type rawStep struct {
	Name        string     `yaml:"name"`
	Run         *RunSpec   `yaml:"run"`
	Dir         string     `yaml:"dir"`
	Interactive bool       `yaml:"interactive"`
	Copy        *CopySpec  `yaml:"copy"`
	Clone       *CloneSpec `yaml:"clone"`
	Write       *WriteSpec `yaml:"write"`
	Confirm     *string    `yaml:"confirm"`
}

// UnmarshalYAML decodes a step mapping and enforces the tagged-variant
// shape: exactly one of run, copy, clone, write, confirm.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: step must be a mapping", value.Line)
	}

	// Key nodes sit at even indices of a mapping's content.
	for i := 0; i < len(value.Content); i += 2 {
		if key := value.Content[i].Value; !slice.Has(stepFields, key) {
			return fmt.Errorf("line %d: unknown step field %q", value.Content[i].Line, key)
		}
	}

	var raw rawStep
	if err := value.Decode(&raw); err != nil {
		return err
	}

	var kinds []Kind
	if raw.Run != nil {
		kinds = append(kinds, KindRun)
	}
	if raw.Copy != nil {
		kinds = append(kinds, KindCopy)
	}
	if raw.Clone != nil {
		kinds = append(kinds, KindClone)
	}
	if raw.Write != nil {
		kinds = append(kinds, KindWrite)
	}
	if raw.Confirm != nil {
		kinds = append(kinds, KindConfirm)
	}

	switch len(kinds) {
	case 1:
	case 0:
		return fmt.Errorf("line %d: step %q has no action: want one of run, copy, clone, write, confirm", value.Line, raw.Name)
	default:
		names := slice.Map(kinds, func(k Kind) string { return string(k) })
		return fmt.Errorf("line %d: step %q declares %s: want exactly one action", value.Line, raw.Name, strings.Join(names, " and "))
	}

	s.Name = raw.Name
	s.Kind = kinds[0]
	s.Run = raw.Run
	s.Dir = raw.Dir
	s.Interactive = raw.Interactive
	s.Copy = raw.Copy
	s.Clone = raw.Clone
	s.Write = raw.Write
	if raw.Confirm != nil {
		s.Confirm = *raw.Confirm
		if s.Confirm == "" {
			s.Confirm = DefaultConfirmPrompt
		}
	}
	return nil
}

// UnmarshalYAML accepts either a command string or an argv list.
func (r *RunSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&r.CommandLine)
	case yaml.SequenceNode:
		return value.Decode(&r.Argv)
	}
	return fmt.Errorf("line %d: run must be a command string or an argv list", value.Line)
}
