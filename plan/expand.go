package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// expand rewrites every path field in place: $VARS and a leading ~ are
// expanded, and relative paths are resolved against baseDir (the plan
// file's directory). Argv elements are expanded but never resolved, since
// argv[0] is a program name looked up in $PATH. Shell command lines and
// write contents are left untouched: the shell owns expansion for the
// former, and dotfiles legitimately contain $VARS in the latter.
func (p *Plan) expand(baseDir string) error {
	for i := range p.Steps {
		s := &p.Steps[i]
		switch s.Kind {
		case KindRun:
			dir, err := expandPath(s.Dir)
			if err != nil {
				return stepErr(s, err)
			}
			s.Dir = resolve(baseDir, dir)
			for j, arg := range s.Run.Argv {
				expanded, err := expandPath(arg)
				if err != nil {
					return stepErr(s, err)
				}
				s.Run.Argv[j] = expanded
			}
		case KindCopy:
			from, err := expandPath(s.Copy.From)
			if err != nil {
				return stepErr(s, err)
			}
			to, err := expandPath(s.Copy.To)
			if err != nil {
				return stepErr(s, err)
			}
			s.Copy.From = resolve(baseDir, from)
			s.Copy.To = resolve(baseDir, to)
		case KindClone:
			s.Clone.Repo = os.ExpandEnv(s.Clone.Repo)
			to, err := expandPath(s.Clone.To)
			if err != nil {
				return stepErr(s, err)
			}
			s.Clone.To = resolve(baseDir, to)
		case KindWrite:
			to, err := expandPath(s.Write.To)
			if err != nil {
				return stepErr(s, err)
			}
			s.Write.To = resolve(baseDir, to)
		}
	}
	return nil
}

func stepErr(s *Step, err error) error {
	return fmt.Errorf("step %q: %w", s.Title(), err)
}

// expandPath expands $VARS and a leading ~. A ~ anywhere else is left
// alone, matching shell behavior.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand %q: %w", path, err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
