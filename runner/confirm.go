package runner

import (
	"github.com/charmbracelet/huh"

	"github.com/dotupsh/dotup-cli/theme"
)

// Confirmer asks the user a yes/no question. Tests swap in a scripted
// implementation so no terminal is needed.
type Confirmer interface {
	Confirm(title string) (bool, error)
}

// TerminalConfirmer prompts on the controlling terminal.
type TerminalConfirmer struct{}

func (TerminalConfirmer) Confirm(title string) (bool, error) {
	var confirmation bool
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes, continue").
		Negative("No, stop here").
		Value(&confirmation)
	if err := huh.NewForm(huh.NewGroup(confirm)).WithTheme(theme.New()).Run(); err != nil {
		return false, err
	}
	return confirmation, nil
}
