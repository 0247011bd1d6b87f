package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var warnStyle = lipgloss.NewStyle().
	Bold(true).
	PaddingTop(1).
	Foreground(lipgloss.Color("11"))

func Warning(text string) {
	fmt.Println(warnStyle.Render(text))
}

func Warningf(format string, args ...any) {
	Warning(fmt.Sprintf(format, args...))
}
