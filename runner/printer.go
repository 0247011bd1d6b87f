package runner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).PaddingLeft(2)
)

// printer renders one line per step outcome, plus a banner before steps that
// stream their output to the terminal.
type printer struct {
	out   io.Writer
	total int
}

func (p *printer) banner(index int, title string) {
	fmt.Fprintf(p.out, "%s %s\n", p.counter(index), bannerStyle.Render(title))
}

func (p *printer) result(res StepResult) {
	mark := p.mark(res.Status)
	line := fmt.Sprintf("%s %s %s", mark, p.counter(res.Index), res.Title)
	if res.Status == StatusSkipped && res.Message != "" {
		line += skipStyle.Render(fmt.Sprintf(" (%s)", res.Message))
	}
	if d := res.Duration.Round(10 * time.Millisecond); d > 0 {
		line += skipStyle.Render(fmt.Sprintf(" %s", d))
	}
	fmt.Fprintln(p.out, line)

	if res.Status == StatusFailed && res.Message != "" {
		for _, detail := range strings.Split(strings.TrimRight(res.Message, "\n"), "\n") {
			fmt.Fprintln(p.out, detailStyle.Render(detail))
		}
	}
}

func (p *printer) counter(index int) string {
	return fmt.Sprintf("[%d/%d]", index+1, p.total)
}

func (p *printer) mark(s Status) string {
	switch s {
	case StatusSucceeded:
		return okStyle.Render("✓")
	case StatusFailed:
		return failStyle.Render("✗")
	default:
		return skipStyle.Render("-")
	}
}
