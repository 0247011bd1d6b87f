package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var style = lipgloss.NewStyle().
	Bold(true).
	PaddingTop(1).
	Foreground(lipgloss.Color("9"))

// Error prints the error and any additional messages to the terminal
func Error(err error, msgs ...string) {
	// be defensive
	if err == nil {
		return
	}

	errMsg := err.Error()
	if errMsg == "" {
		return
	}

	ErrorMsg(err.Error())
	if len(msgs) > 0 {
		ErrorMsg(msgs...)
	}
}

func ErrorMsg(msgs ...string) {
	for _, msg := range msgs {
		fmt.Println(style.Render(msg))
	}
}

func FatalErr(err error, msgs ...string) {
	Error(err, msgs...)
	os.Exit(1)
}

func FatalErrWithValidateHint(err error) {
	Error(err, validateHint)
	os.Exit(1)
}

const validateHint = "Run `dotup validate` to check your plan file for problems."

func ErrorWithValidateHint(err error) {
	Error(err, validateHint)
}
