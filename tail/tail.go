// Package tail trims captured command output down to the lines worth
// showing in a failure message.
package tail

import (
	"strings"
)

// LastN returns the last n lines of s without a trailing newline. A final
// incomplete line counts as a line. n <= 0 or an empty s yields "".
func LastN(s string, n int) string {
	lines := Lines(s, n)
	if lines == nil {
		return ""
	}
	return strings.Join(lines, "\n")
}

// Lines returns the last n lines of s as a slice, preserving order.
func Lines(s string, n int) []string {
	if n <= 0 {
		return nil
	}
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}

	// Walk backwards so huge captures don't get split in full.
	end := len(s)
	for i := end - 1; i >= 0; i-- {
		if s[i] != '\n' {
			continue
		}
		n--
		if n == 0 {
			return strings.Split(s[i+1:], "\n")
		}
	}
	return strings.Split(s, "\n")
}
