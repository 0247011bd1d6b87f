package tail_test

import (
	"testing"

	"github.com/dotupsh/dotup-cli/tail"
	"github.com/stretchr/testify/assert"
)

const capture = `cloning into '/tmp/dst'...
remote: enumerating objects
fatal: repository not found
`

func TestLastN(t *testing.T) {
	t.Run("ReturnsEmptyForNonPositiveN", func(t *testing.T) {
		assert.Empty(t, tail.LastN(capture, 0))
		assert.Empty(t, tail.LastN(capture, -1))
	})
	t.Run("ReturnsEmptyForEmptyInput", func(t *testing.T) {
		assert.Empty(t, tail.LastN("", 3))
		assert.Empty(t, tail.LastN("\n\n", 3))
	})
	t.Run("ReturnsEntireInputWhenNIsGreaterThanLineCount", func(t *testing.T) {
		got := tail.LastN(capture, 1000)
		assert.Equal(t, "cloning into '/tmp/dst'...\nremote: enumerating objects\nfatal: repository not found", got)
	})
	t.Run("ReturnsLastNLines", func(t *testing.T) {
		got := tail.LastN(capture, 2)
		assert.Equal(t, "remote: enumerating objects\nfatal: repository not found", got)
	})
	t.Run("CountsIncompleteFinalLine", func(t *testing.T) {
		got := tail.LastN("one\ntwo\nthree", 2)
		assert.Equal(t, "two\nthree", got)
	})
	t.Run("LinesPreservesOrder", func(t *testing.T) {
		got := tail.Lines(capture, 2)
		assert.Equal(t, []string{"remote: enumerating objects", "fatal: repository not found"}, got)
	})
}
