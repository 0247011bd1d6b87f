package display_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotupsh/dotup-cli/display"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestErrorWithValidateHint(t *testing.T) {
	out := captureStdout(t, func() {
		display.ErrorWithValidateHint(errors.New("not running dotup.yaml: 2 problems"))
	})

	assert.Contains(t, out, "not running dotup.yaml: 2 problems")
	assert.Contains(t, out, "dotup validate")
}

func TestErrorIgnoresNil(t *testing.T) {
	out := captureStdout(t, func() {
		display.Error(nil)
	})
	assert.Empty(t, out)
}
