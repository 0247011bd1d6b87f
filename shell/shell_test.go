package shell_test

import (
	"context"
	"testing"

	"github.com/dotupsh/dotup-cli/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("PrefersShellEnvVar", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/zsh")
		sh, err := shell.Lookup()
		require.NoError(t, err)
		assert.Equal(t, "/bin/zsh", sh)
	})
	t.Run("FallsBackWhenShellUnset", func(t *testing.T) {
		t.Setenv("SHELL", "")
		sh, err := shell.Lookup()
		require.NoError(t, err)
		assert.NotEmpty(t, sh)
	})
}

func TestCommand(t *testing.T) {
	t.Setenv("SHELL", "/bin/sh")

	cmd, err := shell.Command(context.Background(), "echo hello && echo world", "/tmp")
	require.NoError(t, err)

	require.Len(t, cmd.Args, 3)
	assert.Equal(t, "/bin/sh", cmd.Args[0])
	assert.Equal(t, "-c", cmd.Args[1])
	assert.Equal(t, "echo hello && echo world", cmd.Args[2])
	assert.Equal(t, "/tmp", cmd.Dir)
}
