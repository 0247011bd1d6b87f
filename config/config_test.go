package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempConfig points the package at a throwaway config path for one test.
func useTempConfig(t *testing.T) {
	t.Helper()
	oldDir, oldPath := DefaultConfigDir, DefaultConfigFilePath
	DefaultConfigDir = filepath.Join(t.TempDir(), "dotup")
	DefaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
	t.Cleanup(func() {
		DefaultConfigDir, DefaultConfigFilePath = oldDir, oldPath
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("MissingFileYieldsDefaults", func(t *testing.T) {
		useTempConfig(t)

		cfg, err := LoadFromFile()
		require.NoError(t, err)
		assert.False(t, cfg.HaltOnFailure)
	})
}

func TestSaveThenLoad(t *testing.T) {
	useTempConfig(t)

	cfg := &Config{HaltOnFailure: true}
	require.NoError(t, cfg.Save())

	// Save creates the config directory on first use.
	assert.DirExists(t, DefaultConfigDir)

	got, err := LoadFromFile()
	require.NoError(t, err)
	assert.True(t, got.HaltOnFailure)
}

func TestSaveOverwritesPreviousValue(t *testing.T) {
	useTempConfig(t)

	require.NoError(t, (&Config{HaltOnFailure: true}).Save())
	require.NoError(t, (&Config{HaltOnFailure: false}).Save())

	got, err := LoadFromFile()
	require.NoError(t, err)
	assert.False(t, got.HaltOnFailure)
}
