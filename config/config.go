package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const DefaultConfigFileName = "config.json"

var (
	DefaultConfigDir      = os.ExpandEnv("$HOME/.config/dotup")
	DefaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
)

// Config holds per-user defaults applied before flags. Flags always win.
type Config struct {
	// HaltOnFailure stops every run at the first failed step, as if
	// --halt-on-failure were passed to each run.
	HaltOnFailure bool `json:"halt_on_failure"`
}

func (c *Config) Save() error {
	if _, err := os.Stat(DefaultConfigDir); os.IsNotExist(err) {
		if err := os.MkdirAll(DefaultConfigDir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(DefaultConfigFilePath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(c); err != nil {
		return err
	}
	return nil
}

// LoadFromFile reads the user's config. A missing file is not an error and
// yields the zero config.
func LoadFromFile() (*Config, error) {
	f, err := os.Open(DefaultConfigFilePath)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
