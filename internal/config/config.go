// Package config loads the chomp CLI configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI settings. Flags override anything loaded here.
type Config struct {
	// DBPath is the SQLite run-history path; empty keeps history in memory.
	DBPath string `toml:"db_path"`
	// Color toggles styled diagnostics.
	Color bool `toml:"color"`
	// Debug enables the failure diagnostics logger.
	Debug bool `toml:"debug"`
	// Prompt is the REPL prompt.
	Prompt string `toml:"prompt"`
	// HistoryLimit caps the :history listing.
	HistoryLimit int `toml:"history_limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Color:        true,
		Prompt:       ">>> ",
		HistoryLimit: 20,
	}
}

// Load reads a TOML file over the defaults. A missing file at the default
// location is not an error; an explicit path must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
