// SPDX-License-Identifier: MIT

// Package config loads the matcalc TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/fracmat/grid"
)

// EnvPath names the environment variable consulted by LoadFromEnv.
const EnvPath = "MATCALC_CONFIG"

// Output formats.
const (
	FormatPlain  = "plain"
	FormatLatex  = "latex"
	FormatBraces = "braces"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the complete matcalc configuration.
type Config struct {
	Grid   grid.Policy  `toml:"grid"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format string `toml:"format"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads the TOML file at path and fills missing values with defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadFromEnv loads the file named by MATCALC_CONFIG, falling back to the
// default locations and finally to Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvPath); path != "" {
		return Load(path)
	}
	home, _ := os.UserHomeDir()
	for _, p := range []string{
		"./configs/matcalc.toml",
		"./matcalc.toml",
		filepath.Join(home, ".config", "matcalc", "matcalc.toml"),
	} {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Grid.MaxRows == 0 {
		c.Grid.MaxRows = grid.DefaultMaxRows
	}
	if c.Grid.MaxCols == 0 {
		c.Grid.MaxCols = grid.DefaultMaxCols
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatPlain
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if err := c.Grid.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Grid.MaxRows > 64 || c.Grid.MaxCols > 64 {
		return fmt.Errorf("%w: grid bound %dx%d above 64", ErrInvalidConfig, c.Grid.MaxRows, c.Grid.MaxCols)
	}
	switch c.Output.Format {
	case FormatPlain, FormatLatex, FormatBraces:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}
