// Package config loads and persists RookTerm settings from a TOML file
// under the user's config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration
type Config struct {
	Shell    ShellConfig    `toml:"shell"`
	Terminal TerminalConfig `toml:"terminal"`
	Log      LogConfig      `toml:"log"`
}

// ShellConfig controls how the child shell is launched
type ShellConfig struct {
	// Path is the shell binary; empty means auto-detect
	Path string `toml:"path"`
	// SourceRC controls whether the shell runs as interactive
	SourceRC bool `toml:"source_rc"`
	// Env holds extra environment variables for the shell
	Env map[string]string `toml:"env,omitempty"`
}

// TerminalConfig sets the initial emulator dimensions and TERM value
type TerminalConfig struct {
	Cols int    `toml:"cols"`
	Rows int    `toml:"rows"`
	Term string `toml:"term"`
}

// LogConfig controls host logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`
	// Development enables human-readable console output
	Development bool `toml:"development"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Shell: ShellConfig{
			SourceRC: true,
		},
		Terminal: TerminalConfig{
			Cols: 80,
			Rows: 24,
			Term: "xterm-256color",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the RookTerm config directory
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "rookterm"), nil
}

// Path returns the config file path
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, writing the defaults first if it does not
// exist yet
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file at an explicit path, creating it with the
// defaults when missing
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveTo(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the config to the default location
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the config to an explicit path, creating parent
// directories as needed
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	if c.Terminal.Cols < 1 {
		c.Terminal.Cols = 80
	}
	if c.Terminal.Rows < 1 {
		c.Terminal.Rows = 24
	}
	if c.Terminal.Term == "" {
		c.Terminal.Term = "xterm-256color"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
