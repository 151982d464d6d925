// Package config loads the optional user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/CR-AudioViz-AI/crav-games/internal/storage"
)

type Config struct {
	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`
	// Player is the display name shown on the board.
	Player string `yaml:"player"`
	// ShowHints toggles discovery hints for locked non-secret cards.
	ShowHints *bool `yaml:"show_hints"`
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".crav-games.yaml"), nil
}

// Load reads the config file at path. A missing file yields the zero
// config; a malformed file is an error the caller surfaces.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) HintsEnabled() bool {
	if c.ShowHints == nil {
		return true
	}
	return *c.ShowHints
}

// ResolveDBPath picks the database path: --db flag, then $CRAV_DB, then
// the config file, then the default next to the home directory.
func (c *Config) ResolveDBPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("CRAV_DB"); env != "" {
		return env, nil
	}
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	return storage.DefaultDBPath()
}

func (c *Config) PlayerName() string {
	if c.Player == "" {
		return "Player One"
	}
	return c.Player
}
