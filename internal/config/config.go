// Package config provides configuration types, paths, and user resolution for valet.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFile is the tool configuration file name inside the valet home.
	ConfigFile = "config.json"

	// PinFile is the pinned-PHP-version marker file name inside the valet home.
	PinFile = "use_php_version"

	// LogDirName is the log directory name inside the valet home.
	LogDirName = "Log"
)

// Config is the main valet configuration.
type Config struct {
	Log    LogConfig `json:"log,omitempty"`
	Domain string    `json:"domain,omitempty"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level     string `json:"level,omitempty"`
	Output    string `json:"output,omitempty"`
	Timestamp *bool  `json:"timestamp,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Domain: "test",
	}
}

// Load reads the configuration from the valet home directory.
func Load() (*Config, error) {
	return LoadFromPath(filepath.Join(HomePath(), ConfigFile))
}

// LoadFromPath reads the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault reads the configuration from disk, or returns a default config
// if none exists yet.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the valet home directory.
func (c *Config) Save() error {
	return c.SaveToPath(filepath.Join(HomePath(), ConfigFile))
}

// SaveToPath writes the configuration to a specific path.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
