// Package config loads the optional picoview override file. The library
// works with zero configuration; the file exists for the cases the
// platform cannot detect well on its own — remote displays with broken
// present notifications, wrong DPI reports, and debugging.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the parsed override file. Zero values mean "no override".
type Config struct {
	Pacing PacingConfig `yaml:"pacing"`
	Scale  ScaleConfig  `yaml:"scale"`
	Log    LogConfig    `yaml:"log"`
}

// PacingConfig overrides frame-pacing behavior.
type PacingConfig struct {
	// ForceTimer disables the compositor/display-link wait and paces on
	// the refresh-rate timer only.
	ForceTimer bool `yaml:"force_timer"`

	// RefreshHz pins the timer rate instead of querying the display.
	RefreshHz float64 `yaml:"refresh_hz"`
}

// ScaleConfig overrides the detected display scale.
type ScaleConfig struct {
	Override float32 `yaml:"override"`
}

// LogConfig enables the diagnostic logger.
type LogConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Level     string `yaml:"level"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "picoview", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "picoview", "config.yaml"), nil
}

// Load reads the config from the standard location. A missing file is not
// an error and yields the zero config.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates a config file.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Pacing.RefreshHz < 0 {
		return fmt.Errorf("pacing.refresh_hz must not be negative, got %v", c.Pacing.RefreshHz)
	}
	if c.Pacing.RefreshHz > 1000 {
		return fmt.Errorf("pacing.refresh_hz %v exceeds 1000", c.Pacing.RefreshHz)
	}
	if c.Scale.Override < 0 {
		return fmt.Errorf("scale.override must not be negative, got %v", c.Scale.Override)
	}
	if c.Log.Enabled && c.Log.File == "" {
		return fmt.Errorf("log.file is required when log.enabled is set")
	}
	return nil
}
