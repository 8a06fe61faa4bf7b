package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds application settings that are not part of the timer state.
// Session durations live in the database, not here.
type Config struct {
	DatabasePath string  `yaml:"database_path"`
	LogFile      string  `yaml:"log_file"`
	LogLevel     string  `yaml:"log_level"` // debug, info, warn, error
	Sound        *bool   `yaml:"sound"`
	Volume       float64 `yaml:"volume"` // exponent applied to base 2, 0 = unchanged
}

// DefaultDir returns ~/.pomo
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(homeDir, ".pomo"), nil
}

// DefaultPath returns the path of the config file
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the configuration used when no file exists
func Default() (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	sound := true
	return &Config{
		DatabasePath: filepath.Join(dir, "pomo.db"),
		LogFile:      filepath.Join(dir, "pomo.log"),
		LogLevel:     "info",
		Sound:        &sound,
	}, nil
}

// Load reads the YAML config at path. A missing file yields the defaults,
// missing fields are filled from the defaults and "~" is expanded.
func Load(path string) (*Config, error) {
	defaults, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	// Apply defaults for missing values
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaults.DatabasePath
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaults.LogFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.Sound == nil {
		cfg.Sound = defaults.Sound
	}

	if cfg.DatabasePath, err = expandHome(cfg.DatabasePath); err != nil {
		return nil, err
	}
	if cfg.LogFile, err = expandHome(cfg.LogFile); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// SoundEnabled reports whether the completion tone should play
func (c *Config) SoundEnabled() bool {
	return c.Sound == nil || *c.Sound
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
