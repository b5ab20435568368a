package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Watch   WatchConfig   `yaml:"watch" json:"watch"`
}

// UIConfig configures the terminal keypad
type UIConfig struct {
	Theme         string        `yaml:"theme" json:"theme"`                   // default|high-contrast|minimal
	ColorMode     string        `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	ShowHelp      bool          `yaml:"show_help" json:"show_help"`           // show the key help line
	Mouse         bool          `yaml:"mouse" json:"mouse"`                   // accept mouse clicks on buttons
	FlashDuration time.Duration `yaml:"flash_duration" json:"flash_duration"` // how long a pressed button stays lit
}

// LoggingConfig configures diagnostic logging
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"` // debug|info|warn|error
	File  string `yaml:"file" json:"file"`   // log file path, empty disables logging in the TUI
}

// WatchConfig configures config file hot reload
type WatchConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		UI: UIConfig{
			Theme:         "default",
			ColorMode:     "auto",
			ShowHelp:      true,
			Mouse:         true,
			FlashDuration: 120 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
		Watch: WatchConfig{
			Enabled: true,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateLoggingConfig(); err != nil {
		return err
	}
	return nil
}

// validateUIConfig validates UI-related configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	if c.UI.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.UI.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.UI.ColorMode)
		}
	}
	if c.UI.FlashDuration < 0 {
		return fmt.Errorf("flash_duration must be non-negative")
	}
	return nil
}

// validateLoggingConfig validates logging-related configuration
func (c *Config) validateLoggingConfig() error {
	if c.Logging.Level != "" {
		validLevels := map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		}
		if !validLevels[c.Logging.Level] {
			return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
		}
	}
	return nil
}
