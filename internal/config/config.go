// Package config defines the tally configuration, loaded through viper from
// a YAML file, environment variables (TALLY_ prefix), and flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete tally configuration.
type Config struct {
	Initial InitialConfig `mapstructure:"initial"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InitialConfig seeds the store on startup.
type InitialConfig struct {
	// Count is the starting counter value
	Count int `mapstructure:"count"`
	// Text is the starting note content
	Text string `mapstructure:"text"`
}

// TUIConfig controls the terminal UI behavior.
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	// Options: "default", "dracula", "nord", or a custom theme file name
	Theme string `mapstructure:"theme"`
	// ShowHelp shows the key binding footer on startup (default: true)
	ShowHelp bool `mapstructure:"show_help"`
}

// LoggingConfig controls debug logging.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is the directory for the log file; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// DefaultConfig returns the configuration used when no file, env, or flag
// overrides anything.
func DefaultConfig() *Config {
	return &Config{
		Initial: InitialConfig{
			Count: 0,
			Text:  "",
		},
		TUI: TUIConfig{
			Theme:    "default",
			ShowHelp: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := DefaultConfig()

	viper.SetDefault("initial.count", defaults.Initial.Count)
	viper.SetDefault("initial.text", defaults.Initial.Text)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals the current viper state into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// ConfigDir returns the directory where the config file lives
// ($HOME/.config/tally, or the working directory if HOME is unset).
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "tally")
}
