// Package config loads the ambient settings of the pomodoro program: how
// completed phases are announced, where the server listens, how the terminal
// UI looks, and how much is logged. Timer durations are not part of this
// package; they are owned by the engine and persisted in the database.
package config

import (
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Notifications NotificationConfig `mapstructure:"notifications"`
		Server        ServerConfig       `mapstructure:"server"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Cmd     string `mapstructure:"cmd"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// ServerConfig holds the command server settings
	ServerConfig struct {
		Addr string `mapstructure:"addr"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		PollInterval time.Duration `mapstructure:"poll_interval"`
		DarkTheme    bool          `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
