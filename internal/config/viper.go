package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/pomodoro/internal/command"
)

const (
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keyNotificationsCmd     = "notifications.cmd"
	keyServerAddr           = "server.addr"
	keyDarkTheme            = "display.dark_theme"
	keyPollInterval         = "display.poll_interval"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the yaml
// file at configPath. A missing file is created with the default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// WithDefaults returns an Option that applies the default values without
// touching the filesystem.
func WithDefaults() Option {
	return func(c *Config) error {
		v := viper.New()

		setupViper(v)

		return loadViperConfig(v, c)
	}
}

func setupViper(v *viper.Viper) {
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, "")
	v.SetDefault(keyNotificationsCmd, "")
	v.SetDefault(keyServerAddr, command.DefaultAddr)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyPollInterval, "1s")
	v.SetDefault(keyLogLevel, "info")
}

func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
