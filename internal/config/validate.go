package config

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

var (
	minPollInterval = 100 * time.Millisecond
	maxPollInterval = 1 * time.Minute

	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validSoundExts  = []string{".mp3", ".ogg", ".flac", ".wav"}
	soundOff        = "off"
	defaultLogLevel = "info"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateNotifications(); err != nil {
		return err
	}

	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return errInvalidAddr.Fmt(c.Server.Addr)
	}

	if c.Display.PollInterval < minPollInterval ||
		c.Display.PollInterval > maxPollInterval {
		return errInvalidPollInterval.Fmt(
			minPollInterval,
			maxPollInterval,
			c.Display.PollInterval,
		)
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level == "" {
		c.Log.Level = defaultLogLevel
	} else if !slices.Contains(validLogLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateNotifications() error {
	sound := c.Notifications.Sound

	if sound != "" && !strings.EqualFold(sound, soundOff) {
		ext := strings.ToLower(filepath.Ext(sound))

		if !slices.Contains(validSoundExts, ext) {
			return errInvalidSoundFormat.Fmt(sound)
		}

		_, err := os.Stat(sound)
		if errors.Is(err, os.ErrNotExist) {
			return errUnknownSound.Fmt(sound)
		}
	}

	if c.Notifications.Cmd != "" {
		if _, err := shellquote.Split(c.Notifications.Cmd); err != nil {
			return errInvalidCmd.Wrap(err)
		}
	}

	return nil
}
