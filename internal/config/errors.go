package config

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownSound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidCmd = &apperr.Error{
		Message: "notifications.cmd is not a valid command line",
	}

	errInvalidAddr = &apperr.Error{
		Message: "server.addr must be in host:port form, got %q",
	}

	errInvalidPollInterval = &apperr.Error{
		Message: "display.poll_interval must be between %v and %v, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log.level must be one of debug, info, warn, or error, got %q",
	}
)
