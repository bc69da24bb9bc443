package app

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	errCommandFailed = &apperr.Error{
		Message: "%s failed: %s",
	}

	errInvalidSetting = &apperr.Error{
		Message: "--%s must be at least 1, got %d",
	}

	errNoSettings = &apperr.Error{
		Message: "nothing to change: pass at least one of --focus, --break, --long-break, --sessions, or --auto-start",
	}
)
