package command

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	errUnknownAction = &apperr.Error{
		Message: "unknown action %q",
	}

	errMissingSettings = &apperr.Error{
		Message: "updateSettings requires a settings object",
	}

	errRejected = &apperr.Error{
		Message: "%s request was rejected",
	}

	errNoSnapshot = &apperr.Error{
		Message: "response did not include a snapshot",
	}

	errDecodeRequest = &apperr.Error{
		Message: "malformed request body",
	}

	errUnreachable = &apperr.Error{
		Message: "unable to reach the pomodoro server at %s: is it running?",
	}

	errInvalidTime = &apperr.Error{
		Message: "%s must be an RFC 3339 timestamp, got %q",
	}

	errUnexpectedStatus = &apperr.Error{
		Message: "unexpected response status %d from %s",
	}
)
