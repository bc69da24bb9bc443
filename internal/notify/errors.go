package notify

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	errDesktopNotify = &apperr.Error{
		Message: "unable to display notification",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errPlaySound = &apperr.Error{
		Message: "unable to play sound %s",
	}

	errParseHookCmd = &apperr.Error{
		Message: "unable to parse notifications.cmd option",
	}

	errRunHookCmd = &apperr.Error{
		Message: "command %q failed",
	}

	errRecordSession = &apperr.Error{
		Message: "unable to record completed %s",
	}
)
