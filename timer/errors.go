package timer

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	errNotPositive = &apperr.Error{
		Message: "enter a whole number greater than zero",
	}

	errRejected = &apperr.Error{
		Message: "%s failed",
	}
)
