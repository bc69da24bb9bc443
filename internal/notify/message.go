package notify

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/pomodoro/internal/display"
	"github.com/ayoisaiah/pomodoro/internal/engine"
)

// Title is used for every desktop notification.
const Title = "Pomodoro Timer"

// Message returns the notification text for ev.
func Message(ev engine.Event) (title, body string) {
	st := ev.Snapshot.State
	set := ev.Snapshot.Settings
	phase := strings.ToLower(st.Phase.Label())

	switch ev.Occasion {
	case engine.Started:
		body = fmt.Sprintf(
			"Your %s has started. Session %d of %d",
			phase,
			st.CurrentSession,
			set.SessionsPerCycle,
		)
	case engine.Paused:
		body = fmt.Sprintf(
			"Your timer has stopped with %s left",
			display.Clock(st.RemainingSeconds),
		)
	case engine.Reset:
		body = "Your timer has been reset"
	case engine.BreakStarted:
		body = fmt.Sprintf("Focus session finished. Enjoy your %s", phase)
	case engine.BreakPending:
		body = fmt.Sprintf(
			"Focus session finished. Start your %s when ready",
			phase,
		)
	case engine.BreakFinished:
		body = "Your break has finished"
	case engine.FocusStarted:
		body = fmt.Sprintf(
			"Break finished. Session %d of %d has started",
			st.CurrentSession,
			set.SessionsPerCycle,
		)
	case engine.FocusPending:
		body = fmt.Sprintf(
			"Break finished. Start session %d of %d when ready",
			st.CurrentSession,
			set.SessionsPerCycle,
		)
	case engine.CycleCompleted:
		body = fmt.Sprintf(
			"Break finished. All %d sessions are done. Your cycle has ended",
			set.SessionsPerCycle,
		)
	case engine.SettingsUpdated:
		body = "Settings saved successfully!"
	default:
		body = string(ev.Occasion)
	}

	return Title, body
}
