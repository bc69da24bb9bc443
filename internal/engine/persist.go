package engine

import (
	"encoding/json"

	"github.com/ayoisaiah/pomodoro/store"
)

// Persisted keys. Their names are part of the on-disk format.
const (
	KeyFocusMinutes     = "focusMinutes"
	KeyBreakMinutes     = "breakMinutes"
	KeyLongBreakMinutes = "longBreakMinutes"
	KeySessionsPerCycle = "sessionsPerCycle"
	KeyAutoStart        = "autoStart"
	KeyPhase            = "phase"
	KeyRunning          = "running"
	KeyPaused           = "paused"
	KeyCurrentSession   = "currentSession"
	KeyRemainingSeconds = "remainingSeconds"
)

// encode flattens a snapshot into persisted values.
func encode(snap Snapshot) store.Values {
	fields := map[string]any{
		KeyFocusMinutes:     snap.Settings.FocusMinutes,
		KeyBreakMinutes:     snap.Settings.BreakMinutes,
		KeyLongBreakMinutes: snap.Settings.LongBreakMinutes,
		KeySessionsPerCycle: snap.Settings.SessionsPerCycle,
		KeyAutoStart:        snap.Settings.AutoStart,
		KeyPhase:            snap.State.Phase,
		KeyRunning:          snap.State.Running,
		KeyPaused:           snap.State.Paused,
		KeyCurrentSession:   snap.State.CurrentSession,
		KeyRemainingSeconds: snap.State.RemainingSeconds,
	}

	vals := make(store.Values, len(fields))

	for k, v := range fields {
		// ints, bools and strings always marshal
		b, _ := json.Marshal(v)
		vals[k] = b
	}

	return vals
}

// decode rebuilds settings and state from persisted values. Missing or
// unreadable keys take their default value; the remaining countdown
// defaults to the full length of the loaded phase.
func decode(vals store.Values) (Settings, State) {
	set := DefaultSettings()

	read(vals, KeyFocusMinutes, &set.FocusMinutes)
	read(vals, KeyBreakMinutes, &set.BreakMinutes)
	read(vals, KeyLongBreakMinutes, &set.LongBreakMinutes)
	read(vals, KeySessionsPerCycle, &set.SessionsPerCycle)
	read(vals, KeyAutoStart, &set.AutoStart)

	set = set.Sanitize()

	st := State{
		Phase:          Focus,
		CurrentSession: 1,
	}

	read(vals, KeyPhase, &st.Phase)
	read(vals, KeyRunning, &st.Running)
	read(vals, KeyPaused, &st.Paused)
	read(vals, KeyCurrentSession, &st.CurrentSession)
	read(vals, KeyRemainingSeconds, &st.RemainingSeconds)

	return set, normalize(st, set)
}

func read[T any](vals store.Values, key string, dst *T) {
	b, ok := vals[key]
	if !ok {
		return
	}

	var v T

	if err := json.Unmarshal(b, &v); err != nil {
		return
	}

	*dst = v
}
