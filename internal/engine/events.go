package engine

import "time"

// Occasion identifies why an event was emitted.
type Occasion string

const (
	Started         Occasion = "started"
	Paused          Occasion = "paused"
	Reset           Occasion = "reset"
	BreakStarted    Occasion = "breakStarted"
	BreakPending    Occasion = "breakPending"
	BreakFinished   Occasion = "breakFinished"
	FocusStarted    Occasion = "focusStarted"
	FocusPending    Occasion = "focusPending"
	CycleCompleted  Occasion = "cycleCompleted"
	SettingsUpdated Occasion = "settingsUpdated"
)

// PhaseCompleted reports whether the occasion marks the end of a countdown.
func (o Occasion) PhaseCompleted() bool {
	switch o {
	case BreakStarted, BreakPending, BreakFinished:
		return true
	}

	return false
}

// Event is emitted after every transition.
type Event struct {
	At       time.Time `json:"at"`
	Occasion Occasion  `json:"occasion"`
	// Completed is the phase whose countdown ran out, if any.
	Completed Phase `json:"completed,omitempty"`
	// Session is the session number the completed phase belonged to.
	Session  int      `json:"session,omitempty"`
	Snapshot Snapshot `json:"snapshot"`
}

// Sink receives the engine's events. Emit is called with the engine locked,
// so implementations must not block or call back into the engine.
type Sink interface {
	Emit(ev Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ev Event)

func (f SinkFunc) Emit(ev Event) {
	f(ev)
}

type nopSink struct{}

func (nopSink) Emit(Event) {}
