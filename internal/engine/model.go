package engine

import "fmt"

// Phase is the kind of interval being timed.
type Phase string

const (
	Focus      Phase = "focus"
	ShortBreak Phase = "shortBreak"
	LongBreak  Phase = "longBreak"
)

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case Focus, ShortBreak, LongBreak:
		return true
	}

	return false
}

// IsBreak reports whether p is a short or long break.
func (p Phase) IsBreak() bool {
	return p == ShortBreak || p == LongBreak
}

// Label is the human readable phase name.
func (p Phase) Label() string {
	switch p {
	case Focus:
		return "Focus session"
	case ShortBreak:
		return "Short break"
	case LongBreak:
		return "Long break"
	}

	return string(p)
}

// Settings are the user configured durations and cycle length.
type Settings struct {
	FocusMinutes     int  `json:"focusMinutes"`
	BreakMinutes     int  `json:"breakMinutes"`
	LongBreakMinutes int  `json:"longBreakMinutes"`
	SessionsPerCycle int  `json:"sessionsPerCycle"`
	AutoStart        bool `json:"autoStart"`
}

// DefaultSettings returns the settings used for keys that were never saved.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:     25,
		BreakMinutes:     5,
		LongBreakMinutes: 15,
		SessionsPerCycle: 4,
		AutoStart:        false,
	}
}

// Sanitize clamps every duration and the cycle length to at least one so
// that no phase can have a zero length countdown.
func (s Settings) Sanitize() Settings {
	s.FocusMinutes = max(s.FocusMinutes, 1)
	s.BreakMinutes = max(s.BreakMinutes, 1)
	s.LongBreakMinutes = max(s.LongBreakMinutes, 1)
	s.SessionsPerCycle = max(s.SessionsPerCycle, 1)

	return s
}

// Minutes returns the configured length of phase p in minutes.
func (s Settings) Minutes(p Phase) int {
	switch p {
	case ShortBreak:
		return s.BreakMinutes
	case LongBreak:
		return s.LongBreakMinutes
	default:
		return s.FocusMinutes
	}
}

// Seconds returns the configured length of phase p in seconds.
func (s Settings) Seconds(p Phase) int {
	return s.Minutes(p) * 60
}

// BreakAfter returns the break that follows the given focus session.
func (s Settings) BreakAfter(session int) Phase {
	if session%s.SessionsPerCycle == 0 {
		return LongBreak
	}

	return ShortBreak
}

// SettingsPatch is a partial settings update. Nil fields keep their
// current value.
type SettingsPatch struct {
	FocusMinutes     *int  `json:"focusMinutes,omitempty"`
	BreakMinutes     *int  `json:"breakMinutes,omitempty"`
	LongBreakMinutes *int  `json:"longBreakMinutes,omitempty"`
	SessionsPerCycle *int  `json:"sessionsPerCycle,omitempty"`
	AutoStart        *bool `json:"autoStart,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p SettingsPatch) Empty() bool {
	return p.FocusMinutes == nil &&
		p.BreakMinutes == nil &&
		p.LongBreakMinutes == nil &&
		p.SessionsPerCycle == nil &&
		p.AutoStart == nil
}

// Apply merges p into s.
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.FocusMinutes != nil {
		s.FocusMinutes = *p.FocusMinutes
	}

	if p.BreakMinutes != nil {
		s.BreakMinutes = *p.BreakMinutes
	}

	if p.LongBreakMinutes != nil {
		s.LongBreakMinutes = *p.LongBreakMinutes
	}

	if p.SessionsPerCycle != nil {
		s.SessionsPerCycle = *p.SessionsPerCycle
	}

	if p.AutoStart != nil {
		s.AutoStart = *p.AutoStart
	}

	return s
}

// RunState is the run state of the timer, orthogonal to its phase.
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
	StatePaused
)

func (r RunState) String() string {
	switch r {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// State is the mutable timer state owned by the engine.
type State struct {
	Phase            Phase `json:"phase"`
	Running          bool  `json:"running"`
	Paused           bool  `json:"paused"`
	CurrentSession   int   `json:"currentSession"`
	RemainingSeconds int   `json:"remainingSeconds"`
}

// RunState derives the run state from the running and paused flags.
func (s State) RunState() RunState {
	switch {
	case s.Running:
		return StateRunning
	case s.Paused:
		return StatePaused
	default:
		return StateIdle
	}
}

func (s State) String() string {
	return fmt.Sprintf(
		"%s %d %s %ds",
		s.Phase,
		s.CurrentSession,
		s.RunState(),
		s.RemainingSeconds,
	)
}

// Snapshot is a copy of the engine's state and settings.
type Snapshot struct {
	State    State    `json:"state"`
	Settings Settings `json:"settings"`
}
