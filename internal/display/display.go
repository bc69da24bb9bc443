// Package display projects the timer state into the text shown to users:
// the countdown, the session counter, the status line and the badge.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomodoro/internal/engine"
	"github.com/ayoisaiah/pomodoro/internal/timeutil"
)

// Category groups states that share a badge colour.
type Category string

const (
	CategoryFocus  Category = "focus"
	CategoryBreak  Category = "break"
	CategoryPaused Category = "paused"
	CategoryIdle   Category = "idle"
)

// Colors maps each category to its badge colour.
var Colors = map[Category]lipgloss.Color{
	CategoryFocus:  lipgloss.Color("#3B82F6"),
	CategoryBreak:  lipgloss.Color("#22C55E"),
	CategoryPaused: lipgloss.Color("#EAB308"),
	CategoryIdle:   lipgloss.Color("#6B7280"),
}

const (
	glyphPaused = "⏸"
	glyphIdle   = "▶"
)

// Clock formats a number of seconds as MM:SS.
func Clock(seconds int) string {
	m, s := timeutil.SecsToMinsAndSecs(float64(seconds))

	return fmt.Sprintf("%02d:%02d", m, s)
}

// SessionLabel returns "Session N of M".
func SessionLabel(snap engine.Snapshot) string {
	return fmt.Sprintf(
		"Session %d of %d",
		snap.State.CurrentSession,
		snap.Settings.SessionsPerCycle,
	)
}

// Status describes what the timer is doing.
func Status(st engine.State) string {
	switch st.RunState() {
	case engine.StateRunning:
		switch st.Phase {
		case engine.ShortBreak:
			return "☕ Short Break - Relax a bit!"
		case engine.LongBreak:
			return "🌟 Long Break - Well deserved!"
		default:
			return "🎯 Focus Time - Stay concentrated!"
		}
	case engine.StatePaused:
		return "⏸️ Paused"
	default:
		return "▶️ Ready to start"
	}
}

// StartLabel is the label of the start control for the given state.
func StartLabel(st engine.State) string {
	switch st.RunState() {
	case engine.StateRunning:
		return "running..."
	case engine.StatePaused:
		return "resume"
	default:
		return "start"
	}
}

// CategoryOf classifies a state for colouring.
func CategoryOf(st engine.State) Category {
	switch st.RunState() {
	case engine.StateRunning:
		if st.Phase.IsBreak() {
			return CategoryBreak
		}

		return CategoryFocus
	case engine.StatePaused:
		return CategoryPaused
	default:
		return CategoryIdle
	}
}

// Badge is the short indicator shown next to the timer.
type Badge struct {
	Text     string
	Category Category
}

// BadgeFor derives the badge from the state. It is never stored.
func BadgeFor(st engine.State) Badge {
	b := Badge{Category: CategoryOf(st)}

	switch b.Category {
	case CategoryPaused:
		b.Text = glyphPaused
	case CategoryIdle:
		b.Text = glyphIdle
	default:
		b.Text = Clock(st.RemainingSeconds)
	}

	return b
}

// Color returns the badge colour.
func (b Badge) Color() lipgloss.Color {
	return Colors[b.Category]
}

// Render draws the badge as a coloured label.
func (b Badge) Render() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(b.Color()).
		Padding(0, 1).
		Render(b.Text)
}

// Report is the plain text summary printed by the status command.
func Report(snap engine.Snapshot) string {
	var s strings.Builder

	fmt.Fprintf(&s, "%s  %s\n", Clock(snap.State.RemainingSeconds), snap.State.Phase.Label())
	fmt.Fprintln(&s, SessionLabel(snap))
	fmt.Fprintln(&s, Status(snap.State))

	auto := "off"
	if snap.Settings.AutoStart {
		auto = "on"
	}

	fmt.Fprintf(
		&s,
		"focus %dm · break %dm · long break %dm · auto-start %s\n",
		snap.Settings.FocusMinutes,
		snap.Settings.BreakMinutes,
		snap.Settings.LongBreakMinutes,
		auto,
	)

	return s.String()
}
