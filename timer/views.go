package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/pomodoro/internal/display"
)

// percentDone reports how much of the current phase has elapsed.
func (m *Model) percentDone() float64 {
	total := m.snap.Settings.Seconds(m.snap.State.Phase)
	if total <= 0 {
		return 0
	}

	done := 1 - float64(m.snap.State.RemainingSeconds)/float64(total)

	return min(max(done, 0), 1)
}

func (m *Model) timerView() string {
	var s strings.Builder

	st := m.snap.State
	badge := display.BadgeFor(st)

	s.WriteString(badge.Render())
	s.WriteString(" ")
	s.WriteString(m.styles.Main.Render(st.Phase.Label()))
	s.WriteString(" ")
	s.WriteString(m.styles.Hint.Render(display.SessionLabel(m.snap)))

	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(display.Clock(st.RemainingSeconds)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.percentDone()))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Secondary.Render(display.Status(st)))

	return s.String()
}

func (m *Model) helpView() string {
	start := defaultKeymap.start
	start.SetHelp("s", display.StartLabel(m.snap.State))

	return m.help.ShortHelpView([]key.Binding{
		start,
		defaultKeymap.pause,
		defaultKeymap.reset,
		defaultKeymap.settings,
		defaultKeymap.quit,
	})
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	if m.loaded {
		s.WriteString(m.timerView())
	} else {
		s.WriteString(m.styles.Hint.Render("Connecting to timer..."))
	}

	if m.notice != "" {
		s.WriteString("\n\n" + m.styles.Notice.Render(m.notice))
	}

	if m.err != nil {
		s.WriteString("\n\n" + m.styles.Error.Render(m.err.Error()))
	}

	if m.form != nil {
		s.WriteString("\n\n" + m.form.View())
	} else {
		s.WriteString("\n\n" + m.helpView())
	}

	return m.styles.Base.Render(s.String())
}
