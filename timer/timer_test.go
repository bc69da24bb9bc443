package timer

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomodoro/internal/command"
	"github.com/ayoisaiah/pomodoro/internal/engine"
)

func newTestModel(t *testing.T) (*Model, *engine.Engine, *engine.ManualTicker) {
	t.Helper()

	ticker := &engine.ManualTicker{}

	e := engine.New(
		engine.DefaultSettings(),
		engine.State{Phase: engine.Focus, CurrentSession: 1},
		engine.WithTicker(ticker),
	)

	m := New(command.NewDispatcher(e, nil))

	// load the first snapshot
	m.Update(m.send(command.Snapshot)())

	return m, e, ticker
}

func press(m *Model, r rune) {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	if cmd != nil {
		m.Update(cmd())
	}
}

func TestInitialView(t *testing.T) {
	m, _, _ := newTestModel(t)

	require.True(t, m.loaded)

	view := m.View()
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "Session 1 of 4")
	assert.Contains(t, view, "Focus session")
	assert.Contains(t, view, "▶️ Ready to start")
	assert.Contains(t, view, "start")
}

func TestKeysDriveTheTimer(t *testing.T) {
	m, e, ticker := newTestModel(t)

	press(m, 's')
	assert.True(t, e.Snapshot().State.Running)
	assert.True(t, m.snap.State.Running)
	assert.Contains(t, m.View(), "🎯 Focus Time - Stay concentrated!")
	assert.Contains(t, m.View(), "running...")

	ticker.Advance(90)

	press(m, 'p')
	assert.Equal(t, engine.StatePaused, m.snap.State.RunState())
	assert.Contains(t, m.View(), "23:30")
	assert.Contains(t, m.View(), "⏸️ Paused")
	assert.Contains(t, m.View(), "resume")
	assert.InDelta(t, 90.0/1500.0, m.percentDone(), 1e-9)

	press(m, 'r')
	assert.Equal(t, engine.StateIdle, m.snap.State.RunState())
	assert.Equal(t, 1500, m.snap.State.RemainingSeconds)
	assert.Zero(t, m.percentDone())
}

func TestPollRefreshesSnapshot(t *testing.T) {
	m, e, ticker := newTestModel(t)

	require.NoError(t, e.Start())
	ticker.Advance(60)

	_, cmd := m.Update(pollMsg{})
	require.NotNil(t, cmd)

	// the poll result is delivered as part of a batch
	m.Update(m.send(command.Snapshot)())

	assert.Equal(t, 1440, m.snap.State.RemainingSeconds)
	assert.Contains(t, m.View(), "24:00")
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, m.View())
}

type failingHandler struct{}

func (failingHandler) Handle(context.Context, command.Request) (command.Response, error) {
	return command.Response{}, errors.New("connection refused")
}

func TestHandlerErrorIsShown(t *testing.T) {
	m := New(failingHandler{})

	m.Update(m.send(command.Snapshot)())

	assert.False(t, m.loaded)
	assert.Contains(t, m.View(), "connection refused")
	assert.Contains(t, m.View(), "Connecting to timer...")
}

func TestRejectedRequest(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(m.send(command.Action("nap"))())

	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, errRejected)
	assert.Contains(t, m.View(), `unknown action "nap"`)
}

func TestSettingsFormOpensAndAborts(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{','}})
	assert.NotNil(t, cmd)
	require.NotNil(t, m.form)
	assert.Equal(t, "25", m.values.focus)

	m.form.State = huh.StateAborted
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.form)
}

func TestSettingsFormSubmits(t *testing.T) {
	m, e, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{','}})
	require.NotNil(t, m.form)

	m.values.focus = "50"
	m.values.sessions = "2"
	m.values.autoStart = true
	m.form.State = huh.StateCompleted

	_, cmd := m.updateForm(nil)
	require.NotNil(t, cmd)
	assert.Nil(t, m.form)

	_, tick := m.Update(cmd())
	require.NotNil(t, tick)
	assert.Contains(t, m.View(), "Settings saved successfully!")

	want := engine.Settings{
		FocusMinutes:     50,
		BreakMinutes:     5,
		LongBreakMinutes: 15,
		SessionsPerCycle: 2,
		AutoStart:        true,
	}

	assert.Equal(t, want, e.Snapshot().Settings)
	assert.Equal(t, want, m.snap.Settings)
	assert.Equal(t, 3000, m.snap.State.RemainingSeconds)

	m.Update(clearNoticeMsg(m.noticeID))
	assert.NotContains(t, m.View(), "Settings saved successfully!")
}

func TestStaleNoticeClearIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.showNotice("first")
	m.showNotice("second")

	m.Update(clearNoticeMsg(1))
	assert.Equal(t, "second", m.notice)

	m.Update(clearNoticeMsg(2))
	assert.Empty(t, m.notice)
}

func TestValidatePositive(t *testing.T) {
	for _, ok := range []string{"1", "25", " 7 "} {
		assert.NoError(t, validatePositive(ok), ok)
	}

	for _, bad := range []string{"", "0", "-3", "2.5", "ten"} {
		assert.ErrorIs(t, validatePositive(bad), errNotPositive, bad)
	}
}

func TestSettingsPatch(t *testing.T) {
	f := newSettingsForm(engine.DefaultSettings())
	f.brk = " 10 "

	p := f.patch()

	require.NotNil(t, p.FocusMinutes)
	require.NotNil(t, p.BreakMinutes)
	require.NotNil(t, p.AutoStart)
	assert.Equal(t, 25, *p.FocusMinutes)
	assert.Equal(t, 10, *p.BreakMinutes)
	assert.False(t, *p.AutoStart)
}
