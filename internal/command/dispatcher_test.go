package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomodoro/internal/engine"
)

func newEngine(t *testing.T) (*engine.Engine, *engine.ManualTicker) {
	t.Helper()

	ticker := &engine.ManualTicker{}

	e := engine.New(
		engine.DefaultSettings(),
		engine.State{Phase: engine.Focus, CurrentSession: 1},
		engine.WithTicker(ticker),
	)

	return e, ticker
}

func intPtr(n int) *int {
	return &n
}

func TestDispatcherActions(t *testing.T) {
	e, ticker := newEngine(t)
	d := NewDispatcher(e, nil)
	ctx := context.Background()

	resp, err := Do(ctx, d, Start)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.True(t, resp.Snapshot.State.Running)
	assert.True(t, ticker.Armed())

	ticker.Advance(100)

	resp, err = Do(ctx, d, Pause)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.True(t, resp.Snapshot.State.Paused)
	assert.Equal(t, 1400, resp.Snapshot.State.RemainingSeconds)

	resp, err = d.Handle(ctx, Request{
		Action:   UpdateSettings,
		Settings: &engine.SettingsPatch{FocusMinutes: intPtr(10)},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, 10, resp.Snapshot.Settings.FocusMinutes)
	assert.Equal(t, 600, resp.Snapshot.State.RemainingSeconds)

	resp, err = Do(ctx, d, Reset)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, engine.State{
		Phase:            engine.Focus,
		CurrentSession:   1,
		RemainingSeconds: 600,
	}, resp.Snapshot.State)

	snap, err := Fetch(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, *resp.Snapshot, snap)
}

func TestDispatcherRejects(t *testing.T) {
	e, _ := newEngine(t)
	d := NewDispatcher(e, nil)
	ctx := context.Background()

	resp, err := Do(ctx, d, Action("explode"))
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, `unknown action "explode"`, resp.Error)
	assert.Nil(t, resp.Snapshot)

	resp, err = Do(ctx, d, UpdateSettings)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, errMissingSettings.Error(), resp.Error)

	assert.Equal(t, engine.DefaultSettings(), e.Snapshot().Settings)
}
