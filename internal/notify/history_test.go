package notify

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomodoro/internal/engine"
	"github.com/ayoisaiah/pomodoro/store"
)

func TestHistoryRecordsCompletedPhases(t *testing.T) {
	mem := store.NewMemory(nil)
	h := &History{Store: mem}

	ctx := context.Background()

	started := event(engine.Started, engine.State{Phase: engine.Focus})
	require.NoError(t, h.Notify(ctx, started))

	focusDone := event(engine.BreakPending, engine.State{
		Phase:          engine.ShortBreak,
		CurrentSession: 1,
	})
	focusDone.Completed = engine.Focus
	focusDone.Session = 1

	breakDone := event(engine.BreakFinished, engine.State{
		Phase:          engine.Focus,
		CurrentSession: 2,
	})
	breakDone.At = breakDone.At.Add(5 * time.Minute)
	breakDone.Completed = engine.ShortBreak
	breakDone.Session = 1

	require.NoError(t, h.Notify(ctx, focusDone))
	require.NoError(t, h.Notify(ctx, breakDone))

	got, err := mem.Sessions(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)

	want := []store.SessionRecord{
		{
			CompletedAt: focusDone.At,
			Phase:       "focus",
			Session:     1,
			Minutes:     25,
		},
		{
			CompletedAt: breakDone.At,
			Phase:       "shortBreak",
			Session:     1,
			Minutes:     5,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sessions mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryWrapsStoreErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := &History{Store: store.NewMemory(nil)}

	ev := event(engine.BreakStarted, engine.State{Phase: engine.ShortBreak})
	ev.Completed = engine.Focus

	err := h.Notify(ctx, ev)
	assert.ErrorIs(t, err, errRecordSession)
	assert.ErrorIs(t, err, context.Canceled)
}
