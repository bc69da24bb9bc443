package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete(t *testing.T) {
	set := DefaultSettings()
	auto := set
	auto.AutoStart = true

	cases := []struct {
		name      string
		in        State
		settings  Settings
		want      State
		occasions []Occasion
	}{
		{
			name:      "focus to short break",
			in:        State{Phase: Focus, Running: true, CurrentSession: 1},
			settings:  set,
			want:      State{Phase: ShortBreak, CurrentSession: 1, RemainingSeconds: 300},
			occasions: []Occasion{BreakPending},
		},
		{
			name:      "last focus to long break with auto start",
			in:        State{Phase: Focus, Running: true, CurrentSession: 4},
			settings:  auto,
			want:      State{Phase: LongBreak, Running: true, CurrentSession: 4, RemainingSeconds: 900},
			occasions: []Occasion{BreakStarted},
		},
		{
			name:      "short break to next focus",
			in:        State{Phase: ShortBreak, Running: true, CurrentSession: 2},
			settings:  set,
			want:      State{Phase: Focus, CurrentSession: 3, RemainingSeconds: 1500},
			occasions: []Occasion{BreakFinished, FocusPending},
		},
		{
			name:      "short break to next focus with auto start",
			in:        State{Phase: ShortBreak, Running: true, CurrentSession: 1},
			settings:  auto,
			want:      State{Phase: Focus, Running: true, CurrentSession: 2, RemainingSeconds: 1500},
			occasions: []Occasion{BreakFinished, FocusStarted},
		},
		{
			name:      "long break completes the cycle",
			in:        State{Phase: LongBreak, Running: true, CurrentSession: 4},
			settings:  auto,
			want:      State{Phase: Focus, CurrentSession: 1, RemainingSeconds: 1500},
			occasions: []Occasion{BreakFinished, CycleCompleted, Reset},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, occasions := complete(tc.in, tc.settings)

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.occasions, occasions)
		})
	}
}

func TestApplySettings(t *testing.T) {
	set := DefaultSettings()

	shorter := set
	shorter.FocusMinutes = 4

	longer := set
	longer.FocusMinutes = 10

	running := State{Phase: Focus, Running: true, CurrentSession: 1, RemainingSeconds: 300}
	paused := State{Phase: Focus, Paused: true, CurrentSession: 1, RemainingSeconds: 300}

	assert.Equal(t, 300, applySettings(running, shorter).RemainingSeconds)
	assert.Equal(t, 600, applySettings(running, longer).RemainingSeconds)
	assert.Equal(t, 240, applySettings(paused, shorter).RemainingSeconds)
	assert.Equal(t, 600, applySettings(paused, longer).RemainingSeconds)
}

func TestNormalize(t *testing.T) {
	set := DefaultSettings()

	got := normalize(State{
		Phase:          "nap",
		Running:        true,
		Paused:         true,
		CurrentSession: 9,
	}, set)

	assert.Equal(t, State{
		Phase:            Focus,
		Running:          true,
		CurrentSession:   4,
		RemainingSeconds: 1500,
	}, got)

	got = normalize(State{Phase: ShortBreak, CurrentSession: 0, RemainingSeconds: 42}, set)
	assert.Equal(t, 1, got.CurrentSession)
	assert.Equal(t, 42, got.RemainingSeconds)
}

func TestSettingsApply(t *testing.T) {
	got := DefaultSettings().Apply(SettingsPatch{
		BreakMinutes: intPtr(7),
		AutoStart:    boolPtr(true),
	})

	assert.Equal(t, Settings{
		FocusMinutes:     25,
		BreakMinutes:     7,
		LongBreakMinutes: 15,
		SessionsPerCycle: 4,
		AutoStart:        true,
	}, got)

	assert.True(t, SettingsPatch{}.Empty())
	assert.False(t, SettingsPatch{AutoStart: boolPtr(false)}.Empty())
}
