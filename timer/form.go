package timer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/pomodoro/internal/engine"
)

// settingsForm holds the raw values of the settings form.
type settingsForm struct {
	focus     string
	brk       string
	longBreak string
	sessions  string
	autoStart bool
}

func newSettingsForm(set engine.Settings) *settingsForm {
	return &settingsForm{
		focus:     strconv.Itoa(set.FocusMinutes),
		brk:       strconv.Itoa(set.BreakMinutes),
		longBreak: strconv.Itoa(set.LongBreakMinutes),
		sessions:  strconv.Itoa(set.SessionsPerCycle),
		autoStart: set.AutoStart,
	}
}

func (f *settingsForm) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Focus minutes").
				Value(&f.focus).
				Validate(validatePositive),
			huh.NewInput().
				Title("Break minutes").
				Value(&f.brk).
				Validate(validatePositive),
			huh.NewInput().
				Title("Long break minutes").
				Value(&f.longBreak).
				Validate(validatePositive),
			huh.NewInput().
				Title("Sessions before a long break").
				Value(&f.sessions).
				Validate(validatePositive),
			huh.NewConfirm().
				Title("Start the next phase automatically?").
				Value(&f.autoStart),
		),
	).WithShowHelp(true)
}

// patch converts the form values into a settings patch. Values are assumed
// to have passed validatePositive.
func (f *settingsForm) patch() engine.SettingsPatch {
	atoi := func(s string) *int {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil
		}

		return &n
	}

	autoStart := f.autoStart

	return engine.SettingsPatch{
		FocusMinutes:     atoi(f.focus),
		BreakMinutes:     atoi(f.brk),
		LongBreakMinutes: atoi(f.longBreak),
		SessionsPerCycle: atoi(f.sessions),
		AutoStart:        &autoStart,
	}
}

func validatePositive(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errNotPositive
	}

	return nil
}
