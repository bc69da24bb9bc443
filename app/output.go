package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomodoro/internal/display"
	"github.com/ayoisaiah/pomodoro/internal/engine"
	"github.com/ayoisaiah/pomodoro/internal/ui"
	"github.com/ayoisaiah/pomodoro/store"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
)

// printStatus writes the status of the timer to w.
func printStatus(w io.Writer, snap engine.Snapshot, asJSON bool) error {
	if asJSON {
		return printJSON(w, snap)
	}

	_, err := fmt.Fprint(w, display.Report(snap))

	return err
}

func phaseText(p engine.Phase) string {
	switch p {
	case engine.Focus:
		return ui.Green(p.Label())
	case engine.ShortBreak:
		return ui.Cyan(p.Label())
	case engine.LongBreak:
		return ui.Magenta(p.Label())
	}

	return string(p)
}

// printHistory prints a table of completed phases followed by the total
// focus time.
func printHistory(w io.Writer, records []store.SessionRecord) error {
	if len(records) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	header := []string{"#", "COMPLETED", "PHASE", "SESSION", "MINUTES"}
	rows := make([][]string, 0, len(records))

	var focusMinutes, focusCount int

	for i, rec := range records {
		phase := engine.Phase(rec.Phase)

		if phase == engine.Focus {
			focusMinutes += rec.Minutes
			focusCount++
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			rec.CompletedAt.Local().Format("Jan 02, 2006 03:04 PM"),
			phaseText(phase),
			strconv.Itoa(rec.Session),
			strconv.Itoa(rec.Minutes),
		})
	}

	err := ui.PrintTable(w, header, rows)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		w,
		"%s focus sessions, %s minutes of focus\n",
		ui.Highlight(focusCount),
		ui.Highlight(focusMinutes),
	)

	return err
}
