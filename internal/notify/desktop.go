package notify

import (
	"context"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/pomodoro/internal/engine"
)

// Desktop shows a system notification for each transition. A finished break
// is always followed by an event whose message opens with "Break finished",
// so it shares that notification. The reset that closes a completed cycle is
// covered by the cycle notification.
type Desktop struct {
	Icon string

	notify     func(title, message, appIcon string) error
	afterCycle bool
}

// NewDesktop returns a Desktop subscriber. icon may be empty.
func NewDesktop(icon string) *Desktop {
	return &Desktop{
		Icon:   icon,
		notify: beeep.Notify,
	}
}

func (d *Desktop) Notify(_ context.Context, ev engine.Event) error {
	switch ev.Occasion {
	case engine.BreakFinished:
		return nil
	case engine.Reset:
		if d.afterCycle {
			d.afterCycle = false
			return nil
		}
	}

	d.afterCycle = ev.Occasion == engine.CycleCompleted

	title, body := Message(ev)

	err := d.notify(title, body, d.Icon)
	if err != nil {
		return errDesktopNotify.Wrap(err)
	}

	return nil
}
