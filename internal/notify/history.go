package notify

import (
	"context"

	"github.com/ayoisaiah/pomodoro/internal/engine"
	"github.com/ayoisaiah/pomodoro/store"
)

// History records every completed phase.
type History struct {
	Store store.History
}

func (h *History) Notify(ctx context.Context, ev engine.Event) error {
	if ev.Completed == "" {
		return nil
	}

	rec := store.SessionRecord{
		CompletedAt: ev.At,
		Phase:       string(ev.Completed),
		Session:     ev.Session,
		Minutes:     ev.Snapshot.Settings.Minutes(ev.Completed),
	}

	err := h.Store.AppendSession(ctx, rec)
	if err != nil {
		return errRecordSession.Fmt(ev.Completed.Label()).Wrap(err)
	}

	return nil
}
