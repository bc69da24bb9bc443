package notify

import (
	"context"
	"log/slog"

	"github.com/ayoisaiah/pomodoro/internal/engine"
)

// Log writes one line per event.
type Log struct {
	Logger *slog.Logger
}

func (l *Log) Notify(ctx context.Context, ev engine.Event) error {
	st := ev.Snapshot.State

	attrs := []slog.Attr{
		slog.String("occasion", string(ev.Occasion)),
		slog.String("phase", string(st.Phase)),
		slog.String("state", st.RunState().String()),
		slog.Int("session", st.CurrentSession),
		slog.Int("remaining_seconds", st.RemainingSeconds),
	}

	if ev.Completed != "" {
		attrs = append(attrs, slog.String("completed", string(ev.Completed)))
	}

	l.Logger.LogAttrs(ctx, slog.LevelInfo, "timer event", attrs...)

	return nil
}
