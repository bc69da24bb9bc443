package command

import (
	"context"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/pomodoro/internal/engine"
)

// Timer is the part of the engine the dispatcher drives.
type Timer interface {
	Snapshot() engine.Snapshot
	Start() error
	Pause() error
	Reset() error
	UpdateSettings(patch engine.SettingsPatch) error
}

// Dispatcher handles requests by calling the engine directly.
type Dispatcher struct {
	timer  Timer
	logger *slog.Logger
}

// NewDispatcher returns a Handler backed by t.
func NewDispatcher(t Timer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		timer:  t,
		logger: logger,
	}
}

// Handle performs req. A request that cannot be performed is acknowledged
// with Success set to false; the returned error is always nil.
func (d *Dispatcher) Handle(ctx context.Context, req Request) (Response, error) {
	if d.logger.Enabled(ctx, slog.LevelDebug) {
		d.logger.DebugContext(ctx, "command received", "request", spew.Sdump(req))
	}

	var err error

	switch req.Action {
	case Start:
		err = d.timer.Start()
	case Pause:
		err = d.timer.Pause()
	case Reset:
		err = d.timer.Reset()
	case UpdateSettings:
		if req.Settings == nil {
			err = errMissingSettings
			break
		}

		err = d.timer.UpdateSettings(*req.Settings)
	case Snapshot:
	default:
		err = errUnknownAction.Fmt(req.Action)
	}

	if err != nil {
		d.logger.WarnContext(
			ctx,
			"command rejected",
			slog.String("action", string(req.Action)),
			slog.Any("error", err),
		)

		return Response{Success: false, Error: err.Error()}, nil
	}

	snap := d.timer.Snapshot()

	return Response{Success: true, Snapshot: &snap}, nil
}
