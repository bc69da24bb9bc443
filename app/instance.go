package app

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/pomodoro/internal/command"
	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/engine"
	"github.com/ayoisaiah/pomodoro/internal/notify"
	"github.com/ayoisaiah/pomodoro/internal/pathutil"
	"github.com/ayoisaiah/pomodoro/store"
)

// sessionLister reads the history of completed phases.
type sessionLister interface {
	Sessions(ctx context.Context, since, until time.Time) ([]store.SessionRecord, error)
}

// instance owns the timer for the lifetime of the process: the database,
// the write queue in front of it, the engine, and its notification fan-out.
type instance struct {
	engine *engine.Engine
	db     *store.Client
	writer *store.Writer
	fanout *notify.Fanout
	logger *slog.Logger
}

// openInstance loads the timer from the database at dbPath. It fails with an
// error matching store.IsLocked if another process owns the timer.
func openInstance(
	ctx context.Context,
	dbPath string,
	cfg *config.Config,
	logger *slog.Logger,
	opts ...engine.Option,
) (*instance, error) {
	db, err := store.NewClient(dbPath)
	if err != nil {
		return nil, err
	}

	writer := store.NewWriter(db, func(err error) {
		logger.Error("unable to save timer state", slog.Any("error", err))
	})

	fanout := notify.NewFanout(logger, subscribers(cfg, db, logger)...)

	opts = append([]engine.Option{
		engine.WithSink(fanout),
		engine.WithLogger(logger),
	}, opts...)

	e, err := engine.Load(ctx, writer, opts...)
	if err != nil {
		fanout.Close()

		return nil, errors.Join(err, writer.Close(), db.Close())
	}

	return &instance{
		engine: e,
		db:     db,
		writer: writer,
		fanout: fanout,
		logger: logger,
	}, nil
}

// subscribers returns the notification destinations enabled by cfg.
func subscribers(
	cfg *config.Config,
	history store.History,
	logger *slog.Logger,
) []notify.Subscriber {
	subs := []notify.Subscriber{
		&notify.Log{Logger: logger},
		&notify.History{Store: history},
	}

	if cfg.Notifications.Enabled {
		// pathToIcon will be an empty string if file is not found
		pathToIcon, _ := xdg.SearchDataFile(
			filepath.Join(pathutil.Dir(), "static", "icon.png"),
		)

		subs = append(subs, notify.NewDesktop(pathToIcon))
	}

	if cfg.Notifications.Sound != "" {
		subs = append(subs, notify.NewSound(cfg.Notifications.Sound))
	}

	if cfg.Notifications.Cmd != "" {
		subs = append(subs, notify.NewHook(cfg.Notifications.Cmd))
	}

	return subs
}

func (i *instance) dispatcher() *command.Dispatcher {
	return command.NewDispatcher(i.engine, i.logger)
}

// Close stops the ticker, delivers pending notifications, flushes the last
// snapshot to disk and releases the database.
func (i *instance) Close() error {
	i.engine.Close()
	i.fanout.Close()

	return errors.Join(i.writer.Close(), i.db.Close())
}
