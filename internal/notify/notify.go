// Package notify delivers timer events to the desktop, the speaker, a user
// supplied command, the session history and the log. Each destination is a
// Subscriber behind a Fanout, which is the engine's event sink.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/pomodoro/internal/engine"
)

// DefaultBuffer is the number of events queued per subscriber before new
// events are dropped. A single transition emits at most three events and a
// slow subscriber such as Sound only acts on the first of them, so the
// default holds several transitions while a clip is still playing.
const DefaultBuffer = 16

// DefaultCloseGrace is how long Close waits for queued events to be
// delivered before cancelling the subscribers still running.
const DefaultCloseGrace = 3 * time.Second

// Subscriber handles one event at a time. Events are delivered in the order
// they were emitted.
type Subscriber interface {
	Notify(ctx context.Context, ev engine.Event) error
}

// SubscriberFunc adapts a function to a Subscriber.
type SubscriberFunc func(ctx context.Context, ev engine.Event) error

func (f SubscriberFunc) Notify(ctx context.Context, ev engine.Event) error {
	return f(ctx, ev)
}

// Fanout copies every event onto a buffered queue per subscriber. Emit never
// blocks: when a queue is full the event is dropped for that subscriber.
type Fanout struct {
	mu     sync.RWMutex
	closed bool
	queues []chan engine.Event

	wg     sync.WaitGroup
	cancel context.CancelFunc
	grace  time.Duration
	logger *slog.Logger
}

// NewFanout starts one delivery goroutine per subscriber.
func NewFanout(logger *slog.Logger, subs ...Subscriber) *Fanout {
	return NewFanoutSize(logger, DefaultBuffer, subs...)
}

// NewFanoutSize is NewFanout with a custom queue size.
func NewFanoutSize(logger *slog.Logger, size int, subs ...Subscriber) *Fanout {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	f := &Fanout{
		cancel: cancel,
		grace:  DefaultCloseGrace,
		logger: logger,
	}

	for _, s := range subs {
		q := make(chan engine.Event, max(size, 1))
		f.queues = append(f.queues, q)

		f.wg.Add(1)

		go f.deliver(ctx, s, q)
	}

	return f
}

func (f *Fanout) deliver(
	ctx context.Context,
	s Subscriber,
	q <-chan engine.Event,
) {
	defer f.wg.Done()

	for ev := range q {
		err := s.Notify(ctx, ev)
		if err != nil {
			f.logger.Error(
				"notification failed",
				slog.String("occasion", string(ev.Occasion)),
				slog.Any("error", err),
			)
		}
	}
}

// Emit implements engine.Sink. Events are never skipped while a queue has
// room; a subscriber that falls more than its buffer behind loses the
// overflow rather than stalling the engine, and the loss is logged.
func (f *Fanout) Emit(ev engine.Event) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return
	}

	for i, q := range f.queues {
		select {
		case q <- ev:
		default:
			f.logger.Warn(
				"notification dropped",
				slog.Int("subscriber", i),
				slog.String("occasion", string(ev.Occasion)),
			)
		}
	}
}

// Close stops accepting events and waits for the queued ones to be
// delivered. Subscribers still busy after the grace period have their
// context cancelled. It is safe to call more than once.
func (f *Fanout) Close() {
	f.mu.Lock()

	if f.closed {
		f.mu.Unlock()
		return
	}

	f.closed = true

	for _, q := range f.queues {
		close(q)
	}

	f.mu.Unlock()

	done := make(chan struct{})

	go func() {
		f.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(f.grace)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		f.logger.Warn(
			"cancelling notifications still in progress",
			slog.Duration("grace", f.grace),
		)
	}

	f.cancel()
	<-done
}
