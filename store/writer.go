package store

import (
	"context"
	"maps"
	"sync"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
)

var errWriterClosed = &apperr.Error{
	Message: "state writer is closed",
}

// Writer serialises writes to a KV through a single goroutine. Save never
// blocks on the underlying store: queued values are merged per key so the
// store always ends up with the most recent value of every key.
type Writer struct {
	kv      KV
	onError func(error)

	mu      sync.Mutex
	pending Values
	closed  bool

	signal chan struct{}
	quit   chan struct{}
	done   chan struct{}
}

// NewWriter starts a writer for kv. onError, if not nil, receives failed
// writes.
func NewWriter(kv KV, onError func(error)) *Writer {
	w := &Writer{
		kv:      kv,
		onError: onError,
		signal:  make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go w.loop()

	return w
}

// Load reads through to the underlying store.
func (w *Writer) Load(ctx context.Context) (Values, error) {
	return w.kv.Load(ctx)
}

// Save queues vals and returns immediately.
func (w *Writer) Save(_ context.Context, vals Values) error {
	w.mu.Lock()

	if w.closed {
		w.mu.Unlock()

		return errWriterClosed
	}

	if w.pending == nil {
		w.pending = make(Values, len(vals))
	}

	maps.Copy(w.pending, vals)

	w.mu.Unlock()

	select {
	case w.signal <- struct{}{}:
	default:
	}

	return nil
}

// Close flushes queued values and stops the writer.
func (w *Writer) Close() error {
	w.mu.Lock()

	if w.closed {
		w.mu.Unlock()

		return nil
	}

	w.closed = true

	w.mu.Unlock()

	close(w.quit)
	<-w.done

	return nil
}

func (w *Writer) loop() {
	defer close(w.done)

	for {
		select {
		case <-w.signal:
			w.flush()
		case <-w.quit:
			w.flush()

			return
		}
	}
}

func (w *Writer) flush() {
	w.mu.Lock()
	vals := w.pending
	w.pending = nil
	w.mu.Unlock()

	if len(vals) == 0 {
		return
	}

	err := w.kv.Save(context.Background(), vals)
	if err != nil && w.onError != nil {
		w.onError(err)
	}
}
