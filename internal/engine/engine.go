// Package engine runs the Pomodoro phase state machine. It counts down the
// current phase once per tick, decides when a focus session ends, which break
// follows it, whether the next phase starts on its own, and when a cycle of
// sessions is complete. Every transition is persisted and announced as an
// Event.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
	"github.com/ayoisaiah/pomodoro/store"
)

// DefaultTickPeriod is the time unit the countdown is expressed in.
const DefaultTickPeriod = time.Second

var errLoadState = &apperr.Error{
	Message: "unable to load timer state",
}

// Engine owns the timer state. Commands and ticks are serialised: each runs
// to completion before the next one starts.
type Engine struct {
	mu sync.Mutex

	settings Settings
	state    State

	// generation is bumped whenever the ticker is armed or disarmed so that
	// a callback from an earlier arming is ignored.
	generation uint64

	store  store.KV
	sink   Sink
	ticker Ticker
	period time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore persists the state to kv after every transition.
func WithStore(kv store.KV) Option {
	return func(e *Engine) {
		e.store = kv
	}
}

// WithSink sends every event to s.
func WithSink(s Sink) Option {
	return func(e *Engine) {
		e.sink = s
	}
}

// WithTicker replaces the wall clock ticker.
func WithTicker(t Ticker) Option {
	return func(e *Engine) {
		e.ticker = t
	}
}

// WithTickPeriod changes how often the countdown is decremented.
func WithTickPeriod(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.period = d
		}
	}
}

// WithLogger sets the logger used for transition logs.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithClock sets the function used to timestamp events.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine that takes ownership of the given settings and state.
// Both are sanitised first. If the state says the timer is running, the
// ticker is armed straight away so that the countdown carries on.
func New(settings Settings, state State, opts ...Option) *Engine {
	settings = settings.Sanitize()

	e := &Engine{
		settings: settings,
		state:    normalize(state, settings),
		store:    store.NewMemory(nil),
		sink:     nopSink{},
		ticker:   NewClockTicker(),
		period:   DefaultTickPeriod,
		logger:   slog.Default(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Running {
		e.armLocked()
	}

	return e
}

// Load reads the persisted state from kv, using defaults for missing keys,
// and returns an engine that persists back to kv.
func Load(ctx context.Context, kv store.KV, opts ...Option) (*Engine, error) {
	vals, err := kv.Load(ctx)
	if err != nil {
		return nil, errLoadState.Wrap(err)
	}

	settings, state := decode(vals)

	opts = append([]Option{WithStore(kv)}, opts...)

	return New(settings, state, opts...), nil
}

// Snapshot returns a copy of the current state and settings.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked()
}

// Start begins or resumes the countdown. It does nothing if the timer is
// already running.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Running {
		return nil
	}

	e.state.Running = true
	e.state.Paused = false

	e.armLocked()
	e.commitLocked("", 0, Started)

	return nil
}

// Pause suspends a running countdown. It does nothing unless the timer is
// running.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Running {
		return nil
	}

	e.state.Running = false
	e.state.Paused = true

	e.disarmLocked()
	e.commitLocked("", 0, Paused)

	return nil
}

// Reset stops the timer and returns to the first focus session.
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.disarmLocked()
	e.state = resetState(e.settings)
	e.commitLocked("", 0, Reset)

	return nil
}

// UpdateSettings merges patch into the current settings and adjusts the
// countdown of the current phase.
func (e *Engine) UpdateSettings(patch SettingsPatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.settings = e.settings.Apply(patch).Sanitize()
	e.state = applySettings(e.state, e.settings)

	e.commitLocked("", 0, SettingsUpdated)

	return nil
}

// Tick decrements the countdown by one unit and completes the phase when it
// reaches zero. It does nothing unless the timer is running.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tickLocked()
}

// Close stops the ticker. The state is left untouched so that a running
// timer resumes when it is loaded again.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.disarmLocked()
}

func (e *Engine) tickFrom(generation uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if generation != e.generation {
		e.logger.Debug("stale tick ignored", "generation", generation)

		return
	}

	e.tickLocked()
}

func (e *Engine) tickLocked() {
	if !e.state.Running {
		return
	}

	e.state.RemainingSeconds--

	if e.state.RemainingSeconds > 0 {
		e.persistLocked()

		return
	}

	completed, session := e.state.Phase, e.state.CurrentSession

	var occasions []Occasion

	e.state, occasions = complete(e.state, e.settings)

	if e.state.Running {
		e.armLocked()
	} else {
		e.disarmLocked()
	}

	e.commitLocked(completed, session, occasions...)
}

func (e *Engine) armLocked() {
	e.ticker.Disarm()

	e.generation++
	generation := e.generation

	e.ticker.Arm(e.period, func() {
		e.tickFrom(generation)
	})
}

func (e *Engine) disarmLocked() {
	e.ticker.Disarm()

	e.generation++
}

// commitLocked persists the current snapshot and then emits one event per
// occasion. Only the first occasion carries the completed phase.
func (e *Engine) commitLocked(completed Phase, session int, occasions ...Occasion) {
	e.persistLocked()

	snap := e.snapshotLocked()
	at := e.now()

	for i, o := range occasions {
		ev := Event{
			At:       at,
			Occasion: o,
			Snapshot: snap,
		}

		if i == 0 {
			ev.Completed = completed
			ev.Session = session
		}

		e.logger.Debug(
			"timer transition",
			slog.String("occasion", string(o)),
			slog.String("state", snap.State.String()),
		)

		e.sink.Emit(ev)
	}
}

func (e *Engine) persistLocked() {
	err := e.store.Save(context.Background(), encode(e.snapshotLocked()))
	if err != nil {
		e.logger.Error("unable to persist timer state", slog.Any("error", err))
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		State:    e.state,
		Settings: e.settings,
	}
}
