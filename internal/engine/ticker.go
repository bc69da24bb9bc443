package engine

import (
	"sync"
	"time"
)

// Ticker schedules the engine's periodic tick callback. Arm replaces any
// callback that is already armed; Disarm stops it. A callback that was
// already in flight when Disarm was called may still run once, so callers
// must guard against stale invocations.
type Ticker interface {
	Arm(period time.Duration, fn func())
	Disarm()
}

// ClockTicker is a Ticker backed by time.Ticker.
type ClockTicker struct {
	mu   sync.Mutex
	stop chan struct{}
}

// NewClockTicker returns a disarmed ClockTicker.
func NewClockTicker() *ClockTicker {
	return &ClockTicker{}
}

func (c *ClockTicker) Arm(period time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disarmLocked()

	stop := make(chan struct{})
	c.stop = stop

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// prefer the stop signal when both are ready
				select {
				case <-stop:
					return
				default:
				}

				fn()
			}
		}
	}()
}

func (c *ClockTicker) Disarm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disarmLocked()
}

func (c *ClockTicker) disarmLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// ManualTicker is a Ticker driven by the caller. It keeps every callback it
// was armed with so that tests can replay a stale one.
type ManualTicker struct {
	mu        sync.Mutex
	callbacks []func()
	armed     bool
	period    time.Duration
}

func (m *ManualTicker) Arm(period time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, fn)
	m.armed = true
	m.period = period
}

func (m *ManualTicker) Disarm() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.armed = false
}

// Armed reports whether a callback is currently armed.
func (m *ManualTicker) Armed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.armed
}

// Arms reports how many times the ticker has been armed.
func (m *ManualTicker) Arms() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.callbacks)
}

// Period returns the period of the most recent Arm call.
func (m *ManualTicker) Period() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.period
}

// Advance fires the armed callback n times, stopping early if the ticker is
// disarmed along the way. It returns the number of callbacks fired.
func (m *ManualTicker) Advance(n int) int {
	fired := 0

	for range n {
		m.mu.Lock()

		if !m.armed {
			m.mu.Unlock()

			break
		}

		fn := m.callbacks[len(m.callbacks)-1]

		m.mu.Unlock()

		fn()

		fired++
	}

	return fired
}

// FireStale invokes the i-th callback the ticker was ever armed with,
// whether or not it is still armed. It simulates a callback that outlived
// the Disarm that should have stopped it.
func (m *ManualTicker) FireStale(i int) {
	m.mu.Lock()
	fn := m.callbacks[i]
	m.mu.Unlock()

	fn()
}
