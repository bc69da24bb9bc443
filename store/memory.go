package store

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Memory is an in-memory store. It satisfies KV and History and is used when
// no database is configured and in tests.
type Memory struct {
	mu       sync.Mutex
	vals     Values
	sessions []SessionRecord
	saves    int
}

// NewMemory returns a Memory store seeded with vals.
func NewMemory(vals Values) *Memory {
	m := &Memory{vals: make(Values)}

	for k, v := range vals {
		m.vals[k] = slices.Clone(v)
	}

	return m
}

func (m *Memory) Load(ctx context.Context) (Values, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(Values, len(m.vals))
	for k, v := range m.vals {
		out[k] = slices.Clone(v)
	}

	return out, nil
}

func (m *Memory) Save(ctx context.Context, vals Values) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.vals == nil {
		m.vals = make(Values)
	}

	for k, v := range vals {
		m.vals[k] = slices.Clone(v)
	}

	m.saves++

	return nil
}

// Saves reports how many times Save has been called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves
}

func (m *Memory) AppendSession(ctx context.Context, rec SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = append(m.sessions, rec)

	return nil
}

func (m *Memory) Sessions(
	ctx context.Context,
	since, until time.Time,
) ([]SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []SessionRecord

	for _, rec := range m.sessions {
		if rec.CompletedAt.Before(since) {
			continue
		}

		if !until.IsZero() && rec.CompletedAt.After(until) {
			continue
		}

		out = append(out, rec)
	}

	slices.SortStableFunc(out, func(a, b SessionRecord) int {
		return a.CompletedAt.Compare(b.CompletedAt)
	})

	return out, nil
}
