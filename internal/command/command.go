// Package command is the request/acknowledgement surface of the timer. A
// Handler accepts a Request and answers with a Response carrying the
// resulting snapshot. The Dispatcher serves requests in-process and the
// Client forwards them to a Server over HTTP.
package command

import (
	"context"

	"github.com/ayoisaiah/pomodoro/internal/engine"
)

// Action names an operation on the timer.
type Action string

const (
	Start          Action = "start"
	Pause          Action = "pause"
	Reset          Action = "reset"
	UpdateSettings Action = "updateSettings"
	Snapshot       Action = "snapshot"
)

// Request asks the timer to perform Action. Settings is only read for
// UpdateSettings.
type Request struct {
	Action   Action                `json:"action"`
	Settings *engine.SettingsPatch `json:"settings,omitempty"`
}

// Response acknowledges a Request.
type Response struct {
	Success  bool             `json:"success"`
	Error    string           `json:"error,omitempty"`
	Snapshot *engine.Snapshot `json:"snapshot,omitempty"`
}

// Handler performs requests against a timer.
type Handler interface {
	Handle(ctx context.Context, req Request) (Response, error)
}

// Do sends a request with no payload.
func Do(ctx context.Context, h Handler, action Action) (Response, error) {
	return h.Handle(ctx, Request{Action: action})
}

// Fetch returns the current snapshot.
func Fetch(ctx context.Context, h Handler) (engine.Snapshot, error) {
	resp, err := Do(ctx, h, Snapshot)
	if err != nil {
		return engine.Snapshot{}, err
	}

	if !resp.Success {
		return engine.Snapshot{}, errRejected.Fmt(Snapshot).Wrap(
			remoteError(resp.Error),
		)
	}

	if resp.Snapshot == nil {
		return engine.Snapshot{}, errNoSnapshot
	}

	return *resp.Snapshot, nil
}

type remoteError string

func (e remoteError) Error() string {
	return string(e)
}
