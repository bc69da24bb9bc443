package command

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomodoro/internal/engine"
	"github.com/ayoisaiah/pomodoro/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *engine.Engine) {
	t.Helper()

	e, _ := newEngine(t)

	s := NewServer("", NewDispatcher(e, nil), nil)

	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)

	return ts, e
}

func TestServerActions(t *testing.T) {
	ts, e := newTestServer(t)
	c := NewClient(ts.URL)
	ctx := context.Background()

	for _, action := range []Action{Start, Pause, Reset, Snapshot} {
		resp, err := Do(ctx, c, action)
		require.NoError(t, err, action)
		assert.True(t, resp.Success, action)
		require.NotNil(t, resp.Snapshot, action)
	}

	resp, err := c.Handle(ctx, Request{
		Action:   UpdateSettings,
		Settings: &engine.SettingsPatch{SessionsPerCycle: intPtr(6)},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	if diff := cmp.Diff(e.Snapshot(), *resp.Snapshot); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 6, resp.Snapshot.Settings.SessionsPerCycle)
}

func TestServerUnknownAction(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := Do(context.Background(), NewClient(ts.URL), Action("launch"))
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "launch")
}

func TestServerMalformedBody(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Post(
		ts.URL+commandPath,
		"application/json",
		strings.NewReader("{not json"),
	)
	require.NoError(t, err)

	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var resp Response

	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "malformed request body")
}

func TestServerState(t *testing.T) {
	ts, e := newTestServer(t)

	require.NoError(t, e.Start())

	res, err := http.Get(ts.URL + statePath)
	require.NoError(t, err)

	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var snap engine.Snapshot

	require.NoError(t, json.NewDecoder(res.Body).Decode(&snap))
	assert.Equal(t, e.Snapshot(), snap)
}

func TestServerWrongMethod(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + commandPath)
	require.NoError(t, err)

	defer res.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	e, _ := newEngine(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewServer(ln.Addr().String(), NewDispatcher(e, nil), nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.Serve(ctx, ln)
	}()

	snap, err := Fetch(context.Background(), NewClient(ln.Addr().String()))
	require.NoError(t, err)
	assert.Equal(t, 1500, snap.State.RemainingSeconds)

	cancel()

	require.NoError(t, <-errCh)
}

func TestClientUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = Fetch(context.Background(), NewClient(addr))
	assert.ErrorIs(t, err, errUnreachable)
}

func TestFetchRejected(t *testing.T) {
	h := handlerFunc(func(context.Context, Request) (Response, error) {
		return Response{Error: "engine stopped"}, nil
	})

	_, err := Fetch(context.Background(), h)
	assert.ErrorIs(t, err, errRejected)
	assert.ErrorContains(t, err, "engine stopped")
}

type handlerFunc func(ctx context.Context, req Request) (Response, error)

func (f handlerFunc) Handle(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

func TestServerHistory(t *testing.T) {
	e, _ := newEngine(t)
	mem := store.NewMemory(nil)
	ctx := context.Background()

	base := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	for i := range 3 {
		require.NoError(t, mem.AppendSession(ctx, store.SessionRecord{
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
			Phase:       "focus",
			Session:     i + 1,
			Minutes:     25,
		}))
	}

	s := NewServer("", NewDispatcher(e, nil), nil, WithHistory(mem))

	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL)

	all, err := c.Sessions(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := c.Sessions(ctx, base.Add(30*time.Minute), base.Add(90*time.Minute))
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, 2, some[0].Session)
	assert.True(t, base.Add(time.Hour).Equal(some[0].CompletedAt))

	none, err := c.Sessions(ctx, base.Add(24*time.Hour), time.Time{})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)

	res, err := http.Get(ts.URL + historyPath + "?since=yesterday")
	require.NoError(t, err)

	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestServerWithoutHistory(t *testing.T) {
	ts, _ := newTestServer(t)

	_, err := NewClient(ts.URL).Sessions(
		context.Background(),
		time.Time{},
		time.Time{},
	)
	assert.ErrorIs(t, err, errUnexpectedStatus)
}
