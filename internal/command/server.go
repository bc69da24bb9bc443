package command

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ayoisaiah/pomodoro/store"
)

const (
	// DefaultAddr is where the server listens unless configured otherwise.
	DefaultAddr = "127.0.0.1:47321"

	commandPath = "/v1/command"
	statePath   = "/v1/state"
	historyPath = "/v1/history"

	maxBodyBytes = 1 << 16
)

type errorHandler func(w http.ResponseWriter, r *http.Request) error

// Server exposes a Handler over HTTP.
type Server struct {
	handler Handler
	history store.History
	logger  *slog.Logger
	srv     *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithHistory serves the completed sessions recorded in h.
func WithHistory(h store.History) ServerOption {
	return func(s *Server) {
		s.history = h
	}
}

// NewServer returns a server for h listening on addr.
func NewServer(
	addr string,
	h Handler,
	logger *slog.Logger,
	opts ...ServerOption,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		handler: h,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Routes returns the HTTP handler for the command and state endpoints.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST "+commandPath, s.wrap(s.command))
	mux.Handle("GET "+statePath, s.wrap(s.state))

	if s.history != nil {
		mux.Handle("GET "+historyPath, s.wrap(s.sessions))
	}

	return mux
}

func (s *Server) wrap(h errorHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err != nil {
			s.logger.Error(
				"request failed",
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
		}
	})
}

func (s *Server) command(w http.ResponseWriter, r *http.Request) error {
	var req Request

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	err := dec.Decode(&req)
	if err != nil {
		err = errDecodeRequest.Wrap(err)

		return writeJSON(w, http.StatusBadRequest, Response{
			Error: err.Error(),
		})
	}

	resp, err := s.handler.Handle(r.Context(), req)
	if err != nil {
		writeErr := writeJSON(w, http.StatusInternalServerError, Response{
			Error: err.Error(),
		})

		return errors.Join(err, writeErr)
	}

	return writeJSON(w, http.StatusOK, resp)
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) error {
	resp, err := s.handler.Handle(r.Context(), Request{Action: Snapshot})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, resp.Snapshot)
}

// sessions lists completed sessions between the optional since and until
// query parameters, given in RFC 3339 format.
func (s *Server) sessions(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	var since, until time.Time

	for name, dst := range map[string]*time.Time{
		"since": &since,
		"until": &until,
	} {
		v := query.Get(name)
		if v == "" {
			continue
		}

		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return writeJSON(w, http.StatusBadRequest, Response{
				Error: errInvalidTime.Fmt(name, v).Error(),
			})
		}

		*dst = t
	}

	records, err := s.history.Sessions(r.Context(), since, until)
	if err != nil {
		writeErr := writeJSON(w, http.StatusInternalServerError, Response{
			Error: err.Error(),
		})

		return errors.Join(err, writeErr)
	}

	if records == nil {
		records = []store.SessionRecord{}
	}

	return writeJSON(w, http.StatusOK, records)
}

// ListenAndServe serves requests until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	s.logger.Info("server listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		5*time.Second,
	)
	defer cancel()

	err := s.srv.Shutdown(shutdownCtx)

	<-errCh

	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}
