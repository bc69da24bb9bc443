// Package timer is the terminal interface of the pomodoro program. It polls
// the timer snapshot at a fixed interval and sends commands when keys are
// pressed. The timer itself may run in the same process or behind a server.
package timer

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/pomodoro/internal/command"
	"github.com/ayoisaiah/pomodoro/internal/engine"
)

const (
	padding  = 2
	maxWidth = 80

	defaultPollInterval = time.Second
	requestTimeout      = 5 * time.Second
	noticeDuration      = 3 * time.Second

	settingsSavedMsg = "Settings saved successfully!"
)

type (
	pollMsg     time.Time
	snapshotMsg struct {
		err    error
		action command.Action
		snap   engine.Snapshot
	}
	// clearNoticeMsg hides the notice with the same id.
	clearNoticeMsg int
)

// Model is the bubbletea model of the timer screen.
type Model struct {
	handler  command.Handler
	progress progress.Model
	help     help.Model
	styles   styles

	form   *huh.Form
	values *settingsForm

	err      error
	notice   string
	noticeID int
	snap     engine.Snapshot
	interval time.Duration
	loaded   bool
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithPollInterval sets how often the snapshot is refreshed.
func WithPollInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithDarkTheme picks colours that suit a dark terminal background.
func WithDarkTheme(dark bool) Option {
	return func(m *Model) {
		m.styles = newStyles(dark)
	}
}

// New returns a model that drives the timer through h.
func New(h command.Handler, opts ...Option) *Model {
	m := &Model{
		handler:  h,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		styles:   newStyles(true),
		interval: defaultPollInterval,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run starts the interface and blocks until the user quits.
func (m *Model) Run(ctx context.Context) error {
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.send(command.Snapshot), m.poll())
}

func (m *Model) poll() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// send performs action and reports the resulting snapshot.
func (m *Model) send(action command.Action) tea.Cmd {
	return m.request(command.Request{Action: action})
}

func (m *Model) request(req command.Request) tea.Cmd {
	h := m.handler

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := h.Handle(ctx, req)
		if err != nil {
			return snapshotMsg{err: err, action: req.Action}
		}

		if !resp.Success || resp.Snapshot == nil {
			return snapshotMsg{
				err: errRejected.Fmt(req.Action).Wrap(
					remoteError(resp.Error),
				),
				action: req.Action,
			}
		}

		return snapshotMsg{snap: *resp.Snapshot, action: req.Action}
	}
}

// showNotice displays msg until noticeDuration has passed.
func (m *Model) showNotice(msg string) tea.Cmd {
	m.noticeID++
	m.notice = msg

	id := m.noticeID

	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg(id)
	})
}

type remoteError string

func (e remoteError) Error() string {
	return string(e)
}
