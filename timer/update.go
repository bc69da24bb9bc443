package timer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/pomodoro/internal/command"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		return m, tea.Batch(m.send(command.Snapshot), m.poll())

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.loaded = true
		m.snap = msg.snap

		if msg.action == command.UpdateSettings {
			return m, m.showNotice(settingsSavedMsg)
		}

		return m, nil

	case clearNoticeMsg:
		if int(msg) == m.noticeID {
			m.notice = ""
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		m.quitting = true

		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.start):
		return m, m.send(command.Start)

	case key.Matches(msg, defaultKeymap.pause):
		return m, m.send(command.Pause)

	case key.Matches(msg, defaultKeymap.reset):
		return m, m.send(command.Reset)

	case key.Matches(msg, defaultKeymap.settings):
		if !m.loaded {
			return m, nil
		}

		m.values = newSettingsForm(m.snap.Settings)
		m.form = m.values.form()

		return m, m.form.Init()
	}

	return m, nil
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		m.quitting = true

		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		patch := m.values.patch()

		m.form, m.values = nil, nil

		return m, m.request(command.Request{
			Action:   command.UpdateSettings,
			Settings: &patch,
		})

	case huh.StateAborted:
		m.form, m.values = nil, nil

		return m, nil
	}

	return m, cmd
}
