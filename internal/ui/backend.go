package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/remtui/rem/internal/backend"
	"github.com/remtui/rem/internal/reminders"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	cmds := make([]tea.Cmd, 0, 2)
	m.dispatchIntents(&cmds)
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return batch(cmds)
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.backendErr = evt.Err.Error()
		return
	}
	m.backendErr = ""
	switch evt.Kind {
	case backend.KindCollections:
		if collections, ok := evt.Data.([]reminders.Collection); ok {
			m.session.SetCollections(collections)
		}
	}
}
