package toast

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles expiry, provider changes, spinner ticks and, while focused, keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChangedMsg:
		return m, m.Sync()

	case ExpireMsg:
		if v, ok := m.timers.armed[msg.ID]; ok && v == msg.Version {
			delete(m.timers.armed, msg.ID)
		}
		m.provider.Expire(msg.ID, msg.Version)
		return m, m.Sync()

	case spinner.TickMsg:
		if !m.anyLoading() {
			m.timers.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	items := m.provider.Toasts()
	if len(items) == 0 {
		return m, nil
	}
	m.cursor = min(m.cursor, len(items)-1)
	current := items[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Next):
		m.cursor = min(m.cursor+1, len(items)-1)
	case key.Matches(msg, m.keys.Dismiss):
		if current.Closable {
			m.provider.Remove(current.ID)
		}
	case key.Matches(msg, m.keys.Action):
		if current.Action != nil {
			m.provider.Trigger(current.ID)
		}
	}
	return m, m.Sync()
}

func (m Model) anyLoading() bool {
	for _, it := range m.provider.Toasts() {
		if it.Loading {
			return true
		}
	}
	return false
}
