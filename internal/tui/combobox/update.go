package combobox

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key input and deferred work.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if cmd, ok := m.sched.Handle(msg); ok {
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if m.ctrl.Disabled() {
		return m, nil
	}

	wasOpen := m.ctrl.IsOpen()
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if !wasOpen {
			m.ctrl.Open()
			return m, m.afterOpen(wasOpen)
		}
		m.ctrl.MoveHighlight(-1)
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if !wasOpen {
			m.ctrl.Open()
			return m, m.afterOpen(wasOpen)
		}
		m.ctrl.MoveHighlight(1)
		return m, nil

	case key.Matches(keyMsg, m.keys.Toggle):
		m.ctrl.ToggleOpen()
		m.syncInput()
		return m, m.afterOpen(wasOpen)

	case key.Matches(keyMsg, m.keys.Select):
		if wasOpen {
			m.ctrl.ActivateHighlighted()
			m.syncInput()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Close):
		m.ctrl.Close()
		m.syncInput()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if after := m.input.Value(); after != before {
		m.ctrl.Type(after)
	}
	return m, tea.Batch(cmd, m.afterOpen(wasOpen))
}
