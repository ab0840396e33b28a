package autocomplete

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key input, spinner ticks and deferred work.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if cmd, ok := m.sched.Handle(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.focused || m.ctrl.Disabled() {
			return m, nil
		}
		if !m.ctrl.IsOpen() {
			if key.Matches(msg, m.keys.Open) {
				return m, m.open()
			}
			return m, nil
		}
		return m.handleOpenKeys(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleOpenKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.close()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.ctrl.MoveHighlight(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.ctrl.MoveHighlight(1)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.activate()
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		if m.multi != nil {
			m.multi.SelectAll()
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		if !m.showFooter() {
			return m, nil
		}
		if m.multi != nil {
			m.multi.ClearAll()
		} else {
			m.single.Clear()
		}
		return m, nil
	}

	if m.opts.HideSearch {
		// Without a search field space picks the highlighted row.
		if msg.Type == tea.KeySpace {
			m.activate()
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.ctrl.Type(after)
	}
	return m, cmd
}

func (m *Model) activate() {
	m.ctrl.ActivateHighlighted()
	if !m.ctrl.IsOpen() {
		m.search.SetValue("")
		m.search.Blur()
	}
}
