package datepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
	dp "github.com/alexisbeaulieu97/inkui/internal/datepicker"
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

	if m.ctrl.Options().Disabled {
		return m, nil
	}
	if m.pop.focused && m.ctrl.IsOpen() {
		return m.handlePopupKeys(keyMsg)
	}
	return m.handleInputKeys(keyMsg)
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	wasOpen := m.ctrl.IsOpen()

	switch {
	case key.Matches(msg, m.keys.Commit):
		m.ctrl.Enter()
		m.syncInput()
		return m, m.afterChange(wasOpen)

	case key.Matches(msg, m.keys.Close):
		m.ctrl.Close()
		m.syncInput()
		return m, nil

	case key.Matches(msg, m.keys.ClearInput):
		m.ctrl.Clear()
		m.syncInput()
		return m, nil

	case key.Matches(msg, m.keys.OpenPopup):
		if !m.ctrl.IsOpen() {
			m.ctrl.Open()
			return m, m.afterChange(wasOpen)
		}
		m.ctrl.Blur(dp.FocusPopup)
		m.pop.focused = true
		m.syncCursor()
		return m, nil
	}

	if !m.ctrl.Editable() {
		// Readonly pickers still open on any key.
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.ctrl.Open()
		}
		return m, m.afterChange(wasOpen)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.ctrl.Type(after)
	}
	return m, tea.Batch(cmd, m.afterChange(wasOpen))
}

func (m Model) handlePopupKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.Close()
		m.pop.focused = false
		m.syncInput()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.pop.focused = false
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.selectCursor()

	case key.Matches(msg, m.keys.Cycle):
		m.ctrl.CycleView()
		m.syncCursor()

	case key.Matches(msg, m.keys.PrevPage):
		m.ctrl.Prev()
		m.syncCursor()

	case key.Matches(msg, m.keys.NextPage):
		m.ctrl.Next()
		m.syncCursor()

	case key.Matches(msg, m.keys.Today):
		m.ctrl.Today()
		m.syncCursor()

	case key.Matches(msg, m.keys.Tomorrow):
		m.ctrl.Tomorrow()
		m.syncCursor()

	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Clear()
		m.syncCursor()

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, -1, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 1, 1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7, -3, -3)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7, 3, 3)
	}

	if !m.ctrl.IsOpen() {
		m.pop.focused = false
	}
	m.syncInput()
	return m, nil
}

// selectCursor activates the cell under the cursor in the current view.
func (m *Model) selectCursor() {
	switch m.ctrl.View() {
	case dp.ViewMonth:
		m.ctrl.SelectMonth(m.pop.month)
		m.pop.day = calendar.MonthStart(m.ctrl.Year(), m.ctrl.Month())
	case dp.ViewYear:
		m.ctrl.SelectYear(m.ctrl.YearRange()[m.pop.yearIdx])
		m.pop.month = m.ctrl.Month()
	default:
		m.ctrl.SelectDay(m.pop.day)
	}
}

// moveCursor moves by days, months or years depending on the view, paging the
// calendar when the cursor leaves the shown page.
func (m *Model) moveCursor(days, months, years int) {
	p := m.pop
	switch m.ctrl.View() {
	case dp.ViewMonth:
		next := int(p.month) + months
		if next < 1 || next > 12 {
			return
		}
		p.month = time.Month(next)
	case dp.ViewYear:
		next := p.yearIdx + years
		switch {
		case next < 0:
			m.ctrl.Prev()
			next += 12
		case next > 11:
			m.ctrl.Next()
			next -= 12
		}
		p.yearIdx = next
	default:
		next := p.day.AddDays(days)
		shown := calendar.MonthStart(m.ctrl.Year(), m.ctrl.Month())
		if next.Before(shown) {
			m.ctrl.Prev()
		} else if next.Month != shown.Month || next.Year != shown.Year {
			m.ctrl.Next()
		}
		p.day = next
	}
}

// afterChange schedules cursor placement when the popup just opened.
func (m *Model) afterChange(wasOpen bool) tea.Cmd {
	if wasOpen || !m.ctrl.IsOpen() {
		return nil
	}
	return m.deferCursorSync()
}
