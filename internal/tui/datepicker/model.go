// Package datepicker is the Bubble Tea front end of the date picker: a text input
// with a calendar popup that has date, month and year pages.
package datepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
	dp "github.com/alexisbeaulieu97/inkui/internal/datepicker"
	"github.com/alexisbeaulieu97/inkui/internal/schedule"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

// popup is the keyboard state inside the calendar. It lives behind a pointer so
// deferred tasks and copies of the model see the same cursor.
type popup struct {
	focused bool
	day     calendar.Date
	month   time.Month
	yearIdx int
}

// Model is a date picker widget.
type Model struct {
	ctrl  *dp.Controller
	input textinput.Model
	keys  KeyMap
	theme components.Theme
	sched *schedule.Scheduler
	pop   *popup

	focused bool
	width   int
}

// New creates a picker. opts should start from datepicker.DefaultOptions.
func New(opts dp.Options) Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = opts.Placeholder
	in.CharLimit = 64
	in.Width = 20

	m := Model{
		ctrl:  dp.New(opts),
		input: in,
		keys:  DefaultKeyMap(),
		theme: components.DefaultTheme(),
		sched: schedule.New(),
		pop:   &popup{},
	}
	m.syncInput()
	m.syncCursor()
	return m
}

// WithTheme sets the theme used by View.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	return m
}

// WithKeyMap replaces the key bindings.
func (m Model) WithKeyMap(keys KeyMap) Model {
	m.keys = keys
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the underlying state machine.
func (m Model) Controller() *dp.Controller { return m.ctrl }

// Value returns the committed "YYYY-MM-DD" value or "".
func (m Model) Value() string { return m.ctrl.Value() }

// Focused reports whether the widget has focus.
func (m Model) Focused() bool { return m.focused }

// PopupFocused reports whether keyboard focus is inside the calendar.
func (m Model) PopupFocused() bool { return m.pop.focused }

// Cursor returns the day the popup cursor is on.
func (m Model) Cursor() calendar.Date { return m.pop.day }

// KeyMap returns the active bindings.
func (m Model) KeyMap() KeyMap { return m.keys }

// Focus gives the widget focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes focus from the widget and commits any typed text.
func (m *Model) Blur() {
	m.focused = false
	m.pop.focused = false
	m.input.Blur()
	m.ctrl.Blur(dp.FocusElsewhere)
	m.syncInput()
}

// SetValue pushes a controlled value.
func (m *Model) SetValue(v *string) {
	m.ctrl.SetValue(v)
	m.syncInput()
	m.syncCursor()
}

// SetWidth sets the input width in cells.
func (m *Model) SetWidth(width int) {
	m.width = width
	if width > 2 {
		m.input.Width = width - 2
	}
}

// Teardown drops pending deferred work. Call it when the widget is removed.
func (m *Model) Teardown() {
	m.sched.Teardown()
}

// syncInput shows the controller's display text unless the user is mid-edit.
func (m *Model) syncInput() {
	if m.ctrl.Typing() {
		return
	}
	m.input.SetValue(m.ctrl.DisplayText())
	m.input.CursorEnd()
}

func (m *Model) syncCursor() {
	placeCursor(m.ctrl, m.pop)
}

// placeCursor puts the popup cursor on the selected day, or today, or the first
// day of the shown month.
func placeCursor(ctrl *dp.Controller, p *popup) {
	day := calendar.MonthStart(ctrl.Year(), ctrl.Month())
	if sel := ctrl.Selected(); sel != "" {
		if d, err := calendar.ParseKey(sel); err == nil && d.Year == ctrl.Year() && d.Month == ctrl.Month() {
			day = d
		}
	} else if today := calendar.Today(ctrl.Options().Clock); today.Year == ctrl.Year() && today.Month == ctrl.Month() {
		day = today
	}
	p.day = day
	p.month = ctrl.Month()
	p.yearIdx = indexOf(ctrl.YearRange(), ctrl.Year())
}

// deferCursorSync places the cursor once the popup has been drawn.
func (m *Model) deferCursorSync() tea.Cmd {
	ctrl, pop := m.ctrl, m.pop
	_, cmd := m.sched.AfterRender(func() tea.Cmd {
		if ctrl.IsOpen() {
			placeCursor(ctrl, pop)
		}
		return nil
	})
	return cmd
}

func indexOf(years [12]int, year int) int {
	for i, y := range years {
		if y == year {
			return i
		}
	}
	return 0
}
