// Package combobox is a text input whose content filters a dropdown of options.
// Typing searches, Enter picks the highlighted row and an emptied input clears the
// selection.
package combobox

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkui/internal/options"
	"github.com/alexisbeaulieu97/inkui/internal/schedule"
	"github.com/alexisbeaulieu97/inkui/internal/selection"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

// Options configures a combobox.
type Options struct {
	selection.SingleOptions

	Label       string
	Placeholder string
	// MaxOptions caps the rows per group; 0 uses the list default.
	MaxOptions int
	Width      int
}

// Model is a combobox widget.
type Model struct {
	ctrl  *selection.Single
	input textinput.Model
	keys  KeyMap
	theme components.Theme
	sched *schedule.Scheduler
	opts  Options

	focused bool
}

// New creates a combobox.
func New(opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = 28
	}
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = opts.Placeholder
	in.Width = opts.Width - 4

	m := Model{
		ctrl:  selection.NewSingle(opts.SingleOptions),
		input: in,
		keys:  DefaultKeyMap(),
		theme: components.DefaultTheme(),
		sched: schedule.New(),
		opts:  opts,
	}
	m.syncInput()
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
func (m Model) Init() tea.Cmd { return nil }

// Controller exposes the selection state.
func (m Model) Controller() *selection.Single { return m.ctrl }

// Value returns the selected value; the zero Value means none.
func (m Model) Value() options.Value { return m.ctrl.Value() }

// InputValue returns the text in the field.
func (m Model) InputValue() string { return m.input.Value() }

// Focused reports whether the widget has focus.
func (m Model) Focused() bool { return m.focused }

// KeyMap returns the active bindings.
func (m Model) KeyMap() KeyMap { return m.keys }

// Focus gives the widget focus, opening the list when configured to.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	wasOpen := m.ctrl.IsOpen()
	m.ctrl.Focus()
	return tea.Batch(m.input.Focus(), m.afterOpen(wasOpen))
}

// Blur closes the list and restores the selected label.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
	m.ctrl.Close()
	m.syncInput()
}

// SetValue pushes a controlled value. Nil releases control.
func (m *Model) SetValue(v *options.Value) {
	m.ctrl.SetValue(v)
	m.syncInput()
}

// SetOptions replaces the option source.
func (m *Model) SetOptions(items []options.Item) {
	m.ctrl.SetOptions(items)
	m.syncInput()
}

// Teardown drops pending deferred work.
func (m *Model) Teardown() {
	m.sched.Teardown()
}

func (m *Model) syncInput() {
	if text := m.ctrl.Input(); text != m.input.Value() {
		m.input.SetValue(text)
		m.input.CursorEnd()
	}
}

// afterOpen restarts the cursor blink once the freshly opened list is on screen.
func (m *Model) afterOpen(wasOpen bool) tea.Cmd {
	if wasOpen || !m.ctrl.IsOpen() {
		return nil
	}
	_, cmd := m.sched.AfterRender(func() tea.Cmd {
		return textinput.Blink
	})
	return cmd
}
