// Package autocomplete is a button that opens a searchable dropdown. It selects a
// single value, or an ordered set of values in multiple mode, and doubles as the
// multiselect when the footer is shown.
package autocomplete

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkui/internal/logger"
	"github.com/alexisbeaulieu97/inkui/internal/options"
	"github.com/alexisbeaulieu97/inkui/internal/schedule"
	"github.com/alexisbeaulieu97/inkui/internal/selection"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

// Options configures an autocomplete.
type Options struct {
	Items    []options.Item
	Multiple bool

	// Single mode. Value makes the widget controlled when non-nil.
	Value        *options.Value
	DefaultValue options.Value
	OnChange     func(options.Value)

	// Multiple mode.
	Values         *[]options.Value
	DefaultValues  []options.Value
	SelectAll      selection.Scope
	OnValuesChange func([]options.Value)

	Label       string
	Placeholder string
	HideSearch  bool
	Loading     bool
	// ShowFooter adds the footer in single mode; multiple mode always has one.
	ShowFooter bool
	// MaxOptions caps the rows per group; 0 means 50.
	MaxOptions int
	Disabled   bool
	Width      int

	Logger        *logger.Logger
	OnQueryChange func(string)
}

// picker is the part of the selection controllers the widget drives.
type picker interface {
	IsOpen() bool
	Open()
	Close()
	Type(string)
	Query() string
	Disabled() bool
	Visible() options.Set
	MoveHighlight(int)
	HighlightIndex() int
	ActivateHighlighted()
}

// Model is an autocomplete widget.
type Model struct {
	single *selection.Single
	multi  *selection.Multi
	ctrl   picker

	search  textinput.Model
	spinner spinner.Model
	keys    KeyMap
	theme   components.Theme
	sched   *schedule.Scheduler
	opts    Options

	loading bool
	focused bool
}

// New creates an autocomplete.
func New(opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = 32
	}
	if opts.Placeholder == "" && opts.Multiple {
		opts.Placeholder = "Select option"
	}

	search := textinput.New()
	search.Prompt = "⌕ "
	search.Placeholder = "Search"
	search.Width = opts.Width - 6

	m := Model{
		search:  search,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		keys:    DefaultKeyMap(),
		theme:   components.DefaultTheme(),
		sched:   schedule.New(),
		opts:    opts,
		loading: opts.Loading,
	}
	if opts.Multiple {
		m.multi = selection.NewMulti(selection.MultiOptions{
			Items:         opts.Items,
			Value:         opts.Values,
			DefaultValue:  opts.DefaultValues,
			SelectAll:     opts.SelectAll,
			Disabled:      opts.Disabled,
			Logger:        opts.Logger,
			OnChange:      opts.OnValuesChange,
			OnQueryChange: opts.OnQueryChange,
		})
		m.ctrl = m.multi
	} else {
		m.single = selection.NewSingle(selection.SingleOptions{
			Items:         opts.Items,
			Value:         opts.Value,
			DefaultValue:  opts.DefaultValue,
			Disabled:      opts.Disabled,
			Logger:        opts.Logger,
			OnChange:      opts.OnChange,
			OnQueryChange: opts.OnQueryChange,
		})
		m.ctrl = m.single
	}
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

// Init starts the spinner when the widget begins in the loading state.
func (m Model) Init() tea.Cmd {
	if m.loading {
		return m.spinner.Tick
	}
	return nil
}

// Single returns the controller in single mode, or nil.
func (m Model) Single() *selection.Single { return m.single }

// Multi returns the controller in multiple mode, or nil.
func (m Model) Multi() *selection.Multi { return m.multi }

// Value returns the single value; it is the zero Value in multiple mode.
func (m Model) Value() options.Value {
	if m.single == nil {
		return options.Value{}
	}
	return m.single.Value()
}

// Values returns the selected values; single mode yields at most one.
func (m Model) Values() []options.Value {
	if m.multi != nil {
		return m.multi.Values()
	}
	if v := m.single.Value(); !v.IsZero() {
		return []options.Value{v}
	}
	return nil
}

// DisplayValue is the text on the trigger: the selected label(s) or "".
func (m Model) DisplayValue() string {
	if m.multi != nil {
		return m.multi.Summary()
	}
	return m.single.DisplayValue()
}

// IsOpen reports whether the dropdown is shown.
func (m Model) IsOpen() bool { return m.ctrl.IsOpen() }

// Query returns the search text.
func (m Model) Query() string { return m.ctrl.Query() }

// Loading reports whether the spinner is shown.
func (m Model) Loading() bool { return m.loading }

// Focused reports whether the widget has focus.
func (m Model) Focused() bool { return m.focused }

// KeyMap returns the active bindings.
func (m Model) KeyMap() KeyMap { return m.keys }

// Focus gives the widget focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return nil
}

// Blur closes the dropdown.
func (m *Model) Blur() {
	m.focused = false
	m.close()
}

// SetLoading toggles the loading indicator and returns the spinner tick when it starts.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	started := loading && !m.loading
	m.loading = loading
	if started {
		return m.spinner.Tick
	}
	return nil
}

// SetOptions replaces the option source.
func (m *Model) SetOptions(items []options.Item) {
	if m.multi != nil {
		m.multi.SetOptions(items)
		return
	}
	m.single.SetOptions(items)
}

// Teardown drops pending deferred work.
func (m *Model) Teardown() {
	m.sched.Teardown()
}

func (m *Model) open() tea.Cmd {
	if m.ctrl.IsOpen() {
		return nil
	}
	m.ctrl.Open()
	if !m.ctrl.IsOpen() {
		return nil
	}
	m.search.SetValue("")
	if m.opts.HideSearch {
		return nil
	}
	focus := m.search.Focus()
	// Restart the blink once the search field is on screen.
	_, cmd := m.sched.AfterRender(func() tea.Cmd {
		return textinput.Blink
	})
	return tea.Batch(focus, cmd)
}

func (m *Model) close() {
	m.ctrl.Close()
	m.search.SetValue("")
	m.search.Blur()
}

func (m *Model) showFooter() bool {
	return m.opts.ShowFooter || m.multi != nil
}
