package selection

import (
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/inkui/internal/controlled"
	"github.com/alexisbeaulieu97/inkui/internal/logger"
	"github.com/alexisbeaulieu97/inkui/internal/options"
)

// MultiOptions configures a Multi controller.
type MultiOptions struct {
	Items []options.Item

	// Value makes the controller controlled when non-nil.
	Value        *[]options.Value
	DefaultValue []options.Value

	// SelectAll picks up visible options by default.
	SelectAll Scope
	Disabled  bool

	Logger *logger.Logger

	OnChange      func([]options.Value)
	OnQueryChange func(string)
}

// Multi selects an ordered set of options. Toggling never closes the dropdown.
type Multi struct {
	list
	value controlled.Value[[]options.Value]
	scope Scope

	onChange func([]options.Value)
}

// NewMulti builds a multiple-selection controller.
func NewMulti(opts MultiOptions) *Multi {
	if opts.Value != nil {
		external := dedupe(*opts.Value)
		opts.Value = &external
	}
	return &Multi{
		list: list{
			items:         opts.Items,
			disabled:      opts.Disabled,
			log:           opts.Logger,
			onQueryChange: opts.OnQueryChange,
		},
		value:    controlled.New(opts.Value, dedupe(opts.DefaultValue)),
		scope:    opts.SelectAll,
		onChange: opts.OnChange,
	}
}

// Values returns a copy of the selected values in selection order.
func (m *Multi) Values() []options.Value {
	return slices.Clone(m.value.Get())
}

// Selected resolves every selected value against the current options, synthesizing
// placeholders for values missing from the list.
func (m *Multi) Selected() []options.Option {
	values := m.value.Get()
	out := make([]options.Option, len(values))
	for i, v := range values {
		out[i] = m.resolve(v)
	}
	return out
}

// IsSelected reports whether v is part of the selection.
func (m *Multi) IsSelected(v options.Value) bool {
	return slices.Contains(m.value.Get(), v)
}

// Summary joins the selected labels with ", ".
func (m *Multi) Summary() string {
	return strings.Join(options.Labels(m.Selected()), ", ")
}

// AllSelected reports whether every option in the select-all scope is selected.
func (m *Multi) AllSelected() bool {
	targets := m.scopeValues()
	if len(targets) == 0 {
		return false
	}
	for _, v := range targets {
		if !m.IsSelected(v) {
			return false
		}
	}
	return true
}

// Query returns the active filter text.
func (m *Multi) Query() string { return m.query }

// IsOpen reports whether the dropdown is shown.
func (m *Multi) IsOpen() bool { return m.open }

// SearchFocused reports whether the search field holds focus.
func (m *Multi) SearchFocused() bool { return m.searchFocused }

// Disabled reports whether interaction is blocked.
func (m *Multi) Disabled() bool { return m.disabled }

// Scope reports which options SelectAll picks up.
func (m *Multi) Scope() Scope { return m.scope }

// Visible returns the options matching the query.
func (m *Multi) Visible() options.Set {
	return m.set()
}

// Open shows the dropdown and focuses the search field.
func (m *Multi) Open() {
	if m.disabled || m.open {
		return
	}
	m.open = true
	m.searchFocused = true
	m.highlight = 0
}

// Close hides the dropdown and clears the search.
func (m *Multi) Close() {
	m.open = false
	m.searchFocused = false
	m.typed = false
	m.setQuery("")
}

// ToggleOpen opens a closed dropdown and closes an open one.
func (m *Multi) ToggleOpen() {
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

// Type sets the search query, opening the dropdown if needed.
func (m *Multi) Type(text string) {
	if m.disabled {
		return
	}
	if !m.open {
		m.Open()
	}
	m.typed = true
	m.setQuery(text)
}

// Toggle adds v when absent and removes it when present.
func (m *Multi) Toggle(v options.Value) {
	if v.IsZero() {
		return
	}
	current := m.value.Get()
	var next []options.Value
	if i := slices.Index(current, v); i >= 0 {
		next = slices.Delete(slices.Clone(current), i, i+1)
	} else {
		next = append(slices.Clone(current), v)
	}
	m.commit(next)
}

// Activate toggles a row or runs an action row. Disabled rows are ignored.
func (m *Multi) Activate(o options.Option) {
	if o.Disabled {
		return
	}
	if o.IsAction() {
		m.runAction(o.Action)
		if !o.Action.KeepOpen {
			m.Close()
		}
		return
	}
	m.Toggle(o.Value)
}

// ActivateHighlighted activates the highlighted row, if any.
func (m *Multi) ActivateHighlighted() {
	if o, ok := m.highlighted(m.set().Visible); ok {
		m.Activate(o)
	}
}

// MoveHighlight moves the row cursor by delta.
func (m *Multi) MoveHighlight(delta int) {
	m.move(m.set().Visible, delta)
}

// Highlighted returns the row under the cursor.
func (m *Multi) Highlighted() (options.Option, bool) {
	return m.highlighted(m.set().Visible)
}

// HighlightIndex returns the cursor position within Visible().Visible.
func (m *Multi) HighlightIndex() int { return m.highlight }

// SelectAll replaces the selection with every enabled option in scope.
func (m *Multi) SelectAll() {
	m.commit(m.scopeValues())
}

// ClearAll empties the selection.
func (m *Multi) ClearAll() {
	m.commit(nil)
}

// SetValue pushes a controlled value from the host. Nil releases control.
func (m *Multi) SetValue(v *[]options.Value) {
	if v == nil {
		m.value.SetExternal(nil)
		return
	}
	next := dedupe(*v)
	m.value.SetExternal(&next)
}

// SetOptions replaces the option source. Selections are re-resolved by value.
func (m *Multi) SetOptions(items []options.Item) {
	m.setItems(items)
}

func (m *Multi) scopeValues() []options.Value {
	source := m.set().Selectable()
	if m.scope == ScopeAll {
		source = m.all()
	}
	out := make([]options.Value, 0, len(source))
	for _, o := range source {
		if !o.Disabled {
			out = append(out, o.Value)
		}
	}
	return dedupe(out)
}

func (m *Multi) commit(next []options.Value) {
	prev := m.value.Get()
	m.value.Commit(next)
	if slices.Equal(prev, next) || (len(prev) == 0 && len(next) == 0) {
		return
	}
	m.log.WithFields(map[string]any{"count": len(next)}).Debug("selection committed")
	if m.onChange != nil {
		m.onChange(slices.Clone(next))
	}
}

func dedupe(values []options.Value) []options.Value {
	out := make([]options.Value, 0, len(values))
	for _, v := range values {
		if v.IsZero() || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
