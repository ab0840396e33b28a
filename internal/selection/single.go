package selection

import (
	"github.com/alexisbeaulieu97/inkui/internal/controlled"
	"github.com/alexisbeaulieu97/inkui/internal/logger"
	"github.com/alexisbeaulieu97/inkui/internal/options"
)

// SingleOptions configures a Single controller.
type SingleOptions struct {
	Items []options.Item

	// Value makes the controller controlled when non-nil.
	Value        *options.Value
	DefaultValue options.Value

	Disabled    bool
	OpenOnFocus bool

	Logger *logger.Logger

	OnChange               func(options.Value)
	OnSelectedOptionChange func(*options.Option)
	OnQueryChange          func(string)
}

// Single selects at most one option. It backs the autocomplete in single mode and the
// combobox, whose text input doubles as the search field.
type Single struct {
	list
	value       controlled.Value[options.Value]
	openOnFocus bool

	onChange               func(options.Value)
	onSelectedOptionChange func(*options.Option)
}

// NewSingle builds a single-selection controller.
func NewSingle(opts SingleOptions) *Single {
	return &Single{
		list: list{
			items:         opts.Items,
			disabled:      opts.Disabled,
			log:           opts.Logger,
			onQueryChange: opts.OnQueryChange,
		},
		value:                  controlled.New(opts.Value, opts.DefaultValue),
		openOnFocus:            opts.OpenOnFocus,
		onChange:               opts.OnChange,
		onSelectedOptionChange: opts.OnSelectedOptionChange,
	}
}

// Value returns the canonical value; the zero Value means nothing is selected.
func (s *Single) Value() options.Value {
	return s.value.Get()
}

// Selected resolves the canonical value against the current options. A value missing
// from the list yields a synthesized option labelled with the raw value.
func (s *Single) Selected() (options.Option, bool) {
	v := s.value.Get()
	if v.IsZero() {
		return options.Option{}, false
	}
	return s.resolve(v), true
}

// DisplayValue is the label of the selected option, or "".
func (s *Single) DisplayValue() string {
	o, ok := s.Selected()
	if !ok {
		return ""
	}
	return o.Label
}

// Input is the text shown in a combobox field: the typed query while the user is
// typing, otherwise the selected label.
func (s *Single) Input() string {
	if s.typed {
		return s.query
	}
	return s.DisplayValue()
}

// Query returns the active filter text.
func (s *Single) Query() string { return s.query }

// IsOpen reports whether the dropdown is shown.
func (s *Single) IsOpen() bool { return s.open }

// SearchFocused reports whether the search field holds focus.
func (s *Single) SearchFocused() bool { return s.searchFocused }

// Disabled reports whether interaction is blocked.
func (s *Single) Disabled() bool { return s.disabled }

// Visible returns the options to render. Until the user types, the full list is shown
// even when a value is selected.
func (s *Single) Visible() options.Set {
	return s.set()
}

// Open shows the dropdown with an untouched search and focuses the search field.
func (s *Single) Open() {
	if s.disabled || s.open {
		return
	}
	s.open = true
	s.typed = false
	s.searchFocused = true
	s.setQuery("")
	s.highlightSelected()
}

// Focus is called when the field gains focus.
func (s *Single) Focus() {
	if s.openOnFocus {
		s.Open()
	}
}

// Close hides the dropdown and resets the search to the selected label.
func (s *Single) Close() {
	s.open = false
	s.typed = false
	s.searchFocused = false
	s.setQuery("")
}

// ToggleOpen opens a closed dropdown and closes an open one.
func (s *Single) ToggleOpen() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

// Type records combobox input. Typing opens the dropdown and an empty input clears the
// selection.
func (s *Single) Type(text string) {
	if s.disabled {
		return
	}
	if !s.open {
		s.Open()
	}
	s.typed = true
	s.setQuery(text)
	if text == "" && !s.value.Get().IsZero() {
		s.commit(options.Value{})
	}
}

// Select replaces the selection with the option holding v and closes the dropdown.
func (s *Single) Select(v options.Value) {
	s.commit(v)
	s.Close()
}

// Activate picks a row: action rows run their callback and close unless KeepOpen,
// other rows are selected. Disabled rows are ignored.
func (s *Single) Activate(o options.Option) {
	if o.Disabled {
		return
	}
	if o.IsAction() {
		s.runAction(o.Action)
		if !o.Action.KeepOpen {
			s.Close()
		}
		return
	}
	s.Select(o.Value)
}

// ActivateHighlighted activates the highlighted row, if any.
func (s *Single) ActivateHighlighted() {
	if o, ok := s.highlighted(s.set().Visible); ok {
		s.Activate(o)
	}
}

// MoveHighlight moves the row cursor by delta.
func (s *Single) MoveHighlight(delta int) {
	s.move(s.set().Visible, delta)
}

// Highlighted returns the row under the cursor.
func (s *Single) Highlighted() (options.Option, bool) {
	return s.highlighted(s.set().Visible)
}

// HighlightIndex returns the cursor position within Visible().Visible.
func (s *Single) HighlightIndex() int { return s.highlight }

// Clear empties the selection.
func (s *Single) Clear() {
	s.commit(options.Value{})
}

// SetValue pushes a controlled value from the host. Nil releases control.
func (s *Single) SetValue(v *options.Value) {
	s.value.SetExternal(v)
}

// SetOptions replaces the option source. The selection is re-resolved by value.
func (s *Single) SetOptions(items []options.Item) {
	s.setItems(items)
}

func (s *Single) commit(v options.Value) {
	prev := s.value.Get()
	s.value.Commit(v)
	if prev == v {
		return
	}
	s.log.WithFields(map[string]any{"value": v.String()}).Debug("selection committed")
	if s.onChange != nil {
		s.onChange(v)
	}
	if s.onSelectedOptionChange != nil {
		var selected *options.Option
		if o, ok := s.set().Lookup(v); ok {
			selected = &o
		}
		s.onSelectedOptionChange(selected)
	}
}

func (s *Single) highlightSelected() {
	s.highlight = 0
	v := s.value.Get()
	if v.IsZero() {
		return
	}
	for i, o := range s.set().Visible {
		if o.Value == v && !o.IsAction() {
			s.highlight = i
			return
		}
	}
}
