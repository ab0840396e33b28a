package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
	"github.com/alexisbeaulieu97/inkui/internal/config"
	dp "github.com/alexisbeaulieu97/inkui/internal/datepicker"
	"github.com/alexisbeaulieu97/inkui/internal/logger"
	"github.com/alexisbeaulieu97/inkui/internal/selection"
	"github.com/alexisbeaulieu97/inkui/internal/tui/autocomplete"
	"github.com/alexisbeaulieu97/inkui/internal/tui/combobox"
	"github.com/alexisbeaulieu97/inkui/internal/tui/datepicker"
	"github.com/alexisbeaulieu97/inkui/internal/tui/progress"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

const progressStep = 10

// field is one widget of the document. Exactly one of the models is in use,
// picked by kind.
type field struct {
	id   string
	kind string

	date  datepicker.Model
	combo combobox.Model
	auto  autocomplete.Model
	bar   progress.Model
}

func newField(w config.Widget, opts Options, theme components.Theme, log *logger.Logger) *field {
	f := &field{id: w.ID, kind: w.Type}
	log = log.With("widget", w.ID)

	switch w.Type {
	case config.WidgetDatePicker:
		o := dp.DefaultOptions()
		o.Label = w.Label
		if w.Placeholder != "" {
			o.Placeholder = w.Placeholder
		}
		o.Format = w.Format
		if o.Format == "" {
			o.Format = opts.DateFormat
		}
		o.Readonly = w.Readonly
		o.Disabled = w.Disabled
		o.Clearable = config.BoolOr(w.Clearable, o.Clearable)
		o.AutoClose = config.BoolOr(w.AutoClose, o.AutoClose)
		o.AllowCustom = config.BoolOr(w.AllowCustom, o.AllowCustom)
		o.WeekStart = opts.WeekStart
		o.Clock = opts.Clock
		o.Logger = log
		if w.Default.Raw != "" {
			if d, err := calendar.Coerce(w.Default.Raw, o.Format); err == nil {
				o.DefaultValue = d.Key()
			}
		}
		f.date = datepicker.New(o).WithTheme(theme)

	case config.WidgetCombobox:
		o := combobox.Options{
			SingleOptions: selection.SingleOptions{
				Items:       w.Options.Items(),
				Disabled:    w.Disabled,
				OpenOnFocus: w.OpenOnFocus,
				Logger:      log,
			},
			Label:       w.Label,
			Placeholder: w.Placeholder,
			MaxOptions:  w.MaxOptions,
		}
		if len(w.Default.Values) > 0 {
			o.DefaultValue = w.Default.Values[0]
		}
		f.combo = combobox.New(o).WithTheme(theme)

	case config.WidgetAutocomplete, config.WidgetMultiSelect:
		o := autocomplete.Options{
			Items:       w.Options.Items(),
			Multiple:    w.IsMultiple(),
			Label:       w.Label,
			Placeholder: w.Placeholder,
			HideSearch:  w.HideSearch,
			ShowFooter:  w.ShowFooter || w.Type == config.WidgetMultiSelect,
			MaxOptions:  w.MaxOptions,
			Disabled:    w.Disabled,
			Logger:      log,
		}
		if w.SelectAll == "all" {
			o.SelectAll = selection.ScopeAll
		}
		if o.Multiple {
			o.DefaultValues = w.Default.Values
		} else if len(w.Default.Values) > 0 {
			o.DefaultValue = w.Default.Values[0]
		}
		f.auto = autocomplete.New(o).WithTheme(theme)

	case config.WidgetProgress:
		f.bar = progress.New(progress.Options{
			ID:        w.ID,
			Label:     w.Label,
			Hint:      true,
			Intervals: w.Intervals,
		}).WithTheme(theme)
		f.bar.SetValue(w.Percent)
	}
	return f
}

func (f *field) focus() tea.Cmd {
	switch f.kind {
	case config.WidgetDatePicker:
		return f.date.Focus()
	case config.WidgetCombobox:
		return f.combo.Focus()
	case config.WidgetAutocomplete, config.WidgetMultiSelect:
		return f.auto.Focus()
	}
	return nil
}

func (f *field) blur() {
	switch f.kind {
	case config.WidgetDatePicker:
		f.date.Blur()
	case config.WidgetCombobox:
		f.combo.Blur()
	case config.WidgetAutocomplete, config.WidgetMultiSelect:
		f.auto.Blur()
	}
}

// update forwards msg to the widget. Progress bars take left/right to change value.
func (f *field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.kind {
	case config.WidgetDatePicker:
		f.date, cmd = f.date.Update(msg)
	case config.WidgetCombobox:
		f.combo, cmd = f.combo.Update(msg)
	case config.WidgetAutocomplete, config.WidgetMultiSelect:
		f.auto, cmd = f.auto.Update(msg)
	case config.WidgetProgress:
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "right", "+", "l":
				f.bar.SetValue(f.bar.Value() + progressStep)
			case "left", "-", "h":
				f.bar.SetValue(f.bar.Value() - progressStep)
			}
			return nil
		}
		f.bar, cmd = f.bar.Update(msg)
	}
	return cmd
}

func (f *field) view() string {
	switch f.kind {
	case config.WidgetDatePicker:
		return f.date.View()
	case config.WidgetCombobox:
		return f.combo.View()
	case config.WidgetAutocomplete, config.WidgetMultiSelect:
		return f.auto.View()
	case config.WidgetProgress:
		return f.bar.View()
	}
	return ""
}

// value is the widget's current value as shown in the status line.
func (f *field) value() string {
	switch f.kind {
	case config.WidgetDatePicker:
		return f.date.Value()
	case config.WidgetCombobox:
		return f.combo.Value().String()
	case config.WidgetAutocomplete, config.WidgetMultiSelect:
		values := f.auto.Values()
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = v.String()
		}
		return strings.Join(parts, ",")
	case config.WidgetProgress:
		return progress.FormatPercent(f.bar.Value())
	}
	return ""
}

// open reports whether the widget shows a popup, so the layout can leave room.
func (f *field) open() bool {
	switch f.kind {
	case config.WidgetDatePicker:
		return f.date.Controller().IsOpen()
	case config.WidgetCombobox:
		return f.combo.Controller().IsOpen()
	case config.WidgetAutocomplete, config.WidgetMultiSelect:
		return f.auto.IsOpen()
	}
	return false
}

func (f *field) teardown() {
	switch f.kind {
	case config.WidgetDatePicker:
		f.date.Teardown()
	case config.WidgetCombobox:
		f.combo.Teardown()
	case config.WidgetAutocomplete, config.WidgetMultiSelect:
		f.auto.Teardown()
	}
}
