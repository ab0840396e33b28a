package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/inkui/internal/options"
)

// Widget types understood by the showcase.
const (
	WidgetDatePicker   = "datepicker"
	WidgetCombobox     = "combobox"
	WidgetAutocomplete = "autocomplete"
	WidgetMultiSelect  = "multiselect"
	WidgetProgress     = "progress"
)

// Document is a showcase file: a named set of widgets plus toasts to fire on start.
type Document struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Widgets     []Widget `yaml:"widgets" validate:"required,min=1,dive"`
	Toasts      []Toast  `yaml:"toasts,omitempty" validate:"omitempty,dive"`
}

// Settings holds document-wide defaults.
type Settings struct {
	WeekStart  string `yaml:"week_start,omitempty" validate:"omitempty,weekday"`
	DateFormat string `yaml:"date_format,omitempty" validate:"omitempty,date_format"`
	Theme      string `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
}

// Widget describes one interactive component.
type Widget struct {
	ID          string `yaml:"id" validate:"required,widget_id"`
	Type        string `yaml:"type" validate:"required,oneof=datepicker combobox autocomplete multiselect progress"`
	Label       string `yaml:"label,omitempty" validate:"max=80"`
	Placeholder string `yaml:"placeholder,omitempty" validate:"max=80"`
	Disabled    bool   `yaml:"disabled,omitempty"`

	Default Default `yaml:"default,omitempty"`

	// Date picker.
	Format      string `yaml:"format,omitempty" validate:"omitempty,date_format"`
	Readonly    bool   `yaml:"readonly,omitempty"`
	Clearable   *bool  `yaml:"clearable,omitempty"`
	AutoClose   *bool  `yaml:"auto_close,omitempty"`
	AllowCustom *bool  `yaml:"allow_custom,omitempty"`

	// Selection widgets.
	Options     OptionList `yaml:"options,omitempty"`
	Multiple    bool       `yaml:"multiple,omitempty"`
	SelectAll   string     `yaml:"select_all,omitempty" validate:"omitempty,oneof=visible all"`
	MaxOptions  int        `yaml:"max_options,omitempty" validate:"omitempty,min=1,max=500"`
	HideSearch  bool       `yaml:"hide_search,omitempty"`
	OpenOnFocus bool       `yaml:"open_on_focus,omitempty"`
	ShowFooter  bool       `yaml:"show_footer,omitempty"`

	// Progress.
	Percent   float64 `yaml:"percent,omitempty" validate:"min=0,max=100"`
	Intervals int     `yaml:"intervals,omitempty" validate:"omitempty,min=2,max=100"`
}

// IsSelection reports whether the widget picks from an option list.
func (w Widget) IsSelection() bool {
	switch w.Type {
	case WidgetCombobox, WidgetAutocomplete, WidgetMultiSelect:
		return true
	}
	return false
}

// IsMultiple reports whether the widget keeps a set of values.
func (w Widget) IsMultiple() bool {
	return w.Type == WidgetMultiSelect || (w.Type == WidgetAutocomplete && w.Multiple)
}

// BoolOr dereferences an optional flag.
func BoolOr(flag *bool, def bool) bool {
	if flag == nil {
		return def
	}
	return *flag
}

// Toast is a notification fired when the showcase starts.
type Toast struct {
	Type     string   `yaml:"type,omitempty" validate:"omitempty,oneof=info success warning error"`
	Message  string   `yaml:"message" validate:"required,max=500"`
	Duration Duration `yaml:"duration,omitempty"`
	Closable *bool    `yaml:"closable,omitempty"`
}

// Duration decodes Go duration strings ("3s") or plain seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	if secs, err := strconv.ParseFloat(value.Value, 64); err == nil {
		*d = Duration(time.Duration(secs * float64(time.Second)))
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", value.Line, value.Value)
	}
	*d = Duration(parsed)
	return nil
}

// Default is a widget's initial value: a scalar or a list of scalars.
type Default struct {
	Values []options.Value
	Raw    string
	IsList bool
}

// IsZero lets omitempty skip unset defaults.
func (d Default) IsZero() bool {
	return len(d.Values) == 0 && !d.IsList
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Default) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*d = Default{}
			return nil
		}
		*d = Default{Values: []options.Value{scalarValue(value)}, Raw: value.Value}
		return nil
	case yaml.SequenceNode:
		out := Default{IsList: true}
		for _, child := range value.Content {
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: default list entries must be scalars", child.Line)
			}
			out.Values = append(out.Values, scalarValue(child))
		}
		*d = out
		return nil
	default:
		return fmt.Errorf("line %d: default must be a scalar or a list", value.Line)
	}
}

// OptionList decodes option sources: scalars, {label, value} maps and
// {group, items} maps, in any mix.
type OptionList []options.Item

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *OptionList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: options must be a list", value.Line)
	}
	items, err := decodeItems(value.Content, true)
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// Items returns the decoded option items.
func (l OptionList) Items() []options.Item {
	return []options.Item(l)
}

func decodeItems(nodes []*yaml.Node, allowGroups bool) ([]options.Item, error) {
	items := make([]options.Item, 0, len(nodes))
	for _, node := range nodes {
		item, err := decodeItem(node, allowGroups)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type optionNode struct {
	Label       string     `yaml:"label"`
	Value       *yaml.Node `yaml:"value"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"icon"`
	Disabled    bool       `yaml:"disabled"`
}

type groupNode struct {
	Group     string      `yaml:"group"`
	HideLabel bool        `yaml:"hide_label"`
	Items     []yaml.Node `yaml:"items"`
}

func decodeItem(node *yaml.Node, allowGroups bool) (options.Item, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return options.Primitive(scalarValue(node)), nil
	case yaml.MappingNode:
		if hasKey(node, "group") {
			if !allowGroups {
				return options.Item{}, fmt.Errorf("line %d: groups cannot be nested", node.Line)
			}
			var g groupNode
			if err := node.Decode(&g); err != nil {
				return options.Item{}, err
			}
			children := make([]*yaml.Node, len(g.Items))
			for i := range g.Items {
				children[i] = &g.Items[i]
			}
			items, err := decodeItems(children, false)
			if err != nil {
				return options.Item{}, err
			}
			group := options.Group(g.Group, items...)
			group.HideLabel = g.HideLabel
			return group, nil
		}
		var o optionNode
		if err := node.Decode(&o); err != nil {
			return options.Item{}, err
		}
		if o.Value == nil || o.Value.Kind != yaml.ScalarNode {
			return options.Item{}, fmt.Errorf("line %d: option needs a scalar value", node.Line)
		}
		return options.FromOption(options.Option{
			Label:       o.Label,
			Value:       scalarValue(o.Value),
			Description: o.Description,
			Icon:        o.Icon,
			Disabled:    o.Disabled,
		}), nil
	default:
		return options.Item{}, fmt.Errorf("line %d: unsupported option entry", node.Line)
	}
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// scalarValue keeps the YAML type of a scalar so 1 and "1" stay distinct options.
func scalarValue(node *yaml.Node) options.Value {
	switch node.ShortTag() {
	case "!!int":
		if n, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return options.Int(n)
		}
	case "!!float":
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return options.Number(f)
		}
	case "!!bool":
		if b, err := strconv.ParseBool(strings.ToLower(node.Value)); err == nil {
			return options.Bool(b)
		}
	}
	return options.String(node.Value)
}
