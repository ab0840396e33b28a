package options

// Kind is the discriminant of an Item.
type Kind int

const (
	// KindPrimitive is a bare string, number or bool.
	KindPrimitive Kind = iota + 1
	// KindOption is a labelled option.
	KindOption
	// KindGroup is a named group of items.
	KindGroup
	// KindAction is a row that runs a callback instead of selecting a value.
	KindAction
)

// Item is one entry of an option source as supplied by the host.
type Item struct {
	Kind Kind

	// KindPrimitive
	Value Value

	// KindOption
	Option Option

	// KindGroup
	Label     string
	HideLabel bool
	Items     []Item

	// KindAction
	Action *Action
}

// Option is the normalized shape every item is converted into.
type Option struct {
	Label       string
	Value       Value
	Description string
	Icon        string
	Disabled    bool

	// Action is set for action rows, which never take part in value lookups.
	Action *Action
}

// IsAction reports whether o is an action row.
func (o Option) IsAction() bool {
	return o.Action != nil
}

// ActionContext is handed to action callbacks.
type ActionContext struct {
	SearchTerm string
}

// Action is a custom row such as "Create new…".
type Action struct {
	Key      string
	Label    string
	Icon     string
	Disabled bool
	// KeepOpen leaves the dropdown open after the action runs.
	KeepOpen bool
	OnClick  func(ActionContext)
	// Condition decides visibility; when nil the label is matched against the query.
	Condition func(ActionContext) bool
}

// Primitive wraps a scalar (string, number, bool or Value) as an item.
func Primitive(v any) Item {
	return Item{Kind: KindPrimitive, Value: Of(v)}
}

// Primitives wraps several scalars.
func Primitives[T any](values ...T) []Item {
	out := make([]Item, len(values))
	for i, v := range values {
		out[i] = Primitive(v)
	}
	return out
}

// Labeled builds an option item.
func Labeled(label string, value any) Item {
	return Item{Kind: KindOption, Option: Option{Label: label, Value: Of(value)}}
}

// FromOption wraps a fully specified option.
func FromOption(o Option) Item {
	return Item{Kind: KindOption, Option: o}
}

// Group builds a named group.
func Group(label string, items ...Item) Item {
	return Item{Kind: KindGroup, Label: label, Items: items}
}

// ActionItem wraps an action row.
func ActionItem(a Action) Item {
	return Item{Kind: KindAction, Action: &a}
}

func (it Item) toOption() Option {
	switch it.Kind {
	case KindPrimitive:
		return Option{Label: it.Value.String(), Value: it.Value}
	case KindAction:
		return Option{Label: it.Action.Label, Icon: it.Action.Icon, Disabled: it.Action.Disabled, Action: it.Action}
	default:
		o := it.Option
		if o.Label == "" {
			o.Label = o.Value.String()
		}
		return o
	}
}
