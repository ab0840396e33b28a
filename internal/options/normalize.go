package options

import (
	"strings"
)

// GroupView is one rendered section of a filtered option list.
type GroupView struct {
	Key       int
	Label     string
	HideLabel bool
	Options   []Option
}

// Set is the normalized form of an option source for one query.
type Set struct {
	Query string
	// All holds every option in source order, unfiltered, for lookups by value.
	All []Option
	// Visible holds the options matching Query in source order.
	Visible []Option
	// Groups partitions Visible for rendering. Groups left empty by the filter are dropped.
	Groups []GroupView
}

// Normalize flattens items and filters them against query. Runs of ungrouped items
// form unnamed groups so mixed sources keep their order.
func Normalize(items []Item, query string) Set {
	set := Set{Query: query}
	ctx := ActionContext{SearchTerm: query}

	var (
		pending      []Option
		pendingStart int
	)
	flush := func() {
		if len(pending) == 0 {
			return
		}
		set.appendGroup(GroupView{Key: pendingStart}, pending, ctx)
		pending = nil
	}

	for i, it := range items {
		switch it.Kind {
		case KindGroup:
			flush()
			var members []Option
			for _, child := range flatten(it.Items) {
				members = append(members, child.toOption())
			}
			set.appendGroup(GroupView{Key: i, Label: it.Label, HideLabel: it.HideLabel}, members, ctx)
		case KindPrimitive, KindOption, KindAction:
			if it.Kind == KindAction && it.Action == nil {
				continue
			}
			if len(pending) == 0 {
				pendingStart = i
			}
			pending = append(pending, it.toOption())
		}
	}
	flush()
	return set
}

func (s *Set) appendGroup(group GroupView, members []Option, ctx ActionContext) {
	for _, o := range members {
		if !o.IsAction() {
			s.All = append(s.All, o)
		}
		if Matches(o, ctx.SearchTerm) {
			group.Options = append(group.Options, o)
			s.Visible = append(s.Visible, o)
		}
	}
	if len(group.Options) > 0 {
		s.Groups = append(s.Groups, group)
	}
}

func flatten(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Kind == KindGroup {
			out = append(out, flatten(it.Items)...)
			continue
		}
		if it.Kind == KindAction && it.Action == nil {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Matches reports whether o satisfies query: a case-insensitive substring of the label
// or the stringified value. The query is trimmed and an empty query matches everything.
// Action rows defer to their Condition when one is set.
func Matches(o Option, query string) bool {
	if o.Action != nil && o.Action.Condition != nil {
		return o.Action.Condition(ActionContext{SearchTerm: query})
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.Label), needle) {
		return true
	}
	if o.IsAction() {
		return false
	}
	return strings.Contains(strings.ToLower(o.Value.String()), needle)
}

// Filter returns the options of list matching query, in order.
func Filter(list []Option, query string) []Option {
	out := make([]Option, 0, len(list))
	for _, o := range list {
		if Matches(o, query) {
			out = append(out, o)
		}
	}
	return out
}

// Lookup finds the selectable option with value v.
func (s Set) Lookup(v Value) (Option, bool) {
	if v.IsZero() {
		return Option{}, false
	}
	for _, o := range s.All {
		if o.Value == v {
			return o, true
		}
	}
	return Option{}, false
}

// Selectable returns the visible options that are not action rows.
func (s Set) Selectable() []Option {
	out := make([]Option, 0, len(s.Visible))
	for _, o := range s.Visible {
		if !o.IsAction() {
			out = append(out, o)
		}
	}
	return out
}

// Labels returns the labels of list.
func Labels(list []Option) []string {
	out := make([]string, len(list))
	for i, o := range list {
		out[i] = o.Label
	}
	return out
}

// Cache memoizes the last normalization so unchanged input yields the identical Set.
// Treat option slices as immutable; pass a new slice to change the options.
type Cache struct {
	items []Item
	query string
	set   Set
	valid bool
}

// Normalize returns the cached Set when items is the same slice and query is unchanged.
func (c *Cache) Normalize(items []Item, query string) Set {
	if c.valid && c.query == query && sameSlice(c.items, items) {
		return c.set
	}
	c.items, c.query = items, query
	c.set = Normalize(items, query)
	c.valid = true
	return c.set
}

// Invalidate forces the next call to recompute.
func (c *Cache) Invalidate() {
	c.valid = false
}

func sameSlice(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
