// Package selection holds the state machines behind the searchable selection widgets:
// a single-value controller (autocomplete, combobox) and a multiple-value controller
// (autocomplete in multiple mode, multiselect).
package selection

import (
	"github.com/alexisbeaulieu97/inkui/internal/logger"
	"github.com/alexisbeaulieu97/inkui/internal/options"
	inkerrors "github.com/alexisbeaulieu97/inkui/pkg/errors"
)

// Scope decides which options SelectAll picks up.
type Scope int

const (
	// ScopeVisible selects the options matching the current query.
	ScopeVisible Scope = iota
	// ScopeAll selects every option, including those hidden by the query.
	ScopeAll
)

// list is the popup state shared by both controllers: option source, query, open
// flag and the highlighted row.
type list struct {
	items []options.Item
	cache options.Cache

	query         string
	typed         bool
	open          bool
	searchFocused bool
	highlight     int

	disabled      bool
	log           *logger.Logger
	onQueryChange func(string)
}

func (l *list) set() options.Set {
	return l.cache.Normalize(l.items, l.query)
}

func (l *list) all() []options.Option {
	return l.cache.Normalize(l.items, l.query).All
}

func (l *list) setItems(items []options.Item) {
	l.items = items
	l.cache.Invalidate()
	l.clampHighlight(len(l.set().Visible))
}

func (l *list) setQuery(q string) {
	if q == l.query {
		return
	}
	l.query = q
	l.highlight = 0
	if l.onQueryChange != nil {
		l.onQueryChange(q)
	}
}

func (l *list) clampHighlight(n int) {
	switch {
	case n == 0:
		l.highlight = 0
	case l.highlight >= n:
		l.highlight = n - 1
	case l.highlight < 0:
		l.highlight = 0
	}
}

// move steps the highlight by delta over rows, skipping disabled ones and wrapping at
// both ends.
func (l *list) move(rows []options.Option, delta int) {
	n := len(rows)
	if n == 0 {
		l.highlight = 0
		return
	}
	l.clampHighlight(n)
	next := l.highlight
	for i := 0; i < n; i++ {
		next = ((next+delta)%n + n) % n
		if !rows[next].Disabled {
			l.highlight = next
			return
		}
	}
}

func (l *list) highlighted(rows []options.Option) (options.Option, bool) {
	if len(rows) == 0 {
		return options.Option{}, false
	}
	l.clampHighlight(len(rows))
	return rows[l.highlight], true
}

// resolve looks v up in the full option list, synthesizing a placeholder option from
// the raw value when nothing matches.
func (l *list) resolve(v options.Value) options.Option {
	if o, ok := l.set().Lookup(v); ok {
		return o
	}
	err := inkerrors.NewNoMatchingOptionError(v.String())
	l.log.WithFields(map[string]any{"value": v.String()}).Debug(err.Error())
	return options.Option{Label: v.String(), Value: v}
}

func (l *list) runAction(a *options.Action) {
	if a == nil || a.Disabled || a.OnClick == nil {
		return
	}
	a.OnClick(options.ActionContext{SearchTerm: l.query})
}
