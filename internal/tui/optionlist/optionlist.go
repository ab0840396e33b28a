// Package optionlist renders the dropdown rows shared by the combobox and the
// autocomplete.
package optionlist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkui/internal/options"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

// DefaultMaxOptions caps the rows rendered per group.
const DefaultMaxOptions = 50

// Marker decides the column drawn before each label.
type Marker int

const (
	// MarkerCheck draws ✓ next to the selected option.
	MarkerCheck Marker = iota
	// MarkerBox draws [x] or [ ] for multiple selection.
	MarkerBox
)

// Params describes one render.
type Params struct {
	Set options.Set
	// Highlight indexes Set.Visible; -1 hides the cursor.
	Highlight  int
	IsSelected func(options.Option) bool
	Marker     Marker
	// MaxOptions caps rows per group; 0 means DefaultMaxOptions.
	MaxOptions int
	Width      int
	// Empty is shown when nothing matches.
	Empty string
	Theme components.Theme
}

// Render draws the grouped rows. Group labels appear unless the group hides them.
func Render(p Params) string {
	t := p.Theme
	if len(p.Set.Visible) == 0 {
		empty := p.Empty
		if empty == "" {
			empty = "No results found"
		}
		return components.TypographyStyle(t, components.TypographyHint).Render(empty)
	}

	limit := p.MaxOptions
	if limit <= 0 {
		limit = DefaultMaxOptions
	}

	var rows []string
	index := 0
	for _, group := range p.Set.Groups {
		if group.Label != "" && !group.HideLabel {
			rows = append(rows, components.TypographyStyle(t, components.TypographyHint).Bold(true).Render(group.Label))
		}
		for i, o := range group.Options {
			if i < limit {
				rows = append(rows, p.row(o, index == p.Highlight))
			}
			index++
		}
	}
	return strings.Join(rows, "\n")
}

// VisibleRows returns how many option rows Render draws for set under limit.
func VisibleRows(set options.Set, limit int) int {
	if limit <= 0 {
		limit = DefaultMaxOptions
	}
	n := 0
	for _, group := range set.Groups {
		n += min(len(group.Options), limit)
	}
	return n
}

func (p Params) row(o options.Option, highlighted bool) string {
	t := p.Theme
	cursor := "  "
	if highlighted {
		cursor = "› "
	}

	selected := !o.IsAction() && p.IsSelected != nil && p.IsSelected(o)
	var mark string
	switch {
	case o.IsAction():
		mark = "+ "
		if p.Marker == MarkerBox {
			mark = "  + "
		}
	case p.Marker == MarkerBox && selected:
		mark = "[x] "
	case p.Marker == MarkerBox:
		mark = "[ ] "
	case selected:
		mark = "✓ "
	default:
		mark = "  "
	}

	label := o.Label
	if o.Icon != "" {
		label = o.Icon + " " + label
	}
	if o.Description != "" {
		label += " " + components.TypographyStyle(t, components.TypographyHint).Render(o.Description)
	}
	if p.Width > 0 {
		label = components.Truncate(label, max(p.Width-lipgloss.Width(cursor+mark), 1))
	}

	style := lipgloss.NewStyle().Foreground(t.Gray(8))
	switch {
	case o.Disabled:
		style = style.Foreground(t.Gray(4))
	case highlighted:
		style = style.Background(t.Gray(2)).Bold(true)
	}
	if o.IsAction() {
		style = style.Italic(true)
	}
	return style.Render(cursor + mark + label)
}
