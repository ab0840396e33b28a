package autocomplete

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkui/internal/options"
	"github.com/alexisbeaulieu97/inkui/internal/tui/optionlist"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

// View renders the label, the trigger and, when open, the dropdown.
func (m Model) View() string {
	t := m.theme
	var parts []string
	if m.opts.Label != "" {
		parts = append(parts, components.TypographyStyle(t, components.TypographyLabel).Render(m.opts.Label))
	}
	parts = append(parts, m.triggerView())
	if m.ctrl.IsOpen() {
		parts = append(parts, m.dropdownView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) triggerView() string {
	t := m.theme
	text := m.DisplayValue()
	if text == "" {
		text = components.TypographyStyle(t, components.TypographyHint).Render(m.opts.Placeholder)
	}
	chevron := "▾"
	if m.ctrl.IsOpen() {
		chevron = "▴"
	}
	inner := max(m.opts.Width-4, 1)
	text = components.Truncate(text, max(inner-2, 1))
	gap := max(inner-lipgloss.Width(text)-1, 1)

	border := t.Gray(3)
	if m.focused {
		border = t.Accent()
	}
	style := lipgloss.NewStyle().Border(t.Borders.Rounded).BorderForeground(border).Padding(0, 1)
	if m.ctrl.Disabled() {
		style = style.Foreground(t.Gray(4)).BorderForeground(t.Gray(2))
	}
	return style.Render(text + strings.Repeat(" ", gap) + chevron)
}

func (m Model) dropdownView() string {
	t := m.theme
	var rows []string

	if !m.opts.HideSearch {
		search := m.search.View()
		if m.loading {
			search += " " + m.spinner.View()
		}
		rows = append(rows, search, components.NewDivider().WithLength(m.opts.Width-4).View())
	} else if m.loading {
		rows = append(rows, m.spinner.View())
	}

	marker := optionlist.MarkerCheck
	isSelected := func(o options.Option) bool { return o.Value == m.single.Value() }
	if m.multi != nil {
		marker = optionlist.MarkerBox
		isSelected = func(o options.Option) bool { return m.multi.IsSelected(o.Value) }
	}
	rows = append(rows, optionlist.Render(optionlist.Params{
		Set:        m.ctrl.Visible(),
		Highlight:  m.ctrl.HighlightIndex(),
		IsSelected: isSelected,
		Marker:     marker,
		MaxOptions: m.opts.MaxOptions,
		Width:      m.opts.Width - 4,
		Theme:      t,
	}))

	if m.showFooter() {
		rows = append(rows, components.NewDivider().WithLength(m.opts.Width-4).View(), m.footerView())
	}

	return lipgloss.NewStyle().
		Border(t.Borders.Rounded).
		BorderForeground(t.Gray(2)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) footerView() string {
	if m.multi == nil {
		return components.NewButton("Clear").WithSize(components.SizeSm).View()
	}
	all := components.NewButton("Select All").WithSize(components.SizeSm)
	if m.multi.AllSelected() {
		all = components.NewButton("Clear All").WithSize(components.SizeSm)
	}
	return all.View()
}
