package datepicker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
	dp "github.com/alexisbeaulieu97/inkui/internal/datepicker"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

const cellWidth = 4

// View renders the label, the input and, when open, the popup.
func (m Model) View() string {
	t := m.theme
	opts := m.ctrl.Options()

	var parts []string
	if opts.Label != "" {
		parts = append(parts, components.TypographyStyle(t, components.TypographyLabel).Render(opts.Label))
	}
	parts = append(parts, m.inputView())
	if m.ctrl.IsOpen() {
		parts = append(parts, m.popupView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) inputView() string {
	t := m.theme
	border := t.Gray(3)
	if m.focused && !m.pop.focused {
		border = t.Accent()
	}
	style := lipgloss.NewStyle().
		Border(t.Borders.Rounded).
		BorderForeground(border).
		Padding(0, 1)

	chevron := "▾"
	if m.ctrl.IsOpen() {
		chevron = "▴"
	}
	body := m.input.View()
	opts := m.ctrl.Options()
	if opts.Disabled || !m.ctrl.Editable() {
		text := m.ctrl.DisplayText()
		if text == "" {
			text = components.TypographyStyle(t, components.TypographyHint).Render(opts.Placeholder)
		}
		body = text
	}
	if opts.Disabled {
		style = style.Foreground(t.Gray(4)).BorderForeground(t.Gray(2))
	}
	return style.Render(body + " " + chevron)
}

func (m Model) popupView() string {
	t := m.theme
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		"‹ ",
		components.TypographyStyle(t, components.TypographyTitle).Render(m.ctrl.Header()),
		" ›",
	)

	var body string
	switch m.ctrl.View() {
	case dp.ViewMonth:
		body = m.monthGrid()
	case dp.ViewYear:
		body = m.yearGrid()
	default:
		body = m.dayGrid()
	}

	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewButton("Today").WithVariant(components.VariantGhost).View(),
		components.NewButton("Tomorrow").WithVariant(components.VariantGhost).View(),
		components.NewButton("Clear").WithVariant(components.VariantGhost).WithDisabled(!m.ctrl.Options().Clearable).View(),
	)

	border := t.Gray(2)
	if m.pop.focused {
		border = t.Accent()
	}
	return lipgloss.NewStyle().
		Border(t.Borders.Rounded).
		BorderForeground(border).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer))
}

func (m Model) dayGrid() string {
	t := m.theme
	head := make([]string, 0, 7)
	for _, initial := range calendar.WeekdayInitials(m.ctrl.Options().WeekStart) {
		head = append(head, components.TypographyStyle(t, components.TypographyHint).Width(cellWidth).Align(lipgloss.Center).Render(initial))
	}
	rows := []string{strings.Join(head, "")}

	for _, week := range m.ctrl.Weeks() {
		cells := make([]string, 0, 7)
		for _, day := range week {
			cells = append(cells, m.dayCell(day))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

func (m Model) dayCell(day calendar.Day) string {
	t := m.theme
	style := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Foreground(t.Gray(8))
	switch {
	case day.IsSelected:
		style = style.Background(t.Gray(8)).Foreground(t.White).Bold(true)
	case !day.InMonth:
		style = style.Foreground(t.Gray(3))
	}
	if day.IsToday && !day.IsSelected {
		style = style.Bold(true).Underline(true).Foreground(t.Accent())
	}
	if m.pop.focused && day.Date == m.pop.day {
		style = style.Reverse(true)
	}
	return style.Render(fmt.Sprintf("%d", day.Date.Day))
}

func (m Model) monthGrid() string {
	cells := make([]string, 0, 12)
	for i, label := range calendar.MonthLabels {
		month := time.Month(i + 1)
		cells = append(cells, m.pageCell(label, m.pop.focused && month == m.pop.month, month == m.ctrl.Month()))
	}
	return gridRows(cells, 3)
}

func (m Model) yearGrid() string {
	years := m.ctrl.YearRange()
	cells := make([]string, 0, len(years))
	for i, y := range years {
		cells = append(cells, m.pageCell(fmt.Sprintf("%d", y), m.pop.focused && i == m.pop.yearIdx, y == m.ctrl.Year()))
	}
	return gridRows(cells, 3)
}

func (m Model) pageCell(label string, cursor, current bool) string {
	t := m.theme
	style := lipgloss.NewStyle().Width(cellWidth + 4).Align(lipgloss.Center).Foreground(t.Gray(8))
	if current {
		style = style.Bold(true).Foreground(t.Accent())
	}
	if cursor {
		style = style.Reverse(true)
	}
	return style.Render(label)
}

func gridRows(cells []string, perRow int) string {
	rows := make([]string, 0, len(cells)/perRow+1)
	for i := 0; i < len(cells); i += perRow {
		end := min(i+perRow, len(cells))
		rows = append(rows, strings.Join(cells[i:end], ""))
	}
	return strings.Join(rows, "\n")
}
