package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	core "github.com/alexisbeaulieu97/inkui/internal/toast"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

var icons = map[core.Type]string{
	core.TypeSuccess: "✓",
	core.TypeError:   "✕",
	core.TypeWarning: "!",
	core.TypeInfo:    "i",
}

// View renders the toasts oldest first. It is empty when there are none.
func (m Model) View() string {
	items := m.provider.Toasts()
	if len(items) == 0 {
		return ""
	}
	boxes := make([]string, len(items))
	for i, it := range items {
		boxes[i] = m.box(it, m.focused && i == m.cursor)
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

func (m Model) box(it core.Item, selected bool) string {
	t := m.theme
	tone := components.ToneForStatus(string(it.Type))

	icon := icons[it.Type]
	if it.Loading {
		icon = m.spinner.View()
	}
	icon = lipgloss.NewStyle().Foreground(t.Scale(tone).Step(6)).Bold(true).Render(icon)

	// border, padding, icon column and close column
	textWidth := max(m.width-10, 8)
	body := components.Fit(RenderMessage(it.Message, t), textWidth, components.OverflowWrap)

	closeMark := " "
	if it.Closable {
		closeMark = components.TypographyStyle(t, components.TypographyHint).Render("×")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		icon+" ",
		lipgloss.NewStyle().Width(textWidth).Render(body),
		" "+closeMark,
	)

	rows := []string{row}
	if it.Action != nil {
		rows = append(rows, components.NewButton(it.Action.Label).
			WithTone(tone).
			WithVariant(components.VariantSubtle).
			WithFocused(selected).
			View())
	}

	border := t.Scale(tone).Step(3)
	if selected {
		border = t.Accent()
	}
	return lipgloss.NewStyle().
		Border(t.Borders.Rounded).
		BorderForeground(border).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderMessage styles a sanitized message: bold, italic and underline runs keep their
// style and links show their target after the text.
func RenderMessage(message string, t components.Theme) string {
	var b strings.Builder
	for _, seg := range core.Segments(message) {
		style := lipgloss.NewStyle().Bold(seg.Bold).Italic(seg.Italic).Underline(seg.Underline)
		text := seg.Text
		if seg.Href != "" {
			style = style.Underline(true).Foreground(t.Accent())
			text += " (" + seg.Href + ")"
		}
		b.WriteString(style.Render(text))
	}
	return b.String()
}
