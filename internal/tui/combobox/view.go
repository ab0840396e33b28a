package combobox

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkui/internal/options"
	"github.com/alexisbeaulieu97/inkui/internal/tui/optionlist"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

// View renders the label, the input and, when open, the option list.
func (m Model) View() string {
	t := m.theme
	var parts []string
	if m.opts.Label != "" {
		parts = append(parts, components.TypographyStyle(t, components.TypographyLabel).Render(m.opts.Label))
	}

	border := t.Gray(3)
	if m.focused {
		border = t.Accent()
	}
	field := lipgloss.NewStyle().Border(t.Borders.Rounded).BorderForeground(border).Padding(0, 1)
	if m.ctrl.Disabled() {
		field = field.Foreground(t.Gray(4)).BorderForeground(t.Gray(2))
	}
	chevron := "▾"
	if m.ctrl.IsOpen() {
		chevron = "▴"
	}
	parts = append(parts, field.Render(m.input.View()+" "+chevron))

	if m.ctrl.IsOpen() {
		selected := m.ctrl.Value()
		list := optionlist.Render(optionlist.Params{
			Set:        m.ctrl.Visible(),
			Highlight:  m.ctrl.HighlightIndex(),
			IsSelected: func(o options.Option) bool { return o.Value == selected },
			MaxOptions: m.opts.MaxOptions,
			Width:      m.opts.Width - 4,
			Empty:      fmt.Sprintf("No results found for %q", m.ctrl.Query()),
			Theme:      t,
		})
		parts = append(parts, lipgloss.NewStyle().
			Border(t.Borders.Rounded).
			BorderForeground(t.Gray(2)).
			Padding(0, 1).
			Render(list))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
