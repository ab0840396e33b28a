package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

type styles struct {
	title   lipgloss.Style
	subtle  lipgloss.Style
	section lipgloss.Style
	focused lipgloss.Style
	blurred lipgloss.Style
	status  lipgloss.Style
}

func newStyles(t components.Theme) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent()),
		subtle:  lipgloss.NewStyle().Foreground(t.Gray(5)),
		section: lipgloss.NewStyle().MarginTop(1),
		focused: lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(t.Accent()).PaddingLeft(1),
		blurred: lipgloss.NewStyle().Border(lipgloss.HiddenBorder(), false, false, false, true).PaddingLeft(1),
		status:  lipgloss.NewStyle().Foreground(t.Gray(6)).MarginTop(1),
	}
}
