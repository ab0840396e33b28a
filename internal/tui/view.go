package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// wideLayout is the width from which toasts sit beside the widgets.
const wideLayout = 100

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st := newStyles(m.theme)

	sections := []string{st.title.Render(fmt.Sprintf("inkui • %s", m.title()))}
	if m.doc != nil && strings.TrimSpace(m.doc.Description) != "" {
		sections = append(sections, st.subtle.Render(m.doc.Description))
	}

	for i, f := range m.fields {
		style := st.blurred
		if i == m.focus && !m.toasts.Focused() {
			style = st.focused
		}
		sections = append(sections, st.section.Render(style.Render(f.view())))
	}

	sections = append(sections, st.status.Render(m.statusLine()))
	main := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if stack := m.toasts.View(); stack != "" {
		if m.width >= wideLayout {
			main = lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", stack)
		} else {
			main = lipgloss.JoinVertical(lipgloss.Left, main, "", stack)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, "", m.help.View(m.keys))
}

func (m Model) statusLine() string {
	parts := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		v := f.value()
		if v == "" {
			v = "—"
		}
		parts = append(parts, fmt.Sprintf("%s=%s", f.id, v))
	}
	return strings.Join(parts, "  ")
}

func (m Model) title() string {
	if m.doc != nil && strings.TrimSpace(m.doc.Name) != "" {
		return m.doc.Name
	}
	return "Showcase"
}
