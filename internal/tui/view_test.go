package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestViewRendersBasicLayout(t *testing.T) {
	t.Parallel()

	m := newShowcase(t)
	view := m.View()
	require.Contains(t, view, "inkui • Showcase")
	require.Contains(t, view, "Every widget.")
	require.Contains(t, view, "Due date")
	require.Contains(t, view, "15/03/2024")
	require.Contains(t, view, "Fruit")
	require.Contains(t, view, "Upload")
	require.Contains(t, view, "fruit=cherry")
	require.Contains(t, view, "Showcase loaded")
	require.Contains(t, view, "tab")
}

func TestViewWideLayoutPutsToastsBeside(t *testing.T) {
	t.Parallel()

	m := newShowcase(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	narrow := newShowcase(t).View()
	require.Less(t, lipgloss.Height(m.View()), lipgloss.Height(narrow))
}

func TestTitleFallback(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Showcase", Model{}.title())
}
