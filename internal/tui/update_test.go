package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkui/internal/toast"
	tuitoast "github.com/alexisbeaulieu97/inkui/internal/tui/toast"
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func sendKeys(t *testing.T, m Model, keys ...tea.KeyType) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(t, m, tea.KeyMsg{Type: k})
	}
	return m
}

func typeInto(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTabCyclesFocus(t *testing.T) {
	t.Parallel()

	m := newShowcase(t)
	m.Init()

	m = sendKeys(t, m, tea.KeyTab)
	require.Equal(t, "fruit", m.Focused())
	require.True(t, m.fields[1].open(), "the combobox opens on focus")

	m = sendKeys(t, m, tea.KeyTab)
	require.False(t, m.fields[1].open(), "blurring closes the list")

	m = sendKeys(t, m, tea.KeyShiftTab, tea.KeyShiftTab, tea.KeyShiftTab)
	require.Equal(t, "upload", m.Focused(), "focus wraps around")
}

func TestBlurCommitsTypedDate(t *testing.T) {
	t.Parallel()

	m := newShowcase(t)
	m.Init()

	for range len("15/03/2024") {
		m = sendKeys(t, m, tea.KeyBackspace)
	}
	m = typeInto(t, m, "01/04/2024")
	m = sendKeys(t, m, tea.KeyTab)
	require.Equal(t, "2024-04-01", m.Values()["due_date"])
}

func TestProgressKeys(t *testing.T) {
	t.Parallel()

	m := newShowcase(t)
	m.Init()
	m = sendKeys(t, m, tea.KeyShiftTab)
	require.Equal(t, "upload", m.Focused())

	m = sendKeys(t, m, tea.KeyRight, tea.KeyRight)
	require.Equal(t, "62%", m.Values()["upload"])

	for range 10 {
		m = sendKeys(t, m, tea.KeyLeft)
	}
	require.Equal(t, "0%", m.Values()["upload"])
}

func TestToastFocusAndDismiss(t *testing.T) {
	t.Parallel()

	m := newShowcase(t)
	m.Init()

	m = sendKeys(t, m, tea.KeyCtrlT)
	require.True(t, m.toasts.Focused())

	m = typeInto(t, m, "x")
	require.Len(t, m.Provider().Toasts(), 1)
	require.Equal(t, "2024-03-15", m.Values()["due_date"], "keys went to the toast stack")

	m = sendKeys(t, m, tea.KeyCtrlT)
	require.False(t, m.toasts.Focused())
}

func TestChangedMsgKeepsListening(t *testing.T) {
	t.Parallel()

	m := newShowcase(t)
	_, cmd := send(t, m, tuitoast.ChangedMsg{})
	require.NotNil(t, cmd)
}

func TestPromiseTask(t *testing.T) {
	t.Parallel()

	m := newShowcase(t)
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(promiseDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	require.Equal(t, "report.pdf", done.result)

	items := m.Provider().Toasts()
	last := items[len(items)-1]
	require.Equal(t, toast.TypeSuccess, last.Type)
	require.Equal(t, "Saved report.pdf", toast.Plain(last.Message))

	_, cmd = send(t, m, msg)
	require.NotNil(t, cmd, "the finished toast gets an expiry timer")
}

func TestQuitTearsDown(t *testing.T) {
	t.Parallel()

	m := newShowcase(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, m.IsQuitting())
	require.Error(t, m.ctx.Err())
	require.Empty(t, strings.TrimSpace(m.View()))
}
