package toast

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	core "github.com/alexisbeaulieu97/inkui/internal/toast"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

func TestSyncArmsEachVersionOnce(t *testing.T) {
	t.Parallel()

	p := core.NewProvider(core.ProviderOptions{})
	m := New(p)
	p.Success("Saved", core.Options{ID: "t1"})

	require.NotNil(t, m.Sync())
	require.Equal(t, 1, m.timers.armed["t1"])
	require.Nil(t, m.Sync(), "already armed")

	p.Update("t1", func(it *core.Item) { it.Message = "Saved again" })
	require.NotNil(t, m.Sync())
	require.Equal(t, 2, m.timers.armed["t1"])
}

func TestExpireHonorsVersion(t *testing.T) {
	t.Parallel()

	p := core.NewProvider(core.ProviderOptions{})
	m := New(p)
	p.Info("Working", core.Options{ID: "t1", Duration: time.Second})
	m.Sync()
	p.Update("t1", func(it *core.Item) { it.Message = "Still working" })
	m.Sync()

	m, _ = m.Update(ExpireMsg{ID: "t1", Version: 1})
	_, ok := p.Get("t1")
	require.True(t, ok, "the stale timer is ignored")

	m, _ = m.Update(ExpireMsg{ID: "t1", Version: 2})
	_, ok = p.Get("t1")
	require.False(t, ok)
	require.Empty(t, m.timers.armed)
}

func TestPersistentToastsAreNotArmed(t *testing.T) {
	t.Parallel()

	p := core.NewProvider(core.ProviderOptions{})
	m := New(p)
	p.Warning("Sticky", core.Options{ID: "a", Duration: -1})
	p.Warning("No close", core.Options{ID: "b", HideClose: true})

	require.Nil(t, m.Sync())
	require.Empty(t, m.timers.armed)
}

func TestChangedMsgSyncs(t *testing.T) {
	t.Parallel()

	p := core.NewProvider(core.ProviderOptions{})
	m := New(p)
	p.Error("Boom", core.Options{ID: "e"})

	m, cmd := m.Update(ChangedMsg{})
	require.NotNil(t, cmd)
	require.Contains(t, m.timers.armed, "e")
}

func TestKeysDismissAndTrigger(t *testing.T) {
	t.Parallel()

	clicked := false
	p := core.NewProvider(core.ProviderOptions{})
	p.Info("First", core.Options{ID: "one"})
	p.Info("Second", core.Options{ID: "two", Action: &core.Action{Label: "Undo", OnClick: func() { clicked = true }}})
	p.Info("Locked", core.Options{ID: "three", HideClose: true})

	m := New(p)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Len(t, p.Toasts(), 3, "keys are ignored without focus")

	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.Cursor())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, clicked)
	require.Len(t, p.Toasts(), 2)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Len(t, p.Toasts(), 2, "toasts without a close button stay")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Len(t, p.Toasts(), 1)
	require.Equal(t, 0, m.Cursor())
}

func TestSpinnerRunsWhileLoading(t *testing.T) {
	t.Parallel()

	p := core.NewProvider(core.ProviderOptions{})
	p.Info("Uploading", core.Options{ID: "up"})
	p.Update("up", func(it *core.Item) { it.Loading = true })

	m := New(p)
	require.NotNil(t, m.Init())
	require.True(t, m.timers.spinning)

	p.Remove("up")
	m, cmd := m.Update(spinner.TickMsg{})
	require.Nil(t, cmd)
	require.False(t, m.timers.spinning)
}

func TestView(t *testing.T) {
	t.Parallel()

	p := core.NewProvider(core.ProviderOptions{})
	m := New(p)
	require.Empty(t, m.View())

	p.Success("Saved <b>draft</b>", core.Options{ID: "s", Action: &core.Action{Label: "Open"}})
	view := m.View()
	require.Contains(t, view, "✓")
	require.Contains(t, view, "Saved draft")
	require.Contains(t, view, "×")
	require.Contains(t, view, "Open")
}

func TestRenderMessageShowsLinkTarget(t *testing.T) {
	t.Parallel()

	out := RenderMessage(`Read <a href="https://example.com/docs">the docs</a>`, components.DefaultTheme())
	require.Equal(t, "Read the docs (https://example.com/docs)", out)
}
