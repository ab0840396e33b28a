// Package toast renders the toasts of a provider as a stack of boxes and drives their
// expiry through Bubble Tea ticks.
package toast

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	core "github.com/alexisbeaulieu97/inkui/internal/toast"
	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

const defaultWidth = 44

// ChangedMsg tells the model the provider changed outside of Update, for example
// from a promise goroutine. Send it from ProviderOptions.OnChange.
type ChangedMsg struct{}

// ExpireMsg fires when a toast's timer runs out. Stale versions are ignored.
type ExpireMsg struct {
	ID      string
	Version int
}

// KeyMap lists the bindings active while the toast stack has focus.
type KeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Dismiss key.Binding
	Action  key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "previous")),
		Next:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next")),
		Dismiss: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "dismiss")),
		Action:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run action")),
	}
}

// Model shows the provider's toasts.
type Model struct {
	provider *core.Provider
	keys     KeyMap
	theme    components.Theme
	spinner  spinner.Model

	timers  *timers
	focused bool
	cursor  int
	width   int
}

// timers is shared by copies of the model so Init and Update see the same armed set.
type timers struct {
	// armed maps toast ids to the version their expiry timer was started for.
	armed    map[string]int
	spinning bool
}

// New creates a view over provider.
func New(provider *core.Provider) Model {
	return Model{
		provider: provider,
		keys:     DefaultKeyMap(),
		theme:    components.DefaultTheme(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		timers:   &timers{armed: make(map[string]int)},
		width:    defaultWidth,
	}
}

// WithTheme sets the theme used by View.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	return m
}

// WithWidth sets the box width.
func (m Model) WithWidth(width int) Model {
	if width > 0 {
		m.width = width
	}
	return m
}

// Provider returns the backing provider.
func (m Model) Provider() *core.Provider { return m.provider }

// Focused reports whether the stack takes key input.
func (m Model) Focused() bool { return m.focused }

// Cursor returns the index of the toast under the cursor.
func (m Model) Cursor() int { return m.cursor }

// Focus lets the stack take key input.
func (m *Model) Focus() { m.focused = true }

// Blur stops key handling.
func (m *Model) Blur() { m.focused = false }

// Init arms timers for toasts created before the program started.
func (m Model) Init() tea.Cmd {
	return m.Sync()
}

// Sync starts expiry timers for new or updated toasts and the spinner for loading
// ones. Call it after mutating the provider from inside Update.
func (m *Model) Sync() tea.Cmd {
	items := m.provider.Toasts()
	live := make(map[string]bool, len(items))
	var cmds []tea.Cmd
	loading := false
	for _, it := range items {
		live[it.ID] = true
		loading = loading || it.Loading
		if !it.Expires() {
			delete(m.timers.armed, it.ID)
			continue
		}
		if v, ok := m.timers.armed[it.ID]; ok && v == it.Version {
			continue
		}
		m.timers.armed[it.ID] = it.Version
		cmds = append(cmds, expireAfter(it.ID, it.Version, it.Duration))
	}
	for id := range m.timers.armed {
		if !live[id] {
			delete(m.timers.armed, id)
		}
	}
	if loading && !m.timers.spinning {
		m.timers.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	m.cursor = min(m.cursor, max(len(items)-1, 0))
	return tea.Batch(cmds...)
}

func expireAfter(id string, version int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ExpireMsg{ID: id, Version: version}
	})
}
