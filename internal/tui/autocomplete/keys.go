package autocomplete

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the autocomplete bindings. Unbound keys go to the search field while
// the dropdown is open.
type KeyMap struct {
	Open      key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Close     key.Binding
	SelectAll key.Binding
	ClearAll  key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:      key.NewBinding(key.WithKeys("enter", " ", "down"), key.WithHelp("enter", "open")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		ClearAll:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Open}, k.ShortHelp(), {k.SelectAll, k.ClearAll}}
}
