package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the showcase bindings. They win over the focused widget.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Toasts  key.Binding
	Promise key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous widget")),
		Toasts:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toasts")),
		Promise: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "run task")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toasts, k.Promise, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
