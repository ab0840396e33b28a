package datepicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the date picker. Input bindings apply while the text
// input has focus, the rest while focus is inside the popup.
type KeyMap struct {
	Commit     key.Binding
	Close      key.Binding
	OpenPopup  key.Binding
	ClearInput key.Binding

	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Cycle    key.Binding
	Select   key.Binding
	Today    key.Binding
	Tomorrow key.Binding
	Clear    key.Binding
	Back     key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		OpenPopup:  key.NewBinding(key.WithKeys("down", "alt+down"), key.WithHelp("↓", "calendar")),
		ClearInput: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),

		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Left:     key.NewBinding(key.WithKeys("left", "h")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		PrevPage: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("[", "previous")),
		NextPage: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("]", "next")),
		Cycle:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "month/year")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Tomorrow: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "tomorrow")),
		Clear:    key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "clear")),
		Back:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "back to input")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Cycle, k.Today, k.Tomorrow, k.Clear, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Commit, k.OpenPopup, k.ClearInput}, k.ShortHelp()}
}
