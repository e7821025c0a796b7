package components

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings shared by every screen.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Speak  key.Binding
	Next   key.Binding
	Choose []key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "select")),
	Speak:  key.NewBinding(key.WithKeys("s", "space"), key.WithHelp("S", "listen")),
	Next:   key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("Enter", "next")),
	Choose: []key.Binding{
		key.NewBinding(key.WithKeys("1", "a")),
		key.NewBinding(key.WithKeys("2", "b")),
		key.NewBinding(key.WithKeys("3", "c")),
		key.NewBinding(key.WithKeys("4", "d")),
	},
}
