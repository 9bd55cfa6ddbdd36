package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the picker.
type KeyMap struct {
	Open key.Binding // Open a terminal at the selected folder
	Quit key.Binding // Leave without opening anything
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
