// ABOUTME: Key bindings for the interactive editor.
// ABOUTME: Ctrl+S saves, Esc closes the note, Tab moves focus.

package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Save  key.Binding
	Close key.Binding
	Focus key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close note"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
