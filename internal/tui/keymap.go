package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard keyboard shortcuts.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	ToggleView   key.Binding
	CycleType    key.Binding
	ClearFilters key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	Refresh      key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle table/category view"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle type filter"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move category up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move category down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
