package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	CoarseLeft  key.Binding
	CoarseRight key.Binding
	Tab         key.Binding
	Enter       key.Binding
	Esc         key.Binding
	Quit        key.Binding
	Help        key.Binding
	CopyColor   key.Binding
	ToggleDark  key.Binding
	ToggleDebug key.Binding
	ToggleLog   key.Binding
}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "navigate up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "navigate down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "-"),
			key.WithHelp("←/-", "decrease channel"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "+", "="),
			key.WithHelp("→/+", "increase channel"),
		),
		CoarseLeft: key.NewBinding(
			key.WithKeys("shift+left", "pgdown"),
			key.WithHelp("shift+←", "decrease by 10 steps"),
		),
		CoarseRight: key.NewBinding(
			key.WithKeys("shift+right", "pgup"),
			key.WithHelp("shift+→", "increase by 10 steps"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open mode / commit color"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		CopyColor: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy color as hex"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug info"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle activity log"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.Enter},
		{k.Left, k.Right, k.CoarseLeft, k.CoarseRight, k.CopyColor},
		{k.ToggleLog, k.ToggleDark, k.ToggleDebug, k.Help, k.Esc, k.Quit},
	}
}
