package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the desktop.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Tab   key.Binding // Next focus zone

	// Actions
	Enter  key.Binding // Launch icon, click taskbar item, open row
	Start  key.Binding // Toggle start menu
	Escape key.Binding // Clear selection / close start menu

	// Window
	Minimize   key.Binding
	Maximize   key.Binding
	Close      key.Binding
	Cycle      key.Binding // Focus next open window
	CycleBack  key.Binding // Focus previous open window
	Fullscreen key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch zone"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "minimize"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("+", "m"),
			key.WithHelp("+/m", "maximize"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next window"),
		),
		CycleBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev window"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f11"),
			key.WithHelp("f11", "full screen"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Start, k.Minimize, k.Maximize, k.Close, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Tab},                  // Navigation
		{k.Enter, k.Start, k.Escape},                            // Actions
		{k.Minimize, k.Maximize, k.Close, k.Cycle, k.CycleBack}, // Window
		{k.Fullscreen, k.Help, k.Quit},                          // General
	}
}
