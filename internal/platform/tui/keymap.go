package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// InspectorKeyMap defines the key bindings for the stat inspector.
type InspectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Lower  key.Binding
	Raise  key.Binding
	Nerf   key.Binding
	Reroll key.Binding
	Focus  key.Binding
	Load   key.Binding
	Save   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k InspectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Lower, k.Raise, k.Nerf, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k InspectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Lower, k.Raise},
		{k.Nerf, k.Reroll, k.Reload},
		{k.Focus, k.Load, k.Save},
		{k.Help, k.Quit},
	}
}

// DefaultInspectorKeyMap returns default key bindings.
func DefaultInspectorKeyMap() InspectorKeyMap {
	return InspectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev stat"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next stat"),
		),
		Lower: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("left/-", "lower"),
		),
		Raise: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("right/+", "raise"),
		),
		Nerf: key.NewBinding(
			key.WithKeys("n", " "),
			key.WithHelp("n", "nerf"),
		),
		Reroll: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reroll"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "crop bank"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load crop"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "nerf banked crop"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload config"),
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
