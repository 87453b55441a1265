package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Shoot key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Shoot, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Shoot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "move right"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "shoot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// domKeys translates terminal key names to the DOM-style names the game
// understands.
var domKeys = map[string]string{
	"a":     "a",
	"left":  "ArrowLeft",
	"d":     "d",
	"right": "ArrowRight",
	" ":     " ",
}

// DOMKey returns the game key name for a game key message.
func (k KeyMap) DOMKey(msg tea.KeyMsg) (string, bool) {
	if !key.Matches(msg, k.Left, k.Right, k.Shoot) {
		return "", false
	}
	name, ok := domKeys[msg.String()]
	return name, ok
}
