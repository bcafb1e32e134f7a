package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevCategory key.Binding
	NextCategory key.Binding
	Up           key.Binding
	Down         key.Binding
	Add          key.Binding
	Remove       key.Binding
	Clear        key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevCategory: key.NewBinding(
			key.WithKeys("left", "shift+tab", "h"),
			key.WithHelp("←", "prev category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("right", "tab", "l"),
			key.WithHelp("→", "next category"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "+", "enter"),
			key.WithHelp("+", "add to cart"),
		),
		Remove: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove one"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear cart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.Down, k.Add, k.Remove, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevCategory, k.NextCategory, k.Up, k.Down},
		{k.Add, k.Remove, k.Clear, k.Quit},
	}
}
