package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down      key.Binding
	Up        key.Binding
	Home      key.Binding
	End       key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Toggle    key.Binding
	Rename    key.Binding
	Find      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("<j>", "Down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("<k>", "Up"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("<g>", "Top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("<G>", "Bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("<pgup>", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("<pgdn>", "Page down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("<enter>", "Open/Close"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("<r>", "Rename"),
		),
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("</>", "Find"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("<q>", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp is the single hint line shown while browsing.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Toggle, k.Quit}
}

// FullHelp is shown instead when the footer is enabled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp},
		{k.Home, k.End, k.Toggle},
		{k.Rename, k.Find, k.Quit},
	}
}
