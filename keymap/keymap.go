package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Mapping struct {
	Reshuffle key.Binding
	Reveal    key.Binding
	Play      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var DefaultMapping = Mapping{
	Reshuffle: key.NewBinding(
		key.WithKeys(" ", "space", tea.KeyEnter.String()),
		key.WithHelp("space", "new note"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "show all octaves"),
	),
	// Matched through keyboard.Bindings, listed here for the help menu.
	Play: key.NewBinding(
		key.WithKeys("a", "w", "s", "e", "d", "f", "t", "g", "y", "h", "u", "j", "k"),
		key.WithHelp("a-k", "play key"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys(tea.KeyCtrlC.String(), tea.KeyEsc.String()),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (m Mapping) ShortHelp() []key.Binding {
	return []key.Binding{m.Play, m.Reshuffle, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Mapping) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Play, m.Reshuffle, m.Reveal},
		{m.Help, m.Quit},
	}
}
