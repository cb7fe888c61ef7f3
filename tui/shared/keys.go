package shared

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPanel  key.Binding
	PrevPanel  key.Binding
	Activate   key.Binding
	AddRepo    key.Binding
	EditInputs key.Binding
	Replays    key.Binding
	Search     key.Binding
	Browse     key.Binding
	History    key.Binding
	Help       key.Binding
	Quit       key.Binding
	Escape     key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPanel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next panel"),
	),
	PrevPanel: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev panel"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	AddRepo: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add repo"),
	),
	EditInputs: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "edit inputs"),
	),
	Replays: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "replays"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Browse: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "open in browser"),
	),
	History: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "dispatch history"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPanel, k.Search, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPanel, k.PrevPanel},
		{k.Activate, k.AddRepo, k.EditInputs, k.Replays},
		{k.Search, k.Browse, k.History},
		{k.Help, k.Quit, k.Escape},
	}
}
