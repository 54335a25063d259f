package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the roster page bindings.
type KeyMap struct {
	SortID         key.Binding
	SortName       key.Binding
	SortDemography key.Binding
	Country        key.Binding
	Gender         key.Binding
	Clear          key.Binding
	Retry          key.Binding
	Open           key.Binding
	Back           key.Binding
	Quit           key.Binding
	Navigate       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SortID:         key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "sort id")),
		SortName:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sort name")),
		SortDemography: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sort age")),
		Country:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "country")),
		Gender:         key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gender")),
		Clear:          key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Retry:          key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Open:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Back:           key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "j", "k", "pgup", "pgdown", "home", "end"),
			key.WithHelp("↑↓/jk", "navigate"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.SortID, k.SortName, k.SortDemography,
		k.Country, k.Gender, k.Clear,
		k.Navigate, k.Open, k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SortID, k.SortName, k.SortDemography},
		{k.Country, k.Gender, k.Clear},
		{k.Navigate, k.Open, k.Back},
		{k.Retry, k.Quit},
	}
}
