package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause    key.Binding
	Step     key.Binding
	Reset    key.Binding
	Color    key.Binding
	Energy   key.Binding
	Snapshot key.Binding
	Copy     key.Binding
	Sound    key.Binding
	Record   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Step:     key.NewBinding(key.WithKeys("."), key.WithHelp(".", "step")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Color:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "colour")),
		Energy:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "energy")),
		Snapshot: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "png")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy points")),
		Sound:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sound")),
		Record:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "record wav")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Reset, k.Snapshot, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.Reset},
		{k.Color, k.Energy},
		{k.Snapshot, k.Copy, k.Record, k.Sound},
		{k.Help, k.Quit},
	}
}
