package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start    key.Binding
	Stop     key.Binding
	NewArray key.Binding
	NextAlg  key.Binding
	PrevAlg  key.Binding
	Bigger   key.Binding
	Smaller  key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Pattern  key.Binding
	Theme    key.Binding
	Record   key.Binding
	Info     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:    key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "start")),
		Stop:     key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "stop")),
		NewArray: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new array")),
		NextAlg:  key.NewBinding(key.WithKeys("tab", "a"), key.WithHelp("tab", "algorithm")),
		PrevAlg:  key.NewBinding(key.WithKeys("shift+tab", "A"), key.WithHelp("shift+tab", "prev algorithm")),
		Bigger:   key.NewBinding(key.WithKeys("+", "=", "up", "k"), key.WithHelp("+/-", "size")),
		Smaller:  key.NewBinding(key.WithKeys("-", "_", "down", "j")),
		Faster:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "speed")),
		Slower:   key.NewBinding(key.WithKeys("left", "h")),
		Pattern:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pattern")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Record:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "record gif")),
		Info:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info panel")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.NewArray, k.NextAlg, k.Bigger, k.Faster, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.NewArray},
		{k.NextAlg, k.PrevAlg, k.Pattern},
		{k.Bigger, k.Faster},
		{k.Theme, k.Record, k.Info, k.Help, k.Quit},
	}
}
