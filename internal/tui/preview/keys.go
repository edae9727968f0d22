package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Flex      key.Binding
	Direction key.Binding
	Justify   key.Binding
	Align     key.Binding
	Padding   key.Binding
	PaddingX  key.Binding
	PaddingY  key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Flex:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle flex")),
		Direction: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "direction")),
		Justify:   key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "justify")),
		Align:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "align")),
		Padding:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "padding")),
		PaddingX:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "padding x")),
		PaddingY:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "padding y")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flex, k.Direction, k.Padding, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flex, k.Direction, k.Justify, k.Align},
		{k.Padding, k.PaddingX, k.PaddingY},
		{k.Reset, k.Help, k.Quit},
	}
}
