package tui

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Add    key.Binding
	Remove key.Binding
	Clear  key.Binding
	Filter key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding

	Submit key.Binding
	Yes    key.Binding
	No     key.Binding
	Force  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Add:    key.NewBinding(key.WithKeys("a", "o", "i"), key.WithHelp("a", "add")),
		Remove: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
		Clear:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Force:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap. Disabled bindings are skipped by the help
// view, so the clear and filter hints follow the list's control visibility.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Remove, k.Filter, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.Cancel},
		{k.Add, k.Remove, k.Clear, k.Filter},
		{k.Help, k.Quit},
	}
}

// Bindings lists every binding shown in help, in legend order.
func Bindings() []key.Binding {
	k := newKeyMap()
	var out []key.Binding
	for _, col := range k.FullHelp() {
		out = append(out, col...)
	}
	return out
}
