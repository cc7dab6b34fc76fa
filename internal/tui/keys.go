package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add      key.Binding
	Complete key.Binding
	Delete   key.Binding
	Return   key.Binding
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Edit     key.Binding
	Quit     key.Binding
	Cancel   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Complete: key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "complete")),
		Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Return:   key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "return")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Edit:     key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "new item")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// helpFor returns the bindings shown for the focused area.
func (k keyMap) helpFor(f focusArea) []key.Binding {
	switch f {
	case focusIncomplete:
		return []key.Binding{k.Complete, k.Delete, k.Up, k.Down, k.Next, k.Edit, k.Quit}
	case focusComplete:
		return []key.Binding{k.Return, k.Up, k.Down, k.Next, k.Edit, k.Quit}
	default:
		return []key.Binding{k.Add, k.Next, k.Cancel}
	}
}
