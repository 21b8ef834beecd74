package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines all key bindings. Single-letter bindings only apply while
// browsing the history; the input box takes every printable key.
type keyMap struct {
	Resolve key.Binding
	Switch  key.Binding
	Up      key.Binding
	Down    key.Binding
	Detail  key.Binding
	Reuse   key.Binding
	Delete  key.Binding
	Pin     key.Binding
	Filter  key.Binding
	Theme   key.Binding
	Sort    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Resolve, k.Switch, k.Pin, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Resolve, k.Switch, k.Pin},
		{k.Up, k.Down, k.Detail, k.Reuse, k.Delete},
		{k.Filter, k.Theme, k.Sort, k.Help, k.Quit},
	}
}

var _ help.KeyMap = keyMap{}

var keys = keyMap{
	Resolve: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "resolve"),
	),
	Switch: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "input/history"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Detail: key.NewBinding(
		key.WithKeys("K", "l"),
		key.WithHelp("K", "detail"),
	),
	Reuse: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit again"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("dd", "delete"),
	),
	Pin: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "pin reference"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sections"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
