package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the preview key bindings. It implements help.KeyMap.
type keyMap struct {
	Quit       key.Binding
	NextBlock  key.Binding
	PrevBlock  key.Binding
	Narrow     key.Binding
	Widen      key.Binding
	ResetWidth key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	GoTop      key.Binding
	GoBottom   key.Binding
	Help       key.Binding
}

// ShortHelp returns the compact set of keybindings shown by default in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.NextBlock, k.Narrow, k.Widen, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextBlock, k.PrevBlock},
		{k.Narrow, k.Widen, k.ResetWidth},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.GoTop, k.GoBottom},
		{k.Help, k.Quit},
	}
}

// keys holds the default key bindings used by the preview.
var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextBlock:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next block")),
	PrevBlock:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev block")),
	Narrow:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "narrow")),
	Widen:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "widen")),
	ResetWidth: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "fit window")),
	ScrollUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "scroll up")),
	ScrollDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/dn", "scroll down")),
	PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	GoTop:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	GoBottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}
