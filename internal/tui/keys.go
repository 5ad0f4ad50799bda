package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	nextField key.Binding
	prevField key.Binding
	quit      key.Binding
	newSheet  key.Binding
	edit      key.Binding
	delete    key.Binding
	export    key.Binding
	buildInfo key.Binding
	save      key.Binding
	templates key.Binding
	media     key.Binding
	addFiles  key.Binding
	addLink   key.Binding
	remove    key.Binding
	copy      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	nextField: key.NewBinding(key.WithKeys("tab", "down")),
	prevField: key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newSheet:  key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	export:    key.NewBinding(key.WithKeys("p")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	templates: key.NewBinding(key.WithKeys("ctrl+t")),
	media:     key.NewBinding(key.WithKeys("ctrl+o")),
	addFiles:  key.NewBinding(key.WithKeys("a")),
	addLink:   key.NewBinding(key.WithKeys("y")),
	remove:    key.NewBinding(key.WithKeys("x", "delete")),
	copy:      key.NewBinding(key.WithKeys("c")),
	yes:       key.NewBinding(key.WithKeys("o", "y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
