package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	nextPage  key.Binding
	prevPage  key.Binding
	quit      key.Binding
	forceQuit key.Binding

	newChat    key.Binding
	copy       key.Binding
	sidebar    key.Binding
	scrollUp   key.Binding
	scrollDown key.Binding

	devLogin  key.Binding
	enterCode key.Binding
	reload    key.Binding
	upload    key.Binding
	search    key.Binding
	stats     key.Binding
	delete    key.Binding
	connect   key.Binding
	theme     key.Binding
	health    key.Binding
	logout    key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	nextPage:  key.NewBinding(key.WithKeys("tab")),
	prevPage:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

	newChat:    key.NewBinding(key.WithKeys("ctrl+n")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y")),
	sidebar:    key.NewBinding(key.WithKeys("ctrl+b")),
	scrollUp:   key.NewBinding(key.WithKeys("pgup")),
	scrollDown: key.NewBinding(key.WithKeys("pgdown")),

	devLogin:  key.NewBinding(key.WithKeys("d")),
	enterCode: key.NewBinding(key.WithKeys("c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	upload:    key.NewBinding(key.WithKeys("u")),
	search:    key.NewBinding(key.WithKeys("/")),
	stats:     key.NewBinding(key.WithKeys("s")),
	delete:    key.NewBinding(key.WithKeys("d")),
	connect:   key.NewBinding(key.WithKeys("c")),
	theme:     key.NewBinding(key.WithKeys("t")),
	health:    key.NewBinding(key.WithKeys("h")),
	logout:    key.NewBinding(key.WithKeys("o")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
