// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	pickUp     key.Binding
	pickDown   key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	search     key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	reload     key.Binding
	toRegister key.Binding
	buildInfo  key.Binding
	yes        key.Binding
	no         key.Binding
}

// Letter bindings are only consulted on screens without text inputs, pickers
// use the arrow keys alone so typing is never intercepted.
var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	pickUp:     key.NewBinding(key.WithKeys("up")),
	pickDown:   key.NewBinding(key.WithKeys("down")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	search:     key.NewBinding(key.WithKeys("/")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	reload:     key.NewBinding(key.WithKeys("r")),
	toRegister: key.NewBinding(key.WithKeys("ctrl+r")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
