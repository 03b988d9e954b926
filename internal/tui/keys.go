// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

// Letter keys are never bound outside the splash and key-info screens: every
// other screen has a focused text input.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	home     key.Binding
	end      key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	toggle   key.Binding
	help     key.Binding
	copy     key.Binding
	copyData key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	home:     key.NewBinding(key.WithKeys("home")),
	end:      key.NewBinding(key.WithKeys("end")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	toggle:   key.NewBinding(key.WithKeys(" ", "space")),
	help:     key.NewBinding(key.WithKeys("f1")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyData: key.NewBinding(key.WithKeys("ctrl+y")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
}
