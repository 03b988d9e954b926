// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-tty-chat/models"
)

// Connect form fields in tab order. The first three are text inputs.
const (
	fieldServer = iota
	fieldUsername
	fieldKey
	fieldInsecure
	fieldWipe
	fieldCount
)

const sidebarWidth = 32

type connectModel struct {
	inputs   []textinput.Model
	focus    int
	insecure bool

	onProfiles bool
	selected   int

	status string
}

func newConnectModel(server, username string, insecure bool) connectModel {
	serverInput := textinput.New()
	serverInput.Placeholder = "host[:port]"
	serverInput.CharLimit = 255
	serverInput.Width = 40
	serverInput.SetValue(server)

	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.SetValue(username)

	keyInput := textinput.New()
	keyInput.Placeholder = "base64 seed (optional)"
	keyInput.CharLimit = 128
	keyInput.Width = 40
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '*'

	c := connectModel{
		inputs:   []textinput.Model{serverInput, usernameInput, keyInput},
		insecure: insecure,
	}
	if server != "" && username != "" {
		c.focus = fieldUsername
	}
	c.applyFocus()
	return c
}

func (c connectModel) server() string {
	return strings.TrimSpace(c.inputs[fieldServer].Value())
}

func (c connectModel) username() string {
	return strings.TrimSpace(c.inputs[fieldUsername].Value())
}

func (c connectModel) manualKey() string {
	return c.inputs[fieldKey].Value()
}

// fill copies a stored profile into the form.
func (c *connectModel) fill(p models.Profile) {
	c.inputs[fieldServer].SetValue(p.Server)
	c.inputs[fieldUsername].SetValue(p.Username)
}

func (c *connectModel) focusNext() {
	c.focus = (c.focus + 1) % fieldCount
	c.applyFocus()
}

func (c *connectModel) focusPrev() {
	c.focus = (c.focus + fieldCount - 1) % fieldCount
	c.applyFocus()
}

func (c *connectModel) applyFocus() {
	for i := range c.inputs {
		if i == c.focus && !c.onProfiles {
			c.inputs[i].Focus()
		} else {
			c.inputs[i].Blur()
		}
	}
}

func (m *appModel) updateConnect(msg tea.KeyMsg) tea.Cmd {
	c := &m.connect
	profiles := m.profiles.Profiles

	switch {
	case c.onProfiles && key.Matches(msg, keys.up):
		if c.selected > 0 {
			c.selected--
		}
		return nil
	case c.onProfiles && key.Matches(msg, keys.down):
		if c.selected < len(profiles)-1 {
			c.selected++
		}
		return nil
	case len(profiles) > 0 && (key.Matches(msg, keys.left) || key.Matches(msg, keys.right)):
		c.onProfiles = !c.onProfiles
		if c.selected >= len(profiles) {
			c.selected = 0
		}
		c.applyFocus()
		return nil
	case c.onProfiles && key.Matches(msg, keys.enter):
		if c.selected >= len(profiles) {
			return nil
		}
		c.fill(profiles[c.selected])
		c.onProfiles = false
		c.applyFocus()
		return m.startConnection("")
	case c.onProfiles:
		return nil
	case key.Matches(msg, keys.tab):
		c.focusNext()
		return nil
	case key.Matches(msg, keys.backtab):
		c.focusPrev()
		return nil
	case key.Matches(msg, keys.enter):
		if c.focus == fieldWipe {
			m.resetIdentity()
			return nil
		}
		return m.startConnection("")
	case c.focus == fieldInsecure && key.Matches(msg, keys.toggle):
		c.insecure = !c.insecure
		return nil
	}

	if c.focus >= len(c.inputs) {
		return nil
	}
	var cmd tea.Cmd
	c.inputs[c.focus], cmd = c.inputs[c.focus].Update(msg)
	return cmd
}

func (m appModel) viewConnect() string {
	c := m.connect

	var form strings.Builder
	form.WriteString(titleStyle.Render("TTYCHAT"))
	form.WriteString("\n")
	form.WriteString(helpStyle.Render("WELCOME BACK"))
	form.WriteString("\n\n")

	labels := []string{"SERVER", "USERNAME", "PRIVATE KEY (optional)"}
	for i, input := range c.inputs {
		form.WriteString(fieldLabel(labels[i], c.isActive(i)))
		form.WriteString("\n")
		form.WriteString(input.View())
		form.WriteString("\n\n")
	}

	form.WriteString(fieldLabel("TLS MODE", c.isActive(fieldInsecure)))
	form.WriteString("\n")
	tls := checkbox(c.insecure) + " Skip TLS cert verification"
	if c.insecure {
		tls = statusStyle.Render(tls)
	}
	form.WriteString(tls)
	form.WriteString("\n\n")

	form.WriteString(fieldLabel("DANGER", c.isActive(fieldWipe)))
	form.WriteString("\n")
	wipe := "[ Wipe Local Identity ]"
	if c.isActive(fieldWipe) {
		wipe = errorStyle.Render(wipe)
	} else {
		wipe = helpStyle.Render(wipe)
	}
	form.WriteString(wipe)

	if c.status != "" {
		form.WriteString("\n\n")
		form.WriteString(statusStyle.Render(c.status))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewProfiles(), "  ", form.String())

	hints := "←/→: switch to RECENT  tab: move  space: toggle  enter: connect"
	if c.onProfiles {
		hints = "←/→: switch to FORM  ↑/↓: select  enter: connect"
	}
	return body + "\n\n" + helpStyle.Render(hints+"  ctrl+c: quit")
}

func (m appModel) viewProfiles() string {
	c := m.connect

	var b strings.Builder
	b.WriteString(fieldLabel("RECENT", c.onProfiles))
	b.WriteString("\n")
	if len(m.profiles.Profiles) == 0 {
		b.WriteString(helpStyle.Render("No history yet"))
	}
	for i, p := range m.profiles.Profiles {
		line := fitText(fmt.Sprintf("%s@%s", p.Username, p.Server), sidebarWidth-6)
		if i == c.selected && c.onProfiles {
			b.WriteString(activeLabelStyle.Render("▶ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	style := paneStyle
	if c.onProfiles {
		style = activePaneStyle
	}
	return style.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (c connectModel) isActive(field int) bool {
	return !c.onProfiles && c.focus == field
}

func fieldLabel(label string, active bool) string {
	if active {
		return activeLabelStyle.Render(label)
	}
	return labelStyle.Render(label)
}
