// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-tty-chat/internal/app"
	"github.com/MKhiriev/go-tty-chat/models"
)

const (
	userListWidth = 22
	pageLines     = 10

	systemSender = "─ sys ─"
	adminSender  = "ADMIN"

	cmdMute   = "/mute"
	cmdUnmute = "/unmute"
	cmdAdmin  = "/admin "
)

type lineKind int

const (
	lineChat lineKind = iota
	lineSystem
	lineAdmin
)

type chatLine struct {
	at   string
	from string
	text string
	kind lineKind
}

type chatModel struct {
	server   string
	username string

	lines  []chatLine
	roster models.Roster

	viewport viewport.Model
	input    textinput.Model

	showHelp   bool
	focusUsers bool

	// adminResponse is the banner of the last admin answer, adminData its
	// raw payload for ctrl+y.
	adminResponse string
	adminData     string

	status string
	width  int
	height int
}

func newChatModel(server, username string, width, height int) chatModel {
	input := textinput.New()
	input.Placeholder = "Type a message… (/mute · /unmute · /admin <action>)"
	input.CharLimit = 4096
	input.Prompt = "> "

	c := chatModel{
		server:   server,
		username: username,
		viewport: viewport.New(0, 0),
		input:    input,
	}
	c.resize(width, height)
	return c
}

// resize lays the chat out in a width x height area.
func (c *chatModel) resize(width, height int) {
	c.width, c.height = width, height

	// title, divider, input, hint and two pane borders
	c.viewport.Width = max(width-userListWidth-4, 10)
	c.viewport.Height = max(height-6, 3)
	c.input.Width = max(width-4, 10)
	c.refresh(true)
}

// push appends l, keeping the view pinned to the bottom when it was there.
func (c *chatModel) push(l chatLine) {
	follow := c.viewport.AtBottom()
	c.lines = append(c.lines, l)
	c.refresh(follow)
}

func (c *chatModel) system(at, text string) {
	c.push(chatLine{at: at, from: systemSender, text: text, kind: lineSystem})
}

func (c *chatModel) refresh(follow bool) {
	rendered := make([]string, 0, len(c.lines))
	wrap := lipgloss.NewStyle().Width(c.viewport.Width)
	for _, l := range c.lines {
		rendered = append(rendered, wrap.Render(c.renderLine(l)))
	}
	c.viewport.SetContent(strings.Join(rendered, "\n"))
	if follow {
		c.viewport.GotoBottom()
	}
}

func (c chatModel) renderLine(l chatLine) string {
	at := timeStyle.Render(l.at)
	switch l.kind {
	case lineSystem:
		return at + " " + systemStyle.Render(l.from+" "+l.text)
	case lineAdmin:
		return at + " " + adminStyle.Render(l.from) + " " + l.text
	}

	from := senderStyle.Render(l.from)
	if l.from == c.username {
		from = selfStyle.Render(l.from)
	}
	return at + " " + from + ": " + l.text
}

func (m *appModel) updateChat(msg tea.KeyMsg) tea.Cmd {
	c := &m.chat

	if key.Matches(msg, keys.tab) {
		c.focusUsers = !c.focusUsers
		return nil
	}
	if key.Matches(msg, keys.help) {
		c.showHelp = !c.showHelp
		return nil
	}
	if c.showHelp {
		c.showHelp = false
		return nil
	}

	switch {
	case key.Matches(msg, keys.up):
		c.viewport.LineUp(1)
	case key.Matches(msg, keys.down):
		c.viewport.LineDown(1)
	case key.Matches(msg, keys.pageUp):
		c.viewport.LineUp(pageLines)
	case key.Matches(msg, keys.pageDown):
		c.viewport.LineDown(pageLines)
	case key.Matches(msg, keys.home):
		c.viewport.GotoTop()
	case key.Matches(msg, keys.end):
		c.viewport.GotoBottom()
	case key.Matches(msg, keys.copyData):
		if c.adminData == "" {
			c.status = app.MsgNoAdminData
			return cmdClearStatus()
		}
		return cmdCopyToClipboard(c.adminData)
	case key.Matches(msg, keys.esc):
		if m.session == nil {
			m.current = screenConnect
		}
	case key.Matches(msg, keys.enter):
		return m.submitChat()
	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return cmd
	}
	return nil
}

// submitChat handles the input line: local commands, admin commands and
// plain messages.
func (m *appModel) submitChat() tea.Cmd {
	c := &m.chat
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}
	c.input.Reset()

	switch {
	case text == cmdMute:
		m.attention.Muted = true
		c.system(m.clock.Current(), app.MsgMuted+". Type /unmute to re-enable.")
		return nil
	case text == cmdUnmute:
		m.attention.Muted = false
		c.system(m.clock.Current(), app.MsgUnmuted+".")
		return nil
	}

	var cmd models.NetCommand = models.SendMessage{Text: text}
	if action, ok := strings.CutPrefix(text, cmdAdmin); ok {
		action = strings.TrimSpace(action)
		if action == "" {
			return nil
		}
		cmd = models.SendAdminCmd{Action: action}
	}

	if m.session == nil || !m.session.Send(cmd) {
		c.system(m.clock.Current(), app.MsgDisconnected)
		return nil
	}
	c.viewport.GotoBottom()
	return nil
}

func (m appModel) viewChat() string {
	c := m.chat
	if c.showHelp {
		return viewChatHelp()
	}

	mutedMark := ""
	if m.attention.Muted {
		mutedMark = "  │  muted"
	}
	title := titleStyle.Render("TTYCHAT") + helpStyle.Render(fmt.Sprintf(
		"  │  %s  │  you: %s  │  USERS: %d  │  %s%s",
		c.server, c.username, c.roster.Count, m.now().Format("15:04:05"), mutedMark,
	))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	if c.adminResponse != "" {
		b.WriteString(adminStyle.Render(fitText(c.adminResponse, c.width)))
		b.WriteString("\n")
	}

	messages := paneStyle.Render(c.viewport.View())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, messages, c.viewUsers()))
	b.WriteString("\n")
	b.WriteString(c.input.View())
	b.WriteString("\n")

	if c.status != "" {
		b.WriteString(statusStyle.Render(c.status))
	} else {
		b.WriteString(helpStyle.Render("enter: send  ↑↓/pgup/pgdn: scroll  home/end: top/bottom  tab: focus  ctrl+y: copy admin data  f1: help  ctrl+c: quit"))
	}
	return b.String()
}

func (c chatModel) viewUsers() string {
	var b strings.Builder
	b.WriteString(fieldLabel(fmt.Sprintf("ONLINE (%d)", len(c.roster.Names)), c.focusUsers))
	if len(c.roster.Names) == 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("(empty)"))
	}
	for _, name := range c.roster.Names {
		b.WriteString("\n")
		if name == c.username {
			b.WriteString(selfStyle.Render("▶ ● " + fitText(name, userListWidth-6)))
		} else {
			b.WriteString("  ● " + fitText(name, userListWidth-6))
		}
	}

	style := paneStyle
	if c.focusUsers {
		style = activePaneStyle
	}
	return style.Width(userListWidth).Height(c.viewport.Height).Render(b.String())
}

var chatHelp = [][2]string{
	{"enter", "Send message"},
	{"↑ / ↓", "Scroll one line"},
	{"pgup / pgdn", "Scroll ten lines"},
	{"home / end", "Jump to oldest / latest"},
	{"tab", "Focus input / user list"},
	{"ctrl+u", "Clear input before cursor"},
	{"← / →", "Move cursor"},
	{"ctrl+y", "Copy last admin data"},
	{"f1", "Toggle this help"},
	{"ctrl+c", "Quit"},
	{"", ""},
	{"/mute", "Mute notifications"},
	{"/unmute", "Unmute notifications"},
	{"/admin invite", "Request an invite code"},
}

func viewChatHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("KEYBINDS"))
	b.WriteString("\n\n")
	for _, row := range chatHelp {
		if row[0] == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(activeLabelStyle.Render(fmt.Sprintf("%-14s", row[0])))
		b.WriteString(" ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[ any key = close ]"))
	return overlayBoxStyle.Render(b.String())
}

// adminLines renders an admin response as the banner and the scrollback
// line.
func adminLines(action, data string) (banner, line string) {
	return fmt.Sprintf("[%s >> %s] %s", adminSender, action, data), fmt.Sprintf("[%s] %s", action, data)
}

func (m appModel) now() time.Time {
	if m.clock.Now != nil {
		return m.clock.Now().In(m.clockLocation())
	}
	return time.Now()
}

func (m appModel) clockLocation() *time.Location {
	if m.clock.Location == nil {
		return time.Local
	}
	return m.clock.Location
}
