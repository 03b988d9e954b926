// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tty-chat/internal/app"
)

// splashTicks is how many ticks the splash stays up without a key press.
const splashTicks = 30

const (
	statusConnecting     = "Connecting..."
	statusAuthenticating = "Authenticating…"
)

const logo = `
 _   _                _           _
| |_| |_ _   _    ___| |__   __ _| |_
| __| __| | | |  / __| '_ \ / _' | __|
| |_| |_| |_| | | (__| | | | (_| | |_
 \__|\__|\__, |  \___|_| |_|\__,_|\__|
         |___/`

func (m appModel) viewSplash() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.TrimPrefix(logo, "\n")))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("v" + m.buildInfo.Version + " • [ Press any key to continue ]"))
	return b.String()
}

func (m appModel) viewKeyInfo() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("NEW IDENTITY GENERATED"))
	b.WriteString("\n\n")
	if m.identity != nil {
		b.WriteString("Your public key (send this to the admin):\n\n")
		b.WriteString(activeLabelStyle.Render(m.identity.PublicKey))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Fingerprint: "))
		b.WriteString(m.identity.Fingerprint)
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Stored in:   "))
		b.WriteString(m.identity.Path)
		b.WriteString("\n\n")
	}
	b.WriteString("Ask an admin in the chat for an invite:\n")
	b.WriteString(activeLabelStyle.Render("  /admin invite"))
	if m.keyInfoStatus != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.keyInfoStatus))
	}

	return overlayBoxStyle.Render(b.String()) + "\n\n" +
		helpStyle.Render("c: copy public key  enter: connect  esc: back  ctrl+c: quit")
}

func (m *appModel) updateKeyInfo(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.copy):
		if m.identity == nil {
			return nil
		}
		return cmdCopyToClipboard(m.identity.PublicKey)
	case key.Matches(msg, keys.enter):
		return m.openSession("")
	case key.Matches(msg, keys.esc):
		m.current = screenConnect
	}
	return nil
}

type authModel struct {
	spinner spinner.Model
	status  string
}

func newAuthModel() authModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return authModel{spinner: s, status: statusConnecting}
}

func (m appModel) viewAuth() string {
	body := m.auth.spinner.View() + "  " + m.auth.status
	return overlayBoxStyle.Render(titleStyle.Render("AUTHENTICATING")+"\n\n"+body) + "\n\n" +
		helpStyle.Render("esc: cancel  ctrl+c: quit")
}

func (m *appModel) updateAuth(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.esc) {
		m.closeSession()
		m.current = screenConnect
	}
	return nil
}

type enrollModel struct {
	input  textinput.Model
	reason string
}

func newEnrollModel(reason string) enrollModel {
	input := textinput.New()
	input.Placeholder = "invite code"
	input.CharLimit = 128
	input.Width = 40
	input.Focus()
	return enrollModel{input: input, reason: reason}
}

func (m appModel) viewEnroll() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(app.MsgAuthFailed + ": " + m.enroll.reason))
	b.WriteString("\n\n")
	b.WriteString(app.MsgEnrollHint)
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("INVITE CODE", true))
	b.WriteString("\n")
	b.WriteString(m.enroll.input.View())

	return renderPage("ENROLL", b.String(), "enter: enroll  esc: back")
}

func (m *appModel) updateEnroll(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.current = screenConnect
		return nil
	case key.Matches(msg, keys.enter):
		code := strings.TrimSpace(m.enroll.input.Value())
		if code == "" {
			return nil
		}
		m.enroll.input.Reset()
		return m.startConnection(code)
	}

	var cmd tea.Cmd
	m.enroll.input, cmd = m.enroll.input.Update(msg)
	return cmd
}

func (m appModel) viewError() string {
	return overlayBoxStyle.Render(errorStyle.Render("ERROR")+"\n\n"+m.errMsg) + "\n\n" +
		helpStyle.Render("enter/esc: back  ctrl+c: quit")
}

func (m *appModel) updateError(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
		m.errMsg = ""
		m.current = screenConnect
	}
	return nil
}
