// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tty-chat/internal/app"
	"github.com/MKhiriev/go-tty-chat/internal/service"
	"github.com/MKhiriev/go-tty-chat/models"
)

// startConnection prepares the identity typed into the connect form and
// opens a session. A freshly generated key without an invite code stops at
// the key-info screen first.
func (m *appModel) startConnection(inviteCode string) tea.Cmd {
	c := &m.connect
	c.status = ""

	info, err := m.services.IdentityService.Prepare(c.username(), c.manualKey())
	if err != nil {
		if isFormError(err) {
			c.status = service.UserMessage(err)
			m.current = screenConnect
			return nil
		}
		m.showError(service.UserMessage(err))
		return nil
	}
	c.inputs[fieldKey].Reset()
	m.identity = info

	if info.IsNew && inviteCode == "" {
		m.keyInfoStatus = ""
		m.current = screenKeyInfo
		return nil
	}
	return m.openSession(inviteCode)
}

// openSession replaces the current session with a new attempt for the
// loaded identity.
func (m *appModel) openSession(inviteCode string) tea.Cmd {
	c := &m.connect
	if m.identity == nil {
		m.current = screenConnect
		return nil
	}

	server, err := service.NormalizeServerAddress(c.server())
	if err != nil {
		c.status = service.UserMessage(err)
		m.current = screenConnect
		return nil
	}

	m.closeSession()
	session, err := m.services.SessionService.Connect(m.ctx, models.ConnectRequest{
		Server:     server,
		Identity:   m.identity,
		InviteCode: inviteCode,
		Insecure:   c.insecure,
	})
	if err != nil {
		c.status = service.UserMessage(err)
		m.current = screenConnect
		return nil
	}

	m.session = session
	m.router.Attach(session.Queue())
	m.state = models.SessionConnecting
	m.logger.Debug().Str("session_id", session.ID()).Str("server", server).Msg("session opened")

	m.chat = newChatModel(server, m.identity.Username, m.chatAreaWidth(), m.chatAreaHeight())
	m.auth = newAuthModel()
	m.current = screenAuth
	return m.auth.spinner.Tick
}

// closeSession abandons the current session, dropping its pending events.
func (m *appModel) closeSession() {
	if m.session != nil {
		m.session.Discard()
		m.session = nil
	}
	m.router.Detach()
	if m.state != models.SessionIdle {
		m.state = models.SessionClosed
	}
}

func (m *appModel) resetIdentity() {
	c := &m.connect
	username := c.username()
	if username == "" {
		c.status = app.MsgUsernameRequired
		return
	}

	path, deleted, err := m.services.IdentityService.Reset(username)
	switch {
	case err != nil:
		c.status = service.UserMessage(err)
	case deleted:
		c.status = fmt.Sprintf("Deleted identity for %s (%s)", username, path)
		m.identity = nil
	default:
		c.status = fmt.Sprintf("No identity stored for %s", username)
	}
}

// handleNet applies one session event.
func (m *appModel) handleNet(ev models.NetEvent) tea.Cmd {
	m.state = m.state.Next(ev)

	switch ev := ev.(type) {
	case models.EventConnected:
		m.auth.status = statusAuthenticating
	case models.EventAuthOK:
		if ev.Username != "" {
			m.chat.username = ev.Username
		}
		m.chat.input.Focus()
		m.current = screenChat
		return m.cmdRemember(m.chat.server, m.chat.username)
	case models.EventAuthFail:
		m.enroll = newEnrollModel(ev.Reason)
		m.current = screenEnroll
	case models.EventMessage:
		return m.handleServerMessage(ev.Message)
	case models.EventAdminResponse:
		banner, line := adminLines(ev.Action, ev.Data)
		m.chat.adminResponse = banner
		m.chat.adminData = ev.Data
		m.chat.push(chatLine{at: m.clock.Current(), from: adminSender, text: line, kind: lineAdmin})
	case models.EventError:
		m.logger.Warn().Str("error", ev.Message).Msg("session error")
		m.showError(service.NetworkMessage(ev.Message))
	case models.EventDisconnected:
		if m.current == screenChat {
			m.chat.system(m.clock.Current(), app.MsgDisconnected)
		}
		if m.session != nil {
			m.session.Close()
			m.session = nil
		}
	}
	return nil
}

// handleServerMessage updates presence, appends chat lines and raises
// notifications for unseen messages.
func (m *appModel) handleServerMessage(msg models.ServerMessage) tea.Cmd {
	m.chat.roster.Apply(msg)
	if msg.IsPresence() {
		return nil
	}

	m.chat.push(chatLine{at: m.clock.Clock(msg.Timestamp), from: msg.Sender(), text: msg.Body()})
	if !m.attention.Observe(msg, m.chat.username) {
		return nil
	}
	return tea.Batch(m.cmdNotify(msg.Sender(), msg.Body()), m.syncTitle())
}

func (m appModel) chatAreaWidth() int {
	w, _ := m.chatArea()
	return w
}

func (m appModel) chatAreaHeight() int {
	_, h := m.chatArea()
	return h
}

func cmdTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m appModel) cmdLoadProfiles() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService
	return func() tea.Msg {
		return profilesLoadedMsg{record: svc.Profiles(ctx)}
	}
}

func (m appModel) cmdRemember(server, username string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService
	return func() tea.Msg {
		err := svc.Remember(ctx, server, username)
		return profileSavedMsg{record: svc.Profiles(ctx), err: err}
	}
}

func (m appModel) cmdNotify(from, text string) tea.Cmd {
	notifier := m.notifier
	return func() tea.Msg {
		notifier.Notify(from, text)
		return nil
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
