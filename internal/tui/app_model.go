// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tty-chat/internal/adapter"
	"github.com/MKhiriev/go-tty-chat/internal/app"
	"github.com/MKhiriev/go-tty-chat/internal/codec"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/notify"
	"github.com/MKhiriev/go-tty-chat/internal/router"
	"github.com/MKhiriev/go-tty-chat/internal/service"
	"github.com/MKhiriev/go-tty-chat/models"
)

type screen int

const (
	screenSplash screen = iota
	screenConnect
	screenKeyInfo
	screenAuth
	screenEnroll
	screenChat
	screenError
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	router    *router.Router
	notifier  notify.Notifier
	clock     codec.Normalizer
	logger    *logger.Logger
	buildInfo models.AppBuildInfo
	tick      time.Duration

	current screen
	ticks   int
	width   int
	height  int

	connect       connectModel
	keyInfoStatus string
	auth          authModel
	enroll        enrollModel
	chat          chatModel
	errMsg        string

	profiles  models.ProfileRecord
	identity  *models.IdentityInfo
	session   *adapter.Session
	state     models.SessionState
	attention notify.Attention
	title     string
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		cmdTick(m.tick),
		m.cmdLoadProfiles(),
		tea.SetWindowTitle(notify.AppTitle),
	)
}

// Update applies every buffered network event before msg, so one redraw
// follows any number of network events.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, ev := range m.router.Drain() {
		cmds = append(cmds, m.handleNet(ev))
	}

	switch msg := msg.(type) {
	case tickMsg:
		m.ticks++
		if m.current == screenSplash && m.ticks >= splashTicks {
			m.current = screenConnect
		}
		cmds = append(cmds, cmdTick(m.tick))
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.chat.resize(m.chatArea())
	case tea.FocusMsg:
		m.attention.FocusGained()
		cmds = append(cmds, m.syncTitle())
	case tea.BlurMsg:
		m.attention.FocusLost()
	case spinner.TickMsg:
		if m.current == screenAuth {
			var cmd tea.Cmd
			m.auth.spinner, cmd = m.auth.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	case profilesLoadedMsg:
		m.setProfiles(msg.record)
	case profileSavedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("recent connections not saved")
			m.chat.status = service.UserMessage(msg.err)
			cmds = append(cmds, cmdClearStatus())
		}
		m.setProfiles(msg.record)
	case copiedMsg:
		m.setStatus(app.MsgCopied)
		cmds = append(cmds, cmdClearStatus())
	case copyFailedMsg:
		m.logger.Debug().Err(msg.err).Msg("clipboard")
		m.setStatus(app.MsgClipboardFailed)
		cmds = append(cmds, cmdClearStatus())
	case clearStatusMsg:
		m.setStatus("")
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.closeSession()
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m appModel) View() string {
	var body string
	switch m.current {
	case screenSplash:
		body = m.viewSplash()
	case screenConnect:
		body = m.viewConnect()
	case screenKeyInfo:
		body = m.viewKeyInfo()
	case screenAuth:
		body = m.viewAuth()
	case screenEnroll:
		body = m.viewEnroll()
	case screenChat:
		body = m.viewChat()
	case screenError:
		body = m.viewError()
	}
	return appStyle.Render(body)
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.current {
	case screenSplash:
		m.current = screenConnect
		return nil
	case screenConnect:
		return m.updateConnect(msg)
	case screenKeyInfo:
		return m.updateKeyInfo(msg)
	case screenAuth:
		return m.updateAuth(msg)
	case screenEnroll:
		return m.updateEnroll(msg)
	case screenChat:
		return m.updateChat(msg)
	case screenError:
		return m.updateError(msg)
	}
	return nil
}

// chatArea is the space left inside appStyle.
func (m appModel) chatArea() (int, int) {
	w, h := m.width, m.height
	if w == 0 || h == 0 {
		w, h = defaultWidth, defaultHeight
	}
	return w - appStyle.GetHorizontalFrameSize(), h - appStyle.GetVerticalFrameSize()
}

func (m *appModel) setProfiles(record models.ProfileRecord) {
	m.profiles = record
	if m.connect.selected >= len(record.Profiles) {
		m.connect.selected = 0
	}

	server, username := record.Last()
	if m.connect.server() == "" && server != "" {
		m.connect.inputs[fieldServer].SetValue(server)
	}
	if m.connect.username() == "" && username != "" {
		m.connect.inputs[fieldUsername].SetValue(username)
	}
}

func (m *appModel) setStatus(status string) {
	switch m.current {
	case screenConnect:
		m.connect.status = status
	case screenKeyInfo:
		m.keyInfoStatus = status
	case screenChat:
		m.chat.status = status
	}
	if status == "" {
		m.connect.status, m.keyInfoStatus, m.chat.status = "", "", ""
	}
}

func (m *appModel) showError(message string) {
	m.errMsg = message
	m.current = screenError
}

// syncTitle emits a window title command when the unread count changed the
// title.
func (m *appModel) syncTitle() tea.Cmd {
	title := m.attention.WindowTitle()
	if title == m.title {
		return nil
	}
	m.title = title
	return tea.SetWindowTitle(title)
}
