// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tty-chat/internal/adapter"
	"github.com/MKhiriev/go-tty-chat/internal/app"
	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/crypto"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/mock"
	"github.com/MKhiriev/go-tty-chat/internal/notify"
	"github.com/MKhiriev/go-tty-chat/internal/service"
	"github.com/MKhiriev/go-tty-chat/models"
)

type sentNotification struct {
	from string
	text string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) Notify(from, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{from: from, text: text})
}

func (n *recordingNotifier) all() []sentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentNotification(nil), n.sent...)
}

type fixture struct {
	identity *mock.MockClientIdentityService
	sessions *mock.MockClientSessionService
	profiles *mock.MockClientProfileService
	signer   *mock.MockSigner
	notifier *recordingNotifier
	model    appModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		identity: mock.NewMockClientIdentityService(ctrl),
		sessions: mock.NewMockClientSessionService(ctrl),
		profiles: mock.NewMockClientProfileService(ctrl),
		signer:   mock.NewMockSigner(ctrl),
		notifier: &recordingNotifier{},
	}
	services := &service.ClientServices{
		IdentityService: f.identity,
		SessionService:  f.sessions,
		ProfileService:  f.profiles,
	}
	cfg := &config.ClientConfig{
		Workers: config.ClientWorkers{TickInterval: 10 * time.Millisecond},
	}

	f.model = newAppModel(context.Background(), services, f.notifier, cfg, models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop())
	f.model.clock.Now = func() time.Time { return time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC) }
	f.model.clock.Location = time.UTC
	f.model.current = screenConnect
	return f
}

func (f *fixture) identityInfo(username string, isNew bool) *models.IdentityInfo {
	return &models.IdentityInfo{
		Username:    username,
		Path:        "/tmp/" + username + ".key",
		PublicKey:   "PUBKEY",
		Fingerprint: "SHA256:abc",
		IsNew:       isNew,
		Signer:      f.signer,
	}
}

// chatting puts the model on the chat screen with a live session.
func (f *fixture) chatting(t *testing.T) *adapter.Session {
	t.Helper()
	f.model.connect.inputs[fieldServer].SetValue("chat.example.org")
	f.model.connect.inputs[fieldUsername].SetValue("alice")

	session := adapter.NewSession("s1")
	f.identity.EXPECT().Prepare("alice", "").Return(f.identityInfo("alice", false), nil)
	f.sessions.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(session, nil)

	f.model.startConnection("")
	f.model.handleNet(models.EventConnected{})
	f.model.handleNet(models.EventAuthOK{Username: "alice"})
	require.Equal(t, screenChat, f.model.current)
	return session
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(appModel)
	require.True(t, ok)
	return model, cmd
}

func keyPress(k string) tea.KeyMsg {
	types := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"pgup":      tea.KeyPgUp,
		"pgdown":    tea.KeyPgDown,
		"home":      tea.KeyHome,
		"end":       tea.KeyEnd,
		"f1":        tea.KeyF1,
		"ctrl+y":    tea.KeyCtrlY,
		"ctrl+c":    tea.KeyCtrlC,
		"space":     tea.KeySpace,
	}
	if kt, ok := types[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// execute runs cmd and every command nested in batches. Commands that block
// on a timer must not be passed here.
func execute(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, execute(c)...)
	}
	return out
}

func chatMessage(from, text string) models.ServerMessage {
	return models.ServerMessage{Type: models.TypeMsg, From: &from, Text: &text, Timestamp: models.TextTimestamp("2026-01-02T08:15:00Z")}
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(nil, nil, &config.ClientConfig{}, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)

	ui, err := New(&service.ClientServices{}, nil, &config.ClientConfig{}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, notify.Nop{}, ui.notifier)
}

func TestNewAppModel_Defaults(t *testing.T) {
	cfg := &config.ClientConfig{
		App:     config.ClientApp{Username: "bob"},
		Adapter: config.ClientAdapter{ServerAddress: "h:1", Insecure: true},
	}
	m := newAppModel(context.Background(), &service.ClientServices{}, notify.Nop{}, cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Equal(t, screenSplash, m.current)
	assert.Equal(t, config.DefaultTickInterval, m.tick)
	assert.Equal(t, "h:1", m.connect.server())
	assert.Equal(t, "bob", m.connect.username())
	assert.True(t, m.connect.insecure)
	assert.Equal(t, fieldUsername, m.connect.focus)
	assert.True(t, m.attention.Focused)
}

func TestSplash_AdvancesAfterTicksOrKey(t *testing.T) {
	f := newFixture(t)
	m := f.model
	m.current = screenSplash

	for i := 0; i < splashTicks-1; i++ {
		m, _ = update(t, m, tickMsg(time.Now()))
	}
	assert.Equal(t, screenSplash, m.current)
	m, _ = update(t, m, tickMsg(time.Now()))
	assert.Equal(t, screenConnect, m.current)

	m.current = screenSplash
	m, _ = update(t, m, keyPress("x"))
	assert.Equal(t, screenConnect, m.current)
	assert.Contains(t, m.viewSplash(), "v1.2.3")
}

func TestUpdate_CtrlCQuitsAndClosesSession(t *testing.T) {
	f := newFixture(t)
	session := f.chatting(t)

	m, cmd := update(t, f.model, keyPress("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Nil(t, m.session)
	assert.False(t, session.Send(models.SendMessage{Text: "late"}))
}

func TestUpdate_DrainsNetworkEventsBeforeMessage(t *testing.T) {
	f := newFixture(t)
	f.model.connect.inputs[fieldServer].SetValue("chat.example.org:7000")
	f.model.connect.inputs[fieldUsername].SetValue("alice")

	session := adapter.NewSession("s1")
	f.identity.EXPECT().Prepare("alice", "").Return(f.identityInfo("alice", false), nil)
	f.sessions.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(session, nil)

	m, _ := update(t, f.model, keyPress("enter"))
	require.Equal(t, screenAuth, m.current)
	assert.Equal(t, models.SessionConnecting, m.state)

	events, _ := session.Producer()
	events.Push(models.EventConnected{})
	events.Push(models.EventAuthOK{Username: "alice"})
	events.Push(models.EventMessage{Message: chatMessage("bob", "hi")})

	m, _ = update(t, m, tickMsg(time.Now()))

	assert.Equal(t, screenChat, m.current)
	assert.Equal(t, models.SessionAuthenticated, m.state)
	require.Len(t, m.chat.lines, 1)
	assert.Equal(t, "bob", m.chat.lines[0].from)
	assert.Equal(t, "08:15", m.chat.lines[0].at)
}

func TestUpdate_OneTickAppliesWholeBacklog(t *testing.T) {
	f := newFixture(t)
	f.model.connect.inputs[fieldServer].SetValue("chat.example.org:7000")
	f.model.connect.inputs[fieldUsername].SetValue("alice")

	session := adapter.NewSession("s1")
	f.identity.EXPECT().Prepare("alice", "").Return(f.identityInfo("alice", false), nil)
	f.sessions.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(session, nil)

	m, _ := update(t, f.model, keyPress("enter"))

	events, _ := session.Producer()
	events.Push(models.EventConnected{})
	events.Push(models.EventAuthOK{Username: "alice"})
	const n = 25
	for i := 0; i < n; i++ {
		events.Push(models.EventMessage{Message: chatMessage("bob", fmt.Sprintf("line %d", i))})
	}

	m, _ = update(t, m, tickMsg(time.Now()))

	require.Len(t, m.chat.lines, n)
	for i, line := range m.chat.lines {
		assert.Equal(t, fmt.Sprintf("line %d", i), line.text)
	}
	assert.True(t, m.router.Attached())
}

func TestFocus_ServerLineWithoutSenderNotifies(t *testing.T) {
	f := newFixture(t)
	f.chatting(t)

	m, _ := update(t, f.model, tea.BlurMsg{})

	text := "server restarting"
	cmd := m.handleServerMessage(models.ServerMessage{Type: models.TypeMsg, Text: &text})
	require.NotNil(t, cmd)
	execute(cmd)
	assert.Equal(t, 1, m.attention.Unread)
	assert.Equal(t, []sentNotification{{from: "system", text: "server restarting"}}, f.notifier.all())
}

func TestFocus_UpdatesAttentionAndTitle(t *testing.T) {
	f := newFixture(t)
	f.chatting(t)

	m, _ := update(t, f.model, tea.BlurMsg{})
	assert.False(t, m.attention.Focused)

	cmd := m.handleServerMessage(chatMessage("bob", "ping"))
	require.NotNil(t, cmd)
	execute(cmd)
	assert.Equal(t, 1, m.attention.Unread)
	assert.Equal(t, "(1 unread) ttychat", m.title)
	assert.Equal(t, []sentNotification{{from: "bob", text: "ping"}}, f.notifier.all())

	m, cmd = update(t, m, tea.FocusMsg{})
	assert.True(t, m.attention.Focused)
	assert.Zero(t, m.attention.Unread)
	assert.Equal(t, notify.AppTitle, m.title)
	assert.NotNil(t, cmd)
}

func TestProfilesLoaded_PrefillsEmptyForm(t *testing.T) {
	f := newFixture(t)
	server, username := "h:1", "carol"
	record := models.ProfileRecord{
		Profiles:     []models.Profile{{Server: "h:1", Username: "carol"}},
		LastServer:   &server,
		LastUsername: &username,
	}

	m, _ := update(t, f.model, profilesLoadedMsg{record: record})
	assert.Equal(t, "h:1", m.connect.server())
	assert.Equal(t, "carol", m.connect.username())
	assert.Len(t, m.profiles.Profiles, 1)

	m.connect.inputs[fieldUsername].SetValue("dave")
	m, _ = update(t, m, profilesLoadedMsg{record: record})
	assert.Equal(t, "dave", m.connect.username())
}

func TestProfileSaved_ErrorShownInChat(t *testing.T) {
	f := newFixture(t)
	f.chatting(t)

	m, cmd := update(t, f.model, profileSavedMsg{err: service.ErrSaveProfiles})
	assert.Equal(t, app.MsgProfilesNotSaved, m.chat.status)
	assert.NotNil(t, cmd)
}

func TestCmdRemember(t *testing.T) {
	f := newFixture(t)
	record := models.ProfileRecord{Profiles: []models.Profile{{Server: "h:1", Username: "alice"}}}
	f.profiles.EXPECT().Remember(gomock.Any(), "h:1", "alice").Return(nil)
	f.profiles.EXPECT().Profiles(gomock.Any()).Return(record)

	msg := f.model.cmdRemember("h:1", "alice")()
	assert.Equal(t, profileSavedMsg{record: record}, msg)
}

func TestCmdLoadProfiles(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Profiles(gomock.Any()).Return(models.ProfileRecord{})

	assert.Equal(t, profilesLoadedMsg{}, f.model.cmdLoadProfiles()())
}

func TestCopyMessages_SetStatusOnCurrentScreen(t *testing.T) {
	f := newFixture(t)
	f.model.current = screenKeyInfo

	m, cmd := update(t, f.model, copiedMsg{})
	assert.Equal(t, app.MsgCopied, m.keyInfoStatus)
	assert.NotNil(t, cmd)

	m, _ = update(t, m, copyFailedMsg{err: errors.New("no xclip")})
	assert.Equal(t, app.MsgClipboardFailed, m.keyInfoStatus)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.keyInfoStatus)
}

func TestWindowSize_ResizesChat(t *testing.T) {
	f := newFixture(t)
	m, _ := update(t, f.model, tea.WindowSizeMsg{Width: 120, Height: 40})

	w, h := m.chatArea()
	assert.Equal(t, 120-appStyle.GetHorizontalFrameSize(), w)
	assert.Equal(t, 40-appStyle.GetVerticalFrameSize(), h)
	assert.Equal(t, w, m.chat.width)
	assert.Equal(t, h, m.chat.height)
}

func TestView_RendersEveryScreen(t *testing.T) {
	f := newFixture(t)
	m := f.model

	cases := map[screen]string{
		screenSplash:  "Press any key",
		screenConnect: "Skip TLS cert verification",
		screenAuth:    statusConnecting,
		screenError:   "ERROR",
	}
	m.auth = newAuthModel()
	for s, want := range cases {
		m.current = s
		assert.Contains(t, m.View(), want, "screen %d", s)
	}
}

func TestViewKeyInfo_ShowsIdentity(t *testing.T) {
	f := newFixture(t)
	id, err := crypto.Generate()
	require.NoError(t, err)

	f.model.identity = &models.IdentityInfo{
		Username:    "alice",
		Path:        "/cfg/alice.key",
		PublicKey:   id.PublicKeyBase64(),
		Fingerprint: id.Fingerprint(),
		IsNew:       true,
	}
	view := f.model.viewKeyInfo()
	assert.Contains(t, view, id.PublicKeyBase64())
	assert.Contains(t, view, id.Fingerprint())
	assert.Contains(t, view, "/admin invite")
}
