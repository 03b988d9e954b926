// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-tty-chat/internal/adapter"
	"github.com/MKhiriev/go-tty-chat/internal/app"
	"github.com/MKhiriev/go-tty-chat/internal/codec"
	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/router"
	"github.com/MKhiriev/go-tty-chat/internal/service"
	"github.com/MKhiriev/go-tty-chat/internal/utils"
	"github.com/MKhiriev/go-tty-chat/internal/workers"
	"github.com/MKhiriev/go-tty-chat/models"
)

const (
	cmdQuit  = "/quit"
	cmdAdmin = "/admin "
)

// Headless is the line-oriented frontend: stdin lines are chat input and
// session events are printed as text. It connects with the configured
// server and username right away.
//
// After an authentication failure the next input line is taken as an
// invite code and the session is retried with enrollment.
type Headless struct {
	services *service.ClientServices
	cfg      *config.ClientConfig
	in       io.Reader
	out      io.Writer
	clock    codec.Normalizer
	logger   *logger.Logger

	ctx      context.Context
	router   *router.Router
	identity *models.IdentityInfo
	session  *adapter.Session
	state    models.SessionState
	roster   models.Roster
	username string
	// awaitingInvite is set between an auth failure and the next line.
	awaitingInvite bool
	pending        []string
}

func NewHeadless(services *service.ClientServices, cfg *config.ClientConfig, in io.Reader, out io.Writer, log *logger.Logger) *Headless {
	return &Headless{
		services: services,
		cfg:      cfg,
		in:       in,
		out:      out,
		clock:    codec.NewNormalizer(cfg.Codec.MillisThreshold),
		logger:   log,
		ctx:      context.Background(),
	}
}

// Run connects and processes events until the session ends, stdin closes,
// the user types /quit or ctx ends.
func (h *Headless) Run(ctx context.Context) error {
	if h.cfg.Adapter.ServerAddress == "" || strings.TrimSpace(h.cfg.App.Username) == "" {
		return ErrPlainTarget
	}
	h.ctx = ctx

	info, err := h.services.IdentityService.Prepare(h.cfg.App.Username, "")
	if err != nil {
		return fmt.Errorf("prepare identity: %s", service.UserMessage(err))
	}
	h.identity = info
	if info.IsNew {
		h.printf("New identity generated at %s", info.Path)
		h.printf("Public key: %s", info.PublicKey)
		h.printf("Fingerprint: %s", info.Fingerprint)
		h.printf("%s", app.MsgEnrollHint)
	}

	tick := h.cfg.Workers.TickInterval
	if tick <= 0 {
		tick = config.DefaultTickInterval
	}
	events := utils.NewUnbounded[router.Event]()
	defer events.Stop()
	h.router = router.New(events, h.logger)

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go workers.NewWorkers(
		workers.NewTickWorker(tick, events.In(), h.logger),
		workers.NewLineInputWorker(h.in, events.In(), h.logger),
	).Run(workerCtx)

	if err = h.connect(""); err != nil {
		return err
	}

	err = h.router.Run(ctx, h)
	h.Render()
	h.closeSession()

	if errors.Is(err, context.Canceled) || errors.Is(err, router.ErrSourceClosed) {
		return nil
	}
	return err
}

func (h *Headless) connect(inviteCode string) error {
	h.closeSession()

	session, err := h.services.SessionService.Connect(h.ctx, models.ConnectRequest{
		Server:     h.cfg.Adapter.ServerAddress,
		Identity:   h.identity,
		InviteCode: inviteCode,
		Insecure:   h.cfg.Adapter.Insecure,
	})
	if err != nil {
		return fmt.Errorf("connect: %s", service.UserMessage(err))
	}

	h.session = session
	h.username = h.identity.Username
	h.router.Attach(session.Queue())
	h.state = models.SessionConnecting
	h.printf("Connecting to %s...", h.cfg.Adapter.ServerAddress)
	return nil
}

func (h *Headless) closeSession() {
	if h.session != nil {
		h.session.Discard()
		h.session = nil
	}
	if h.router != nil {
		h.router.Detach()
	}
}

// HandleNet queues the text for ev. It stops the loop when the session
// ends, unless an invite code is expected.
func (h *Headless) HandleNet(ev models.NetEvent) bool {
	h.state = h.state.Next(ev)

	switch ev := ev.(type) {
	case models.EventConnected:
		h.printf("Connected, authenticating...")
	case models.EventAuthOK:
		if ev.Username != "" {
			h.username = ev.Username
		}
		h.printf("Logged in as %s. Type /quit to leave.", h.username)
		if err := h.services.ProfileService.Remember(h.ctx, h.cfg.Adapter.ServerAddress, h.username); err != nil {
			h.logger.Warn().Err(err).Msg("recent connections not saved")
			h.printf("%s", service.UserMessage(err))
		}
	case models.EventAuthFail:
		h.printf("%s: %s", app.MsgAuthFailed, ev.Reason)
		h.printf("%s", app.MsgEnrollHint)
		h.awaitingInvite = true
	case models.EventMessage:
		h.handleServerMessage(ev.Message)
	case models.EventAdminResponse:
		h.printf("[ADMIN >> %s] %s", ev.Action, ev.Data)
	case models.EventError:
		h.logger.Warn().Str("error", ev.Message).Msg("session error")
		h.printf("Error: %s", service.NetworkMessage(ev.Message))
	case models.EventDisconnected:
		h.printf("%s", app.MsgDisconnected)
		if h.session != nil {
			h.session.Close()
			h.session = nil
		}
		return !h.awaitingInvite
	}
	return false
}

func (h *Headless) handleServerMessage(msg models.ServerMessage) {
	h.roster.Apply(msg)
	if msg.IsPresence() {
		h.printf("Online (%d): %s", h.roster.Count, strings.Join(h.roster.Names, ", "))
		return
	}
	h.printf("[%s] %s: %s", h.clock.Clock(msg.Timestamp), msg.Sender(), msg.Body())
}

// Render writes the queued lines.
func (h *Headless) Render() {
	for _, line := range h.pending {
		if _, err := fmt.Fprintln(h.out, line); err != nil {
			h.logger.Debug().Err(err).Msg("write output")
			break
		}
	}
	h.pending = h.pending[:0]
}

// HandleEvent treats each input line as chat input.
func (h *Headless) HandleEvent(ev router.Event) bool {
	switch ev.Kind {
	case router.KindInputClosed:
		return true
	case router.KindLine:
		return h.handleLine(strings.TrimSpace(ev.Text))
	}
	return false
}

func (h *Headless) handleLine(line string) bool {
	if line == "" {
		return false
	}
	if line == cmdQuit {
		return true
	}

	if h.awaitingInvite {
		h.awaitingInvite = false
		if err := h.connect(line); err != nil {
			h.printf("%s", err)
			return true
		}
		return false
	}

	var cmd models.NetCommand = models.SendMessage{Text: line}
	if action, ok := strings.CutPrefix(line, cmdAdmin); ok {
		if action = strings.TrimSpace(action); action != "" {
			cmd = models.SendAdminCmd{Action: action}
		}
	}
	if h.session == nil || !h.session.Send(cmd) {
		h.printf("%s", app.MsgDisconnected)
	}
	return false
}

func (h *Headless) printf(format string, args ...any) {
	h.pending = append(h.pending, fmt.Sprintf(format, args...))
}
