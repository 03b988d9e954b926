// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal frontend: splash, connect form,
// key info, authentication, enrollment, chat and error screens.
//
// Session events reach the model through a [router.Router]: every update
// drains the buffered events before handling the terminal message, and a
// periodic tick keeps draining while the user is idle.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tty-chat/internal/codec"
	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/notify"
	"github.com/MKhiriev/go-tty-chat/internal/router"
	"github.com/MKhiriev/go-tty-chat/internal/service"
	"github.com/MKhiriev/go-tty-chat/models"
)

type TUI struct {
	services  *service.ClientServices
	notifier  notify.Notifier
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, notifier notify.Notifier, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || cfg == nil {
		return nil, errors.New("tui: services and config are required")
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &TUI{services: services, notifier: notifier, cfg: cfg, buildInfo: buildInfo, logger: log}, nil
}

// Run shows the UI until the user quits or ctx ends. The session, if any,
// is closed on return.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.notifier, t.cfg, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	).Run()
	if result, ok := finalModel.(appModel); ok {
		result.closeSession()
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func newAppModel(ctx context.Context, services *service.ClientServices, notifier notify.Notifier, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	m := appModel{
		ctx:       ctx,
		services:  services,
		router:    router.New(nil, log),
		notifier:  notifier,
		clock:     codec.NewNormalizer(cfg.Codec.MillisThreshold),
		logger:    log,
		buildInfo: buildInfo,
		tick:      cfg.Workers.TickInterval,
		current:   screenSplash,
		connect:   newConnectModel(cfg.Adapter.ServerAddress, cfg.App.Username, cfg.Adapter.Insecure),
		attention: notify.NewAttention(),
		title:     notify.AppTitle,
	}
	if m.tick <= 0 {
		m.tick = config.DefaultTickInterval
	}
	m.chat = newChatModel("", "", m.chatAreaWidth(), m.chatAreaHeight())
	return m
}
