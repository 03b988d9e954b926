// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/MKhiriev/go-tty-chat/internal/adapter"
	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/crypto"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/notify"
	"github.com/MKhiriev/go-tty-chat/internal/service"
	"github.com/MKhiriev/go-tty-chat/internal/store"
	"github.com/MKhiriev/go-tty-chat/internal/tui"
	"github.com/MKhiriev/go-tty-chat/models"
)

// App owns the service graph for one process run.
type App struct {
	cfg       *config.ClientConfig
	storages  *store.ClientStorages
	services  *service.ClientServices
	notifier  notify.Notifier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	in  io.Reader
	out io.Writer
}

// NewApp opens the profile store and builds the services. The caller must
// call Run, which releases the store.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	keys := crypto.NewKeyStore(cfg.App.ConfigDir)
	connector := adapter.NewConnector(cfg.Adapter, log)

	return &App{
		cfg:       cfg,
		storages:  storages,
		services:  service.NewClientServices(storages, keys, connector, log),
		notifier:  notify.New(cfg.Notify, log),
		buildInfo: buildInfo,
		logger:    log,
		in:        os.Stdin,
		out:       os.Stdout,
	}, nil
}

// Run starts the terminal UI, or the line frontend when plain mode is
// requested or stdin is not a terminal.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("close storages")
		}
	}()

	if a.plain() {
		a.logger.Info().Msg("starting line frontend")
		return NewHeadless(a.services, a.cfg, a.in, a.out, a.logger).Run(ctx)
	}

	ui, err := tui.New(a.services, a.notifier, a.cfg, a.buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}
	a.logger.Info().Str("version", a.buildInfo.Version).Msg("starting terminal ui")
	return ui.Run(ctx)
}

func (a *App) plain() bool {
	return a.cfg.App.Plain || !isTerminal(a.in)
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
