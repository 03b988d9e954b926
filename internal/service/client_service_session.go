// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tty-chat/internal/adapter"
	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/utils"
	"github.com/MKhiriev/go-tty-chat/models"
)

type clientSessionService struct {
	connector adapter.SessionConnector
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

func NewClientSessionService(connector adapter.SessionConnector, log *logger.Logger) ClientSessionService {
	return &clientSessionService{connector: connector, ids: utils.NewUUIDGenerator(), logger: log}
}

func (s *clientSessionService) Connect(ctx context.Context, req models.ConnectRequest) (*adapter.Session, error) {
	server, err := NormalizeServerAddress(req.Server)
	if err != nil {
		return nil, err
	}
	if req.Identity == nil || req.Identity.Signer == nil {
		return nil, ErrNoIdentity
	}

	params := models.SessionParams{
		SessionID:  s.ids.Generate(),
		Server:     server,
		Username:   req.Identity.Username,
		PublicKey:  req.Identity.PublicKey,
		Signer:     req.Identity.Signer,
		EnrollCode: strings.TrimSpace(req.InviteCode),
		Insecure:   req.Insecure,
	}

	s.logger.Info().
		Str("session_id", params.SessionID).
		Str("server", server).
		Bool("enroll", params.Enrolling()).
		Msg("connecting")

	ctx = utils.WithSessionID(ctx, params.SessionID)
	return s.connector.Connect(ctx, params), nil
}

// NormalizeServerAddress trims addr and appends the default port when none
// is given.
func NormalizeServerAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", ErrEmptyServer
	}

	var na config.NetAddress
	if err := na.Set(addr); err != nil {
		return "", fmt.Errorf("%w '%s': %w", ErrInvalidServerAddress, addr, err)
	}
	return na.String(), nil
}
