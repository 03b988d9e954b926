// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/models"
)

type clientIdentityService struct {
	keys   IdentityStore
	logger *logger.Logger
}

func NewClientIdentityService(keys IdentityStore, log *logger.Logger) ClientIdentityService {
	return &clientIdentityService{keys: keys, logger: log}
}

func (s *clientIdentityService) Prepare(username, manualKey string) (*models.IdentityInfo, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	if strings.TrimSpace(manualKey) != "" {
		if _, err := s.Import(username, manualKey); err != nil {
			return nil, err
		}
	}

	id, isNew, err := s.keys.Load(username)
	if err != nil {
		s.logger.Err(err).Str("username", username).Msg("identity load failed")
		return nil, fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	info := &models.IdentityInfo{
		Username:    username,
		Path:        s.keys.Path(username),
		PublicKey:   id.PublicKeyBase64(),
		Fingerprint: id.Fingerprint(),
		IsNew:       isNew,
		Signer:      id,
	}
	s.logger.Info().
		Str("username", username).
		Str("fingerprint", info.Fingerprint).
		Bool("new", isNew).
		Msg("identity ready")

	return info, nil
}

func (s *clientIdentityService) Reset(username string) (string, bool, error) {
	path, deleted, err := s.keys.Delete(strings.TrimSpace(username))
	if err != nil {
		return path, false, fmt.Errorf("%w: %w", ErrIdentity, err)
	}
	s.logger.Info().Str("path", path).Bool("deleted", deleted).Msg("identity reset")
	return path, deleted, nil
}

func (s *clientIdentityService) Import(username, seedB64 string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}

	if err := s.keys.Import(username, seedB64); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	path := s.keys.Path(username)
	s.logger.Info().Str("path", path).Msg("identity imported")
	return path, nil
}
