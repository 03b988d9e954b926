// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/store"
	"github.com/MKhiriev/go-tty-chat/models"
)

type clientProfileService struct {
	profiles store.ProfileStore
	logger   *logger.Logger
}

func NewClientProfileService(profiles store.ProfileStore, log *logger.Logger) ClientProfileService {
	return &clientProfileService{profiles: profiles, logger: log}
}

func (s *clientProfileService) Profiles(ctx context.Context) models.ProfileRecord {
	record, err := s.profiles.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("recent connections unavailable")
		return models.ProfileRecord{}
	}
	return record
}

func (s *clientProfileService) Remember(ctx context.Context, server, username string) error {
	record := s.Profiles(ctx)
	record.Remember(server, username)

	if err := s.profiles.Save(ctx, record); err != nil {
		s.logger.Err(err).Msg("save recent connections failed")
		return fmt.Errorf("%w: %w", ErrSaveProfiles, err)
	}
	return nil
}
