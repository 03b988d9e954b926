// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/mock"
	"github.com/MKhiriev/go-tty-chat/internal/store"
	"github.com/MKhiriev/go-tty-chat/models"
)

func TestClientProfileService_Profiles_LoadErrorIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileStore(ctrl)
	svc := NewClientProfileService(profiles, logger.Nop())

	profiles.EXPECT().Load(gomock.Any()).Return(models.ProfileRecord{}, store.ErrProfilesCorrupt)

	assert.Equal(t, models.ProfileRecord{}, svc.Profiles(context.Background()))
}

func TestClientProfileService_Remember(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileStore(ctrl)
	svc := NewClientProfileService(profiles, logger.Nop())

	var existing models.ProfileRecord
	existing.Remember("a:7000", "x")

	profiles.EXPECT().Load(gomock.Any()).Return(existing, nil)
	profiles.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.ProfileRecord) error {
			assert.Equal(t, []models.Profile{
				{Server: "b:7000", Username: "y"},
				{Server: "a:7000", Username: "x"},
			}, record.Profiles)
			server, user := record.Last()
			assert.Equal(t, "b:7000", server)
			assert.Equal(t, "y", user)
			return nil
		})

	require.NoError(t, svc.Remember(context.Background(), "b:7000", "y"))
}

func TestClientProfileService_Remember_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileStore(ctrl)
	svc := NewClientProfileService(profiles, logger.Nop())

	profiles.EXPECT().Load(gomock.Any()).Return(models.ProfileRecord{}, nil)
	profiles.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only file system"))

	err := svc.Remember(context.Background(), "a:7000", "x")
	assert.ErrorIs(t, err, ErrSaveProfiles)
}
