// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-tty-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_store_mock.go -package=mock

// ProfileStore persists the recent-connection record.
//
// Load returns an empty record when nothing was saved yet. Save replaces the
// whole record.
type ProfileStore interface {
	Load(ctx context.Context) (models.ProfileRecord, error)
	Save(ctx context.Context, record models.ProfileRecord) error
}
