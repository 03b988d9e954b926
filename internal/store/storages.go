// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
)

// ClientStorages groups the client-side stores.
type ClientStorages struct {
	// Profiles is the recent-connection record.
	Profiles ProfileStore

	db *DB
}

// NewClientStorages picks the profile backend:
//  1. cfg.DB.DSN set: SQLite at that path, migrated on open.
//  2. Otherwise: the JSON file at cfg.ProfilesFile.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("path", cfg.ProfilesFile).Msg("using file profile store")
		return &ClientStorages{Profiles: NewFileProfileStore(cfg.ProfilesFile, log)}, nil
	}

	log.Info().Str("dsn", cfg.DB.DSN).Msg("using sqlite profile store")
	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{Profiles: NewSQLiteProfileStore(db, log), db: db}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
