// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/models"
)

// fileProfileStore keeps the record as one indented JSON document.
type fileProfileStore struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewFileProfileStore returns a store backed by the JSON file at path.
func NewFileProfileStore(path string, log *logger.Logger) ProfileStore {
	return &fileProfileStore{path: path, logger: log}
}

func (s *fileProfileStore) Load(_ context.Context) (models.ProfileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.ProfileRecord{}, nil
		}
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrReadingProfiles, err)
	}

	var record models.ProfileRecord
	if err = json.Unmarshal(data, &record); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("profile file is not valid JSON")
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrProfilesCorrupt, err)
	}
	return record, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the record, so a crash never leaves a truncated file.
func (s *fileProfileStore) Save(_ context.Context, record models.ProfileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWritingProfiles, err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: create dir: %w", ErrWritingProfiles, err)
	}

	tmp, err := os.CreateTemp(dir, ".profiles-*.json")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingProfiles, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingProfiles, err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingProfiles, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingProfiles, err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingProfiles, err)
	}

	s.logger.Debug().Str("path", s.path).Int("profiles", len(record.Profiles)).Msg("profile record saved")
	return nil
}
