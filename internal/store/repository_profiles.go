// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/models"
)

// sqliteProfileStore keeps profiles in two tables: the ordered MRU list and
// a single last_login row.
type sqliteProfileStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteProfileStore returns a store over a migrated database.
func NewSQLiteProfileStore(db *DB, log *logger.Logger) ProfileStore {
	return &sqliteProfileStore{db: db, logger: log}
}

func (s *sqliteProfileStore) Load(ctx context.Context) (models.ProfileRecord, error) {
	query, args, err := buildSelectProfilesQuery()
	if err != nil {
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Msg("select profiles failed")
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var record models.ProfileRecord
	for rows.Next() {
		var p models.Profile
		if err = rows.Scan(&p.Server, &p.Username); err != nil {
			return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		record.Profiles = append(record.Profiles, p)
	}
	if err = rows.Err(); err != nil {
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	query, args, err = buildSelectLastLoginQuery()
	if err != nil {
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var server, username sql.NullString
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&server, &username)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		s.logger.Err(err).Msg("select last login failed")
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	default:
		if server.Valid {
			record.LastServer = &server.String
		}
		if username.Valid {
			record.LastUsername = &username.String
		}
	}

	return record, nil
}

func (s *sqliteProfileStore) Save(ctx context.Context, record models.ProfileRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteProfilesQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(record.Profiles) > 0 {
		query, args, err = buildInsertProfilesQuery(record.Profiles)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	query, args, err = buildUpsertLastLoginQuery(record.LastServer, record.LastUsername)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	s.logger.Debug().Int("profiles", len(record.Profiles)).Msg("profile record saved")
	return nil
}
