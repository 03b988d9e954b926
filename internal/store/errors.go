// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the profile stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrProfilesCorrupt is returned when the profile file exists but cannot
	// be decoded.
	ErrProfilesCorrupt = errors.New("profile record is corrupt")

	// ErrReadingProfiles is returned when the profile file cannot be read.
	ErrReadingProfiles = errors.New("cannot read profile record")

	// ErrWritingProfiles is returned when the profile file cannot be written.
	ErrWritingProfiles = errors.New("cannot write profile record")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan profile rows")
)
