// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tty-chat/models"
)

const (
	profilesTable  = "profiles"
	lastLoginTable = "last_login"

	// lastLoginID is the key of the single last_login row.
	lastLoginID = 1
)

func buildSelectProfilesQuery() (string, []any, error) {
	return sq.Select("server", "username").
		From(profilesTable).
		OrderBy("position ASC").
		ToSql()
}

func buildSelectLastLoginQuery() (string, []any, error) {
	return sq.Select("server", "username").
		From(lastLoginTable).
		Where(sq.Eq{"id": lastLoginID}).
		ToSql()
}

func buildDeleteProfilesQuery() (string, []any, error) {
	return sq.Delete(profilesTable).ToSql()
}

// buildInsertProfilesQuery stores profiles with their list position. It must
// not be called with an empty slice.
func buildInsertProfilesQuery(profiles []models.Profile) (string, []any, error) {
	q := sq.Insert(profilesTable).Columns("position", "server", "username")
	for i, p := range profiles {
		q = q.Values(i, p.Server, p.Username)
	}
	return q.ToSql()
}

func buildUpsertLastLoginQuery(server, username *string) (string, []any, error) {
	return sq.Insert(lastLoginTable).
		Options("OR REPLACE").
		Columns("id", "server", "username").
		Values(lastLoginID, server, username).
		ToSql()
}
