// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tty-chat/internal/adapter"
	"github.com/MKhiriev/go-tty-chat/internal/crypto"
	"github.com/MKhiriev/go-tty-chat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// IdentityStore is the on-disk identity key store. *crypto.KeyStore
// implements it.
type IdentityStore interface {
	// Load returns the identity of username, generating one when missing.
	Load(username string) (*crypto.Identity, bool, error)
	// Import overwrites the identity of username with a base64 seed.
	Import(username, seedB64 string) error
	// Delete removes the identity file of username.
	Delete(username string) (string, bool, error)
	// Path returns the identity file of username.
	Path(username string) string
}

// ClientIdentityService prepares the identity used to sign challenges.
type ClientIdentityService interface {
	// Prepare imports manualKey when it is not blank, then loads or
	// generates the identity of username. Identity errors are returned
	// before any network attempt.
	Prepare(username, manualKey string) (*models.IdentityInfo, error)

	// Reset deletes the identity of username and reports the file path and
	// whether a file was removed.
	Reset(username string) (path string, deleted bool, err error)

	// Import stores a base64 seed as the identity of username and returns
	// the file path.
	Import(username, seedB64 string) (string, error)
}

// ClientSessionService opens chat sessions.
type ClientSessionService interface {
	// Connect validates req and starts a session. The returned session is
	// already running; its events end with EventDisconnected.
	Connect(ctx context.Context, req models.ConnectRequest) (*adapter.Session, error)
}

// ClientProfileService keeps the recent-connection record.
type ClientProfileService interface {
	// Profiles returns the stored record. Read failures yield an empty
	// record.
	Profiles(ctx context.Context) models.ProfileRecord

	// Remember moves server/username to the front of the record and saves
	// it.
	Remember(ctx context.Context, server, username string) error
}
