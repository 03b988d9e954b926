// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the session connector: one TLS connection to
// the chat server, the challenge/response handshake and the streaming loop
// that turns server lines into [models.NetEvent] values and outbound
// [models.NetCommand] values into lines.
//
// A session always ends with exactly one [models.EventDisconnected], preceded
// by a single [models.EventError] when it failed. Closing the command channel
// is the cancellation signal; there are no retries.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tty-chat/internal/utils"
	"github.com/MKhiriev/go-tty-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_connector_mock.go -package=mock

// SessionConnector starts background sessions.
type SessionConnector interface {
	// Connect starts a session and returns immediately. The returned
	// session delivers events until the final EventDisconnected.
	Connect(ctx context.Context, params models.SessionParams) *Session

	// Run executes one session synchronously, pushing events to events and
	// closing it when done. It returns once the session has terminated.
	Run(ctx context.Context, params models.SessionParams, events utils.Sink[models.NetEvent], commands <-chan models.NetCommand)
}
