// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Terminal session errors. The connector wraps the underlying cause so
// callers can use [errors.Is] while the message stays readable.
var (
	// ErrConnect is returned when the TCP connection cannot be opened.
	ErrConnect = errors.New("cannot connect")
	// ErrTLSHandshake is returned when the TLS handshake fails.
	ErrTLSHandshake = errors.New("TLS handshake failed")
	// ErrProtocol is returned when the server breaks the handshake sequence.
	ErrProtocol = errors.New("protocol error")
	// ErrSign is returned when the credential cannot be signed.
	ErrSign = errors.New("cannot sign challenge")
)
