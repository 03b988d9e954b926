// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultServerPort is used when the server address has no port.
const DefaultServerPort = "7000"

//go:generate mockgen -source=session.go -destination=../internal/mock/signer_mock.go -package=mock

// Signer produces the base64 signature of a base64 nonce. The identity
// manager provides the production implementation.
type Signer interface {
	Sign(nonceB64 string) (string, error)
}

// SessionParams is the immutable input of one connection attempt.
type SessionParams struct {
	// SessionID correlates log lines of one attempt.
	SessionID string
	// Server is the normalized "host:port" address.
	Server    string
	Username  string
	PublicKey string
	Signer    Signer
	// EnrollCode switches the handshake to enrollment when non-empty.
	EnrollCode string
	// Insecure disables all certificate verification.
	Insecure bool
}

// Enrolling reports whether the attempt uses an invite code.
func (p SessionParams) Enrolling() bool {
	return p.EnrollCode != ""
}

// SessionState is the lifecycle of the session as seen by the consumer.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionConnecting
	SessionAuthenticating
	SessionAuthenticated
	SessionClosed
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionConnecting:
		return "connecting"
	case SessionAuthenticating:
		return "authenticating"
	case SessionAuthenticated:
		return "authenticated"
	case SessionClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Next returns the state after ev has been observed.
func (s SessionState) Next(ev NetEvent) SessionState {
	switch ev.(type) {
	case EventConnected:
		return SessionAuthenticating
	case EventAuthOK:
		return SessionAuthenticated
	case EventAuthFail, EventError, EventDisconnected:
		return SessionClosed
	default:
		return s
	}
}
