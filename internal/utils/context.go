// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client packages:
// typed context keys, identifier generation and an unbounded channel.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the connection attempt identifier
// in the context.
//
//	ctx := utils.WithSessionID(ctx, id)
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying the session identifier.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext retrieves the session identifier from the context.
//
// ok is false when the value is missing or has an unexpected type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
