// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-tty-chat/internal/adapter"
	"github.com/MKhiriev/go-tty-chat/internal/app"
	"github.com/MKhiriev/go-tty-chat/internal/crypto"
)

// UserMessage translates a service error into the text shown to the user.
// Unknown errors keep their own text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrEmptyUsername):
		return app.MsgUsernameRequired
	case errors.Is(err, ErrEmptyServer):
		return app.MsgServerRequired
	case errors.Is(err, ErrInvalidServerAddress):
		return app.MsgInvalidServer + ": " + strings.TrimPrefix(err.Error(), ErrInvalidServerAddress.Error()+" ")
	case errors.Is(err, crypto.ErrInvalidKeyFormat):
		return app.MsgInvalidKeyFormat
	case errors.Is(err, crypto.ErrInvalidKeyLength):
		return app.MsgInvalidKeyLength
	case errors.Is(err, crypto.ErrKeyCorrupt):
		return app.MsgKeyCorrupt
	case errors.Is(err, ErrSaveProfiles):
		return app.MsgProfilesNotSaved
	}

	return err.Error()
}

// NetworkMessage rewrites the text of an EventError. Transport failures
// become [app.MsgServerUnavailable]; certificate failures keep their detail.
func NetworkMessage(msg string) string {
	if strings.HasPrefix(msg, adapter.ErrTLSHandshake.Error()) {
		return msg
	}

	s := strings.ToLower(msg)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable + " (" + msg + ")"
	}

	return msg
}
