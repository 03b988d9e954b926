// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-tty-chat/internal/service"
)

// isFormError reports whether err is a problem with the connect form itself
// rather than with the identity file.
func isFormError(err error) bool {
	return errors.Is(err, service.ErrEmptyUsername) ||
		errors.Is(err, service.ErrEmptyServer) ||
		errors.Is(err, service.ErrInvalidServerAddress)
}
