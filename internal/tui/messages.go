// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-tty-chat/models"
)

// tickMsg drives the splash countdown, the chat clock and the draining of
// network events while the user is idle.
type tickMsg time.Time

type profilesLoadedMsg struct {
	record models.ProfileRecord
}

type profileSavedMsg struct {
	record models.ProfileRecord
	err    error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
