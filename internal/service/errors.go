// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyUsername        = errors.New("username is required")
	ErrEmptyServer          = errors.New("server address is required")
	ErrInvalidServerAddress = errors.New("invalid server address")
	ErrNoIdentity           = errors.New("no identity loaded")

	// ErrIdentity wraps every failure to load, import or delete a key file.
	ErrIdentity = errors.New("identity error")

	ErrSaveProfiles = errors.New("cannot save recent connections")
)
