// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrPlainTarget is returned when the line frontend starts without a
	// server or username: it has no connect form to ask for them.
	ErrPlainTarget = errors.New("plain mode needs --server and --username")

	// ErrMissingUsername is returned by identity commands without a username.
	ErrMissingUsername = errors.New("username is required (argument or --username)")
)
