// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// frontends.
type Client interface {
	// Run blocks until the user quits or ctx ends.
	Run(ctx context.Context) error
}

var (
	_ Client = (*App)(nil)
	_ Client = (*Headless)(nil)
)
