// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background producers that feed the event
// router when no terminal UI owns the input: a fixed-interval ticker and a
// line reader.
// It defines the Worker interface and a Workers aggregate that runs several
// workers until their context ends.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the worker is done or ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
