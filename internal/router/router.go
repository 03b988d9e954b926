// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router merges the timer and input event source with the network
// events of the current session into one sequence for a single consumer.
//
// Every cycle first drains all buffered network events in arrival order,
// then renders once, then waits for the next timer or input event. Many
// network events can be applied before one redraw; a burst of traffic never
// causes more redraws than there are external events.
//
// A Router is owned by the consumer goroutine and is not safe for concurrent
// use.
package router

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/utils"
	"github.com/MKhiriev/go-tty-chat/models"
)

// ErrSourceClosed is returned by Wait when the app event source is closed.
var ErrSourceClosed = errors.New("event source closed")

// Handler is the consumer driven by [Router.Run]. Handle methods report
// true to stop the loop.
type Handler interface {
	HandleNet(ev models.NetEvent) bool
	Render()
	HandleEvent(ev Event) bool
}

// Router multiplexes the app source with an optional NetEvent source.
type Router struct {
	app     utils.Queue[Event]
	pending []Event
	net     utils.Queue[models.NetEvent]
	logger  *logger.Logger
}

// New returns a router reading timer and input events from app. A nil app
// makes Wait block until its context ends.
func New(app utils.Queue[Event], log *logger.Logger) *Router {
	return &Router{app: app, logger: log}
}

// Attach makes events the current network source, replacing any previous one.
func (r *Router) Attach(events utils.Queue[models.NetEvent]) {
	r.net = events
}

// Detach drops the network source.
func (r *Router) Detach() {
	r.net = nil
}

// Attached reports whether a network source is present.
func (r *Router) Attached() bool {
	return r.net != nil
}

// Drain returns every network event buffered right now, in arrival order,
// without blocking. A closed source is detached.
func (r *Router) Drain() []models.NetEvent {
	if r.net == nil {
		return nil
	}

	drained, closed := r.net.TryRecvAll()
	if closed {
		r.logger.Debug().Int("drained", len(drained)).Msg("net source closed")
		r.net = nil
	}
	return drained
}

// Wait blocks until the next app event arrives or ctx ends. Events taken
// from the source together are returned one per call.
func (r *Router) Wait(ctx context.Context) (Event, error) {
	for {
		if len(r.pending) > 0 {
			ev := r.pending[0]
			r.pending = r.pending[1:]
			return ev, nil
		}
		if r.app == nil {
			<-ctx.Done()
			return Event{}, ctx.Err()
		}

		values, closed := r.app.TryRecvAll()
		if len(values) > 0 {
			r.pending = values
			continue
		}
		if closed {
			return Event{}, ErrSourceClosed
		}

		select {
		case <-r.app.Ready():
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}
}

// Run drives h until a handler asks to stop, ctx ends or the app source is
// closed. The last two are reported as errors.
func (r *Router) Run(ctx context.Context, h Handler) error {
	for {
		for _, ev := range r.Drain() {
			if h.HandleNet(ev) {
				return nil
			}
		}
		h.Render()

		ev, err := r.Wait(ctx)
		if err != nil {
			return err
		}
		if h.HandleEvent(ev) {
			return nil
		}
	}
}
