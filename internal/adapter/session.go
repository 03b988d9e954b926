// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"sync"

	"github.com/MKhiriev/go-tty-chat/internal/utils"
	"github.com/MKhiriev/go-tty-chat/models"
)

// Session is the consumer side of one running connection: an outbound
// command sink and an inbound event source. Both directions are unbounded.
type Session struct {
	id       string
	commands *utils.Unbounded[models.NetCommand]
	events   *utils.Unbounded[models.NetEvent]

	mu     sync.Mutex
	closed bool
}

// NewSession returns a session that no connector runs yet. Connect wires a
// new session to its connector; other producers can use [Session.Producer].
func NewSession(id string) *Session {
	return &Session{
		id:       id,
		commands: utils.NewUnbounded[models.NetCommand](),
		events:   utils.NewUnbounded[models.NetEvent](),
	}
}

// Producer returns the connector side: the event sink, which the producer
// must close when done, and the command source.
func (s *Session) Producer() (utils.Sink[models.NetEvent], <-chan models.NetCommand) {
	return s.events, s.commands.Out()
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Queue is the take-all view of the session events read by the event
// router. It closes after EventDisconnected.
func (s *Session) Queue() utils.Queue[models.NetEvent] {
	return s.events
}

// Events is the channel view of the session events for consumers that do not
// use [Session.Queue]. It is closed after EventDisconnected.
func (s *Session) Events() <-chan models.NetEvent {
	return s.events.Out()
}

// Send queues cmd for the connector. It reports false once the session has
// been closed.
func (s *Session) Send(cmd models.NetCommand) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	return s.commands.Push(cmd)
}

// Close closes the command channel. The connector finishes the current step,
// emits EventDisconnected and stops. Events keep flowing until then.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.commands.Close()
}

// Discard closes the session and drops every event not read yet. Used when
// the consumer replaces the session and no longer listens.
func (s *Session) Discard() {
	s.Close()
	s.events.Stop()
}
