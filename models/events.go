// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NetEvent is produced by the session connector and consumed by the UI.
// The set of variants is closed: EventConnected, EventAuthOK, EventAuthFail,
// EventMessage, EventAdminResponse, EventError and EventDisconnected.
//
// EventError and EventDisconnected are terminal. EventDisconnected is always
// the last event of a session.
type NetEvent interface {
	netEvent()
}

// EventConnected is sent once the TLS session is established.
type EventConnected struct{}

// EventAuthOK is sent when the server accepted the credential.
type EventAuthOK struct {
	Username string
}

// EventAuthFail is sent when the server rejected the credential. It is not an
// error: the session ends cleanly and the user is offered enrollment.
type EventAuthFail struct {
	Reason string
}

// EventMessage carries a chat or presence line.
type EventMessage struct {
	Message ServerMessage
}

// EventAdminResponse carries the answer to an admin command.
type EventAdminResponse struct {
	Action string
	Data   string
}

// EventError reports why the session terminated abnormally.
type EventError struct {
	Message string
}

// EventDisconnected is the final event of every session.
type EventDisconnected struct{}

func (EventConnected) netEvent()     {}
func (EventAuthOK) netEvent()        {}
func (EventAuthFail) netEvent()      {}
func (EventMessage) netEvent()       {}
func (EventAdminResponse) netEvent() {}
func (EventError) netEvent()         {}
func (EventDisconnected) netEvent()  {}

// NetCommand is an outbound request consumed by the session connector.
// Variants: SendMessage and SendAdminCmd.
type NetCommand interface {
	netCommand()
}

// SendMessage posts a chat line.
type SendMessage struct {
	Text string
}

// SendAdminCmd sends an administrative action such as "invite".
type SendAdminCmd struct {
	Action string
}

func (SendMessage) netCommand()  {}
func (SendAdminCmd) netCommand() {}
