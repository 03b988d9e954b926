// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// Phase is a step of the connector state machine. Transitions are strictly
// forward; any failure jumps to PhaseTerminated.
type Phase int

const (
	PhaseDialing Phase = iota
	PhaseTLSHandshake
	PhaseAwaitChallenge
	PhaseSendingCredential
	PhaseAwaitAuthResult
	PhaseStreaming
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseDialing:
		return "dialing"
	case PhaseTLSHandshake:
		return "tls_handshake"
	case PhaseAwaitChallenge:
		return "await_challenge"
	case PhaseSendingCredential:
		return "sending_credential"
	case PhaseAwaitAuthResult:
		return "await_auth_result"
	case PhaseStreaming:
		return "streaming"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
