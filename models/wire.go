// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message type discriminators carried in the "type" field of every line.
const (
	TypeChallenge = "challenge"
	TypeAuth      = "auth"
	TypeEnroll    = "enroll"
	TypeAuthOK    = "auth_ok"
	TypeMsg       = "msg"
	TypePresence  = "presence"
	TypeAdminCmd  = "admin_cmd"
	TypeAdminRes  = "admin_res"
)

// DefaultAuthFailReason is reported when the server rejects the credential
// without giving a reason.
const DefaultAuthFailReason = "auth_fail"

// Challenge is the first line sent by the server after the TLS handshake.
// Nonce is base64 and must be signed with the client identity.
type Challenge struct {
	Type  string `json:"type"`
	Nonce string `json:"nonce"`
}

// AuthRequest proves possession of the identity key for a registered user.
type AuthRequest struct {
	Type      string `json:"type"`
	PublicKey string `json:"pubkey"`
	Username  string `json:"username"`
	Signature string `json:"sig"`
}

// NewAuthRequest builds an [AuthRequest] with the type tag filled in.
func NewAuthRequest(publicKey, username, signature string) AuthRequest {
	return AuthRequest{Type: TypeAuth, PublicKey: publicKey, Username: username, Signature: signature}
}

// EnrollRequest registers the identity key using a one-time invite code
// instead of a signature.
type EnrollRequest struct {
	Type       string `json:"type"`
	Username   string `json:"username"`
	PublicKey  string `json:"pubkey"`
	InviteCode string `json:"invite_code"`
}

// NewEnrollRequest builds an [EnrollRequest] with the type tag filled in.
func NewEnrollRequest(username, publicKey, inviteCode string) EnrollRequest {
	return EnrollRequest{Type: TypeEnroll, Username: username, PublicKey: publicKey, InviteCode: inviteCode}
}

// AuthResponse is the server verdict on the credential. Any type other than
// [TypeAuthOK] is a failure.
type AuthResponse struct {
	Type   string  `json:"type"`
	Reason *string `json:"reason,omitempty"`
}

// OK reports whether the server accepted the credential.
func (r AuthResponse) OK() bool {
	return r.Type == TypeAuthOK
}

// FailReason returns the server supplied reason or [DefaultAuthFailReason].
func (r AuthResponse) FailReason() string {
	if r.Reason == nil {
		return DefaultAuthFailReason
	}
	return *r.Reason
}

// ClientMessage is an outbound chat line.
type ClientMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// AdminCommand is an outbound administrative request.
type AdminCommand struct {
	Type   string `json:"type"`
	Action string `json:"action"`
}
