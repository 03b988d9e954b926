// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentityInfo describes a loaded identity for display and for building
// [SessionParams]. It never carries the seed.
type IdentityInfo struct {
	Username string
	// Path is the identity file.
	Path        string
	PublicKey   string
	Fingerprint string
	// IsNew is set when the key was generated by this load.
	IsNew  bool
	Signer Signer
}

// ConnectRequest is the consumer's intent to open a session.
type ConnectRequest struct {
	// Server is "host" or "host:port" as typed by the user.
	Server     string
	Identity   *IdentityInfo
	InviteCode string
	Insecure   bool
}
