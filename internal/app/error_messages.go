// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// terminal UI, the headless frontend and the CLI commands.
//
// Keeping them in one place ensures consistent wording on every surface.
package app

const (
	// MsgUsernameRequired is shown when connect is attempted without a
	// username.
	MsgUsernameRequired = "Username is required"

	// MsgServerRequired is shown when connect is attempted without a server.
	MsgServerRequired = "Server address is required"

	// MsgInvalidServer prefixes a server address that cannot be parsed.
	MsgInvalidServer = "Invalid server address"

	// MsgInvalidKeyFormat is shown when a pasted private key is not base64.
	MsgInvalidKeyFormat = "Invalid private key format (must be base64)"

	// MsgInvalidKeyLength is shown when a pasted private key does not decode
	// to 32 bytes.
	MsgInvalidKeyLength = "Invalid private key length (must be 32 bytes)"

	// MsgKeyCorrupt is shown when the identity file exists but is unusable.
	// The file is never overwritten automatically.
	MsgKeyCorrupt = "Identity file is corrupt; reset it or import a key"

	// MsgServerUnavailable replaces low-level network errors.
	MsgServerUnavailable = "Network is down or the server is unreachable"

	// MsgTLSHint is appended to certificate failures.
	MsgTLSHint = "TLS handshake failed (try --insecure?)"

	// MsgDisconnected is the system line appended when the session ends
	// while chatting.
	MsgDisconnected = "Disconnected from server"

	// MsgAuthFailed introduces the enrollment screen.
	MsgAuthFailed = "Authentication failed"

	// MsgEnrollHint tells a new user how to obtain an invite code.
	MsgEnrollHint = "Ask an admin for an invite code (/admin invite) and enter it below."

	// MsgProfilesNotSaved is logged and shown when the recent-connection
	// record cannot be written.
	MsgProfilesNotSaved = "Could not save recent connections"

	// MsgMuted and MsgUnmuted confirm the notification toggles.
	MsgMuted   = "Notifications muted"
	MsgUnmuted = "Notifications unmuted"

	// MsgNoAdminData is shown when ctrl+y is pressed before any admin
	// response arrived.
	MsgNoAdminData = "Nothing to copy"

	// MsgCopied confirms a clipboard copy.
	MsgCopied = "Copied to clipboard"

	// MsgClipboardFailed is shown when no clipboard is available.
	MsgClipboardFailed = "Clipboard unavailable"
)
