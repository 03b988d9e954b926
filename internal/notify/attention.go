// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"fmt"

	"github.com/MKhiriev/go-tty-chat/models"
)

// AppTitle is the terminal window title when nothing is unread.
const AppTitle = "ttychat"

// Attention tracks whether the user is looking at the chat. It is owned by
// the UI goroutine.
type Attention struct {
	Focused bool
	Muted   bool
	Unread  int
}

// NewAttention starts focused and unmuted.
func NewAttention() Attention {
	return Attention{Focused: true}
}

// ShouldNotify reports whether the server message msg deserves a
// notification for user self. Presence updates and own messages never do;
// neither does anything while the terminal is focused or notifications are
// muted. Server lines without a sender count as coming from "system" and do
// notify. Client-side status lines never reach here.
func (a Attention) ShouldNotify(msg models.ServerMessage, self string) bool {
	if msg.IsPresence() || msg.Sender() == self {
		return false
	}
	return !a.Focused && !a.Muted
}

// Observe counts msg as unread when it deserves a notification and reports
// whether it did.
func (a *Attention) Observe(msg models.ServerMessage, self string) bool {
	if !a.ShouldNotify(msg, self) {
		return false
	}
	a.Unread++
	return true
}

// FocusGained clears the unread counter.
func (a *Attention) FocusGained() {
	a.Focused = true
	a.Unread = 0
}

func (a *Attention) FocusLost() {
	a.Focused = false
}

// WindowTitle is "(<n> unread) ttychat" while messages are unread.
func (a Attention) WindowTitle() string {
	if a.Unread == 0 {
		return AppTitle
	}
	return fmt.Sprintf("(%d unread) %s", a.Unread, AppTitle)
}
