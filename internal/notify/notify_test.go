// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/models"
)

func chatLine(from string) models.ServerMessage {
	text := "hello"
	return models.ServerMessage{Type: models.TypeMsg, From: &from, Text: &text}
}

func TestAttention_ShouldNotify(t *testing.T) {
	system := models.ServerMessage{Type: models.TypeMsg}
	presence := chatLine("bob")
	presence.Type = models.TypePresence

	tests := []struct {
		name      string
		attention Attention
		msg       models.ServerMessage
		want      bool
	}{
		{name: "unfocused from other", attention: Attention{}, msg: chatLine("bob"), want: true},
		{name: "focused", attention: Attention{Focused: true}, msg: chatLine("bob"), want: false},
		{name: "muted", attention: Attention{Muted: true}, msg: chatLine("bob"), want: false},
		{name: "own", attention: Attention{}, msg: chatLine("alice"), want: false},
		{name: "no sender", attention: Attention{}, msg: system, want: true},
		{name: "system sender", attention: Attention{}, msg: chatLine("system"), want: true},
		{name: "no sender focused", attention: Attention{Focused: true}, msg: system, want: false},
		{name: "presence", attention: Attention{}, msg: presence, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attention.ShouldNotify(tt.msg, "alice"))
		})
	}
}

func TestAttention_UnreadAndTitle(t *testing.T) {
	a := NewAttention()
	assert.Equal(t, "ttychat", a.WindowTitle())

	assert.False(t, a.Observe(chatLine("bob"), "alice"))
	a.FocusLost()
	assert.True(t, a.Observe(chatLine("bob"), "alice"))
	assert.True(t, a.Observe(chatLine("carol"), "alice"))
	assert.Equal(t, 2, a.Unread)
	assert.Equal(t, "(2 unread) ttychat", a.WindowTitle())

	a.FocusGained()
	assert.Zero(t, a.Unread)
	assert.Equal(t, "ttychat", a.WindowTitle())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 120))
	long := strings.Repeat("ж", 130)
	assert.Equal(t, strings.Repeat("ж", 120), Truncate(long, MaxBodyRunes))
}

func TestDesktop_Notify(t *testing.T) {
	var title, body string
	beeps := 0
	d := &Desktop{
		sound:  true,
		logger: logger.Nop(),
		notify: func(t, m string) error {
			title, body = t, m
			return errors.New("no dbus")
		},
		beep: func(float64, int) error {
			beeps++
			return nil
		},
	}

	d.Notify("bob", strings.Repeat("x", 200))

	assert.Equal(t, "ttychat ✉ bob", title)
	assert.Len(t, body, MaxBodyRunes)
	assert.Equal(t, 1, beeps)

	d.sound = false
	d.Notify("bob", "hi")
	assert.Equal(t, 1, beeps)
}

func TestNew_DisabledIsNop(t *testing.T) {
	assert.IsType(t, Nop{}, New(config.ClientNotify{Enabled: false}, logger.Nop()))
	assert.IsType(t, &Desktop{}, New(config.ClientNotify{Enabled: true}, logger.Nop()))
	assert.NotPanics(t, func() { Nop{}.Notify("a", "b") })
}
