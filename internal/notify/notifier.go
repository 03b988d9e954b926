// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify raises desktop notifications for chat messages that arrive
// while the terminal is not focused.
package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
)

// MaxBodyRunes bounds the notification body.
const MaxBodyRunes = 120

// Notifier delivers one notification. Delivery is best effort.
type Notifier interface {
	Notify(from, text string)
}

// Desktop notifies through the platform notification service and
// optionally beeps.
type Desktop struct {
	sound  bool
	logger *logger.Logger

	notify func(title, message string) error
	beep   func(freq float64, duration int) error
}

// New returns a desktop notifier, or Nop when notifications are disabled.
func New(cfg config.ClientNotify, log *logger.Logger) Notifier {
	if !cfg.Enabled {
		return Nop{}
	}
	return &Desktop{
		sound:  cfg.Sound,
		logger: log,
		notify: func(title, message string) error { return beeep.Notify(title, message, "") },
		beep:   beeep.Beep,
	}
}

func (d *Desktop) Notify(from, text string) {
	if err := d.notify(Title(from), Truncate(text, MaxBodyRunes)); err != nil {
		d.logger.Warn().Err(err).Msg("desktop notification failed")
	}
	if !d.sound {
		return
	}
	if err := d.beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		d.logger.Debug().Err(err).Msg("beep failed")
	}
}

// Title is the notification title for a message from sender.
func Title(from string) string {
	return AppTitle + " ✉ " + from
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(string, string) {}
