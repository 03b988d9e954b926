// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts between protocol values and newline-delimited JSON
// lines. Handshake frames are decoded strictly; streamed server messages are
// decoded tolerantly and dropped when malformed.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tty-chat/models"
)

var (
	// ErrUnexpectedType is returned when a handshake frame carries the wrong
	// type tag.
	ErrUnexpectedType = errors.New("unexpected message type")
	// ErrMissingField is returned when a handshake frame lacks a required
	// field.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownCommand is returned for a NetCommand variant the codec does
	// not know.
	ErrUnknownCommand = errors.New("unknown command")
)

// EncodeLine serializes v as one JSON object followed by '\n'.
func EncodeLine(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode line: %w", err)
	}
	return append(b, '\n'), nil
}

// EncodeCommand maps an outbound command to its wire line.
func EncodeCommand(cmd models.NetCommand) ([]byte, error) {
	switch c := cmd.(type) {
	case models.SendMessage:
		return EncodeLine(models.ClientMessage{Type: models.TypeMsg, Text: c.Text})
	case models.SendAdminCmd:
		return EncodeLine(models.AdminCommand{Type: models.TypeAdminCmd, Action: c.Action})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

type challengeWire struct {
	Type  *string `json:"type"`
	Nonce *string `json:"nonce"`
}

// DecodeChallenge parses the first server line. Both "type" and "nonce" are
// required and the type must be "challenge".
func DecodeChallenge(line []byte) (models.Challenge, error) {
	var w challengeWire
	if err := json.Unmarshal(bytes.TrimSpace(line), &w); err != nil {
		return models.Challenge{}, fmt.Errorf("expected challenge from server: %w", err)
	}
	if w.Type == nil {
		return models.Challenge{}, fmt.Errorf("expected challenge from server: %w `type`", ErrMissingField)
	}
	if *w.Type != models.TypeChallenge {
		return models.Challenge{}, fmt.Errorf("%w: expected 'challenge', got '%s'", ErrUnexpectedType, *w.Type)
	}
	if w.Nonce == nil {
		return models.Challenge{}, fmt.Errorf("expected challenge from server: %w `nonce`", ErrMissingField)
	}
	return models.Challenge{Type: *w.Type, Nonce: *w.Nonce}, nil
}

type authResponseWire struct {
	Type   *string `json:"type"`
	Reason *string `json:"reason"`
}

// DecodeAuthResponse parses the server verdict. Only "type" is required;
// any value other than "auth_ok" means rejection.
func DecodeAuthResponse(line []byte) (models.AuthResponse, error) {
	var w authResponseWire
	if err := json.Unmarshal(bytes.TrimSpace(line), &w); err != nil {
		return models.AuthResponse{}, fmt.Errorf("expected auth response: %w", err)
	}
	if w.Type == nil {
		return models.AuthResponse{}, fmt.Errorf("expected auth response: %w `type`", ErrMissingField)
	}
	return models.AuthResponse{Type: *w.Type, Reason: w.Reason}, nil
}

// DecodeServerMessage parses a streamed line. ok is false for blank lines and
// for anything that does not decode to a message with a type; such lines are
// dropped by the caller without surfacing an error.
func DecodeServerMessage(line []byte) (msg models.ServerMessage, ok bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return models.ServerMessage{}, false
	}
	if err := json.Unmarshal(line, &msg); err != nil {
		return models.ServerMessage{}, false
	}
	return msg, true
}
