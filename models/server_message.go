// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
)

// ErrMissingType is returned when an inbound line has no "type" field.
var ErrMissingType = errors.New("message has no type")

// timestampAliases lists the field names accepted for the message timestamp,
// in lookup order. The first one present wins.
var timestampAliases = []string{"timestamp", "time", "ts", "created", "created_at", "datetime", "date"}

// ServerMessage is one decoded line received from the server after
// authentication. It is immutable once parsed.
type ServerMessage struct {
	Type      string
	From      *string
	Text      *string
	Timestamp TimestampValue
	Users     PresenceValue

	// Alternate user-list fields sent by different server versions. A nil
	// slice means the field was absent.
	Online   []string
	Names    []string
	List     []string
	UserList []string

	Action *string
	Data   *string
}

type serverMessageWire struct {
	Type     *string       `json:"type"`
	From     *string       `json:"from"`
	Text     *string       `json:"text"`
	Users    PresenceValue `json:"users"`
	Online   []string      `json:"online"`
	Names    []string      `json:"names"`
	List     []string      `json:"list"`
	UserList []string      `json:"user_list"`
	Action   *string       `json:"action"`
	Data     *string       `json:"data"`
}

// UnmarshalJSON decodes a server line. Unknown fields are ignored; a missing
// type or a field of the wrong JSON kind is an error so the caller can drop
// the whole line.
func (m *ServerMessage) UnmarshalJSON(b []byte) error {
	var w serverMessageWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Type == nil {
		return ErrMissingType
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var ts TimestampValue
	for _, alias := range timestampAliases {
		v, ok := raw[alias]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, &ts); err != nil {
			return err
		}
		break
	}

	*m = ServerMessage{
		Type:      *w.Type,
		From:      w.From,
		Text:      w.Text,
		Timestamp: ts,
		Users:     w.Users,
		Online:    w.Online,
		Names:     w.Names,
		List:      w.List,
		UserList:  w.UserList,
		Action:    w.Action,
		Data:      w.Data,
	}
	return nil
}

// IsPresence reports whether the message only carries user-presence data.
func (m ServerMessage) IsPresence() bool {
	return m.Type == TypePresence
}

// Sender returns the author or "system" when the server omitted it.
func (m ServerMessage) Sender() string {
	if m.From == nil {
		return "system"
	}
	return *m.From
}

// Body returns the text or an empty string.
func (m ServerMessage) Body() string {
	if m.Text == nil {
		return ""
	}
	return *m.Text
}
