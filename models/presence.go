// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strconv"
)

// PresenceKind tags the variant held by a [PresenceValue].
type PresenceKind int

const (
	PresenceAbsent PresenceKind = iota
	PresenceCount
	PresenceNames
)

// PresenceValue is the decoded "users" field: either an online user count or
// a list of user names.
type PresenceValue struct {
	Kind  PresenceKind
	Count int
	Names []string
}

// UnmarshalJSON accepts a non-negative integer or an array. Array elements
// that are not strings are skipped. Anything else decodes to
// [PresenceAbsent].
func (p *PresenceValue) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		count, err := strconv.ParseUint(string(b), 10, 32)
		if err != nil {
			*p = PresenceValue{}
			return nil
		}
		*p = PresenceValue{Kind: PresenceCount, Count: int(count)}
	case []any:
		names := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
		*p = PresenceValue{Kind: PresenceNames, Names: names}
	default:
		*p = PresenceValue{}
	}
	return nil
}

// Roster is the consumer-visible presence state: the last announced user
// count and the last announced list of online names.
type Roster struct {
	Count int
	Names []string
}

// Apply folds the presence fields of msg into the roster.
//
// The "users" field is applied first, then the alternate list fields in the
// order online, names, list, user_list. When a message carries several of
// them the last one present wins.
func (r *Roster) Apply(msg ServerMessage) {
	switch msg.Users.Kind {
	case PresenceCount:
		r.Count = msg.Users.Count
	case PresenceNames:
		r.Names = msg.Users.Names
	}

	for _, names := range [][]string{msg.Online, msg.Names, msg.List, msg.UserList} {
		if names != nil {
			r.Names = names
		}
	}
}
