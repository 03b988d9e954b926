// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"math"
)

// TimestampKind tags the variant held by a [TimestampValue].
type TimestampKind int

const (
	// TimestampAbsent means no usable timestamp was sent.
	TimestampAbsent TimestampKind = iota
	// TimestampText holds a string, normally RFC3339.
	TimestampText
	// TimestampEpoch holds a number of seconds or milliseconds since the epoch.
	TimestampEpoch
)

// TimestampValue is the decoded form of the polymorphic message timestamp.
// Servers send an RFC3339 string, an epoch number in seconds or
// milliseconds, or nothing at all.
type TimestampValue struct {
	Kind  TimestampKind
	Text  string
	Epoch int64
}

// TextTimestamp returns a string variant.
func TextTimestamp(s string) TimestampValue {
	return TimestampValue{Kind: TimestampText, Text: s}
}

// EpochTimestamp returns a numeric variant.
func EpochTimestamp(n int64) TimestampValue {
	return TimestampValue{Kind: TimestampEpoch, Epoch: n}
}

// UnmarshalJSON accepts a string or a number. Any other JSON kind, null
// included, decodes to [TimestampAbsent].
func (t *TimestampValue) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*t = TextTimestamp(value)
	case float64:
		*t = EpochTimestamp(truncateFloat(value))
	default:
		*t = TimestampValue{}
	}
	return nil
}

// truncateFloat converts toward zero and saturates at the int64 bounds.
func truncateFloat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
