// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"time"

	"github.com/MKhiriev/go-tty-chat/models"
)

// DefaultMillisThreshold separates epoch seconds from epoch milliseconds.
const DefaultMillisThreshold = int64(10_000_000_000)

const clockLayout = "15:04"

// Representable epoch second range. Values outside it fall back to now.
const (
	minEpochSeconds = int64(-8_334_601_228_800)
	maxEpochSeconds = int64(8_210_266_876_799)
)

// Normalizer renders message timestamps as local "HH:MM".
type Normalizer struct {
	// MillisThreshold: numbers strictly above it are milliseconds.
	MillisThreshold int64
	// Now supplies the fallback time.
	Now func() time.Time
	// Location is the display zone.
	Location *time.Location
}

// NewNormalizer returns a normalizer using the wall clock and the local zone.
// A non-positive threshold selects [DefaultMillisThreshold].
func NewNormalizer(millisThreshold int64) Normalizer {
	if millisThreshold <= 0 {
		millisThreshold = DefaultMillisThreshold
	}
	return Normalizer{
		MillisThreshold: millisThreshold,
		Now:             time.Now,
		Location:        time.Local,
	}
}

// Clock formats ts:
//   - RFC3339 text is converted to the display zone;
//   - other text is cut to its first five characters;
//   - numbers above the threshold are epoch milliseconds, others seconds;
//   - absent or unrepresentable values show the current time.
func (n Normalizer) Clock(ts models.TimestampValue) string {
	switch ts.Kind {
	case models.TimestampText:
		if t, err := time.Parse(time.RFC3339, ts.Text); err == nil {
			return t.In(n.location()).Format(clockLayout)
		}
		return firstRunes(ts.Text, 5)
	case models.TimestampEpoch:
		if t, ok := n.fromEpoch(ts.Epoch); ok {
			return t.In(n.location()).Format(clockLayout)
		}
	}
	return n.Current()
}

// Current formats the fallback clock.
func (n Normalizer) Current() string {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return now().In(n.location()).Format(clockLayout)
}

func (n Normalizer) fromEpoch(v int64) (time.Time, bool) {
	threshold := n.MillisThreshold
	if threshold <= 0 {
		threshold = DefaultMillisThreshold
	}

	secs, nanos := v, int64(0)
	if v > threshold {
		secs, nanos = v/1000, (v%1000)*int64(time.Millisecond)
	}
	if secs < minEpochSeconds || secs > maxEpochSeconds {
		return time.Time{}, false
	}
	return time.Unix(secs, nanos), true
}

func (n Normalizer) location() *time.Location {
	if n.Location == nil {
		return time.Local
	}
	return n.Location
}

func firstRunes(s string, count int) string {
	for i := range s {
		if count == 0 {
			return s[:i]
		}
		count--
	}
	return s
}
