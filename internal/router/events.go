// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import "time"

// Kind tags the variant held by an [Event].
type Kind int

const (
	KindTick Kind = iota
	KindKey
	KindResize
	KindFocusGained
	KindFocusLost
	// KindLine carries one line of text read from a line-oriented input.
	KindLine
	// KindInputClosed is sent once when the input device reaches EOF.
	KindInputClosed
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindKey:
		return "key"
	case KindResize:
		return "resize"
	case KindFocusGained:
		return "focus_gained"
	case KindFocusLost:
		return "focus_lost"
	case KindLine:
		return "line"
	case KindInputClosed:
		return "input_closed"
	default:
		return "unknown"
	}
}

// Event is produced by the timer and input sources.
type Event struct {
	Kind Kind
	At   time.Time

	// Key is set for KindKey, Text for KindLine.
	Key  string
	Text string

	// Width and Height are set for KindResize.
	Width  int
	Height int
}

// Tick returns a timer event.
func Tick(at time.Time) Event {
	return Event{Kind: KindTick, At: at}
}

// Line returns a line input event.
func Line(text string) Event {
	return Event{Kind: KindLine, Text: text, At: time.Now()}
}
