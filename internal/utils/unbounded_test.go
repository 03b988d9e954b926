// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnbounded_PreservesOrderWithoutReader(t *testing.T) {
	u := NewUnbounded[int]()

	// nobody reads yet; sends must still complete
	for i := 0; i < 1000; i++ {
		u.In() <- i
	}
	close(u.In())

	got := make([]int, 0, 1000)
	for v := range u.Out() {
		got = append(got, v)
	}

	require.Len(t, got, 1000)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestUnbounded_CloseEmptyClosesOut(t *testing.T) {
	u := NewUnbounded[string]()
	close(u.In())

	select {
	case _, ok := <-u.Out():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("out was not closed")
	}
}

func TestUnbounded_StopDiscards(t *testing.T) {
	u := NewUnbounded[int]()
	u.In() <- 1
	u.In() <- 2

	u.Stop()
	u.Stop()

	// Out closes without delivering the buffer
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-u.Out():
			if !ok {
				// producer may keep sending after Stop
				u.In() <- 3
				close(u.In())
				return
			}
		case <-deadline:
			t.Fatal("out was not closed after Stop")
		}
	}
}

func TestUnbounded_TryRecvAllTakesEveryBufferedValue(t *testing.T) {
	u := NewUnbounded[int]()
	for i := 0; i < 200; i++ {
		require.True(t, u.Push(i))
	}

	got, closed := u.TryRecvAll()
	require.Len(t, got, 200)
	assert.False(t, closed)
	for i, v := range got {
		assert.Equal(t, i, v)
	}

	again, closed := u.TryRecvAll()
	assert.Empty(t, again)
	assert.False(t, closed)
}

func TestUnbounded_CloseKeepsBufferedValues(t *testing.T) {
	u := NewUnbounded[string]()
	u.Push("a")
	u.Push("b")
	u.Close()
	u.Close()

	assert.False(t, u.Push("late"))
	got, closed := u.TryRecvAll()
	assert.Equal(t, []string{"a", "b"}, got)
	assert.True(t, closed)
}

func TestUnbounded_ReadySignalsPush(t *testing.T) {
	u := NewUnbounded[int]()

	select {
	case <-u.Ready():
		t.Fatal("ready before any value")
	default:
	}

	go u.Push(7)
	select {
	case <-u.Ready():
	case <-time.After(time.Second):
		t.Fatal("no ready signal")
	}
	got, _ := u.TryRecvAll()
	assert.Equal(t, []int{7}, got)
}

func TestUnbounded_InFeedsTakeAll(t *testing.T) {
	u := NewUnbounded[int]()
	for i := 0; i < 50; i++ {
		u.In() <- i
	}
	close(u.In())

	var got []int
	require.Eventually(t, func() bool {
		values, closed := u.TryRecvAll()
		got = append(got, values...)
		return closed
	}, time.Second, time.Millisecond)
	require.Len(t, got, 50)
	assert.Equal(t, 49, got[49])
}

func TestUnbounded_StopClosesTakeAll(t *testing.T) {
	u := NewUnbounded[int]()
	u.Push(1)
	u.Stop()

	got, closed := u.TryRecvAll()
	assert.Empty(t, got)
	assert.True(t, closed)
	assert.False(t, u.Push(2))
}
