// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/router"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	ws.Run(ctx)

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() { NewWorkers().Run(context.Background()) })
	assert.NotPanics(t, func() { (&Workers{}).Run(context.Background()) })
}

func TestTickWorker_EmitsUntilCancelled(t *testing.T) {
	out := make(chan router.Event, 16)
	w := NewTickWorker(5*time.Millisecond, out, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		select {
		case ev := <-out:
			assert.Equal(t, router.KindTick, ev.Kind)
			assert.False(t, ev.At.IsZero())
		case <-time.After(time.Second):
			t.Fatal("no tick")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tick worker did not stop")
	}
}

func TestLineInputWorker_LinesThenClosed(t *testing.T) {
	out := make(chan router.Event, 8)
	w := NewLineInputWorker(strings.NewReader("hello\r\n/mute\n\nlast"), out, logger.Nop())

	w.Run(context.Background())
	close(out)

	var got []router.Event
	for ev := range out {
		got = append(got, ev)
	}
	require.Len(t, got, 5)
	assert.Equal(t, "hello", got[0].Text)
	assert.Equal(t, "/mute", got[1].Text)
	assert.Equal(t, "", got[2].Text)
	assert.Equal(t, "last", got[3].Text)
	assert.Equal(t, router.KindLine, got[3].Kind)
	assert.Equal(t, router.KindInputClosed, got[4].Kind)
}

func TestLineInputWorker_StopsOnCancel(t *testing.T) {
	out := make(chan router.Event)
	w := NewLineInputWorker(strings.NewReader("a\nb\n"), out, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("line worker blocked on an unread channel")
	}
}
