// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "sync"

// Sink is the producer side of an [Unbounded] buffer.
type Sink[T any] interface {
	// Push appends v. It reports false once the buffer is closed or stopped.
	Push(v T) bool
	// Close marks the end of the values. It is safe to call repeatedly.
	Close()
}

// Queue is the take-all consumer side of an [Unbounded] buffer.
type Queue[T any] interface {
	// TryRecvAll removes every buffered value in arrival order without
	// blocking. closed reports that no value will follow the returned ones.
	TryRecvAll() (values []T, closed bool)
	// Ready receives a signal after values were added or the buffer closed.
	Ready() <-chan struct{}
}

// Unbounded is a FIFO buffer with no size limit. Producers never block:
// [Unbounded.Push] appends under a mutex, and values sent on [Unbounded.In]
// are appended by a collector goroutine. A consumer either takes everything
// buffered at once with [Unbounded.TryRecvAll] or reads the channel view
// [Unbounded.Out]; one buffer must not be read both ways.
//
// Stop abandons the buffer: pending values are dropped and later values are
// rejected. Values sent on In after Stop are still received and discarded.
type Unbounded[T any] struct {
	ready chan struct{}
	done  chan struct{}

	mu     sync.Mutex
	queue  []T
	closed bool

	in       chan T
	inOnce   sync.Once
	out      chan T
	outOnce  sync.Once
	stopOnce sync.Once
}

var (
	_ Sink[int]  = (*Unbounded[int])(nil)
	_ Queue[int] = (*Unbounded[int])(nil)
)

func NewUnbounded[T any]() *Unbounded[T] {
	return &Unbounded[T]{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Push implements [Sink]. The value is buffered when Push returns.
func (u *Unbounded[T]) Push(v T) bool {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return false
	}
	u.queue = append(u.queue, v)
	u.mu.Unlock()

	u.notify()
	return true
}

// Close implements [Sink].
func (u *Unbounded[T]) Close() {
	u.mu.Lock()
	u.closed = true
	u.mu.Unlock()

	u.notify()
}

// In is a channel form of the producer side for select-based producers.
// Closing it closes the buffer. Only the producer may close it.
func (u *Unbounded[T]) In() chan<- T {
	u.inOnce.Do(func() {
		u.in = make(chan T)
		go u.collect()
	})
	return u.in
}

func (u *Unbounded[T]) collect() {
	for v := range u.in {
		u.Push(v)
	}
	u.Close()
}

// TryRecvAll implements [Queue].
func (u *Unbounded[T]) TryRecvAll() ([]T, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	values := u.queue
	u.queue = nil
	return values, u.closed
}

// Ready implements [Queue].
func (u *Unbounded[T]) Ready() <-chan struct{} {
	return u.ready
}

// Out is the channel view of the consumer side. It is closed after the last
// value when the buffer is closed, or at once after Stop.
func (u *Unbounded[T]) Out() <-chan T {
	u.outOnce.Do(func() {
		u.out = make(chan T)
		go u.forward()
	})
	return u.out
}

func (u *Unbounded[T]) forward() {
	defer close(u.out)

	for {
		values, closed := u.TryRecvAll()
		for _, v := range values {
			select {
			case u.out <- v:
			case <-u.done:
				return
			}
		}
		if closed {
			return
		}

		select {
		case <-u.ready:
		case <-u.done:
			return
		}
	}
}

// Stop drops buffered values and closes the buffer. It is safe to call
// repeatedly.
func (u *Unbounded[T]) Stop() {
	u.stopOnce.Do(func() {
		u.mu.Lock()
		u.queue = nil
		u.closed = true
		u.mu.Unlock()

		close(u.done)
		u.notify()
	})
}

func (u *Unbounded[T]) notify() {
	select {
	case u.ready <- struct{}{}:
	default:
	}
}
