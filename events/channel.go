/*
 * MIT License
 *
 * Copyright (c) 2026 jvmtui contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package events is the bounded producer-to-consumer queue the
// polling engine (C6) publishes its outcomes on: one Updated per tick
// that committed at least one sample, an Error summarizing a tick's
// failures, a Warn for pre-loop static-info fetch failures, and a
// single terminal Disconnected. The renderer is the sole consumer.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/jvmtui/core/errors"
)

// Kind discriminates the four event kinds this channel ever carries.
type Kind uint8

const (
	KindUpdated Kind = iota
	KindError
	KindWarn
	KindDisconnected
)

func (k Kind) String() string {
	switch k {
	case KindUpdated:
		return "Updated"
	case KindError:
		return "Error"
	case KindWarn:
		return "Warn"
	case KindDisconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}

// Event is one notification handed to the renderer. ErrorKind and
// Message are only meaningful for KindError/KindWarn.
type Event struct {
	Kind      Kind
	ErrorKind errors.Kind
	Message   string
	At        time.Time
}

// Capacity is the bounded queue depth before the coalescing overflow
// policy (§4.7) kicks in.
const Capacity = 32

// Channel is a bounded, single-producer/single-consumer event queue.
// Overflow policy: a newly sent Updated/Warn/Error replaces any
// same-kind event already queued (coalesce successive Updated, keep
// only the most recent Error/Warn); Disconnected is never evicted once
// queued, and when the queue is full room is made by dropping the
// oldest non-Disconnected entry. Delivery preserves FIFO order within
// each surviving kind.
type Channel struct {
	mu     sync.Mutex
	queue  []Event
	notify chan struct{}
	closed bool
}

// New returns an empty Channel ready for Send/Recv.
func New() *Channel {
	return &Channel{notify: make(chan struct{}, 1)}
}

// Send enqueues e, applying the coalescing overflow policy. Send on a
// closed Channel is a silent no-op.
func (c *Channel) Send(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	switch e.Kind {
	case KindUpdated, KindWarn, KindError:
		c.removeKindLocked(e.Kind)
	}

	if len(c.queue) >= Capacity {
		if idx := c.oldestDroppableIndexLocked(); idx >= 0 {
			c.queue = append(c.queue[:idx], c.queue[idx+1:]...)
		}
	}

	c.queue = append(c.queue, e)
	c.wake()
}

func (c *Channel) removeKindLocked(k Kind) {
	for i, e := range c.queue {
		if e.Kind == k {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}

func (c *Channel) oldestDroppableIndexLocked() int {
	for i, e := range c.queue {
		if e.Kind != KindDisconnected {
			return i
		}
	}
	return -1
}

func (c *Channel) wake() {
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

// Recv blocks until an event is available, ctx is done, or the channel
// is closed and drained. ok is false on the latter two.
func (c *Channel) Recv(ctx context.Context) (Event, bool) {
	for {
		c.mu.Lock()
		if len(c.queue) > 0 {
			e := c.queue[0]
			c.queue = c.queue[1:]
			c.mu.Unlock()
			return e, true
		}
		closed := c.closed
		c.mu.Unlock()

		if closed {
			return Event{}, false
		}

		select {
		case <-ctx.Done():
			return Event{}, false
		case <-c.notify:
		}
	}
}

// Len reports the number of events currently queued, for tests and
// diagnostics.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Close marks the channel closed: further Sends are dropped and a
// Recv blocked on an empty queue returns immediately with ok == false.
// Already-queued events already in the Channel remain drainable.
func (c *Channel) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.wake()
}
