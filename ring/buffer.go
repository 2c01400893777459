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

// Package ring holds the bounded time-series containers the polling
// engine writes to and the renderer reads from: a fixed-capacity
// circular sequence of timestamped samples, and the process-wide
// store that aggregates many of them alongside latest-value slots.
package ring

import "time"

// Sample pairs a value with the monotonic instant it was captured.
type Sample[T any] struct {
	Value T
	At    time.Time
}

// RingBuffer is a fixed-capacity circular sequence. Push is amortised
// O(1) and never grows the buffer past its capacity: once full, the
// oldest sample is evicted to make room for the newest.
type RingBuffer[T any] struct {
	data  []Sample[T]
	cap   int
	start int
	len   int
}

// NewRingBuffer returns an empty buffer with room for capacity
// samples. A non-positive capacity is treated as 1.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{data: make([]Sample[T], capacity), cap: capacity}
}

// Push appends a new sample, evicting the oldest one first if the
// buffer is already at capacity.
func (r *RingBuffer[T]) Push(value T, at time.Time) {
	idx := (r.start + r.len) % r.cap
	r.data[idx] = Sample[T]{Value: value, At: at}
	if r.len < r.cap {
		r.len++
	} else {
		r.start = (r.start + 1) % r.cap
	}
}

// Len reports how many samples are currently held (0 ≤ Len ≤ Cap).
func (r *RingBuffer[T]) Len() int {
	return r.len
}

// Cap reports the buffer's fixed capacity.
func (r *RingBuffer[T]) Cap() int {
	return r.cap
}

// Latest returns the most recently pushed sample, or the zero value
// and false if the buffer is empty.
func (r *RingBuffer[T]) Latest() (Sample[T], bool) {
	if r.len == 0 {
		var zero Sample[T]
		return zero, false
	}
	idx := (r.start + r.len - 1) % r.cap
	return r.data[idx], true
}

// Iter returns every held sample ordered oldest to newest.
func (r *RingBuffer[T]) Iter() []Sample[T] {
	out := make([]Sample[T], r.len)
	for i := 0; i < r.len; i++ {
		out[i] = r.data[(r.start+i)%r.cap]
	}
	return out
}

// ToUint64Series projects every held sample to a uint64 via the
// supplied lossy conversion, oldest to newest, for sparkline-style
// rendering that only needs a magnitude.
func (r *RingBuffer[T]) ToUint64Series(to func(T) uint64) []uint64 {
	out := make([]uint64, r.len)
	for i := 0; i < r.len; i++ {
		out[i] = to(r.data[(r.start+i)%r.cap].Value)
	}
	return out
}
