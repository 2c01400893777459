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

// Package atomic provides a generic, lock-free snapshot cell for
// publishing a value read concurrently by many goroutines; the polling
// engine holds its live-swappable tick interval in one.
package atomic

import "sync/atomic"

// Value is a generic atomically-swappable cell over T's zero value.
// Unlike the teacher's original cast/default-value machinery, this
// domain never needs to distinguish "unset" from "holding the zero
// value", so Value is a thin, allocation-light wrapper around
// atomic.Pointer[T].
type Value[T any] struct {
	p atomic.Pointer[T]
}

// NewValue returns a Value initialized to init.
func NewValue[T any](init T) *Value[T] {
	v := &Value[T]{}
	v.Store(init)
	return v
}

// Load returns the current value, or the zero value of T if Store was
// never called.
func (v *Value[T]) Load() T {
	p := v.p.Load()
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Store atomically replaces the current value.
func (v *Value[T]) Store(val T) {
	v.p.Store(&val)
}

// Swap atomically replaces the current value and returns the previous
// one (the zero value of T if Store was never called).
func (v *Value[T]) Swap(val T) (old T) {
	p := v.p.Swap(&val)
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// CompareAndSwap atomically sets the value to new only if the current
// value equals old, as reported by equal. A plain == comparison isn't
// available for an arbitrary T, so the caller supplies the comparator.
func (v *Value[T]) CompareAndSwap(old, new T, equal func(a, b T) bool) bool {
	for {
		cur := v.p.Load()
		var curVal T
		if cur != nil {
			curVal = *cur
		}
		if !equal(curVal, old) {
			return false
		}
		if v.p.CompareAndSwap(cur, &new) {
			return true
		}
	}
}
