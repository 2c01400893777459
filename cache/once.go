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

// Package cache holds the static-info cache used by every connector
// variant: a piece of JVM information (runtime version, flags, system
// properties, collector kind) is fetched at most once per connection
// and held for the lifetime of that connection, never expiring and
// never refreshed. This is a deliberate divergence from a
// general-purpose TTL-expiring cache: nothing in this domain's static
// info ever changes while a connection is attached.
package cache

import "sync"

// Once holds a single lazily-computed value of type T. The first
// caller to reach Get runs fetch while holding the write lock;
// everyone else — including concurrent callers blocked on the read
// lock during that first fetch — observes the cached result once it
// lands. A failed fetch is not cached: the next Get retries.
type Once[T any] struct {
	mu   sync.RWMutex
	done bool
	val  T
	err  error
}

// Get returns the cached value, computing it via fetch on first call.
// Errors are never cached, so a transient fetch failure can be retried
// by a later Get.
func (o *Once[T]) Get(fetch func() (T, error)) (T, error) {
	o.mu.RLock()
	if o.done {
		val, err := o.val, o.err
		o.mu.RUnlock()
		return val, err
	}
	o.mu.RUnlock()

	o.mu.Lock()
	defer o.mu.Unlock()

	// Re-check: another goroutine may have populated it while we
	// waited for the write lock.
	if o.done {
		return o.val, o.err
	}

	val, err := fetch()
	if err != nil {
		return val, err
	}

	o.val = val
	o.done = true
	return o.val, nil
}

// Peek returns the cached value without triggering a fetch. ok is
// false if Get has never successfully completed.
func (o *Once[T]) Peek() (val T, ok bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.val, o.done
}

// Reset clears the cached value, forcing the next Get to re-fetch.
func (o *Once[T]) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	var zero T
	o.val = zero
	o.done = false
	o.err = nil
}
