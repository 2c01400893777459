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

package ring

import (
	"sync"
	"time"

	"github.com/jvmtui/core/model"
)

// DefaultHistoryCapacity is used when a caller-supplied history
// capacity is not positive.
const DefaultHistoryCapacity = 300

// Store is the single process-wide, single-writer/many-reader
// destination for everything a polling engine captures. It is created
// on attach, shared read-only with the renderer, mutated only by the
// polling engine, and discarded on detach.
//
// The consecutive-error counter kept here is advisory only, intended
// for UI display; the disconnection decision is owned by the polling
// engine's own streak, not this counter (see the poll package).
type Store struct {
	mu sync.RWMutex

	heapUsedKiB    *RingBuffer[uint64]
	heapTotalKiB   *RingBuffer[uint64]
	metaspaceUsed  *RingBuffer[uint64]
	grandGCSeconds *RingBuffer[float64]

	heap    model.HeapInfo
	hasHeap bool

	gc    model.GcCounters
	hasGC bool

	threads    model.ThreadSummary
	hasThreads bool

	classes    model.ClassStats
	hasClasses bool

	threadDump    model.ThreadDump
	hasThreadDump bool

	histogram    model.ClassHistogram
	hasHistogram bool

	uptimeSeconds float64
	hasUptime     bool

	lastSuccess    time.Time
	hasLastSuccess bool

	consecutiveErrors uint32
}

// NewStore returns an empty Store whose ring buffers hold up to
// historyCapacity samples each.
func NewStore(historyCapacity int) *Store {
	if historyCapacity < 1 {
		historyCapacity = DefaultHistoryCapacity
	}
	return &Store{
		heapUsedKiB:    NewRingBuffer[uint64](historyCapacity),
		heapTotalKiB:   NewRingBuffer[uint64](historyCapacity),
		metaspaceUsed:  NewRingBuffer[uint64](historyCapacity),
		grandGCSeconds: NewRingBuffer[float64](historyCapacity),
	}
}

// PushHeapInfo records a new heap sample: updates the heap and
// metaspace ring buffers, replaces the HeapInfo latest-value slot, and
// marks a successful poll.
func (s *Store) PushHeapInfo(h model.HeapInfo, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.heapUsedKiB.Push(h.UsedKiB, at)
	s.heapTotalKiB.Push(h.TotalKiB, at)
	s.metaspaceUsed.Push(h.MetaspaceUsedKiB, at)

	s.heap = h
	s.hasHeap = true
	s.markSuccessLocked(at)
}

// PushGcCounters records a new GC sample: updates the grand-GC-seconds
// ring buffer, replaces the GcCounters latest-value slot, and marks a
// successful poll.
func (s *Store) PushGcCounters(g model.GcCounters, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grandGCSeconds.Push(g.TotalSecs, at)

	s.gc = g
	s.hasGC = true
	s.markSuccessLocked(at)
}

// UpdateThreadSummary replaces the ThreadSummary latest-value slot and
// marks a successful poll. Peak is taken as the largest of: the
// connector-reported Peak (the HTTP variant's real JMX
// peakThreadCount), the sample's own Total, and whatever Peak was
// already on record — so the Local/RemoteShell variants, which have no
// historical-peak diagnostic and always report Peak == 0, still get a
// genuine running maximum tracked here instead of a value pinned to
// the current tick's Total.
func (s *Store) UpdateThreadSummary(t model.ThreadSummary, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	peak := t.Peak
	if t.Total > peak {
		peak = t.Total
	}
	if s.hasThreads && s.threads.Peak > peak {
		peak = s.threads.Peak
	}
	t.Peak = peak

	s.threads = t
	s.hasThreads = true
	s.markSuccessLocked(at)
}

// UpdateClassStats replaces the ClassStats latest-value slot and marks
// a successful poll.
func (s *Store) UpdateClassStats(c model.ClassStats, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.classes = c
	s.hasClasses = true
	s.markSuccessLocked(at)
}

// UpdateUptime replaces the uptime-seconds latest-value slot and marks
// a successful poll.
func (s *Store) UpdateUptime(seconds float64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uptimeSeconds = seconds
	s.hasUptime = true
	s.markSuccessLocked(at)
}

// StoreThreadDump replaces the ThreadDump latest-value slot. Unlike
// the dynamic-metric updates, an on-demand capture is not counted as
// a polling success.
func (s *Store) StoreThreadDump(d model.ThreadDump) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.threadDump = d
	s.hasThreadDump = true
}

// StoreClassHistogram replaces the ClassHistogram latest-value slot.
// Like StoreThreadDump, this does not count as a polling success.
func (s *Store) StoreClassHistogram(h model.ClassHistogram) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.histogram = h
	s.hasHistogram = true
}

// RecordError increments the advisory consecutive-error counter. It
// never touches last-success.
func (s *Store) RecordError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consecutiveErrors++
}

// markSuccessLocked must be called with mu held for writing. It
// stamps last-success and resets the advisory error counter, matching
// the reset-on-any-success policy this store specifies.
func (s *Store) markSuccessLocked(at time.Time) {
	s.lastSuccess = at
	s.hasLastSuccess = true
	s.consecutiveErrors = 0
}

// IsStale reports whether the last successful poll is older than
// threshold, or whether there has never been one.
func (s *Store) IsStale(threshold time.Duration, now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasLastSuccess {
		return true
	}
	return now.Sub(s.lastSuccess) > threshold
}

// ConsecutiveErrors returns the advisory error counter's current
// value, for UI display only.
func (s *Store) ConsecutiveErrors() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.consecutiveErrors
}

// HeapInfo returns the latest HeapInfo snapshot and whether one has
// ever been recorded.
func (s *Store) HeapInfo() (model.HeapInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heap, s.hasHeap
}

// GcCounters returns the latest GcCounters snapshot and whether one
// has ever been recorded.
func (s *Store) GcCounters() (model.GcCounters, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gc, s.hasGC
}

// ThreadSummary returns the latest ThreadSummary snapshot and whether
// one has ever been recorded.
func (s *Store) ThreadSummary() (model.ThreadSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threads, s.hasThreads
}

// ClassStats returns the latest ClassStats snapshot and whether one
// has ever been recorded.
func (s *Store) ClassStats() (model.ClassStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.classes, s.hasClasses
}

// ThreadDump returns the last captured ThreadDump and whether one has
// ever been stored.
func (s *Store) ThreadDump() (model.ThreadDump, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threadDump, s.hasThreadDump
}

// ClassHistogram returns the last captured ClassHistogram and whether
// one has ever been stored.
func (s *Store) ClassHistogram() (model.ClassHistogram, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.histogram, s.hasHistogram
}

// UptimeSeconds returns the latest uptime sample and whether one has
// ever been recorded.
func (s *Store) UptimeSeconds() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uptimeSeconds, s.hasUptime
}

// LastSuccess returns the timestamp of the last successful poll and
// whether one has ever occurred.
func (s *Store) LastSuccess() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSuccess, s.hasLastSuccess
}

// HeapUsedSeries returns the heap-used-KiB ring buffer's contents,
// oldest to newest.
func (s *Store) HeapUsedSeries() []Sample[uint64] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heapUsedKiB.Iter()
}

// HeapTotalSeries returns the heap-total-KiB ring buffer's contents,
// oldest to newest.
func (s *Store) HeapTotalSeries() []Sample[uint64] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heapTotalKiB.Iter()
}

// MetaspaceUsedSeries returns the metaspace-used-KiB ring buffer's
// contents, oldest to newest.
func (s *Store) MetaspaceUsedSeries() []Sample[uint64] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metaspaceUsed.Iter()
}

// GrandGCSecondsSeries returns the grand-GC-seconds ring buffer's
// contents, oldest to newest.
func (s *Store) GrandGCSecondsSeries() []Sample[float64] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grandGCSeconds.Iter()
}
