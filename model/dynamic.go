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

package model

// HeapInfo is a polled snapshot of heap occupancy. Region-layout
// fields are only present for regional collectors (G1, Shenandoah, Z);
// a zero RegionSizeKiB means the source sample didn't report one.
type HeapInfo struct {
	TotalKiB     uint64
	UsedKiB      uint64
	CommittedKiB uint64
	MaxKiB       uint64

	RegionSizeKiB   uint64
	YoungRegions    uint64
	SurvivorRegions uint64

	MetaspaceUsedKiB      uint64
	MetaspaceCommittedKiB uint64
	MetaspaceReservedKiB  uint64

	ClassSpaceUsedKiB      uint64
	ClassSpaceCommittedKiB uint64
}

// Valid reports whether h satisfies the heap/metaspace ordering
// invariants a correctly parsed sample must hold.
func (h HeapInfo) Valid() bool {
	if h.UsedKiB > h.TotalKiB {
		return false
	}
	if h.MetaspaceUsedKiB > h.MetaspaceCommittedKiB {
		return false
	}
	if h.MetaspaceCommittedKiB > h.MetaspaceReservedKiB {
		return false
	}
	return true
}

// GcCounters is a polled snapshot of collector occupancy percentages
// and cumulative pause counters. Percentages are always in [0, 100];
// "-" in the source text is normalized to 0 by the parser.
type GcCounters struct {
	EdenPercent            float64
	Survivor0Percent       float64
	Survivor1Percent       float64
	OldPercent             float64
	MetaspacePercent       float64
	CompressedClassPercent float64

	YoungCount      uint64
	YoungTotalSecs  float64
	FullCount       uint64
	FullTotalSecs   float64
	ConcurrentCount uint64
	ConcurrentSecs  float64

	TotalSecs float64
}

// AverageYoungSecs returns YoungTotalSecs/YoungCount, or 0 when
// YoungCount is 0 (the average is undefined, not infinite).
func (g GcCounters) AverageYoungSecs() float64 {
	if g.YoungCount == 0 {
		return 0
	}
	return g.YoungTotalSecs / float64(g.YoungCount)
}

// AverageFullSecs returns FullTotalSecs/FullCount, or 0 when FullCount
// is 0.
func (g GcCounters) AverageFullSecs() float64 {
	if g.FullCount == 0 {
		return 0
	}
	return g.FullTotalSecs / float64(g.FullCount)
}

// Newer reports whether g is a valid successor sample to prev: every
// monotonic counter field must be non-decreasing.
func (g GcCounters) Newer(prev GcCounters) bool {
	return g.YoungCount >= prev.YoungCount &&
		g.FullCount >= prev.FullCount &&
		g.ConcurrentCount >= prev.ConcurrentCount &&
		g.TotalSecs >= prev.TotalSecs
}

// ThreadState classifies a single thread's lifecycle state.
type ThreadState uint8

const (
	ThreadNew ThreadState = iota
	ThreadRunnable
	ThreadBlocked
	ThreadWaiting
	ThreadTimedWaiting
	ThreadTerminated
)

func (s ThreadState) String() string {
	switch s {
	case ThreadNew:
		return "NEW"
	case ThreadRunnable:
		return "RUNNABLE"
	case ThreadBlocked:
		return "BLOCKED"
	case ThreadWaiting:
		return "WAITING"
	case ThreadTimedWaiting:
		return "TIMED_WAITING"
	case ThreadTerminated:
		return "TERMINATED"
	default:
		return "RUNNABLE"
	}
}

// ParseThreadState maps a java.lang.Thread.State token to a
// ThreadState; an unrecognized token defaults to Runnable, matching
// the parser's documented fallback.
func ParseThreadState(token string) ThreadState {
	switch token {
	case "NEW":
		return ThreadNew
	case "RUNNABLE":
		return ThreadRunnable
	case "BLOCKED":
		return ThreadBlocked
	case "WAITING":
		return ThreadWaiting
	case "TIMED_WAITING":
		return ThreadTimedWaiting
	case "TERMINATED":
		return ThreadTerminated
	default:
		return ThreadRunnable
	}
}

// ThreadSummary is a polled aggregate thread count with a per-state
// histogram; the histogram values must sum to Total.
type ThreadSummary struct {
	Total     uint32
	Daemon    uint32
	Peak      uint32
	Histogram map[ThreadState]uint32
}

// HistogramSum adds up every bucket in Histogram.
func (t ThreadSummary) HistogramSum() uint32 {
	var sum uint32
	for _, v := range t.Histogram {
		sum += v
	}
	return sum
}

// ClassStats is a polled class-loading counter triple.
type ClassStats struct {
	LoadedCount     uint64
	UnloadedCount   uint64
	TotalEverLoaded uint64
}
