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

// ThreadInfo is one thread's header plus its captured stack frames.
type ThreadInfo struct {
	Name       string
	ID         uint64
	Daemon     bool
	Priority   int
	State      ThreadState
	StateDetail string
	CPUMillis  float64
	HasCPU     bool
	ElapsedSecs float64
	HasElapsed  bool
	Frames     []string
}

// ThreadDump is a full on-demand capture: every live thread at the
// instant the diagnostic command ran, in the order reported.
type ThreadDump struct {
	Timestamp string
	Header    string
	Threads   []ThreadInfo
}

// HistogramEntry is one row of a class histogram: rank is 1-based and
// matches the source table's ordering (typically by ByteCount desc).
type HistogramEntry struct {
	Rank          int
	InstanceCount uint64
	ByteCount     uint64
	ClassName     string
}

// ClassHistogram is an on-demand capture of live instance counts by
// class, plus totals summed over Entries (a table's own footer line is
// not read).
type ClassHistogram struct {
	Entries            []HistogramEntry
	TotalInstanceCount uint64
	TotalByteCount      uint64
}
