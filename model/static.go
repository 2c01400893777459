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

// Package model holds the typed records every parser produces and
// every connector capability returns: static-info entities fetched
// once per connection, dynamic-metric entities polled every tick, and
// on-demand entities fetched by explicit user action.
package model

import "strings"

// RuntimeVersion is captured once per connection from the version
// diagnostic command and never mutated afterward.
type RuntimeVersion struct {
	Name         string
	Version      string
	FamilyVersion string
}

// CollectorKind identifies the target's memory reclamation subsystem,
// derived by scanning RuntimeFlags for sentinel substrings.
type CollectorKind uint8

const (
	CollectorUnknown CollectorKind = iota
	CollectorG1
	CollectorZ
	CollectorShenandoah
	CollectorParallel
	CollectorSerial
	CollectorConcurrentMarkSweep
)

func (k CollectorKind) String() string {
	switch k {
	case CollectorG1:
		return "G1"
	case CollectorZ:
		return "Z"
	case CollectorShenandoah:
		return "Shenandoah"
	case CollectorParallel:
		return "Parallel"
	case CollectorSerial:
		return "Serial"
	case CollectorConcurrentMarkSweep:
		return "ConcurrentMarkSweep"
	default:
		return "Unknown"
	}
}

// collectorSentinels is scanned in order: the first matching flag
// substring wins, mirroring how the JVM itself only ever enables one
// collector family at a time but reports it via differently-worded
// flags depending on vendor and version.
var collectorSentinels = []struct {
	kind      CollectorKind
	substring string
}{
	{CollectorG1, "UseG1GC"},
	{CollectorZ, "UseZGC"},
	{CollectorShenandoah, "UseShenandoahGC"},
	{CollectorParallel, "UseParallelGC"},
	{CollectorSerial, "UseSerialGC"},
	{CollectorConcurrentMarkSweep, "UseConcMarkSweepGC"},
}

// RuntimeFlags is the ordered list of flag strings reported by the
// target, plus the max/initial heap sizes when present among them.
type RuntimeFlags struct {
	Flags          []string
	MaxHeapKiB     uint64
	InitialHeapKiB uint64
}

// DeriveCollectorKind scans f.Flags in sentinel order and returns the
// first family whose marker substring is present in any flag.
func (f RuntimeFlags) DeriveCollectorKind() CollectorKind {
	for _, sentinel := range collectorSentinels {
		for _, flag := range f.Flags {
			if strings.Contains(flag, sentinel.substring) {
				return sentinel.kind
			}
		}
	}
	return CollectorUnknown
}

// SystemProperties is a key→value map; insertion order is preserved
// via Keys for display purposes but carries no semantic weight.
type SystemProperties struct {
	values map[string]string
	keys   []string
}

// NewSystemProperties returns an empty SystemProperties ready for Set.
func NewSystemProperties() *SystemProperties {
	return &SystemProperties{values: make(map[string]string)}
}

// Set records key=value, preserving first-insertion order for Keys.
func (p *SystemProperties) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it was present.
func (p *SystemProperties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the property names in insertion order.
func (p *SystemProperties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len reports the number of properties held.
func (p *SystemProperties) Len() int {
	return len(p.values)
}
