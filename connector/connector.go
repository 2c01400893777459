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

// Package connector gives the polling engine and the action dispatcher
// one capability set regardless of which of the three back-ends a
// target is actually reached through: a local diagnostic subprocess, a
// remote one over an encrypted shell, or a JSON management bridge over
// HTTP. Static info is fetched once and cached for the connector's
// lifetime; everything else is fetched fresh on every call.
package connector

import (
	"context"

	"github.com/jvmtui/core/model"
)

// Connector is the uniform capability set every variant implements.
// Ordering between concurrent calls on the same instance is
// unconstrained and must be safe; a variant may serialize internally
// (the HTTP variant pools connections, the shell variant multiplexes
// sessions on its single authenticated client).
type Connector interface {
	// TargetID returns this connector's stable target identifier.
	TargetID() string

	// IsAlive is a cheap liveness probe; it never blocks past the
	// connector's command timeout and never panics.
	IsAlive(ctx context.Context) bool

	// VMVersion, VMFlags and SystemProperties fetch once and cache for
	// the connector's lifetime; a failed first fetch is not cached.
	VMVersion(ctx context.Context) (model.RuntimeVersion, error)
	VMFlags(ctx context.Context) (model.RuntimeFlags, error)
	SystemProperties(ctx context.Context) (*model.SystemProperties, error)

	// UptimeSeconds, HeapInfo, GcCounters, ThreadSummary and ClassStats
	// are polled fresh on every call.
	UptimeSeconds(ctx context.Context) (float64, error)
	HeapInfo(ctx context.Context) (model.HeapInfo, error)
	GcCounters(ctx context.Context) (model.GcCounters, error)
	ThreadSummary(ctx context.Context) (model.ThreadSummary, error)
	ClassStats(ctx context.Context) (model.ClassStats, error)

	// ThreadDump, ClassHistogram and VMInfoRaw are captured only on
	// explicit user request, never by the polling engine.
	ThreadDump(ctx context.Context) (model.ThreadDump, error)
	ClassHistogram(ctx context.Context) (model.ClassHistogram, error)
	VMInfoRaw(ctx context.Context) ([]byte, error)

	// TriggerCollection requests a collection cycle on the target and
	// reports whether it was acknowledged. It is the only write
	// operation this package exposes.
	TriggerCollection(ctx context.Context) error

	// Close releases any resource the underlying transport holds open
	// (e.g. the RemoteShell variant's authenticated connection). It is
	// idempotent and safe to call on a connector that never opened a
	// persistent resource.
	Close() error
}

// Diagnostic command names used by the Local and RemoteShell variants
// (both execute the identical command set over different transports;
// only the RemoteHttp variant maps operations to management-bean
// reads instead — see http.go).
const (
	opVMVersion         = "VM.version"
	opVMFlags           = "VM.flags"
	opSystemProperties  = "VM.system_properties"
	opUptime            = "VM.uptime"
	opHeapInfo          = "GC.heap_info"
	opGcPercentCounters = "GC.class_stats"
	opThreadPrint       = "Thread.print"
	opClassHistogram    = "GC.class_histogram"
	opVMInfo            = "VM.info"
	opGcRun             = "GC.run"
)
