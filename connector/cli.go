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

package connector

import (
	"context"
	"io"

	"github.com/jvmtui/core/cache"
	"github.com/jvmtui/core/duration"
	"github.com/jvmtui/core/model"
	"github.com/jvmtui/core/parse"
	"github.com/jvmtui/core/transport"
)

// cliConnector implements Connector over any transport.Executor that
// accepts the shared diagnostic command set — the Local and
// RemoteShell variants differ only in which Executor they hold.
type cliConnector struct {
	id      string
	exec    transport.Executor
	timeout duration.Duration

	version    cache.Once[model.RuntimeVersion]
	flags      cache.Once[model.RuntimeFlags]
	properties cache.Once[*model.SystemProperties]
}

func newCliConnector(id string, exec transport.Executor, timeout duration.Duration) *cliConnector {
	return &cliConnector{id: id, exec: exec, timeout: timeout}
}

// NewFromExecutor builds a Connector over any transport.Executor that
// speaks the shared diagnostic command set — the common path NewLocal
// and NewRemoteShell both funnel through, exposed directly so a
// caller that already holds an Executor (e.g. one pre-validated by the
// detector) doesn't need to go through a profile-specific constructor.
func NewFromExecutor(id string, exec transport.Executor, commandTimeout duration.Duration) Connector {
	return newCliConnector(id, exec, commandTimeout)
}

func (c *cliConnector) TargetID() string { return c.id }

func (c *cliConnector) call(ctx context.Context, operation string, args []string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout.Time())
	defer cancel()
	return c.exec.Execute(ctx, operation, args)
}

func (c *cliConnector) IsAlive(ctx context.Context) bool {
	_, err := c.UptimeSeconds(ctx)
	return err == nil
}

func (c *cliConnector) VMVersion(ctx context.Context) (model.RuntimeVersion, error) {
	return c.version.Get(func() (model.RuntimeVersion, error) {
		out, err := c.call(ctx, opVMVersion, nil)
		if err != nil {
			return model.RuntimeVersion{}, err
		}
		return parse.RuntimeVersion(string(out))
	})
}

func (c *cliConnector) VMFlags(ctx context.Context) (model.RuntimeFlags, error) {
	return c.flags.Get(func() (model.RuntimeFlags, error) {
		out, err := c.call(ctx, opVMFlags, nil)
		if err != nil {
			return model.RuntimeFlags{}, err
		}
		return parse.RuntimeFlags(string(out)), nil
	})
}

func (c *cliConnector) SystemProperties(ctx context.Context) (*model.SystemProperties, error) {
	return c.properties.Get(func() (*model.SystemProperties, error) {
		out, err := c.call(ctx, opSystemProperties, nil)
		if err != nil {
			return nil, err
		}
		return parse.SystemProperties(string(out)), nil
	})
}

func (c *cliConnector) UptimeSeconds(ctx context.Context) (float64, error) {
	out, err := c.call(ctx, opUptime, nil)
	if err != nil {
		return 0, err
	}
	return parse.Uptime(string(out))
}

func (c *cliConnector) HeapInfo(ctx context.Context) (model.HeapInfo, error) {
	out, err := c.call(ctx, opHeapInfo, nil)
	if err != nil {
		return model.HeapInfo{}, err
	}
	return parse.HeapInfo(string(out))
}

func (c *cliConnector) GcCounters(ctx context.Context) (model.GcCounters, error) {
	out, err := c.call(ctx, opGcPercentCounters, nil)
	if err != nil {
		return model.GcCounters{}, err
	}
	return parse.GcCounters(string(out))
}

func (c *cliConnector) ThreadSummary(ctx context.Context) (model.ThreadSummary, error) {
	dump, err := c.ThreadDump(ctx)
	if err != nil {
		return model.ThreadSummary{}, err
	}
	return summarizeThreads(dump), nil
}

func (c *cliConnector) ClassStats(ctx context.Context) (model.ClassStats, error) {
	hist, err := c.ClassHistogram(ctx)
	if err != nil {
		return model.ClassStats{}, err
	}
	return model.ClassStats{TotalEverLoaded: uint64(len(hist.Entries))}, nil
}

func (c *cliConnector) ThreadDump(ctx context.Context) (model.ThreadDump, error) {
	out, err := c.call(ctx, opThreadPrint, nil)
	if err != nil {
		return model.ThreadDump{}, err
	}
	return parse.ThreadDump(string(out))
}

func (c *cliConnector) ClassHistogram(ctx context.Context) (model.ClassHistogram, error) {
	out, err := c.call(ctx, opClassHistogram, nil)
	if err != nil {
		return model.ClassHistogram{}, err
	}
	return parse.ClassHistogram(string(out)), nil
}

func (c *cliConnector) VMInfoRaw(ctx context.Context) ([]byte, error) {
	return c.call(ctx, opVMInfo, nil)
}

func (c *cliConnector) TriggerCollection(ctx context.Context) error {
	_, err := c.call(ctx, opGcRun, nil)
	return err
}

// Close releases the underlying executor's resources if it holds any
// (the RemoteShell variant's ssh.Client); the Local variant's executor
// holds nothing persistent and is a no-op here.
func (c *cliConnector) Close() error {
	if closer, ok := c.exec.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// summarizeThreads derives the histogram/total/daemon view the dynamic
// ThreadSummary capability needs from a full ThreadDump, since neither
// the Local nor RemoteShell command set exposes a cheaper, summary-only
// diagnostic. It leaves Peak at its zero value: unlike the HTTP
// variant, which reads a genuine historical peakThreadCount JMX
// attribute (parse.ThreadSummaryFromManagement), a single thread dump
// has no notion of a historical peak — that running max is derived
// across ticks by ring.Store.UpdateThreadSummary instead.
func summarizeThreads(dump model.ThreadDump) model.ThreadSummary {
	summary := model.ThreadSummary{Histogram: make(map[model.ThreadState]uint32)}
	for _, t := range dump.Threads {
		summary.Total++
		if t.Daemon {
			summary.Daemon++
		}
		summary.Histogram[t.State]++
	}
	return summary
}
