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
	"encoding/json"

	"github.com/jvmtui/core/cache"
	"github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/model"
	"github.com/jvmtui/core/parse"
	"github.com/jvmtui/core/transport"
)

// Management-bean names and attributes the RemoteHttp variant reads,
// per spec §4.3 ("maps operation → a bundle of management-bean
// reads").
const (
	mbeanRuntime      = "java.lang:type=Runtime"
	mbeanMemory       = "java.lang:type=Memory"
	mbeanThreading    = "java.lang:type=Threading"
	mbeanClassLoading = "java.lang:type=ClassLoading"

	attrVMVersion        = "VmVersion"
	attrSystemProperties = "SystemProperties"
	attrUptime           = "Uptime"
	attrHeapMemoryUsage  = "HeapMemoryUsage"
)

// httpConnector implements Connector by posting JSON-RPC-style reads
// to a management-bridge HTTP endpoint instead of spawning a process.
// It has no flags-equivalent management bean, no gc-counters bean and
// no thread-dump/class-histogram bean either — process-inspection
// features a management bridge has no contract for — so those calls
// return a Protocol error explaining the variant gap rather than
// silently faking data.
type httpConnector struct {
	id   string
	exec *transport.HttpExecutor

	version    cache.Once[model.RuntimeVersion]
	properties cache.Once[*model.SystemProperties]
}

// NewRemoteHttp builds a Connector that reaches a target through a
// JSON management-bridge endpoint.
func NewRemoteHttp(endpoint string, creds transport.HttpCredentials) Connector {
	return &httpConnector{id: endpoint, exec: transport.NewHttpExecutor(endpoint, creds)}
}

func (c *httpConnector) TargetID() string { return c.id }

func (c *httpConnector) readAttribute(ctx context.Context, mbean, attribute string) (interface{}, error) {
	out, err := c.exec.Execute(ctx, mbean, []string{attribute})
	if err != nil {
		return nil, err
	}
	var value interface{}
	if err := json.Unmarshal(out, &value); err != nil {
		return nil, errors.Wrap(errors.Protocol, "decode management value", err)
	}
	return value, nil
}

func (c *httpConnector) IsAlive(ctx context.Context) bool {
	_, err := c.UptimeSeconds(ctx)
	return err == nil
}

func (c *httpConnector) VMVersion(ctx context.Context) (model.RuntimeVersion, error) {
	return c.version.Get(func() (model.RuntimeVersion, error) {
		value, err := c.readAttribute(ctx, mbeanRuntime, attrVMVersion)
		if err != nil {
			return model.RuntimeVersion{}, err
		}
		name, _ := value.(string)
		return model.RuntimeVersion{Name: name, Version: name, FamilyVersion: name}, nil
	})
}

func (c *httpConnector) VMFlags(_ context.Context) (model.RuntimeFlags, error) {
	return model.RuntimeFlags{}, errors.New(errors.Protocol, "the http management bridge has no flags-equivalent bean")
}

func (c *httpConnector) SystemProperties(ctx context.Context) (*model.SystemProperties, error) {
	return c.properties.Get(func() (*model.SystemProperties, error) {
		value, err := c.readAttribute(ctx, mbeanRuntime, attrSystemProperties)
		if err != nil {
			return nil, err
		}
		out := model.NewSystemProperties()
		if m, ok := value.(map[string]interface{}); ok {
			for k, v := range m {
				if s, ok := v.(string); ok {
					out.Set(k, s)
				}
			}
		}
		return out, nil
	})
}

func (c *httpConnector) UptimeSeconds(ctx context.Context) (float64, error) {
	value, err := c.readAttribute(ctx, mbeanRuntime, attrUptime)
	if err != nil {
		return 0, err
	}
	ms, _ := value.(float64)
	return ms / 1000, nil
}

func (c *httpConnector) HeapInfo(ctx context.Context) (model.HeapInfo, error) {
	value, err := c.readAttribute(ctx, mbeanMemory, attrHeapMemoryUsage)
	if err != nil {
		return model.HeapInfo{}, err
	}
	return parse.HeapInfoFromManagement(value), nil
}

func (c *httpConnector) GcCounters(_ context.Context) (model.GcCounters, error) {
	return model.GcCounters{}, errors.New(errors.Protocol, "the http management bridge has no gc-counters bean")
}

func (c *httpConnector) ThreadSummary(ctx context.Context) (model.ThreadSummary, error) {
	value, err := c.readAttribute(ctx, mbeanThreading, "")
	if err != nil {
		return model.ThreadSummary{}, err
	}
	return parse.ThreadSummaryFromManagement(value), nil
}

func (c *httpConnector) ClassStats(ctx context.Context) (model.ClassStats, error) {
	value, err := c.readAttribute(ctx, mbeanClassLoading, "")
	if err != nil {
		return model.ClassStats{}, err
	}
	return parse.ClassStatsFromManagement(value), nil
}

func (c *httpConnector) ThreadDump(_ context.Context) (model.ThreadDump, error) {
	return model.ThreadDump{}, errors.New(errors.Protocol, "thread dumps are not available over the http management bridge")
}

func (c *httpConnector) ClassHistogram(_ context.Context) (model.ClassHistogram, error) {
	return model.ClassHistogram{}, errors.New(errors.Protocol, "class histograms are not available over the http management bridge")
}

func (c *httpConnector) VMInfoRaw(ctx context.Context) ([]byte, error) {
	return c.exec.Execute(ctx, mbeanRuntime, nil)
}

func (c *httpConnector) TriggerCollection(ctx context.Context) error {
	_, err := c.exec.Execute(ctx, "com.sun.management:type=DiagnosticCommand", []string{"gcRun"})
	return err
}

// Close is a no-op: the HTTP variant holds no persistent connection of
// its own, only the pooled transport inside httpcli's shared client.
func (c *httpConnector) Close() error { return nil }
