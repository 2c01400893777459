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

package parse

import (
	"github.com/jvmtui/core/model"
)

// ManagementResult is the decoded shape of a management-bean JSON
// response: {"status", "value", "timestamp"} (spec §6) — the type
// transport.HttpExecutor.Execute decodes every response into, so the
// wire shape and the domain mappers below share one definition.
type ManagementResult struct {
	Status    uint64      `json:"status"`
	Value     interface{} `json:"value"`
	Timestamp uint64      `json:"timestamp"`
}

// asFloat reads a numeric field out of a loosely typed JSON value,
// returning 0 when absent or of an unexpected type rather than erroring
// — the HTTP variant's domain mappers fall back to an empty record on
// missing fields instead of failing the whole capability (§4.2).
func asFloat(m map[string]interface{}, key string) float64 {
	v, ok := m[key]
	if !ok {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return f
}

// HeapInfoFromManagement maps a java.lang:type=Memory HeapMemoryUsage
// composite value to a HeapInfo. Missing fields yield zero, matching
// the fall-back-to-empty-record policy.
func HeapInfoFromManagement(value interface{}) model.HeapInfo {
	m, ok := value.(map[string]interface{})
	if !ok {
		return model.HeapInfo{}
	}
	return model.HeapInfo{
		UsedKiB:      uint64(asFloat(m, "used")) / 1024,
		CommittedKiB: uint64(asFloat(m, "committed")) / 1024,
		MaxKiB:       uint64(asFloat(m, "max")) / 1024,
		TotalKiB:     uint64(asFloat(m, "committed")) / 1024,
	}
}

// ThreadSummaryFromManagement maps a java.lang:type=Threading
// composite value to a ThreadSummary.
func ThreadSummaryFromManagement(value interface{}) model.ThreadSummary {
	m, ok := value.(map[string]interface{})
	if !ok {
		return model.ThreadSummary{}
	}
	return model.ThreadSummary{
		Total:  uint32(asFloat(m, "threadCount")),
		Daemon: uint32(asFloat(m, "daemonThreadCount")),
		Peak:   uint32(asFloat(m, "peakThreadCount")),
	}
}

// ClassStatsFromManagement maps a java.lang:type=ClassLoading
// composite value to a ClassStats.
func ClassStatsFromManagement(value interface{}) model.ClassStats {
	m, ok := value.(map[string]interface{})
	if !ok {
		return model.ClassStats{}
	}
	return model.ClassStats{
		LoadedCount:     uint64(asFloat(m, "loadedClassCount")),
		UnloadedCount:   uint64(asFloat(m, "unloadedClassCount")),
		TotalEverLoaded: uint64(asFloat(m, "totalLoadedClassCount")),
	}
}
