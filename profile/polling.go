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

package profile

import (
	"time"

	"github.com/jvmtui/core/duration"
)

// MinInterval and MaxInterval bound the effective tick cadence a
// PollingConfig is clamped to at construction.
var (
	MinInterval = duration.ParseDuration(250 * time.Millisecond)
	MaxInterval = duration.ParseDuration(10 * time.Second)

	// DefaultCommandTimeout bounds every individual transport call
	// unless a PollingConfig overrides it.
	DefaultCommandTimeout = duration.ParseDuration(5 * time.Second)
)

// DefaultHistoryCapacity is the ring-buffer sample count used when a
// PollingConfig doesn't specify one.
const DefaultHistoryCapacity = 300

// PollingConfig controls one connector's tick cadence, the size of its
// in-memory history, and the per-call deadline applied to every
// transport operation it issues.
type PollingConfig struct {
	Interval        duration.Duration
	HistoryCapacity int
	CommandTimeout  duration.Duration
}

// NewPollingConfig applies defaults for zero fields and clamps
// Interval to [MinInterval, MaxInterval].
func NewPollingConfig(interval duration.Duration, historyCapacity int, commandTimeout duration.Duration) PollingConfig {
	if historyCapacity <= 0 {
		historyCapacity = DefaultHistoryCapacity
	}
	if commandTimeout <= 0 {
		commandTimeout = DefaultCommandTimeout
	}
	return PollingConfig{
		Interval:        interval.Clamp(MinInterval, MaxInterval),
		HistoryCapacity: historyCapacity,
		CommandTimeout:  commandTimeout,
	}
}

// SetInterval re-clamps a new interval into [MinInterval, MaxInterval],
// matching the runtime set_interval behavior: the effective cadence
// never leaves the configured bounds, even on a live change.
func (c *PollingConfig) SetInterval(interval duration.Duration) {
	c.Interval = interval.Clamp(MinInterval, MaxInterval)
}
