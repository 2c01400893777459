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

// Package duration is the day-aware time.Duration wrapper this module
// threads through every place a config value crosses from the outside
// world into a typed field: profile.PollingConfig's clamped Interval
// and its CommandTimeout, the detector's per-tool probe timeout, and the
// poll engine's live-adjustable tick cadence.
//
// It wraps time.Duration with:
//   - Days notation in parsing and formatting (e.g., "5d23h15m13s")
//   - JSON/text (un)marshaling so a PollingConfig round-trips through
//     whatever the external config loader decodes it from
//   - A Clamp used to bound the polling interval to [min, max] regardless
//     of what the loader supplied (§4.6/§5's interval clamp)
//
// The package is limited to time.Duration's range (±290 years); nothing
// in this domain polls or times out on a longer scale than that.
//
// Example usage:
//
//	import "github.com/jvmtui/core/duration"
//
//	d, _ := duration.Parse("5s")
//	cfg := profile.NewPollingConfig(d, 300, profile.DefaultCommandTimeout)
package duration

import (
	"math"
	"time"
)

type Duration time.Duration

// Parse parses a time.Duration-syntax string ("5s", "1h2m3s", ...),
// optionally prefixed by a whole number of days ("2d3h0m0s", "2d"), into
// a Duration. Unit suffixes are case sensitive; returns an error on
// malformed input.
func Parse(s string) (Duration, error) {
	return parseString(s)
}

// ParseByte is Parse over a byte slice, for decoders that hand back raw
// bytes instead of a string (UnmarshalText/UnmarshalJSON).
func ParseByte(p []byte) (Duration, error) {
	return parseString(string(p))
}

// Seconds builds a Duration of i seconds.
func Seconds(i int64) Duration {
	return Duration(time.Duration(i) * time.Second)
}

// Minutes builds a Duration of i minutes.
func Minutes(i int64) Duration {
	return Duration(time.Duration(i) * time.Minute)
}

// Hours builds a Duration of i hours.
func Hours(i int64) Duration {
	return Duration(time.Duration(i) * time.Hour)
}

// Days builds a Duration of i 24-hour days.
func Days(i int64) Duration {
	return Duration(time.Duration(i) * time.Hour * 24)
}

// ParseDuration wraps a time.Duration as a Duration unchanged; the
// canonical way this module's constructors (profile.NewPollingConfig)
// and package defaults (detect.ProbeTimeout) accept a plain stdlib
// duration.
func ParseDuration(d time.Duration) Duration {
	return Duration(d)
}

// ParseFloat64 rounds f nanoseconds to the nearest Duration, clamping
// to ±math.MaxInt64 nanoseconds rather than overflowing.
func ParseFloat64(f float64) Duration {
	const (
		mx float64 = math.MaxInt64
		mi         = -mx
	)

	if f > mx {
		return Duration(math.MaxInt64)
	} else if f < mi {
		return Duration(-math.MaxInt64)
	} else {
		return Duration(math.Round(f))
	}
}

// ParseUint32 builds a Duration of i nanoseconds, clamping to
// math.MaxInt64 rather than overflowing.
func ParseUint32(i uint32) Duration {
	if uint64(i) > uint64(math.MaxInt64) {
		return Duration(math.MaxInt64)
	} else {
		return Duration(i)
	}
}
