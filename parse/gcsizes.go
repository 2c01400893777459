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
	"strconv"
	"strings"

	"github.com/jvmtui/core/errors"
)

// gcSizesColumnCount is the fixed 19-column order: S0C S1C S0U S1U EC
// EU OC OU MC MU CCSC CCSU YGC YGCT FGC FGCT CGC CGCT GCT.
const gcSizesColumnCount = 19

// GcSizes is the region-capacity/used variant of the GC diagnostic
// table (§4.2): every generation reports both its capacity and its
// current usage, in KiB, alongside the same three pause counters and
// grand total as GcCounters.
type GcSizes struct {
	Survivor0CapacityKiB uint64
	Survivor0UsedKiB     uint64
	Survivor1CapacityKiB uint64
	Survivor1UsedKiB     uint64
	EdenCapacityKiB      uint64
	EdenUsedKiB          uint64
	OldCapacityKiB       uint64
	OldUsedKiB           uint64
	MetaspaceCapacityKiB uint64
	MetaspaceUsedKiB     uint64
	CCSCapacityKiB       uint64
	CCSUsedKiB           uint64

	YoungCount      uint64
	YoungTotalSecs  float64
	FullCount       uint64
	FullTotalSecs   float64
	ConcurrentCount uint64
	ConcurrentSecs  float64
	TotalSecs       float64
}

// ParseGcSizes parses the 19-column capacity/used GC table.
func ParseGcSizes(text string) (GcSizes, error) {
	lines := stripHeader(splitLines(text))
	if len(lines) < 2 {
		return GcSizes{}, errors.NewParse("gc sizes", "expected a header line and a data line")
	}

	cols := strings.Fields(lines[1])
	if len(cols) != gcSizesColumnCount {
		return GcSizes{}, errors.NewParse("gc sizes", "expected 19 columns, got insufficient columns")
	}

	kib := make([]uint64, 12)
	for i := 0; i < 12; i++ {
		v, err := parseKiB(cols[i])
		if err != nil {
			return GcSizes{}, errors.NewParse("gc sizes", "malformed KiB value")
		}
		kib[i] = v
	}

	var out GcSizes
	out.Survivor0CapacityKiB, out.Survivor1CapacityKiB = kib[0], kib[1]
	out.Survivor0UsedKiB, out.Survivor1UsedKiB = kib[2], kib[3]
	out.EdenCapacityKiB, out.EdenUsedKiB = kib[4], kib[5]
	out.OldCapacityKiB, out.OldUsedKiB = kib[6], kib[7]
	out.MetaspaceCapacityKiB, out.MetaspaceUsedKiB = kib[8], kib[9]
	out.CCSCapacityKiB, out.CCSUsedKiB = kib[10], kib[11]

	young, err := strconv.ParseUint(cols[12], 10, 64)
	if err != nil {
		return out, errors.NewParse("ygc", "malformed count")
	}
	out.YoungCount = young
	if out.YoungTotalSecs, err = strconv.ParseFloat(cols[13], 64); err != nil {
		return out, errors.NewParse("ygct", "malformed seconds")
	}

	full, err := strconv.ParseUint(cols[14], 10, 64)
	if err != nil {
		return out, errors.NewParse("fgc", "malformed count")
	}
	out.FullCount = full
	if out.FullTotalSecs, err = strconv.ParseFloat(cols[15], 64); err != nil {
		return out, errors.NewParse("fgct", "malformed seconds")
	}

	concurrent, err := strconv.ParseUint(cols[16], 10, 64)
	if err != nil {
		return out, errors.NewParse("cgc", "malformed count")
	}
	out.ConcurrentCount = concurrent
	if out.ConcurrentSecs, err = strconv.ParseFloat(cols[17], 64); err != nil {
		return out, errors.NewParse("cgct", "malformed seconds")
	}

	if out.TotalSecs, err = strconv.ParseFloat(cols[18], 64); err != nil {
		return out, errors.NewParse("gct", "malformed seconds")
	}

	return out, nil
}
