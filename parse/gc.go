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
	"github.com/jvmtui/core/model"
)

// gcColumnCount is the fixed column order for the percentage/counts
// table: S0 S1 E O M CCS YGC YGCT FGC FGCT CGC CGCT GCT.
const gcColumnCount = 13

// GcCounters parses the 13-column percentage/counts table (§4.2,
// §8 scenario 1): the header is the first physical line, the data is
// the second. A "-" in any percentage slot is treated as 0.
func GcCounters(text string) (model.GcCounters, error) {
	lines := stripHeader(splitLines(text))
	if len(lines) < 2 {
		return model.GcCounters{}, errors.NewParse("gc counters", "expected a header line and a data line")
	}

	cols := strings.Fields(lines[1])
	if len(cols) != gcColumnCount {
		return model.GcCounters{}, errors.NewParse("gc counters", "expected 13 columns, got insufficient columns")
	}

	var out model.GcCounters
	var err error

	if out.Survivor0Percent, err = parsePercent(cols[0]); err != nil {
		return out, errors.NewParse("s0", "malformed percentage")
	}
	if out.Survivor1Percent, err = parsePercent(cols[1]); err != nil {
		return out, errors.NewParse("s1", "malformed percentage")
	}
	if out.EdenPercent, err = parsePercent(cols[2]); err != nil {
		return out, errors.NewParse("eden", "malformed percentage")
	}
	if out.OldPercent, err = parsePercent(cols[3]); err != nil {
		return out, errors.NewParse("old", "malformed percentage")
	}
	if out.MetaspacePercent, err = parsePercent(cols[4]); err != nil {
		return out, errors.NewParse("metaspace", "malformed percentage")
	}
	if out.CompressedClassPercent, err = parsePercent(cols[5]); err != nil {
		return out, errors.NewParse("ccs", "malformed percentage")
	}

	young, err := strconv.ParseUint(cols[6], 10, 64)
	if err != nil {
		return out, errors.NewParse("ygc", "malformed count")
	}
	out.YoungCount = young

	if out.YoungTotalSecs, err = strconv.ParseFloat(cols[7], 64); err != nil {
		return out, errors.NewParse("ygct", "malformed seconds")
	}

	full, err := strconv.ParseUint(cols[8], 10, 64)
	if err != nil {
		return out, errors.NewParse("fgc", "malformed count")
	}
	out.FullCount = full

	if out.FullTotalSecs, err = strconv.ParseFloat(cols[9], 64); err != nil {
		return out, errors.NewParse("fgct", "malformed seconds")
	}

	concurrent, err := strconv.ParseUint(cols[10], 10, 64)
	if err != nil {
		return out, errors.NewParse("cgc", "malformed count")
	}
	out.ConcurrentCount = concurrent

	if out.ConcurrentSecs, err = strconv.ParseFloat(cols[11], 64); err != nil {
		return out, errors.NewParse("cgct", "malformed seconds")
	}

	if out.TotalSecs, err = strconv.ParseFloat(cols[12], 64); err != nil {
		return out, errors.NewParse("gct", "malformed seconds")
	}

	return out, nil
}
