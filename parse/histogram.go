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
	"regexp"

	"github.com/jvmtui/core/model"
)

// histogramRowRe matches a rank/instances/bytes/class-name row;
// leading/trailing header and footer lines (column titles, "Total",
// separators) simply never match and are skipped.
var histogramRowRe = regexp.MustCompile(`^\s*(\d+):\s+(\d+)\s+([\d.]+[KMGT]?)\s+(\S+)`)

// ClassHistogram parses a class histogram table, tolerating arbitrary
// leading header lines and trailing footer lines, and accepting
// SI-suffixed byte counts.
func ClassHistogram(text string) model.ClassHistogram {
	var out model.ClassHistogram

	for _, line := range splitLines(text) {
		m := histogramRowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		rank := 0
		if v, err := parseKiB(m[1]); err == nil {
			rank = int(v)
		}
		instances, err := parseKiB(m[2])
		if err != nil {
			continue
		}
		bytes, err := parseSIBytes(m[3])
		if err != nil {
			continue
		}

		out.Entries = append(out.Entries, model.HistogramEntry{
			Rank:          rank,
			InstanceCount: instances,
			ByteCount:     bytes,
			ClassName:     m[4],
		})
		out.TotalInstanceCount += instances
		out.TotalByteCount += bytes
	}

	return out
}
