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
	"strings"

	"github.com/jvmtui/core/model"
)

var (
	maxHeapSizeRe     = regexp.MustCompile(`(?i)MaxHeapSize\s*(?::|=)\s*(\d+)`)
	initialHeapSizeRe = regexp.MustCompile(`(?i)InitialHeapSize\s*(?::|=)\s*(\d+)`)
)

// RuntimeFlags parses one JVM flag per line (as the flags diagnostic
// command prints them, one "-XX:..." entry per line) into an ordered
// model.RuntimeFlags, pulling MaxHeapSize/InitialHeapSize out of their
// own lines when present. Unlike the other parsers this one has no
// required field: an empty or entirely unrecognized input yields a
// RuntimeFlags with no flags rather than an error, since an
// unsupported runtime may simply print nothing here.
func RuntimeFlags(text string) model.RuntimeFlags {
	lines := stripHeader(splitLines(text))

	var out model.RuntimeFlags
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		out.Flags = append(out.Flags, t)

		if m := maxHeapSizeRe.FindStringSubmatch(t); m != nil {
			if v, err := parseKiB(m[1]); err == nil {
				out.MaxHeapKiB = v / 1024
			}
		}
		if m := initialHeapSizeRe.FindStringSubmatch(t); m != nil {
			if v, err := parseKiB(m[1]); err == nil {
				out.InitialHeapKiB = v / 1024
			}
		}
	}
	return out
}
