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
)

// DiscoveredTarget is one candidate JVM surfaced by the listing
// diagnostic: a numeric id and the remainder of the line as its label.
type DiscoveredTarget struct {
	ID    uint64
	Label string
}

// helperToolSentinels identify a listing entry as one of the
// diagnostic tools themselves rather than a monitorable application,
// matched case-insensitively as a substring of the label.
var helperToolSentinels = []string{"jps", "sun.tools.jps"}

// DiscoveredTargets parses one record per line: the first
// whitespace-separated token is the numeric id, the remainder is the
// label. Entries whose label names a helper diagnostic tool are
// excluded.
func DiscoveredTargets(text string) []DiscoveredTarget {
	var out []DiscoveredTarget

	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, " ", 2)
		id, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			continue
		}

		label := ""
		if len(fields) == 2 {
			label = strings.TrimSpace(fields[1])
		}

		if isHelperToolLabel(label) {
			continue
		}

		out = append(out, DiscoveredTarget{ID: id, Label: label})
	}

	return out
}

func isHelperToolLabel(label string) bool {
	lower := strings.ToLower(label)
	for _, sentinel := range helperToolSentinels {
		if strings.Contains(lower, sentinel) {
			return true
		}
	}
	return false
}
