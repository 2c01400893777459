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
	"strconv"
	"strings"

	"github.com/jvmtui/core/model"
)

var (
	threadHeaderRe = regexp.MustCompile(`^"(.*?)"\s+(.*)$`)
	threadIDRe     = regexp.MustCompile(`#(\d+)`)
	threadPrioRe   = regexp.MustCompile(`prio=(\d+)`)
	threadCPURe    = regexp.MustCompile(`cpu=([\d.]+)ms`)
	threadElapsedRe = regexp.MustCompile(`elapsed=([\d.]+)s`)
	threadStateRe  = regexp.MustCompile(`java\.lang\.Thread\.State:\s*(\S+)(?:\s*\(([^)]*)\))?`)
)

type threadDumpScanState uint8

const (
	scanning threadDumpScanState = iota
	inThread
)

// ThreadDump runs a streaming line scanner over a full thread-dump
// capture (§4.2): a header line starting with a `"` opens a new
// thread, a `java.lang.Thread.State:` line sets its state, and lines
// beginning with a tab followed by "at " are appended as stack frames.
// A subsequent header `"` line (or end of input) flushes the thread
// being built.
func ThreadDump(text string) (model.ThreadDump, error) {
	lines := splitLines(text)

	out := model.ThreadDump{}
	state := scanning
	var current *model.ThreadInfo

	flush := func() {
		if current != nil {
			out.Threads = append(out.Threads, *current)
			current = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if state == scanning && current == nil && len(out.Threads) == 0 && !strings.HasPrefix(trimmed, "\"") {
			if trimmed == "" {
				continue
			}
			if out.Timestamp == "" {
				out.Timestamp = trimmed
				continue
			}
			if out.Header == "" {
				out.Header = trimmed
				continue
			}
		}

		if m := threadHeaderRe.FindStringSubmatch(line); m != nil {
			flush()
			t := model.ThreadInfo{Name: m[1]}
			rest := m[2]

			if id := threadIDRe.FindStringSubmatch(rest); id != nil {
				if v, err := strconv.ParseUint(id[1], 10, 64); err == nil {
					t.ID = v
				}
			}
			if strings.Contains(rest, " daemon ") || strings.HasPrefix(rest, "daemon ") {
				t.Daemon = true
			}
			if p := threadPrioRe.FindStringSubmatch(rest); p != nil {
				if v, err := strconv.Atoi(p[1]); err == nil {
					t.Priority = v
				}
			}
			if c := threadCPURe.FindStringSubmatch(rest); c != nil {
				if v, err := strconv.ParseFloat(c[1], 64); err == nil {
					t.CPUMillis = v
					t.HasCPU = true
				}
			}
			if e := threadElapsedRe.FindStringSubmatch(rest); e != nil {
				if v, err := strconv.ParseFloat(e[1], 64); err == nil {
					t.ElapsedSecs = v
					t.HasElapsed = true
				}
			}

			current = &t
			state = inThread
			continue
		}

		if state != inThread || current == nil {
			continue
		}

		if m := threadStateRe.FindStringSubmatch(line); m != nil {
			current.State = model.ParseThreadState(m[1])
			current.StateDetail = m[2]
			continue
		}

		if strings.HasPrefix(line, "\tat ") {
			current.Frames = append(current.Frames, strings.TrimPrefix(line, "\tat "))
			continue
		}
	}

	flush()
	return out, nil
}
