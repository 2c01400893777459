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

// Package parse holds every hand-written, defensive converter from a
// diagnostic tool's textual or JSON output to a typed model record.
// Every exported function here is pure and deterministic: given the
// same bytes, it produces the same record, and it never panics on
// malformed input — it returns a *errors.Error with Kind Parse
// instead.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var headerLineRe = regexp.MustCompile(`^\s*\d+\s*:\s*$`)

// stripHeader drops leading lines that are only a bare numeric prefix
// followed by a colon (the target-id header diagnostic tools prepend
// to their output), plus any blank lines ahead of real content.
func stripHeader(lines []string) []string {
	i := 0
	for i < len(lines) {
		t := strings.TrimSpace(lines[i])
		if t == "" || headerLineRe.MatchString(lines[i]) {
			i++
			continue
		}
		break
	}
	return lines[i:]
}

// splitLines normalizes CRLF/LF and returns physical lines without a
// trailing empty element from a final newline.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// parsePercent honors the "-" ⇒ 0 rule (§4.2 rule 3) and otherwise
// parses a plain decimal percentage.
func parsePercent(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	if tok == "-" {
		return 0, nil
	}
	return strconv.ParseFloat(tok, 64)
}

// parseKiB parses a bare integer count of KiB (the digits preceding a
// literal "K" suffix the diagnostic tools always emit, already
// stripped by the caller's regex capture group).
func parseKiB(tok string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(tok), 10, 64)
}

var siSuffixRe = regexp.MustCompile(`(?i)^\s*([\d.]+)\s*([KMGT]?)\s*$`)

var siMultiplier = map[string]uint64{
	"":  1,
	"K": 1024,
	"M": 1024 * 1024,
	"G": 1024 * 1024 * 1024,
	"T": 1024 * 1024 * 1024 * 1024,
}

// parseSIBytes parses a byte count that may carry a K/M/G/T suffix, as
// class histogram byte columns sometimes do.
func parseSIBytes(tok string) (uint64, error) {
	m := siSuffixRe.FindStringSubmatch(tok)
	if m == nil {
		return strconv.ParseUint(strings.TrimSpace(tok), 10, 64)
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, err
	}
	mult := siMultiplier[strings.ToUpper(m[2])]
	return uint64(f * float64(mult)), nil
}
