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

	"github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/model"
)

var (
	vmVersionRe  = regexp.MustCompile(`(?i)^(.+?)\s+version\s+"?([^"\s]+)"?`)
	jdkVersionRe = regexp.MustCompile(`(?i)\bJDK\s+"?([^"\s]+)"?`)
	uptimeRe     = regexp.MustCompile(`(?i)^\s*([\d.]+)\s*s\b`)
)

// RuntimeVersion parses the first recognized "<name> version <ver>"
// line, with an optional "JDK <ver>" line supplying the family
// version (falling back to the vm version when absent).
func RuntimeVersion(text string) (model.RuntimeVersion, error) {
	lines := stripHeader(splitLines(text))

	var out model.RuntimeVersion
	var have bool

	for _, line := range lines {
		if !have {
			if m := vmVersionRe.FindStringSubmatch(line); m != nil {
				out.Name = m[1]
				out.Version = m[2]
				out.FamilyVersion = m[2]
				have = true
				continue
			}
		}
		if m := jdkVersionRe.FindStringSubmatch(line); m != nil {
			out.FamilyVersion = m[1]
		}
	}

	if !have {
		return out, errors.NewParse("version", "no recognized \"<name> version <ver>\" line")
	}
	return out, nil
}

// Uptime parses the first line whose trimmed numeric value is
// followed by an "s" (or " s") suffix as a floating-point seconds
// count.
func Uptime(text string) (float64, error) {
	lines := stripHeader(splitLines(text))

	for _, line := range lines {
		if m := uptimeRe.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return 0, errors.NewParse("uptime", "malformed uptime value")
			}
			return v, nil
		}
	}
	return 0, errors.NewParse("uptime", "no line with an \"s\" suffix found")
}
