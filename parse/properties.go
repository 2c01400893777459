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
	"strings"

	"github.com/jvmtui/core/model"
)

// SystemProperties parses one "key=value" pair per line (as the
// system-properties diagnostic command prints them) into an
// insertion-ordered model.SystemProperties. Lines without a literal
// "=" are skipped rather than treated as an error: this command's
// output is advisory, not required by any other capability.
func SystemProperties(text string) *model.SystemProperties {
	lines := stripHeader(splitLines(text))

	out := model.NewSystemProperties()
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		idx := strings.Index(t, "=")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(t[:idx])
		value := strings.TrimSpace(t[idx+1:])
		if key == "" {
			continue
		}
		out.Set(key, value)
	}
	return out
}
