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

	"github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/model"
)

var (
	heapTotalUsedRe = regexp.MustCompile(`(?i)^\s*\S.*\btotal\s+(\d+)K,\s*used\s+(\d+)K`)
	regionRe        = regexp.MustCompile(`(?i)region size\s+(\d+)K,\s*(\d+)\s+young\s+\((\d+)K\),\s*(\d+)\s+survivors\s+\((\d+)K\)`)
	metaspaceRe     = regexp.MustCompile(`(?i)Metaspace\s+used\s+(\d+)K,\s*committed\s+(\d+)K,\s*reserved\s+(\d+)K`)
	classSpaceRe    = regexp.MustCompile(`(?i)class space\s+used\s+(\d+)K,\s*committed\s+(\d+)K`)
)

// HeapInfo parses the text diagnostic's heap section into a
// model.HeapInfo. The collector-name/total/used line and the
// Metaspace line are required; the region-layout and class-space lines
// are optional (only regional collectors emit them).
func HeapInfo(text string) (model.HeapInfo, error) {
	lines := stripHeader(splitLines(text))

	var out model.HeapInfo
	var haveTotalUsed, haveMetaspace bool

	for _, line := range lines {
		if m := heapTotalUsedRe.FindStringSubmatch(line); m != nil && !haveTotalUsed {
			total, err := parseKiB(m[1])
			if err != nil {
				return out, errors.NewParse("heap total", "malformed total KiB")
			}
			used, err := parseKiB(m[2])
			if err != nil {
				return out, errors.NewParse("heap used", "malformed used KiB")
			}
			out.TotalKiB = total
			out.UsedKiB = used
			haveTotalUsed = true
			continue
		}

		if m := regionRe.FindStringSubmatch(line); m != nil {
			if v, err := parseKiB(m[1]); err == nil {
				out.RegionSizeKiB = v
			}
			if v, err := parseKiB(m[2]); err == nil {
				out.YoungRegions = v
			}
			if v, err := parseKiB(m[4]); err == nil {
				out.SurvivorRegions = v
			}
			continue
		}

		if m := metaspaceRe.FindStringSubmatch(line); m != nil && !haveMetaspace {
			u, errU := parseKiB(m[1])
			c, errC := parseKiB(m[2])
			r, errR := parseKiB(m[3])
			if errU != nil || errC != nil || errR != nil {
				return out, errors.NewParse("metaspace", "malformed metaspace KiB values")
			}
			out.MetaspaceUsedKiB = u
			out.MetaspaceCommittedKiB = c
			out.MetaspaceReservedKiB = r
			haveMetaspace = true
			continue
		}

		if m := classSpaceRe.FindStringSubmatch(line); m != nil {
			if v, err := parseKiB(m[1]); err == nil {
				out.ClassSpaceUsedKiB = v
			}
			if v, err := parseKiB(m[2]); err == nil {
				out.ClassSpaceCommittedKiB = v
			}
			continue
		}
	}

	if !haveTotalUsed {
		return out, errors.NewParse("heap total/used", "missing heap total/used line")
	}
	if !haveMetaspace {
		return out, errors.NewParse("metaspace", "missing Metaspace line")
	}

	return out, nil
}
