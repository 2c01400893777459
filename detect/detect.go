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

// Package detect locates the diagnostic tools this module's Local and
// RemoteShell variants shell out to, reports which capabilities they
// together provide, and offers install guidance for anything missing.
// Missing tools are a user-visible warning, never fatal, unless the
// core-required subset is empty.
package detect

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jvmtui/core/duration"
	"github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/logging"
)

// ProbeTimeout bounds each per-tool "-version" probe — tighter than
// the default command timeout (§4.8, §5).
var ProbeTimeout = duration.ParseDuration(time.Second)

// The three diagnostic tools this module knows how to locate: jcmd
// drives heap/gc/thread/class/trigger-collection operations for the
// Local and RemoteShell variants; jps is the primary process-listing
// tool C9 discovery uses; jstat is the secondary listing tool (and the
// source of the %-column text format parse.GcCounters understands) C9
// falls back to when jps is unusable.
const (
	ToolJCmd  = "jcmd"
	ToolJps   = "jps"
	ToolJstat = "jstat"
)

// ToolStatus records what probing one diagnostic tool found.
type ToolStatus struct {
	Name    string
	Path    string
	Present bool
	Usable  bool
	Banner  string
}

// Capabilities is the bitset the rest of the module gates behavior on,
// derived from which tools were found present and usable.
type Capabilities struct {
	CanDiscover          bool
	CanHeapInfo          bool
	CanGcCounters        bool
	CanThreadDump        bool
	CanClassHistogram    bool
	CanTriggerCollection bool
}

// Empty reports whether none of the core-required capabilities are
// available — the one condition §4.8 treats as fatal rather than a
// warning.
func (c Capabilities) Empty() bool {
	return !c.CanDiscover && !c.CanHeapInfo && !c.CanGcCounters &&
		!c.CanThreadDump && !c.CanClassHistogram && !c.CanTriggerCollection
}

// Result is everything a Detect call learned.
type Result struct {
	Tools        map[string]ToolStatus
	Capabilities Capabilities
}

// Detector searches a configured family-home path (e.g. $JAVA_HOME)
// and the process PATH, in that order, for each diagnostic tool.
type Detector struct {
	FamilyHome string
	log        logging.Logger
}

// New returns a Detector that searches familyHome/bin before PATH.
// familyHome may be empty, in which case only PATH is searched.
func New(familyHome string, log logging.Logger) *Detector {
	return &Detector{FamilyHome: familyHome, log: log}
}

func (d *Detector) candidatePaths(tool string) []string {
	var out []string
	if d.FamilyHome != "" {
		out = append(out, filepath.Join(d.FamilyHome, "bin", tool))
	}
	if path := os.Getenv("PATH"); path != "" {
		for _, dir := range filepath.SplitList(path) {
			out = append(out, filepath.Join(dir, tool))
		}
	}
	return out
}

// probe tries each candidate path for tool, in order, spawning
// "<tool> -version" under ProbeTimeout. A candidate that doesn't exist
// is skipped; one that exists but fails to execute is recorded as
// present-but-unusable and the search continues to the next candidate.
func (d *Detector) probe(ctx context.Context, tool string) ToolStatus {
	status := ToolStatus{Name: tool}

	for _, candidate := range d.candidatePaths(tool) {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		status.Present = true
		status.Path = candidate

		pctx, cancel := context.WithTimeout(ctx, ProbeTimeout.Time())
		out, err := exec.CommandContext(pctx, candidate, "-version").CombinedOutput()
		cancel()

		if err != nil {
			if d.log != nil {
				d.log.Warning("diagnostic tool present but not executable", err, "tool", tool, "path", candidate)
			}
			continue
		}

		status.Usable = true
		status.Banner = strings.TrimSpace(string(out))
		return status
	}

	return status
}

// Detect probes for all three diagnostic tools and derives the
// capability bitset. It only returns an error when every tool is
// entirely unusable; partial availability is reported through
// Capabilities, not an error.
func (d *Detector) Detect(ctx context.Context) (Result, error) {
	res := Result{Tools: make(map[string]ToolStatus, 3)}
	for _, tool := range []string{ToolJCmd, ToolJps, ToolJstat} {
		res.Tools[tool] = d.probe(ctx, tool)
	}

	jcmd := res.Tools[ToolJCmd]
	jps := res.Tools[ToolJps]
	jstat := res.Tools[ToolJstat]

	res.Capabilities = Capabilities{
		CanDiscover:          jps.Usable || jstat.Usable,
		CanHeapInfo:          jcmd.Usable,
		CanGcCounters:        jcmd.Usable,
		CanThreadDump:        jcmd.Usable,
		CanClassHistogram:    jcmd.Usable,
		CanTriggerCollection: jcmd.Usable,
	}

	if res.Capabilities.Empty() {
		return res, errors.New(errors.ToolsUnavailable, "no diagnostic tools found on family-home or PATH")
	}
	return res, nil
}

// InstallGuidance returns a short, human-readable hint for a tool the
// detector reported as absent or unusable.
func InstallGuidance(tool string) string {
	switch tool {
	case ToolJCmd, ToolJps, ToolJstat:
		return tool + " ships with a full JDK (not a JRE-only install); install one or point the family-home setting at an existing JDK"
	default:
		return "diagnostic tool " + tool + " not found"
	}
}
