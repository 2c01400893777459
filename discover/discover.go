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

// Package discover enumerates local candidate JVMs for the picker UI
// (C9): a primary listing diagnostic, a secondary one to fall back to,
// and — when neither diagnostic tool is present — a gopsutil-based
// process scan as a last resort.
package discover

import (
	"context"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/parse"
)

// Target is one candidate JVM surfaced to the picker UI.
type Target struct {
	ID          int
	MainLabel   string
	DisplayName string
}

// Lister runs one listing diagnostic and returns its raw text output.
type Lister func(ctx context.Context) ([]byte, error)

// Discoverer enumerates local candidate JVMs using Primary, falling
// back to Secondary when Primary is nil or fails.
type Discoverer struct {
	Primary   Lister
	Secondary Lister
}

// New returns a Discoverer trying primary before secondary.
func New(primary, secondary Lister) *Discoverer {
	return &Discoverer{Primary: primary, Secondary: secondary}
}

// Discover runs Primary, falls back to Secondary if Primary is absent
// or fails, and parses whichever listing succeeded with the same
// parser C3's discovery command set uses, excluding helper-tool
// entries.
func (d *Discoverer) Discover(ctx context.Context) ([]Target, error) {
	out, err := d.list(ctx)
	if err != nil {
		return nil, err
	}

	discovered := parse.DiscoveredTargets(string(out))
	targets := make([]Target, 0, len(discovered))
	for _, dt := range discovered {
		targets = append(targets, Target{
			ID:          int(dt.ID),
			MainLabel:   dt.Label,
			DisplayName: dt.Label,
		})
	}
	return targets, nil
}

func (d *Discoverer) list(ctx context.Context) ([]byte, error) {
	if d.Primary != nil {
		if out, err := d.Primary(ctx); err == nil {
			return out, nil
		}
	}
	if d.Secondary != nil {
		if out, err := d.Secondary(ctx); err == nil {
			return out, nil
		}
	}
	return nil, errors.New(errors.ToolsUnavailable, "no listing tool available for discovery")
}

// FallbackDiscover enumerates local processes via gopsutil when
// neither listing diagnostic tool is usable (§4.8/§4.9): it filters to
// java-looking process names, excludes this process itself, and
// leaves helper-tool exclusion to the caller (gopsutil's process list
// carries no notion of "this is a diagnostic helper", unlike the
// listing diagnostics' own text output).
func FallbackDiscover() ([]Target, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, errors.Wrap(errors.Transport, "enumerate local processes", err)
	}

	self := int32(os.Getpid())
	var out []Target
	for _, p := range procs {
		if p.Pid == self {
			continue
		}

		name, err := p.Name()
		if err != nil || !looksLikeJava(name) {
			continue
		}

		cmdline, err := p.Cmdline()
		if err != nil || cmdline == "" {
			cmdline = name
		}

		out = append(out, Target{ID: int(p.Pid), MainLabel: cmdline, DisplayName: cmdline})
	}
	return out, nil
}

func looksLikeJava(name string) bool {
	lower := strings.ToLower(name)
	return lower == "java" || strings.HasSuffix(lower, "/java") || strings.HasSuffix(lower, `\java.exe`)
}
