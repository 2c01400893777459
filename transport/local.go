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

package transport

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strconv"

	jerrors "github.com/jvmtui/core/errors"
)

// LocalExecutor spawns a diagnostic process with argument list
// [target-id, operation-name, ...args]. Arguments are always passed as
// distinct exec.Cmd parameters, never through a shell.
type LocalExecutor struct {
	// ToolPath is the absolute path to the diagnostic binary, as
	// produced by the detector (C8).
	ToolPath string
	// TargetID is the numeric target id this executor was built for;
	// validated once at construction.
	TargetID int
}

// NewLocalExecutor validates targetID per §4.1 before returning an
// executor bound to it.
func NewLocalExecutor(toolPath string, targetID int) (*LocalExecutor, error) {
	if !ValidTargetID(targetID) {
		return nil, jerrors.New(jerrors.ToolsUnavailable, "target id must be a positive integer below the platform pid ceiling")
	}
	return &LocalExecutor{ToolPath: toolPath, TargetID: targetID}, nil
}

// Execute runs ToolPath with argv [target-id, operation, args...] and
// returns captured stdout. Stderr is folded into the error message on
// failure; it is never attached to a successful result.
func (l *LocalExecutor) Execute(ctx context.Context, operation string, args []string) ([]byte, error) {
	argv := append([]string{strconv.Itoa(l.TargetID), operation}, args...)

	cmd := exec.CommandContext(ctx, l.ToolPath, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	if ctx.Err() != nil {
		return nil, jerrors.Wrap(jerrors.Timeout, "local diagnostic deadline exceeded", ctx.Err())
	}

	var execErr *exec.Error
	var pathErr *fs.PathError
	if errors.As(err, &execErr) || errors.As(err, &pathErr) {
		return nil, jerrors.Wrap(jerrors.ToolsUnavailable, "diagnostic tool not found or not executable", err)
	}

	return nil, jerrors.Wrap(jerrors.Transport, "local diagnostic failed: "+stderr.String(), err)
}
