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

// Package transport holds the three variants that execute a named
// diagnostic operation against a target and return its raw output
// within a caller-supplied deadline: a local subprocess, the same
// command over an authenticated encrypted shell, and a JSON-RPC-style
// call to a management-bridge HTTP endpoint.
package transport

import "context"

// Executor runs one diagnostic operation and returns its raw output.
// Every implementation must respect ctx's deadline: on expiry the
// in-flight process/request is cancelled and a Timeout error (see the
// errors package) is returned instead of blocking past it.
type Executor interface {
	// Execute runs operation with the given arguments against the
	// target and returns its raw response bytes (stdout for the
	// process-based variants, the JSON response body for HTTP).
	Execute(ctx context.Context, operation string, args []string) ([]byte, error)
}

// maxPID is the platform-agnostic ceiling this module enforces on a
// numeric target id; it is intentionally generous (above Linux's
// historical 32-bit pid_t ceiling) rather than tied to one kernel's
// exact tunable.
const maxPID = 4194304

// ValidTargetID reports whether id is a positive integer below the
// platform PID ceiling this module enforces (§4.1: "the target-id must
// be numeric: positive integer, below the platform's PID ceiling").
func ValidTargetID(id int) bool {
	return id > 0 && id < maxPID
}
