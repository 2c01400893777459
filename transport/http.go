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
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/httpcli"
	"github.com/jvmtui/core/parse"
)

// HttpCredentials optionally carries basic-auth credentials for the
// management endpoint. An empty User means no Authorization header is
// sent.
type HttpCredentials struct {
	User string
	Pass string
}

// httpOperationRequest mirrors the management-bridge wire request:
// {"type": "read"|"exec", "mbean", "attribute"?, "arguments"?}.
type httpOperationRequest struct {
	Type      string        `json:"type"`
	MBean     string        `json:"mbean"`
	Attribute string        `json:"attribute,omitempty"`
	Arguments []interface{} `json:"arguments,omitempty"`
}

// HttpExecutor posts JSON-RPC-style requests to a management-bridge
// HTTP endpoint instead of spawning a local or remote process. Its
// Execute signature matches the other variants so the caller can swap
// transports without touching the capability layer above it.
type HttpExecutor struct {
	Endpoint string
	Creds    HttpCredentials
}

// NewHttpExecutor returns an executor bound to endpoint, optionally
// authenticating every call with basic auth when creds.User is set.
func NewHttpExecutor(endpoint string, creds HttpCredentials) *HttpExecutor {
	return &HttpExecutor{Endpoint: endpoint, Creds: creds}
}

// Execute treats operation as the target mbean name and args[0] (if
// present) as the attribute to read; any remaining args are forwarded
// as JSON-RPC arguments. The response's JSON-encoded "value" field is
// returned as the raw payload bytes so callers parse it the same way
// as the process-based variants' stdout.
func (e *HttpExecutor) Execute(ctx context.Context, operation string, args []string) ([]byte, error) {
	body := httpOperationRequest{Type: "read", MBean: operation}
	if len(args) > 0 {
		body.Attribute = args[0]
		for _, a := range args[1:] {
			body.Arguments = append(body.Arguments, a)
		}
	}

	req := httpcli.New(0)
	if err := req.Endpoint(e.Endpoint); err != nil {
		return nil, err
	}
	req.Method("POST")
	if e.Creds.User != "" {
		req.AuthBasic(e.Creds.User, e.Creds.Pass)
	}
	if err := req.RequestJSON(body); err != nil {
		return nil, err
	}

	var result parse.ManagementResult
	if err := req.DoParse(ctx, &result, 200); err != nil {
		return nil, err
	}

	// §6's on-wire contract is two-layered: HTTP 200 alone isn't
	// success, the decoded body's own "status" field must also read
	// 200. A bridge can return HTTP 200 with {"status":404,...} for an
	// unknown mbean/attribute; treating that as success would commit a
	// bogus zero/nil sample.
	status := strconv.FormatUint(result.Status, 10)
	if result.Status == http.StatusUnauthorized || result.Status == http.StatusForbidden {
		return nil, errors.New(errors.AuthFailed, "management endpoint rejected the operation: status "+status)
	}
	if result.Status != http.StatusOK {
		return nil, errors.New(errors.Protocol, "management endpoint returned non-success status "+status)
	}

	return json.Marshal(result.Value)
}
