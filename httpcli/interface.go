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

// Package httpcli provides a small, mutex-guarded HTTP request builder
// used by the management-endpoint transport (the HTTP variant of C1):
// set a method, an endpoint, headers/params/a JSON body, then Do or
// DoParse the response into a caller-supplied model.
package httpcli

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// FctHttpClient lazily produces the *http.Client a Request uses,
// letting callers plug in their own transport (custom timeouts,
// proxies) without the builder owning connection-pool lifecycle.
type FctHttpClient func() *http.Client

// Request builds and issues a single outbound HTTP call. Every setter
// is safe to call from one goroutine at a time building the request;
// Do/DoParse are the only methods meant to run concurrently with
// themselves once the request is fully configured, and even then only
// across independent Request instances (Clone first if that's needed).
type Request interface {
	Clone() Request

	SetClient(fct FctHttpClient)

	Endpoint(uri string) error
	SetUrl(u *url.URL)
	GetUrl() *url.URL
	AddPath(path string)
	AddParams(key, val string)

	AuthBearer(token string)
	AuthBasic(user, pass string)
	Header(key, value string)
	Method(mtd string)

	RequestJSON(body interface{}) error

	Do(ctx context.Context) (*http.Response, error)
	DoParse(ctx context.Context, model interface{}, validStatus ...int) error

	LastStatusCode() int
}

// New returns an empty GET Request with the given timeout applied to
// its default client (used unless SetClient overrides it).
func New(timeout time.Duration) Request {
	return &request{
		h: make(url.Values),
		p: make(url.Values),
		m: http.MethodGet,
		f: func() *http.Client { return &http.Client{Timeout: timeout} },
	}
}
