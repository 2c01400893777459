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

package httpcli

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jvmtui/core/errors"
)

type request struct {
	s sync.Mutex

	f FctHttpClient
	u *url.URL
	h url.Values
	p url.Values
	b io.Reader
	m string

	lastStatus int
}

func (r *request) Clone() Request {
	r.s.Lock()
	defer r.s.Unlock()

	n := &request{f: r.f, h: make(url.Values), p: make(url.Values), m: r.m}
	if r.u != nil {
		cp := *r.u
		n.u = &cp
	}
	for k, v := range r.h {
		n.h[k] = v
	}
	for k, v := range r.p {
		n.p[k] = v
	}
	return n
}

func (r *request) SetClient(fct FctHttpClient) {
	r.s.Lock()
	defer r.s.Unlock()
	r.f = fct
}

func (r *request) client() *http.Client {
	if r.f != nil {
		if c := r.f(); c != nil {
			return c
		}
	}
	return &http.Client{}
}

func (r *request) Endpoint(uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return errors.Wrap(errors.Protocol, "invalid endpoint", err)
	}
	r.s.Lock()
	defer r.s.Unlock()
	r.u = u
	return nil
}

func (r *request) SetUrl(u *url.URL) {
	r.s.Lock()
	defer r.s.Unlock()
	r.u = u
}

func (r *request) GetUrl() *url.URL {
	r.s.Lock()
	defer r.s.Unlock()
	return r.u
}

func (r *request) AddPath(path string) {
	r.s.Lock()
	defer r.s.Unlock()

	if r.u == nil {
		return
	}

	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	r.u.Path = filepath.Join(r.u.Path, path)
}

func (r *request) AddParams(key, val string) {
	r.s.Lock()
	defer r.s.Unlock()
	r.p.Set(key, val)
}

func (r *request) AuthBearer(token string) {
	r.Header("Authorization", "Bearer "+token)
}

func (r *request) AuthBasic(user, pass string) {
	r.Header("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(user+":"+pass)))
}

func (r *request) Header(key, value string) {
	r.s.Lock()
	defer r.s.Unlock()
	r.h.Set(key, value)
}

func (r *request) Method(mtd string) {
	r.s.Lock()
	defer r.s.Unlock()
	r.m = mtd
}

func (r *request) RequestJSON(body interface{}) error {
	p, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(errors.Protocol, "encode request body", err)
	}

	r.s.Lock()
	r.b = bytes.NewBuffer(p)
	r.s.Unlock()

	r.Header("Content-Type", "application/json")
	return nil
}

func (r *request) LastStatusCode() int {
	r.s.Lock()
	defer r.s.Unlock()
	return r.lastStatus
}

func (r *request) Do(ctx context.Context) (*http.Response, error) {
	r.s.Lock()
	if r.m == "" || r.u == nil || r.u.String() == "" {
		r.s.Unlock()
		return nil, errors.New(errors.Protocol, "request has no method or url")
	}

	req, err := http.NewRequestWithContext(ctx, r.m, r.u.String(), r.b)
	if err != nil {
		r.s.Unlock()
		return nil, errors.Wrap(errors.Protocol, "build request", err)
	}

	for k := range r.h {
		req.Header.Set(k, r.h.Get(k))
	}

	q := req.URL.Query()
	for k := range r.p {
		q.Add(k, r.p.Get(k))
	}
	req.URL.RawQuery = q.Encode()

	client := r.client()
	r.s.Unlock()

	rsp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.Timeout, "http request deadline exceeded", err)
		}
		return nil, errors.Wrap(errors.Transport, "http request failed", err)
	}

	return rsp, nil
}

func (r *request) DoParse(ctx context.Context, model interface{}, validStatus ...int) error {
	rsp, err := r.Do(ctx)
	if err != nil {
		return err
	}
	defer rsp.Body.Close()

	r.s.Lock()
	r.lastStatus = rsp.StatusCode
	r.s.Unlock()

	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return errors.Wrap(errors.Transport, "read response body", err)
	}

	if rsp.StatusCode == http.StatusUnauthorized || rsp.StatusCode == http.StatusForbidden {
		return errors.New(errors.AuthFailed, "management endpoint rejected credentials")
	}

	if !isValidStatus(validStatus, rsp.StatusCode) {
		return errors.New(errors.Protocol, "unexpected status: "+rsp.Status)
	}

	if err := json.Unmarshal(body, model); err != nil {
		return errors.Wrap(errors.Protocol, "decode response body", err)
	}

	return nil
}

func isValidStatus(valid []int, code int) bool {
	if len(valid) == 0 {
		return code >= 200 && code < 300
	}
	for _, c := range valid {
		if c == code {
			return true
		}
	}
	return false
}
