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

package httpcli_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/httpcli"
)

type statusResponse struct {
	Status string `json:"status"`
	Value  int    `json:"value"`
}

var _ = Describe("Request", func() {
	var srv *httptest.Server

	AfterEach(func() {
		if srv != nil {
			srv.Close()
		}
	})

	It("GETs a JSON body and decodes it via DoParse", func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/mbean/heap"))
			Expect(r.URL.Query().Get("attribute")).To(Equal("HeapMemoryUsage"))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(statusResponse{Status: "ok", Value: 42})
		}))

		req := httpcli.New(time.Second)
		Expect(req.Endpoint(srv.URL)).To(Succeed())
		req.AddPath("/mbean/heap")
		req.AddParams("attribute", "HeapMemoryUsage")

		var out statusResponse
		err := req.DoParse(context.Background(), &out)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(statusResponse{Status: "ok", Value: 42}))
	})

	It("POSTs a JSON body with the content-type header set", func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
			var body map[string]string
			Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
			Expect(body["mbean"]).To(Equal("java.lang:type=Memory"))
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(statusResponse{Status: "ok"})
		}))

		req := httpcli.New(time.Second)
		Expect(req.Endpoint(srv.URL)).To(Succeed())
		req.Method(http.MethodPost)
		Expect(req.RequestJSON(map[string]string{"mbean": "java.lang:type=Memory"})).To(Succeed())

		var out statusResponse
		Expect(req.DoParse(context.Background(), &out)).To(Succeed())
	})

	It("maps HTTP 401 to AuthFailed", func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		req := httpcli.New(time.Second)
		Expect(req.Endpoint(srv.URL)).To(Succeed())

		var out statusResponse
		err := req.DoParse(context.Background(), &out)
		Expect(errors.Is(err, errors.AuthFailed)).To(BeTrue())
	})

	It("maps an unexpected non-2xx status to Protocol", func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		req := httpcli.New(time.Second)
		Expect(req.Endpoint(srv.URL)).To(Succeed())

		var out statusResponse
		err := req.DoParse(context.Background(), &out)
		Expect(errors.Is(err, errors.Protocol)).To(BeTrue())
	})

	It("maps a client-side timeout to Timeout", func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(50 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))

		req := httpcli.New(time.Second)
		Expect(req.Endpoint(srv.URL)).To(Succeed())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		defer cancel()

		_, err := req.Do(ctx)
		Expect(errors.Is(err, errors.Timeout)).To(BeTrue())
	})

	It("Clone copies headers, params and URL independently of the original", func() {
		req := httpcli.New(time.Second)
		Expect(req.Endpoint("http://example.invalid/base")).To(Succeed())
		req.AddParams("a", "1")
		req.Header("X-Test", "v")

		clone := req.Clone()
		clone.AddParams("b", "2")

		Expect(req.GetUrl().String()).To(Equal(clone.GetUrl().String()))
	})

	It("rejects Do when no endpoint was set", func() {
		req := httpcli.New(time.Second)
		_, err := req.Do(context.Background())
		Expect(err).To(HaveOccurred())
	})

	It("AuthBearer sets the Authorization header the server observes", func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Header.Get("Authorization")).To(Equal("Bearer tok123"))
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(statusResponse{})
		}))

		req := httpcli.New(time.Second)
		Expect(req.Endpoint(srv.URL)).To(Succeed())
		req.AuthBearer("tok123")

		var out statusResponse
		Expect(req.DoParse(context.Background(), &out)).To(Succeed())
	})
})
