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

package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	jerrors "github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/transport"
)

var _ = Describe("HttpExecutor", func() {
	var server *httptest.Server

	AfterEach(func() {
		if server != nil {
			server.Close()
		}
	})

	It("posts a read request and returns the decoded value as raw JSON", func() {
		var gotBody map[string]interface{}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status": 200, "timestamp": 111, "value": map[string]interface{}{"used": 1024},
			})
		}))

		exec := transport.NewHttpExecutor(server.URL, transport.HttpCredentials{})
		out, err := exec.Execute(context.Background(), "java.lang:type=Memory", []string{"HeapMemoryUsage"})
		Expect(err).NotTo(HaveOccurred())

		Expect(gotBody["type"]).To(Equal("read"))
		Expect(gotBody["mbean"]).To(Equal("java.lang:type=Memory"))
		Expect(gotBody["attribute"]).To(Equal("HeapMemoryUsage"))

		var value map[string]interface{}
		Expect(json.Unmarshal(out, &value)).To(Succeed())
		Expect(value["used"]).To(Equal(float64(1024)))
	})

	It("sends basic-auth credentials when configured", func() {
		var gotAuthHeader string
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuthHeader = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": 200, "value": nil})
		}))

		exec := transport.NewHttpExecutor(server.URL, transport.HttpCredentials{User: "admin", Pass: "secret"})
		_, err := exec.Execute(context.Background(), "some:mbean", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(gotAuthHeader).To(HavePrefix("Basic "))
	})

	It("reports AuthFailed on a 401/403 response", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		exec := transport.NewHttpExecutor(server.URL, transport.HttpCredentials{})
		_, err := exec.Execute(context.Background(), "some:mbean", nil)
		Expect(jerrors.Is(err, jerrors.AuthFailed)).To(BeTrue())
	})

	It("reports a Protocol error on an unexpected status code", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		exec := transport.NewHttpExecutor(server.URL, transport.HttpCredentials{})
		_, err := exec.Execute(context.Background(), "some:mbean", nil)
		Expect(jerrors.Is(err, jerrors.Protocol)).To(BeTrue())
	})

	It("reports a Protocol error when the HTTP status is 200 but the body's own status is not", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status": 404, "value": nil,
			})
		}))

		exec := transport.NewHttpExecutor(server.URL, transport.HttpCredentials{})
		_, err := exec.Execute(context.Background(), "unknown:mbean", []string{"NoSuchAttribute"})
		Expect(jerrors.Is(err, jerrors.Protocol)).To(BeTrue())
	})

	It("reports AuthFailed when the HTTP status is 200 but the body's own status is 401/403", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status": 403, "value": nil,
			})
		}))

		exec := transport.NewHttpExecutor(server.URL, transport.HttpCredentials{})
		_, err := exec.Execute(context.Background(), "some:mbean", nil)
		Expect(jerrors.Is(err, jerrors.AuthFailed)).To(BeTrue())
	})
})
