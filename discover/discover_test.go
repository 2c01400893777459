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

package discover_test

import (
	"context"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvmtui/core/discover"
	"github.com/jvmtui/core/errors"
)

const fixtureListing = "12345 com.example.App\n67890 jdk.jcmd/sun.tools.jps.Jps\n54321 /opt/app/agent-lang-server.jar\n"

var _ = Describe("Discoverer", func() {
	It("parses the primary listing tool's output when it succeeds", func() {
		d := discover.New(
			func(context.Context) ([]byte, error) { return []byte(fixtureListing), nil },
			nil,
		)
		targets, err := d.Discover(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(targets).To(HaveLen(2))
	})

	It("falls back to the secondary listing tool when the primary fails", func() {
		d := discover.New(
			func(context.Context) ([]byte, error) { return nil, errors.New(errors.ToolsUnavailable, "no jps") },
			func(context.Context) ([]byte, error) { return []byte(fixtureListing), nil },
		)
		targets, err := d.Discover(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(targets).To(HaveLen(2))
	})

	It("errors when neither listing tool is available", func() {
		d := discover.New(nil, nil)
		_, err := d.Discover(context.Background())
		Expect(errors.Is(err, errors.ToolsUnavailable)).To(BeTrue())
	})

	It("excludes the listing tool's own helper entry", func() {
		d := discover.New(
			func(context.Context) ([]byte, error) { return []byte(fixtureListing), nil },
			nil,
		)
		targets, err := d.Discover(context.Background())
		Expect(err).NotTo(HaveOccurred())
		for _, t := range targets {
			Expect(t.ID).NotTo(Equal(67890))
		}
	})

	It("FallbackDiscover never includes this test process itself", func() {
		targets, err := discover.FallbackDiscover()
		Expect(err).NotTo(HaveOccurred())
		for _, t := range targets {
			Expect(t.ID).NotTo(Equal(os.Getpid()))
		}
	})
})
