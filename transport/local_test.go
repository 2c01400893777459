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
	"os"
	"path/filepath"
	"runtime"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	jerrors "github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/transport"
)

func writeScript(dir, name, body string) string {
	path := filepath.Join(dir, name)
	ExpectWithOffset(1, os.WriteFile(path, []byte(body), 0o755)).To(Succeed())
	return path
}

var _ = Describe("LocalExecutor", func() {
	var dir string

	BeforeEach(func() {
		if runtime.GOOS == "windows" {
			Skip("shell-script fixtures require a POSIX shell")
		}
		var err error
		dir, err = os.MkdirTemp("", "jvmtui-local-")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(dir)
	})

	It("rejects a non-positive target id at construction", func() {
		_, err := transport.NewLocalExecutor("/bin/true", 0)
		Expect(jerrors.Is(err, jerrors.ToolsUnavailable)).To(BeTrue())
	})

	It("rejects a target id at or above the pid ceiling", func() {
		_, err := transport.NewLocalExecutor("/bin/true", 5000000)
		Expect(jerrors.Is(err, jerrors.ToolsUnavailable)).To(BeTrue())
	})

	It("captures stdout and passes target-id/operation/args as distinct argv entries", func() {
		script := writeScript(dir, "echo-argv.sh", "#!/bin/sh\necho \"$1|$2|$3\"\n")
		exec, err := transport.NewLocalExecutor(script, 4242)
		Expect(err).NotTo(HaveOccurred())

		out, err := exec.Execute(context.Background(), "thread-dump", []string{"extra-flag"})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal("4242|thread-dump|extra-flag\n"))
	})

	It("reports ToolsUnavailable when the tool path cannot be executed", func() {
		exec, err := transport.NewLocalExecutor(filepath.Join(dir, "does-not-exist"), 1)
		Expect(err).NotTo(HaveOccurred())

		_, err = exec.Execute(context.Background(), "heap-info", nil)
		Expect(jerrors.Is(err, jerrors.ToolsUnavailable)).To(BeTrue())
	})

	It("reports Timeout when the context deadline expires before the process exits", func() {
		script := writeScript(dir, "sleep-long.sh", "#!/bin/sh\nsleep 5\n")
		exec, err := transport.NewLocalExecutor(script, 1)
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err = exec.Execute(ctx, "heap-info", nil)
		Expect(jerrors.Is(err, jerrors.Timeout)).To(BeTrue())
	})

	It("folds stderr into the error message on a non-timeout failure", func() {
		script := writeScript(dir, "fail.sh", "#!/bin/sh\necho boom >&2\nexit 1\n")
		exec, err := transport.NewLocalExecutor(script, 1)
		Expect(err).NotTo(HaveOccurred())

		_, err = exec.Execute(context.Background(), "heap-info", nil)
		Expect(jerrors.Is(err, jerrors.Transport)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("boom"))
	})
})
