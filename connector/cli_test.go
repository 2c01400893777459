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

package connector_test

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvmtui/core/connector"
	"github.com/jvmtui/core/duration"
	jerrors "github.com/jvmtui/core/errors"
)

// fakeExecutor is a stand-in transport.Executor whose responses are
// keyed by operation name, letting each connector method be exercised
// without spawning a real process or dialing a real host.
type fakeExecutor struct {
	responses map[string][]byte
	errs      map[string]error
	calls     int64
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{responses: map[string][]byte{}, errs: map[string]error{}}
}

func (f *fakeExecutor) Execute(_ context.Context, operation string, _ []string) ([]byte, error) {
	atomic.AddInt64(&f.calls, 1)
	if err, ok := f.errs[operation]; ok {
		return nil, err
	}
	return f.responses[operation], nil
}

const (
	fixtureVersion = "OpenJDK 64-Bit Server VM (build 21.0.1) version \"21.0.1\"\nJDK 21\n"
	fixtureUptime  = "123.456s\n"
	fixtureHeap    = "PSYoungGen total 100K, used 50K\nMetaspace used 10K, committed 12K, reserved 20K\n"
	fixtureGC      = "  S0     S1     E      O      M     CCS    YGC   YGCT   FGC   FGCT   CGC   CGCT   GCT\n" +
		" 0.00  50.00  30.00  20.00  80.00  70.00     5  0.050     1  0.100     0  0.000  0.150\n"
	fixtureThreads = "2026-07-31 10:00:00\n" +
		"Full thread dump OpenJDK 64-Bit Server VM:\n" +
		"\n" +
		"\"main\" #1 prio=5 cpu=12.3ms elapsed=45.6s\n" +
		"   java.lang.Thread.State: RUNNABLE\n" +
		"\tat com.example.Main.main(Main.java:10)\n"
	fixtureHistogram = " rank   instances   bytes  class\n" +
		"    1:       100     2048  com.example.Foo\n"
	fixtureFlags = "-XX:+UseG1GC\n-XX:MaxHeapSize=1073741824\n"
)

var _ = Describe("cliConnector (shared by Local and RemoteShell)", func() {
	var exec *fakeExecutor
	var conn connector.Connector

	BeforeEach(func() {
		exec = newFakeExecutor()
		exec.responses["VM.version"] = []byte(fixtureVersion)
		exec.responses["VM.uptime"] = []byte(fixtureUptime)
		exec.responses["GC.heap_info"] = []byte(fixtureHeap)
		exec.responses["GC.class_stats"] = []byte(fixtureGC)
		exec.responses["Thread.print"] = []byte(fixtureThreads)
		exec.responses["GC.class_histogram"] = []byte(fixtureHistogram)
		exec.responses["VM.flags"] = []byte(fixtureFlags)

		conn = connector.NewFromExecutor("4242", exec, duration.ParseDuration(time.Second))
	})

	It("reports TargetID unchanged from construction", func() {
		Expect(conn.TargetID()).To(Equal("4242"))
	})

	It("fetches and caches VMVersion across repeated calls", func() {
		v, err := conn.VMVersion(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Version).To(Equal("21.0.1"))

		_, _ = conn.VMVersion(context.Background())
		_, _ = conn.VMVersion(context.Background())
		Expect(atomic.LoadInt64(&exec.calls)).To(Equal(int64(1)), "VMVersion must only call the executor once")
	})

	It("derives the collector kind from VMFlags", func() {
		f, err := conn.VMFlags(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(f.DeriveCollectorKind().String()).To(Equal("G1"))
	})

	It("parses UptimeSeconds fresh on every call", func() {
		u, err := conn.UptimeSeconds(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(u).To(BeNumerically("~", 123.456, 0.001))
	})

	It("IsAlive reflects whether UptimeSeconds succeeds", func() {
		Expect(conn.IsAlive(context.Background())).To(BeTrue())

		exec.errs["VM.uptime"] = jerrors.New(jerrors.Transport, "boom")
		Expect(conn.IsAlive(context.Background())).To(BeFalse())
	})

	It("parses HeapInfo", func() {
		h, err := conn.HeapInfo(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(h.TotalKiB).To(Equal(uint64(100)))
		Expect(h.UsedKiB).To(Equal(uint64(50)))
	})

	It("parses GcCounters", func() {
		g, err := conn.GcCounters(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(g.YoungCount).To(Equal(uint64(5)))
	})

	It("derives ThreadSummary from a full ThreadDump", func() {
		s, err := conn.ThreadSummary(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Total).To(Equal(uint32(1)))
		Expect(s.Daemon).To(Equal(uint32(0)))
		// The CLI variants have no historical-peak diagnostic; Peak is
		// left at zero here and is instead derived as a running maximum
		// by ring.Store.UpdateThreadSummary across ticks.
		Expect(s.Peak).To(Equal(uint32(0)))
	})

	It("fetches ThreadDump on demand", func() {
		d, err := conn.ThreadDump(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Threads).To(HaveLen(1))
		Expect(d.Threads[0].Name).To(Equal("main"))
	})

	It("fetches ClassHistogram on demand", func() {
		h, err := conn.ClassHistogram(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(h.Entries).To(HaveLen(1))
	})

	It("propagates a transport failure from any capability", func() {
		exec.errs["GC.heap_info"] = jerrors.New(jerrors.Timeout, "deadline exceeded")
		_, err := conn.HeapInfo(context.Background())
		Expect(jerrors.Is(err, jerrors.Timeout)).To(BeTrue())
	})

	It("does not cache a failed static-info fetch", func() {
		exec.errs["VM.flags"] = jerrors.New(jerrors.Transport, "tool crashed")
		_, err := conn.VMFlags(context.Background())
		Expect(err).To(HaveOccurred())

		delete(exec.errs, "VM.flags")
		f, err := conn.VMFlags(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Flags).NotTo(BeEmpty())
	})
})
