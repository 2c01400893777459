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

package model_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvmtui/core/model"
)

var _ = Describe("HeapInfo", func() {
	It("is valid when used/total and metaspace orderings hold", func() {
		h := model.HeapInfo{
			TotalKiB: 2097152, UsedKiB: 2034889,
			MetaspaceUsedKiB: 422035, MetaspaceCommittedKiB: 427968, MetaspaceReservedKiB: 1441792,
		}
		Expect(h.Valid()).To(BeTrue())
	})

	It("is invalid when used exceeds total", func() {
		h := model.HeapInfo{TotalKiB: 100, UsedKiB: 200}
		Expect(h.Valid()).To(BeFalse())
	})

	It("is invalid when metaspace committed exceeds reserved", func() {
		h := model.HeapInfo{MetaspaceCommittedKiB: 2000, MetaspaceReservedKiB: 1000}
		Expect(h.Valid()).To(BeFalse())
	})
})

var _ = Describe("GcCounters", func() {
	It("matches the percentage-parsing-with-dashes end-to-end scenario", func() {
		g := model.GcCounters{
			Survivor0Percent: 0.0, Survivor1Percent: 0.0,
			EdenPercent: 1.52, OldPercent: 69.85, MetaspacePercent: 98.62, CompressedClassPercent: 95.69,
			YoungCount: 695, YoungTotalSecs: 7.803,
			FullCount: 1, FullTotalSecs: 0.236,
			ConcurrentCount: 436, ConcurrentSecs: 4.121,
			TotalSecs: 12.160,
		}
		Expect(g.EdenPercent).To(BeNumerically("==", 1.52))
		Expect(g.TotalSecs).To(BeNumerically("==", 12.160))
	})

	It("returns 0 average when the count is 0", func() {
		g := model.GcCounters{}
		Expect(g.AverageYoungSecs()).To(BeZero())
		Expect(g.AverageFullSecs()).To(BeZero())
	})

	It("computes a defined average when count > 0", func() {
		g := model.GcCounters{YoungCount: 2, YoungTotalSecs: 4.0}
		Expect(g.AverageYoungSecs()).To(BeNumerically("==", 2.0))
	})

	It("treats a later sample with non-decreasing counters as newer", func() {
		prev := model.GcCounters{YoungCount: 5, FullCount: 1, ConcurrentCount: 2, TotalSecs: 1.0}
		next := model.GcCounters{YoungCount: 6, FullCount: 1, ConcurrentCount: 2, TotalSecs: 1.5}
		Expect(next.Newer(prev)).To(BeTrue())
	})

	It("rejects a sample whose counters regressed", func() {
		prev := model.GcCounters{YoungCount: 5}
		next := model.GcCounters{YoungCount: 4}
		Expect(next.Newer(prev)).To(BeFalse())
	})
})

var _ = Describe("ThreadState", func() {
	DescribeTable("parses the literal java.lang.Thread.State tokens",
		func(token string, want model.ThreadState) {
			Expect(model.ParseThreadState(token)).To(Equal(want))
		},
		Entry("NEW", "NEW", model.ThreadNew),
		Entry("RUNNABLE", "RUNNABLE", model.ThreadRunnable),
		Entry("BLOCKED", "BLOCKED", model.ThreadBlocked),
		Entry("WAITING", "WAITING", model.ThreadWaiting),
		Entry("TIMED_WAITING", "TIMED_WAITING", model.ThreadTimedWaiting),
		Entry("TERMINATED", "TERMINATED", model.ThreadTerminated),
		Entry("unknown token defaults to Runnable", "SOMETHING_ELSE", model.ThreadRunnable),
	)
})

var _ = Describe("ThreadSummary", func() {
	It("sums the histogram across all states", func() {
		t := model.ThreadSummary{
			Total: 10,
			Histogram: map[model.ThreadState]uint32{
				model.ThreadRunnable: 6,
				model.ThreadWaiting:  3,
				model.ThreadBlocked:  1,
			},
		}
		Expect(t.HistogramSum()).To(Equal(t.Total))
	})
})
