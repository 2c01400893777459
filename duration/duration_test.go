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
 */

package duration_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvmtui/core/duration"
)

var _ = Describe("Parse", func() {
	DescribeTable("parses plain time.Duration strings",
		func(s string, want time.Duration) {
			d, err := duration.Parse(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Time()).To(Equal(want))
		},
		Entry("milliseconds", "250ms", 250*time.Millisecond),
		Entry("seconds", "5s", 5*time.Second),
		Entry("combined", "1h2m3s", time.Hour+2*time.Minute+3*time.Second),
	)

	It("rejects a malformed duration string", func() {
		_, err := duration.Parse("not-a-duration")
		Expect(err).To(HaveOccurred())
	})

	It("ParseByte behaves like Parse", func() {
		d, err := duration.ParseByte([]byte("10s"))
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Time()).To(Equal(10 * time.Second))
	})
})

var _ = Describe("constructors", func() {
	It("Seconds/Minutes/Hours/Days build the expected Duration", func() {
		Expect(duration.Seconds(30).Time()).To(Equal(30 * time.Second))
		Expect(duration.Minutes(2).Time()).To(Equal(2 * time.Minute))
		Expect(duration.Hours(3).Time()).To(Equal(3 * time.Hour))
		Expect(duration.Days(1).Time()).To(Equal(24 * time.Hour))
	})

	It("ParseDuration wraps a time.Duration unchanged", func() {
		Expect(duration.ParseDuration(5 * time.Second).Time()).To(Equal(5 * time.Second))
	})

	It("ParseFloat64 rounds to the nearest whole nanosecond count", func() {
		Expect(duration.ParseFloat64(1000.4)).To(Equal(duration.Duration(1000)))
	})
})

var _ = Describe("String", func() {
	It("formats days with the 'd' suffix ahead of the clock portion", func() {
		d := duration.Days(2) + duration.Hours(3)
		Expect(d.String()).To(Equal("2d3h0m0s"))
	})

	It("omits the day prefix entirely under 24h", func() {
		d := duration.Minutes(90)
		Expect(d.String()).To(Equal("1h30m0s"))
	})
})

var _ = Describe("Days", func() {
	It("floors to whole days", func() {
		d := duration.Hours(50)
		Expect(d.Days()).To(Equal(int64(2)))
	})
})

var _ = Describe("Clamp", func() {
	It("leaves a value already inside the interval unchanged", func() {
		d := duration.Seconds(5)
		Expect(d.Clamp(duration.ParseDuration(250*time.Millisecond), duration.Seconds(10))).To(Equal(d))
	})

	It("raises a value below the minimum up to it", func() {
		d := duration.ParseDuration(100 * time.Millisecond)
		min := duration.ParseDuration(250 * time.Millisecond)
		Expect(d.Clamp(min, duration.Seconds(10))).To(Equal(min))
	})

	It("lowers a value above the maximum down to it", func() {
		d := duration.Seconds(30)
		max := duration.Seconds(10)
		Expect(d.Clamp(duration.ParseDuration(250*time.Millisecond), max)).To(Equal(max))
	})
})

var _ = Describe("JSON encoding", func() {
	It("round-trips through MarshalJSON/UnmarshalJSON", func() {
		d := duration.Seconds(5) + duration.Minutes(1)
		b, err := json.Marshal(d)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal(`"1m5s"`))

		var got duration.Duration
		Expect(json.Unmarshal(b, &got)).To(Succeed())
		Expect(got).To(Equal(d))
	})
})
