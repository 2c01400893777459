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

package events_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/events"
)

var _ = Describe("Channel", func() {
	It("delivers a single sent event", func() {
		c := events.New()
		c.Send(events.Event{Kind: events.KindUpdated})

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		e, ok := c.Recv(ctx)
		Expect(ok).To(BeTrue())
		Expect(e.Kind).To(Equal(events.KindUpdated))
	})

	It("coalesces successive Updated events into one", func() {
		c := events.New()
		c.Send(events.Event{Kind: events.KindUpdated, At: time.Unix(1, 0)})
		c.Send(events.Event{Kind: events.KindUpdated, At: time.Unix(2, 0)})
		Expect(c.Len()).To(Equal(1))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		e, ok := c.Recv(ctx)
		Expect(ok).To(BeTrue())
		Expect(e.At).To(Equal(time.Unix(2, 0)))
	})

	It("keeps only the most recent Error", func() {
		c := events.New()
		c.Send(events.Event{Kind: events.KindError, ErrorKind: errors.Timeout})
		c.Send(events.Event{Kind: events.KindError, ErrorKind: errors.Transport})
		Expect(c.Len()).To(Equal(1))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		e, _ := c.Recv(ctx)
		Expect(e.ErrorKind).To(Equal(errors.Transport))
	})

	It("never drops a queued Disconnected while later events keep arriving", func() {
		c := events.New()
		c.Send(events.Event{Kind: events.KindDisconnected})
		for i := 0; i < events.Capacity+5; i++ {
			c.Send(events.Event{Kind: events.KindWarn, Message: "spam"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		sawDisconnected := false
		for i := 0; i < c.Len(); i++ {
			e, ok := c.Recv(ctx)
			Expect(ok).To(BeTrue())
			if e.Kind == events.KindDisconnected {
				sawDisconnected = true
			}
		}
		Expect(sawDisconnected).To(BeTrue())
	})

	It("delivers events in FIFO order across kinds", func() {
		c := events.New()
		c.Send(events.Event{Kind: events.KindWarn, Message: "first"})
		c.Send(events.Event{Kind: events.KindError, Message: "second"})

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		e1, _ := c.Recv(ctx)
		e2, _ := c.Recv(ctx)
		Expect(e1.Message).To(Equal("first"))
		Expect(e2.Message).To(Equal("second"))
	})

	It("unblocks a pending Recv when the context is cancelled", func() {
		c := events.New()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, ok := c.Recv(ctx)
		Expect(ok).To(BeFalse())
	})

	It("drains queued events then reports closed", func() {
		c := events.New()
		c.Send(events.Event{Kind: events.KindUpdated})
		c.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, ok := c.Recv(ctx)
		Expect(ok).To(BeTrue())

		_, ok = c.Recv(ctx)
		Expect(ok).To(BeFalse())
	})
})
