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

// Package poll drives one connector's periodic sample acquisition
// (C6): a ticker fires at a live-adjustable cadence, each tick fetches
// the four dynamic capabilities in parallel under their own deadlines,
// successful results are committed to the store, and the tick's
// outcome is published on the event channel. No two ticks of the same
// engine ever overlap; a tick still running when the next ticker edge
// arrives coalesces that edge away rather than queuing it.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/jvmtui/core/atomic"
	"github.com/jvmtui/core/connector"
	"github.com/jvmtui/core/duration"
	jerrors "github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/events"
	"github.com/jvmtui/core/logging"
	"github.com/jvmtui/core/model"
	"github.com/jvmtui/core/profile"
	"github.com/jvmtui/core/ring"
)

// MaxErrors is the all-fail streak threshold that triggers an
// IsAlive liveness check (§4.6); if that also fails, the engine emits
// Disconnected and its task terminates.
const MaxErrors = 5

// Engine is a cooperatively scheduled polling loop bound to one
// connector and one store. It is not safe to Start twice.
type Engine struct {
	conn   connector.Connector
	store  *ring.Store
	events *events.Channel
	log    logging.Logger

	commandTimeout time.Duration
	interval       *atomic.Value[time.Duration]
	resetInterval  chan struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

// NewEngine builds an Engine that has not yet started. cfg's Interval
// is already clamped (and CommandTimeout defaulted) by
// profile.NewPollingConfig; this package trusts that and re-clamps only
// on a live SetInterval.
func NewEngine(conn connector.Connector, store *ring.Store, cfg profile.PollingConfig, ev *events.Channel, log logging.Logger) *Engine {
	return &Engine{
		conn:           conn,
		store:          store,
		events:         ev,
		log:            log,
		commandTimeout: cfg.CommandTimeout.Time(),
		interval:       atomic.NewValue(cfg.Interval.Time()),
		resetInterval:  make(chan struct{}, 1),
		done:           make(chan struct{}),
	}
}

// SetInterval re-clamps interval into [profile.MinInterval,
// profile.MaxInterval] and applies it at the next tick boundary.
func (e *Engine) SetInterval(interval duration.Duration) {
	clamped := interval.Clamp(profile.MinInterval, profile.MaxInterval)
	e.interval.Store(clamped.Time())
	select {
	case e.resetInterval <- struct{}{}:
	default:
	}
}

// Start spawns the polling loop as a background goroutine tied to
// ctx's lifetime. Cancelling ctx or calling Stop preempts at the next
// tick boundary or awaited I/O point.
func (e *Engine) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	go e.run(ctx)
}

// Stop cancels the polling loop. It is idempotent and does not block;
// use Done to wait for the loop to actually exit.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
}

// Done is closed when the polling loop has exited, whether from
// cancellation or a Disconnected outcome.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.done)

	e.prefetchStaticInfo(ctx)

	ticker := time.NewTicker(e.interval.Load())
	defer ticker.Stop()

	allFailStreak := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.resetInterval:
			ticker.Reset(e.interval.Load())
			continue
		case <-ticker.C:
		}

		if e.tick(ctx, &allFailStreak) {
			return
		}
	}
}

// prefetchStaticInfo fetches version and flags once before the first
// tick. Failures here never count toward the disconnection streak;
// they surface as a Warn event instead (§4.6 "Pre-loop").
func (e *Engine) prefetchStaticInfo(ctx context.Context) {
	if _, err := e.conn.VMVersion(ctx); err != nil {
		e.warn(err, "fetch vm version")
	}
	if _, err := e.conn.VMFlags(ctx); err != nil {
		e.warn(err, "fetch vm flags")
	}
}

func (e *Engine) warn(err error, msg string) {
	if e.log != nil {
		e.log.Warning(msg, err)
	}
	e.events.Send(events.Event{Kind: events.KindWarn, ErrorKind: jerrors.Unknown, Message: msg + ": " + err.Error(), At: time.Now()})
}

// tick issues the four dynamic captures concurrently, commits whatever
// succeeded, and reports the outcome. It returns true when the engine
// should terminate (a Disconnected was emitted).
func (e *Engine) tick(ctx context.Context, allFailStreak *int) (disconnect bool) {
	now := time.Now()

	var wg sync.WaitGroup
	var heap model.HeapInfo
	var gc model.GcCounters
	var threads model.ThreadSummary
	var uptime float64
	var heapErr, gcErr, threadsErr, uptimeErr error

	wg.Add(4)
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, e.commandTimeout)
		defer cancel()
		heap, heapErr = e.conn.HeapInfo(cctx)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, e.commandTimeout)
		defer cancel()
		gc, gcErr = e.conn.GcCounters(cctx)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, e.commandTimeout)
		defer cancel()
		threads, threadsErr = e.conn.ThreadSummary(cctx)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, e.commandTimeout)
		defer cancel()
		uptime, uptimeErr = e.conn.UptimeSeconds(cctx)
	}()
	wg.Wait()

	succeeded := 0
	var firstErr error
	noteErr := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if heapErr == nil {
		e.store.PushHeapInfo(heap, now)
		succeeded++
	}
	noteErr(heapErr)

	if gcErr == nil {
		e.store.PushGcCounters(gc, now)
		succeeded++
	}
	noteErr(gcErr)

	if threadsErr == nil {
		e.store.UpdateThreadSummary(threads, now)
		succeeded++
	}
	noteErr(threadsErr)

	if uptimeErr == nil {
		e.store.UpdateUptime(uptime, now)
		succeeded++
	}
	noteErr(uptimeErr)

	if succeeded > 0 {
		e.events.Send(events.Event{Kind: events.KindUpdated, At: now})
	} else {
		// The store's own consecutive-error counter is advisory-only
		// (UI display); per spec §9 the engine's allFailStreak below
		// is the sole source of truth for disconnection.
		e.store.RecordError()
	}

	if succeeded < 4 && firstErr != nil {
		kind := jerrors.Transport
		if ee, ok := firstErr.(*jerrors.Error); ok {
			kind = ee.Kind()
		}
		if e.log != nil {
			e.log.Warning("tick had at least one capability failure", firstErr)
		}
		e.events.Send(events.Event{Kind: events.KindError, ErrorKind: kind, Message: firstErr.Error(), At: now})
	}

	if succeeded == 0 {
		*allFailStreak++
	} else {
		*allFailStreak = 0
	}

	if *allFailStreak >= MaxErrors {
		if !e.conn.IsAlive(ctx) {
			e.events.Send(events.Event{Kind: events.KindDisconnected, At: now})
			return true
		}
	}

	return false
}
