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

// Package lifecycle owns the state machine for one attached session
// (C10): it resolves a profile.Profile and a detect.Result into a
// connector.Connector, wires up the ring.Store and events.Channel the
// rest of the module shares, starts the poll.Engine, and watches for
// the engine's own terminal exit to flip the session to Disconnected.
// Building a Session is the only place transport construction,
// authentication and variant selection happen; callers never touch
// connector.New* directly.
package lifecycle

import (
	"context"
	"sync"

	"github.com/jvmtui/core/connector"
	"github.com/jvmtui/core/detect"
	"github.com/jvmtui/core/duration"
	jerrors "github.com/jvmtui/core/errors"
	"github.com/jvmtui/core/events"
	"github.com/jvmtui/core/logging"
	"github.com/jvmtui/core/poll"
	"github.com/jvmtui/core/profile"
	"github.com/jvmtui/core/ring"
	"github.com/jvmtui/core/transport"
)

// State is one point in a Session's lifetime. Transitions only ever
// move forward: Building -> Authenticating -> Attached -> one of
// Disconnected/Failed, and any non-Building state -> TornDown once
// Stop is called.
type State uint8

const (
	StateBuilding State = iota
	StateAuthenticating
	StateAttached
	StateDisconnected
	StateTornDown
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "Building"
	case StateAuthenticating:
		return "Authenticating"
	case StateAttached:
		return "Attached"
	case StateDisconnected:
		return "Disconnected"
	case StateTornDown:
		return "TornDown"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Session is one live attachment: a connector, its store, its event
// channel and the polling engine driving them, plus the state machine
// tracking where in its life the attachment currently is.
type Session struct {
	mu    sync.RWMutex
	state State

	conn   connector.Connector
	store  *ring.Store
	events *events.Channel
	engine *poll.Engine
	log    logging.Logger

	stopOnce sync.Once
}

// Build resolves p into a connector (the Local variant consults tools
// for jcmd's resolved path; the RemoteShell and RemoteHttp variants
// need no local detection), constructs the store and event channel,
// and starts the polling engine. It returns a Session already in
// StateAttached, or a Session in StateFailed alongside the error that
// prevented attachment.
func Build(ctx context.Context, p profile.Profile, cfg profile.PollingConfig, tools *detect.Result, log logging.Logger) (*Session, error) {
	s := &Session{state: StateBuilding, store: ring.NewStore(cfg.HistoryCapacity), events: events.New(), log: log}

	conn, err := buildConnector(p, tools, cfg)
	if err != nil {
		s.fail(err)
		return s, err
	}

	s.setState(StateAuthenticating)
	if !conn.IsAlive(ctx) {
		err := jerrors.New(jerrors.AuthFailed, "target did not respond to the initial liveness probe")
		s.fail(err)
		return s, err
	}

	s.conn = conn
	s.engine = poll.NewEngine(conn, s.store, cfg, s.events, log)
	s.engine.Start(ctx)
	s.setState(StateAttached)

	go s.watchEngine()

	return s, nil
}

// buildConnector dispatches on p.Kind to the matching connector
// constructor, resolving whatever each variant needs out of tools.
func buildConnector(p profile.Profile, tools *detect.Result, cfg profile.PollingConfig) (connector.Connector, error) {
	switch p.Kind {
	case profile.KindLocal:
		toolPath := detect.ToolJCmd
		if tools != nil {
			if status, ok := tools.Tools[detect.ToolJCmd]; ok && status.Usable {
				toolPath = status.Path
			} else {
				return nil, jerrors.New(jerrors.ToolsUnavailable, "jcmd was not found usable on family-home or PATH")
			}
		}
		return connector.NewLocal(toolPath, p.TargetID, cfg.CommandTimeout)

	case profile.KindRemoteShell:
		auth, err := shellAuth(p.Auth)
		if err != nil {
			return nil, err
		}
		return connector.NewRemoteShell(p.Host, p.User, detect.ToolJCmd, auth, p.TargetID, cfg.CommandTimeout)

	case profile.KindRemoteHttp:
		creds := transport.HttpCredentials{User: p.Credentials.User, Pass: p.Credentials.Pass}
		return connector.NewRemoteHttp(p.URL, creds), nil

	default:
		return nil, jerrors.New(jerrors.ToolsUnavailable, "profile has an unrecognized transport kind")
	}
}

// shellAuth translates a profile.Auth into the transport-level
// ShellAuth. Only key-based authentication, with an optional key
// passphrase, is wired through to the ssh client; a password-only
// Auth has no corresponding ssh.AuthMethod in this transport and is
// rejected up front rather than silently attempted as a key passphrase.
func shellAuth(a profile.Auth) (transport.ShellAuth, error) {
	switch a.Kind {
	case profile.AuthKey:
		return transport.ShellAuth{KeyPath: a.Path, Passphrase: a.Password}, nil
	default:
		return transport.ShellAuth{}, jerrors.New(jerrors.AuthFailed, "password-only shell authentication is not supported by this transport")
	}
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	s.state = StateFailed
	s.mu.Unlock()
	if s.log != nil {
		s.log.Error("session attach failed", err)
	}
}

// State reports the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Store returns the session's sample store, shared read-only with a
// renderer.
func (s *Session) Store() *ring.Store {
	return s.store
}

// Events returns the session's event channel, for a renderer's
// consume loop.
func (s *Session) Events() *events.Channel {
	return s.events
}

// Connector returns the session's underlying connector, for one-off
// action dispatch (ThreadDump, ClassHistogram, TriggerCollection)
// outside the polling engine's own fetch set.
func (s *Session) Connector() connector.Connector {
	return s.conn
}

// SetInterval forwards a live cadence change to the polling engine.
func (s *Session) SetInterval(interval duration.Duration) {
	if s.engine != nil {
		s.engine.SetInterval(interval)
	}
}

// watchEngine waits for the polling engine to exit on its own (a
// disconnection or an external Stop) and flips Attached to
// Disconnected. It never fires after an explicit Stop has already
// moved the session to TornDown.
func (s *Session) watchEngine() {
	<-s.engine.Done()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAttached {
		s.state = StateDisconnected
	}
}

// Stop tears the session down: it stops the polling engine, waits for
// it to exit, releases the connector's resources and closes the event
// channel. It is idempotent and safe to call from any state including
// StateFailed, where engine and conn may be nil.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		if s.engine != nil {
			s.engine.Stop()
			<-s.engine.Done()
		}
		if s.conn != nil {
			if err := s.conn.Close(); err != nil && s.log != nil {
				s.log.Warning("error closing connector on teardown", err)
			}
		}
		s.events.Close()
		s.mu.Lock()
		s.state = StateTornDown
		s.mu.Unlock()
	})
}
