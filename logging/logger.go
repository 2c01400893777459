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

// Package logging wraps logrus behind a small interface every
// component in this module logs through, plus a bridge for
// collaborators that expect a hashicorp/go-hclog sink.
package logging

import (
	"io"
	"log"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logging surface every C1-C10 component is
// constructed with. Debug is for routine ticks, Warn for recoverable
// per-capability failures, Error for session-ending failures.
type Logger interface {
	Debug(msg string, err error, kv ...interface{})
	Info(msg string, err error, kv ...interface{})
	Warning(msg string, err error, kv ...interface{})
	Error(msg string, err error, kv ...interface{})

	With(fields Fields) Logger

	SetLevel(Level)
	GetLevel() Level

	SetFields(Fields)
	GetFields() Fields

	GetStdLogger(lvl Level, calldepth int) *log.Logger
}

type entry struct {
	mu     sync.RWMutex
	base   *logrus.Logger
	level  Level
	fields Fields
}

// New builds a Logger writing to w at the given level.
func New(w io.Writer, lvl Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(lvl.Logrus())

	return &entry{base: l, level: lvl, fields: Fields{}}
}

func (e *entry) log(lvl Level, msg string, err error, kv ...interface{}) {
	e.mu.RLock()
	fields := e.fields.Merge(FieldsFromKV(kv...))
	base := e.base
	e.mu.RUnlock()

	if err != nil {
		fields = fields.Add("error", err.Error())
	}

	base.WithFields(fields.Logrus()).Log(lvl.Logrus(), msg)
}

func (e *entry) Debug(msg string, err error, kv ...interface{})   { e.log(DebugLevel, msg, err, kv...) }
func (e *entry) Info(msg string, err error, kv ...interface{})    { e.log(InfoLevel, msg, err, kv...) }
func (e *entry) Warning(msg string, err error, kv ...interface{}) { e.log(WarnLevel, msg, err, kv...) }
func (e *entry) Error(msg string, err error, kv ...interface{})   { e.log(ErrorLevel, msg, err, kv...) }

// With returns a derived Logger whose fields include fields merged on
// top of the receiver's own — it shares the underlying logrus.Logger.
func (e *entry) With(fields Fields) Logger {
	e.mu.RLock()
	merged := e.fields.Merge(fields)
	base := e.base
	level := e.level
	e.mu.RUnlock()

	return &entry{base: base, level: level, fields: merged}
}

func (e *entry) SetLevel(lvl Level) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.level = lvl
	e.base.SetLevel(lvl.Logrus())
}

func (e *entry) GetLevel() Level {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.level
}

func (e *entry) SetFields(f Fields) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fields = f.Clone()
}

func (e *entry) GetFields() Fields {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fields.Clone()
}

func (e *entry) GetStdLogger(lvl Level, calldepth int) *log.Logger {
	e.mu.RLock()
	base := e.base
	e.mu.RUnlock()

	w := base.WriterLevel(lvl.Logrus())
	l := log.New(w, "", 0)
	if calldepth > 0 {
		l.SetFlags(log.Lshortfile)
	}
	return l
}
