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

package logging

import (
	"io"
	"log"

	"github.com/hashicorp/go-hclog"
)

const (
	hclogArgs = "hclog.args"
	hclogName = "hclog.name"
)

type hcLogShim struct {
	l Logger
}

// HCLog adapts l to the hashicorp/go-hclog.Logger interface, for
// collaborators (e.g. an SSH or HTTP client library) that only accept
// an hclog sink.
func HCLog(l Logger) hclog.Logger {
	return &hcLogShim{l: l}
}

func (h *hcLogShim) Log(level hclog.Level, msg string, args ...interface{}) {
	switch level {
	case hclog.Off, hclog.NoLevel:
		return
	case hclog.Trace, hclog.Debug:
		h.l.Debug(msg, nil, args...)
	case hclog.Info:
		h.l.Info(msg, nil, args...)
	case hclog.Warn:
		h.l.Warning(msg, nil, args...)
	case hclog.Error:
		h.l.Error(msg, nil, args...)
	}
}

func (h *hcLogShim) Trace(msg string, args ...interface{}) { h.l.Debug(msg, nil, args...) }
func (h *hcLogShim) Debug(msg string, args ...interface{}) { h.l.Debug(msg, nil, args...) }
func (h *hcLogShim) Info(msg string, args ...interface{})  { h.l.Info(msg, nil, args...) }
func (h *hcLogShim) Warn(msg string, args ...interface{})  { h.l.Warning(msg, nil, args...) }
func (h *hcLogShim) Error(msg string, args ...interface{}) { h.l.Error(msg, nil, args...) }

func (h *hcLogShim) IsTrace() bool { return h.l.GetLevel() >= DebugLevel }
func (h *hcLogShim) IsDebug() bool { return h.l.GetLevel() >= DebugLevel }
func (h *hcLogShim) IsInfo() bool  { return h.l.GetLevel() >= InfoLevel }
func (h *hcLogShim) IsWarn() bool  { return h.l.GetLevel() >= WarnLevel }
func (h *hcLogShim) IsError() bool { return h.l.GetLevel() >= ErrorLevel }

func (h *hcLogShim) ImpliedArgs() []interface{} {
	if a, ok := h.l.GetFields()[hclogArgs]; ok {
		if s, ok := a.([]interface{}); ok {
			return s
		}
	}
	return nil
}

func (h *hcLogShim) With(args ...interface{}) hclog.Logger {
	return &hcLogShim{l: h.l.With(Fields{hclogArgs: args})}
}

func (h *hcLogShim) Name() string {
	if a, ok := h.l.GetFields()[hclogName]; ok {
		if s, ok := a.(string); ok {
			return s
		}
	}
	return ""
}

func (h *hcLogShim) Named(name string) hclog.Logger {
	return &hcLogShim{l: h.l.With(Fields{hclogName: name})}
}

func (h *hcLogShim) ResetNamed(name string) hclog.Logger {
	return &hcLogShim{l: h.l.With(Fields{hclogName: name})}
}

func (h *hcLogShim) SetLevel(level hclog.Level) {
	switch level {
	case hclog.Off, hclog.NoLevel:
		h.l.SetLevel(NilLevel)
	case hclog.Trace, hclog.Debug:
		h.l.SetLevel(DebugLevel)
	case hclog.Info:
		h.l.SetLevel(InfoLevel)
	case hclog.Warn:
		h.l.SetLevel(WarnLevel)
	case hclog.Error:
		h.l.SetLevel(ErrorLevel)
	}
}

func (h *hcLogShim) GetLevel() hclog.Level {
	switch h.l.GetLevel() {
	case NilLevel:
		return hclog.Off
	case DebugLevel:
		return hclog.Debug
	case InfoLevel:
		return hclog.Info
	case WarnLevel:
		return hclog.Warn
	case ErrorLevel:
		return hclog.Error
	default:
		return hclog.NoLevel
	}
}

func (h *hcLogShim) StandardLogger(opts *hclog.StandardLoggerOptions) *log.Logger {
	var lvl Level
	if opts != nil {
		switch opts.ForceLevel {
		case hclog.Off, hclog.NoLevel:
			lvl = NilLevel
		case hclog.Trace, hclog.Debug:
			lvl = DebugLevel
		case hclog.Info:
			lvl = InfoLevel
		case hclog.Warn:
			lvl = WarnLevel
		case hclog.Error:
			lvl = ErrorLevel
		}
	}
	return h.l.GetStdLogger(lvl, 0)
}

func (h *hcLogShim) StandardWriter(opts *hclog.StandardLoggerOptions) io.Writer {
	return io.Discard
}
