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

package errors

import (
	"fmt"
	"runtime"
)

// Error is the concrete error type returned by every component in this
// module. Field is populated for Kind == Parse (the missing/malformed
// field name); Parent, when present, is the underlying cause (a
// transport-level error, a decode error, ...).
type Error struct {
	kind   Kind
	msg    string
	field  string
	parent error
	file   string
	line   int
}

// New builds a fresh Error of the given Kind with no parent, capturing
// the caller's file and line for diagnostics.
func New(kind Kind, msg string) *Error {
	return newError(kind, msg, "", nil, 2)
}

// Wrap builds an Error of the given Kind around a causing error.
func Wrap(kind Kind, msg string, parent error) *Error {
	return newError(kind, msg, "", parent, 2)
}

// NewParse builds a Kind == Parse error naming the offending field.
func NewParse(field, msg string) *Error {
	return newError(Parse, msg, field, nil, 2)
}

func newError(kind Kind, msg, field string, parent error, skip int) *Error {
	_, file, line, _ := runtime.Caller(skip)
	return &Error{kind: kind, msg: msg, field: field, parent: parent, file: file, line: line}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.field != "" {
		if e.parent != nil {
			return fmt.Sprintf("%s: %s (field=%s): %v", e.kind, e.msg, e.field, e.parent)
		}
		return fmt.Sprintf("%s: %s (field=%s)", e.kind, e.msg, e.field)
	}
	if e.parent != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.parent)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Kind returns the error's classification.
func (e *Error) Kind() Kind {
	if e == nil {
		return Unknown
	}
	return e.kind
}

// Field returns the offending field name for a Parse error, or "".
func (e *Error) Field() string {
	if e == nil {
		return ""
	}
	return e.field
}

// Unwrap exposes the parent error to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.parent
}

// Location returns the file:line captured at construction time.
func (e *Error) Location() (file string, line int) {
	if e == nil {
		return "", 0
	}
	return e.file, e.line
}

// Is reports whether err carries the given Kind, unwrapping as needed.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if v, ok := err.(*Error); ok {
			e = v
			if e.kind == kind {
				return true
			}
			err = e.parent
			continue
		}
		break
	}
	return false
}
