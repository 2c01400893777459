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

// Package errors provides the typed error taxonomy shared by every
// connector, transport and parser in this module. Every fallible
// operation returns a *Error (or nil) instead of a bare error, so
// callers can branch on Kind without string-matching messages.
package errors

// Kind classifies an Error the way the polling engine and the
// connection lifecycle need to react to it. Policy by kind:
// ToolsUnavailable and AuthFailed are fatal for a
// variant/session, Transport and Timeout count toward the
// disconnection streak, Parse and Protocol are non-fatal for a single
// capability, and Disconnected ends the session.
type Kind uint8

const (
	// Unknown is the zero value; never constructed deliberately.
	Unknown Kind = iota
	// ToolsUnavailable means the required diagnostic tool was not found for the Local variant.
	ToolsUnavailable
	// AuthFailed means remote authentication was rejected.
	AuthFailed
	// Transport means a socket/process/HTTP transport error occurred.
	Transport
	// Timeout means a deadline was exceeded.
	Timeout
	// Parse means a required field was missing or malformed in a parser.
	Parse
	// Protocol means a remote endpoint returned a non-success status.
	Protocol
	// Disconnected means the target is no longer alive; the session must end.
	Disconnected
)

func (k Kind) String() string {
	switch k {
	case ToolsUnavailable:
		return "ToolsUnavailable"
	case AuthFailed:
		return "AuthFailed"
	case Transport:
		return "Transport"
	case Timeout:
		return "Timeout"
	case Parse:
		return "Parse"
	case Protocol:
		return "Protocol"
	case Disconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}

// Fatal reports whether an error of this Kind ends the variant/session
// outright, per the §7 policy table, rather than being recoverable for
// a single capability or tick.
func (k Kind) Fatal() bool {
	switch k {
	case ToolsUnavailable, AuthFailed, Disconnected:
		return true
	default:
		return false
	}
}
