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

// Package profile holds the discriminated target-identity record and
// the polling-cadence settings the rest of the module is configured
// with: what to connect to, and how often to ask it for data.
package profile

// Kind discriminates which transport variant a Profile describes.
type Kind uint8

const (
	KindLocal Kind = iota
	KindRemoteShell
	KindRemoteHttp
)

func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindRemoteShell:
		return "remote-shell"
	case KindRemoteHttp:
		return "remote-http"
	default:
		return "unknown"
	}
}

// AuthKind discriminates how a RemoteShell profile authenticates.
type AuthKind uint8

const (
	AuthKey AuthKind = iota
	AuthPassword
)

// Auth carries, selected by Kind, either a key path (AuthKey, with an
// optional key passphrase in Password) or a password (AuthPassword).
// Environment expansion of "~" and "${VAR}" is the
// loader's responsibility; by the time an Auth reaches this package
// its fields are already resolved, literal values.
type Auth struct {
	Kind     AuthKind
	Path     string
	Password string
}

// Profile identifies one target and how to reach it: a local process
// id, a remote host reached over an authenticated shell, or a
// management-bridge HTTP endpoint.
type Profile struct {
	Kind Kind

	// Local and RemoteShell
	TargetID int

	// RemoteShell
	Host string
	User string
	Auth Auth

	// RemoteHttp
	URL         string
	Credentials HttpCredentials
}

// HttpCredentials optionally authenticates a RemoteHttp profile with
// basic auth; an empty User means the endpoint is queried anonymously.
type HttpCredentials struct {
	User string
	Pass string
}

// NewLocal builds a Local profile bound to a target process id.
func NewLocal(targetID int) Profile {
	return Profile{Kind: KindLocal, TargetID: targetID}
}

// NewRemoteShell builds a RemoteShell profile.
func NewRemoteShell(host, user string, auth Auth, targetID int) Profile {
	return Profile{Kind: KindRemoteShell, Host: host, User: user, Auth: auth, TargetID: targetID}
}

// NewRemoteHttp builds a RemoteHttp profile.
func NewRemoteHttp(url string, creds HttpCredentials) Profile {
	return Profile{Kind: KindRemoteHttp, URL: url, Credentials: creds}
}
