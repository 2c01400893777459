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

package profile_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvmtui/core/profile"
)

var _ = Describe("Profile constructors", func() {
	It("builds a Local profile", func() {
		p := profile.NewLocal(4242)
		Expect(p.Kind).To(Equal(profile.KindLocal))
		Expect(p.TargetID).To(Equal(4242))
		Expect(p.Kind.String()).To(Equal("local"))
	})

	It("builds a RemoteShell profile with key auth", func() {
		p := profile.NewRemoteShell("jvm-host", "deploy", profile.Auth{Kind: profile.AuthKey, Path: "/home/deploy/.ssh/id_ed25519"}, 99)
		Expect(p.Kind).To(Equal(profile.KindRemoteShell))
		Expect(p.Host).To(Equal("jvm-host"))
		Expect(p.User).To(Equal("deploy"))
		Expect(p.Auth.Kind).To(Equal(profile.AuthKey))
		Expect(p.Kind.String()).To(Equal("remote-shell"))
	})

	It("builds a RemoteHttp profile with optional credentials", func() {
		p := profile.NewRemoteHttp("https://jvm-host:8778/jolokia", profile.HttpCredentials{User: "admin", Pass: "secret"})
		Expect(p.Kind).To(Equal(profile.KindRemoteHttp))
		Expect(p.URL).To(Equal("https://jvm-host:8778/jolokia"))
		Expect(p.Credentials.User).To(Equal("admin"))
		Expect(p.Kind.String()).To(Equal("remote-http"))
	})
})
