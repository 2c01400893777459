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

package parse_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvmtui/core/parse"
)

var _ = Describe("SystemProperties", func() {
	It("parses key=value lines in order", func() {
		text := "1:\njava.vendor=Eclipse Adoptium\njava.version=21.0.1\n"
		props := parse.SystemProperties(text)

		Expect(props.Len()).To(Equal(2))
		Expect(props.Keys()).To(Equal([]string{"java.vendor", "java.version"}))

		v, ok := props.Get("java.vendor")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("Eclipse Adoptium"))
	})

	It("skips lines without an '=' instead of erroring", func() {
		props := parse.SystemProperties("not a property\njava.version=21\n")
		Expect(props.Len()).To(Equal(1))
	})
})
