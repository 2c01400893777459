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

import "github.com/sirupsen/logrus"

// Fields is a shallow key/value map attached to a logger or a single
// entry, mirroring the teacher's own Fields type.
type Fields map[string]interface{}

// Add returns a copy of f with key/val set, leaving f untouched.
func (f Fields) Add(key string, val interface{}) Fields {
	n := f.Clone()
	n[key] = val
	return n
}

// Merge returns a copy of f with every key of other applied on top.
func (f Fields) Merge(other Fields) Fields {
	n := f.Clone()
	for k, v := range other {
		n[k] = v
	}
	return n
}

// Clone returns a shallow copy, never nil.
func (f Fields) Clone() Fields {
	n := make(Fields, len(f))
	for k, v := range f {
		n[k] = v
	}
	return n
}

// Logrus converts to the equivalent logrus.Fields.
func (f Fields) Logrus() logrus.Fields {
	n := make(logrus.Fields, len(f))
	for k, v := range f {
		n[k] = v
	}
	return n
}

// FieldsFromKV packs an alternating key/value ...any slice (as used by
// the hclog bridge) into Fields, keeping an unmatched trailing element
// under the key "arg_extra" rather than dropping it.
func FieldsFromKV(kv ...interface{}) Fields {
	f := make(Fields, len(kv)/2+1)
	i := 0
	for i+1 < len(kv) {
		key, ok := kv[i].(string)
		if !ok {
			key = "arg"
		}
		f[key] = kv[i+1]
		i += 2
	}
	if i < len(kv) {
		f["arg_extra"] = kv[i]
	}
	return f
}
