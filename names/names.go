// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package names supplies fresh type-variable and binder names, and validates
// source identifiers.
package names

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/smasher164/xid"
)

// Supply produces monotonically increasing, collision-free numbers.
type Supply interface {
	Next() uint64
}

// Counter is a Supply which may be shared between goroutines.
type Counter struct {
	n atomic.Uint64
}

var _ Supply = (*Counter)(nil)

// Create a counter whose first value will be start.
func NewCounter(start uint64) *Counter {
	c := &Counter{}
	c.n.Store(start)
	return c
}

// Next returns the current value of the counter and advances it.
func (c *Counter) Next() uint64 { return c.n.Add(1) - 1 }

// Default is the process-wide supply, used when no other supply is configured.
var Default Supply = NewCounter(0)

// Separator is appended to a name before the numeric suffix of a fresh name.
// It is not an identifier character, so fresh names never collide with parsed identifiers.
const Separator = '#'

// TypeVar returns a fresh type-variable name: `t12`
func TypeVar(s Supply) string {
	return "t" + strconv.FormatUint(s.Next(), 10)
}

// Fresh returns a fresh name derived from base: `x#12`
//
// Any suffix added by an earlier call is replaced.
func Fresh(base string, s Supply) string {
	return Base(base) + string(Separator) + strconv.FormatUint(s.Next(), 10)
}

// Base strips the suffix of a fresh name.
func Base(name string) string {
	if i := strings.IndexByte(name, Separator); i > 0 {
		return name[:i]
	}
	return name
}

// IsFresh reports whether name was produced by Fresh.
func IsFresh(name string) bool { return strings.IndexByte(name, Separator) > 0 }

// IsIdentifier reports whether name is a valid source identifier.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if r != '_' && !xid.Start(r) {
				return false
			}
			continue
		}
		if !xid.Continue(r) {
			return false
		}
	}
	return true
}
