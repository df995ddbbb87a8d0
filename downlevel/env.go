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

package downlevel

import (
	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/polyc/internal/astutil"
	"github.com/wdamron/polyc/typed"
)

var emptyMap = immutable.NewSortedMap(nil)

// EmptyEnv contains no replacements.
var EmptyEnv = Env{emptyMap}

// Env contains immutable mappings from variable names to the down-leveled expressions which replace them.
type Env struct {
	m *immutable.SortedMap
}

func (e Env) imm() *immutable.SortedMap {
	if e.m == nil {
		return emptyMap
	}
	return e.m
}

// Get the number of replacements in the environment.
func (e Env) Len() int { return e.imm().Len() }

// Lookup the replacement for name.
func (e Env) Lookup(name string) (typed.Expr, bool) {
	v, ok := e.imm().Get(name)
	if !ok {
		return nil, false
	}
	return v.(typed.Expr), true
}

// Replace name with value, without mutating the existing environment.
func (e Env) Extend(name string, value typed.Expr) Env {
	return Env{e.imm().Set(name, value)}
}

// Remove the replacement for name, without mutating the existing environment.
func (e Env) Delete(name string) Env {
	if _, ok := e.imm().Get(name); !ok {
		return e
	}
	return Env{e.imm().Delete(name)}
}

// Iterate over replacements in the environment, sorted by name.
// If f returns false, iteration will be stopped.
func (e Env) Range(f func(string, typed.Expr) bool) {
	iter := e.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(typed.Expr)) {
			return
		}
	}
}

// FreeVars returns the names referenced by replacements in the environment which are not bound within them.
func (e Env) FreeVars() *set.Set[string] {
	var a astutil.Analysis
	a.Init()
	e.Range(func(_ string, value typed.Expr) bool {
		a.Analyze(value)
		return true
	})
	return a.Free
}
