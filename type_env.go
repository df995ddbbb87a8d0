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

package polyc

import (
	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"

	"github.com/wdamron/polyc/types"
)

var emptyMap = immutable.NewSortedMap(nil)

// TypeEnv is a type-environment containing mappings from identifiers to type-schemes.
//
// A type-environment is immutable; extending an environment returns a new environment, which
// shares unchanged mappings with the original. Type-environments may be shared across threads.
type TypeEnv struct {
	m *immutable.SortedMap
}

// Create an empty type-environment.
func NewTypeEnv() TypeEnv { return TypeEnv{emptyMap} }

func (e TypeEnv) imm() *immutable.SortedMap {
	if e.m == nil {
		return emptyMap
	}
	return e.m
}

// Get the number of identifiers bound in the environment.
func (e TypeEnv) Len() int { return e.imm().Len() }

// Lookup the type-scheme bound to name.
func (e TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	s, ok := e.imm().Get(name)
	if !ok {
		return nil, false
	}
	return s.(*types.Scheme), true
}

// Bind name to a type-scheme, without mutating the existing environment.
func (e TypeEnv) Extend(name string, scheme *types.Scheme) TypeEnv {
	return TypeEnv{e.imm().Set(name, scheme)}
}

// Declare a built-in identifier. All type-variables in t are quantified, so each use of name may
// instantiate t differently.
func (e TypeEnv) Declare(name string, t types.Type) TypeEnv {
	return e.Extend(name, &types.Scheme{Bound: lo.Uniq(typeVarOrder(t, nil)), Body: t})
}

// Declare a monomorphic identifier. Type-variables in t are shared by all uses of name.
func (e TypeEnv) DeclareMono(name string, t types.Type) TypeEnv {
	return e.Extend(name, types.Mono(t))
}

// Iterate over bindings in the environment, sorted by name.
// If f returns false, iteration will be stopped.
func (e TypeEnv) Range(f func(string, *types.Scheme) bool) {
	iter := e.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.Scheme)) {
			return
		}
	}
}

// Apply s to every type-scheme in the environment. Quantified type-variables are never replaced.
func (e TypeEnv) Apply(s types.Subst) TypeEnv {
	if s.Len() == 0 || e.Len() == 0 {
		return e
	}
	b := immutable.NewSortedMapBuilder(e.imm())
	e.Range(func(name string, scheme *types.Scheme) bool {
		if applied := scheme.Apply(s); applied != scheme {
			b.Set(name, applied)
		}
		return true
	})
	return TypeEnv{b.Map()}
}

// FreeVars adds the names of type-variables which are free in any type-scheme of the environment to out.
func (e TypeEnv) FreeVars(out *set.Set[string]) {
	e.Range(func(_ string, scheme *types.Scheme) bool {
		types.FreeVars(scheme, out)
		return true
	})
}

// typeVarOrder appends the names of type-variables in t to order, in order of first appearance.
func typeVarOrder(t types.Type, order []string) []string {
	switch t := t.(type) {
	case *types.Var:
		return append(order, t.Name)
	case *types.Arrow:
		return typeVarOrder(t.Return, typeVarOrder(t.Arg, order))
	}
	return order
}
