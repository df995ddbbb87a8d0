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

package types

import (
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/slices"
)

var emptyMap = immutable.NewSortedMap(nil)

// EmptySubst is the identity substitution.
var EmptySubst = Subst{emptyMap}

// Subst contains immutable mappings from type-variable names to types.
type Subst struct {
	m *immutable.SortedMap
}

// Create a substitution with a single entry.
func SingletonSubst(name string, t Type) Subst {
	return Subst{emptyMap.Set(name, t)}
}

// Create a substitution from a map of type-variable names to types.
func NewSubst(m map[string]Type) Subst {
	b := immutable.NewSortedMapBuilder(emptyMap)
	for name, t := range m {
		b.Set(name, t)
	}
	return Subst{b.Map()}
}

func (s Subst) imm() *immutable.SortedMap {
	if s.m == nil {
		return emptyMap
	}
	return s.m
}

// Get the number of entries in the substitution.
func (s Subst) Len() int { return s.imm().Len() }

// Get the type bound to a type-variable.
func (s Subst) Get(name string) (Type, bool) {
	t, ok := s.imm().Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Bind a type-variable, without mutating the existing substitution.
func (s Subst) Set(name string, t Type) Subst { return Subst{s.imm().Set(name, t)} }

// Remove a type-variable, without mutating the existing substitution.
func (s Subst) Delete(name string) Subst { return Subst{s.imm().Delete(name)} }

// Iterate over entries in the substitution, sorted by name.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(string, Type) bool) {
	iter := s.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Names returns the sorted names of the bound type-variables.
func (s Subst) Names() []string {
	names := make([]string, 0, s.Len())
	s.Range(func(name string, _ Type) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Without returns s with the given type-variables removed.
func (s Subst) Without(names ...string) Subst {
	if len(names) == 0 || s.Len() == 0 {
		return s
	}
	m := s.imm()
	for _, name := range names {
		m = m.Delete(name)
	}
	return Subst{m}
}

// Apply replaces every type-variable in t which is bound in s.
func Apply(t Type, s Subst) Type {
	if s.Len() == 0 {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if bound, ok := s.Get(t.Name); ok {
			return bound
		}
		return t
	case *Arrow:
		arg, ret := Apply(t.Arg, s), Apply(t.Return, s)
		if arg == t.Arg && ret == t.Return {
			return t
		}
		return &Arrow{Arg: arg, Return: ret}
	case *Scheme:
		return t.Apply(s)
	}
	return t
}

// Apply s to the body of the scheme. Quantified type-variables are never replaced.
func (t *Scheme) Apply(s Subst) *Scheme {
	restricted := s.Without(t.Bound...)
	if restricted.Len() == 0 {
		return t
	}
	body := Apply(t.Body, restricted)
	if body == t.Body {
		return t
	}
	return &Scheme{Bound: t.Bound, Body: body}
}

// Compose returns a substitution equivalent to applying earlier, then later:
//
//  Apply(t, Compose(later, earlier)) == Apply(Apply(t, earlier), later)
func Compose(later, earlier Subst) Subst {
	if earlier.Len() == 0 {
		return later
	}
	if later.Len() == 0 {
		return earlier
	}
	b := immutable.NewSortedMapBuilder(later.imm())
	earlier.Range(func(name string, t Type) bool {
		b.Set(name, Apply(t, later))
		return true
	})
	return Subst{b.Map()}
}

// Check if two substitutions bind the same names to structurally identical types.
func (s Subst) Equal(other Subst) bool {
	if s.Len() != other.Len() {
		return false
	}
	if !slices.Equal(s.Names(), other.Names()) {
		return false
	}
	equal := true
	s.Range(func(name string, t Type) bool {
		u, _ := other.Get(name)
		equal = Equal(t, u)
		return equal
	})
	return equal
}
