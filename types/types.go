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
	"github.com/hashicorp/go-set/v3"
)

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *Const) TypeName() string  { return "Const" }
func (t *Arrow) TypeName() string  { return "Arrow" }
func (t *Var) TypeName() string    { return "Var" }
func (t *Scheme) TypeName() string { return "Scheme" }

var (
	_ Type = (*Const)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*Var)(nil)
	_ Type = (*Scheme)(nil)
)

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// Built-in type constants. Constants are compared by name, so other instances with the same name are equivalent.
var (
	Bool = &Const{Name: "bool"}
	Int  = &Const{Name: "int"}
)

// Function type: `int -> int`
type Arrow struct {
	Arg    Type
	Return Type
}

// Create a curried function type: `int -> int -> int`
func NewArrow(ret Type, args ...Type) Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = &Arrow{Arg: args[i], Return: t}
	}
	return t
}

// Type variable
type Var struct {
	Name string
}

// Type scheme: `forall 'a. 'a -> 'a`
//
// Schemes only appear in type-environments. A scheme never contains another scheme.
type Scheme struct {
	// Names of the quantified type-variables
	Bound []string
	Body  Type
}

// Create a monomorphic scheme, which does not quantify any type-variables.
func Mono(t Type) *Scheme { return &Scheme{Body: t} }

// Check if the scheme quantifies the named type-variable.
func (s *Scheme) Binds(name string) bool {
	for _, bound := range s.Bound {
		if bound == name {
			return true
		}
	}
	return false
}

// Equal reports whether a and b are structurally identical. Type-variables are compared by name.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Return, b.Return)
	case *Scheme:
		b, ok := b.(*Scheme)
		if !ok || len(a.Bound) != len(b.Bound) {
			return false
		}
		for i := range a.Bound {
			if a.Bound[i] != b.Bound[i] {
				return false
			}
		}
		return Equal(a.Body, b.Body)
	}
	return a == nil && b == nil
}

// Check if t is a function type.
func IsArrow(t Type) bool {
	_, ok := t.(*Arrow)
	return ok
}

// Occurs reports whether the named type-variable appears within t.
func Occurs(name string, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Name == name
	case *Arrow:
		return Occurs(name, t.Arg) || Occurs(name, t.Return)
	case *Scheme:
		return !t.Binds(name) && Occurs(name, t.Body)
	}
	return false
}

// FreeVars adds the names of type-variables which are free in t to out.
func FreeVars(t Type, out *set.Set[string]) {
	switch t := t.(type) {
	case *Var:
		out.Insert(t.Name)
	case *Arrow:
		FreeVars(t.Arg, out)
		FreeVars(t.Return, out)
	case *Scheme:
		body := set.New[string](0)
		FreeVars(t.Body, body)
		for _, name := range body.Slice() {
			if !t.Binds(name) {
				out.Insert(name)
			}
		}
	}
}
