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
	"testing"

	"github.com/hashicorp/go-set/v3"
	"github.com/kr/pretty"
)

func tv(name string) *Var { return &Var{Name: name} }

func TestApplySubst(t *testing.T) {
	s := NewSubst(map[string]Type{
		"t0": Int,
		"t1": &Arrow{Arg: tv("t2"), Return: Bool},
	})
	in := &Arrow{Arg: tv("t0"), Return: &Arrow{Arg: tv("t1"), Return: tv("t3")}}
	out := Apply(in, s)
	typeString := TypeString(out)
	if typeString != "int -> ('a -> bool) -> 'b" {
		t.Fatalf("type: %s", typeString)
	}
	// Substitutions are applied once, not iterated to a fixed point:
	if out := Apply(tv("t1"), s); !Equal(out, &Arrow{Arg: tv("t2"), Return: Bool}) {
		t.Fatalf("type: %s", TypeString(out))
	}
	if Apply(in, EmptySubst) != in {
		t.Fatalf("expected the identity substitution to return its input")
	}
}

func TestFreeVars(t *testing.T) {
	fv := set.New[string](0)
	FreeVars(&Arrow{Arg: tv("a"), Return: &Arrow{Arg: tv("b"), Return: tv("a")}}, fv)
	if fv.Size() != 2 || !fv.Contains("a") || !fv.Contains("b") {
		t.Fatalf("free vars: %v", fv.Slice())
	}

	fv = set.New[string](0)
	FreeVars(&Scheme{Bound: []string{"a"}, Body: &Arrow{Arg: tv("a"), Return: tv("b")}}, fv)
	if fv.Size() != 1 || !fv.Contains("b") {
		t.Fatalf("free vars: %v", fv.Slice())
	}

	fv = set.New[string](0)
	FreeVars(Int, fv)
	if fv.Size() != 0 {
		t.Fatalf("free vars: %v", fv.Slice())
	}
}

func TestSchemeApplySkipsBoundVars(t *testing.T) {
	scheme := &Scheme{Bound: []string{"a"}, Body: &Arrow{Arg: tv("a"), Return: tv("b")}}
	s := NewSubst(map[string]Type{"a": Int, "b": Bool})
	out := scheme.Apply(s)
	if !Equal(out, &Scheme{Bound: []string{"a"}, Body: &Arrow{Arg: tv("a"), Return: Bool}}) {
		t.Fatalf("scheme: %s", TypeString(out))
	}
	if scheme.Apply(SingletonSubst("a", Int)) != scheme {
		t.Fatalf("expected an unchanged scheme when only bound variables are substituted")
	}
}

func TestComposeLaw(t *testing.T) {
	s1 := NewSubst(map[string]Type{
		"a": &Arrow{Arg: tv("b"), Return: tv("c")},
		"d": tv("b"),
	})
	s2 := NewSubst(map[string]Type{
		"b": Int,
		"c": tv("e"),
		"a": Bool,
	})
	composed := Compose(s2, s1)
	subjects := []Type{
		tv("a"), tv("b"), tv("c"), tv("d"), tv("e"),
		&Arrow{Arg: tv("a"), Return: &Arrow{Arg: tv("d"), Return: tv("c")}},
	}
	for _, subject := range subjects {
		expected := Apply(Apply(subject, s1), s2)
		actual := Apply(subject, composed)
		if !Equal(expected, actual) {
			t.Fatalf("compose mismatch for %s: %s", TypeString(subject), pretty.Diff(expected, actual))
		}
	}
	if got := SubstString(composed); got != "{a: int -> e, b: int, c: e, d: int}" {
		t.Fatalf("subst: %s", got)
	}
}

func TestComposeIdentity(t *testing.T) {
	s := SingletonSubst("a", Int)
	if !Compose(EmptySubst, s).Equal(s) || !Compose(s, EmptySubst).Equal(s) {
		t.Fatalf("expected the empty substitution to be an identity for composition")
	}
}

func TestTypeStringNaming(t *testing.T) {
	ts := TypeStrings(
		&Arrow{Arg: tv("t9"), Return: tv("t4")},
		&Arrow{Arg: tv("t4"), Return: Int},
	)
	if ts[0] != "'a -> 'b" || ts[1] != "'b -> int" {
		t.Fatalf("types: %v", ts)
	}
	nested := NewArrow(Int, &Arrow{Arg: Int, Return: Bool}, Int)
	if s := TypeString(nested); s != "(int -> bool) -> int -> int" {
		t.Fatalf("type: %s", s)
	}
	scheme := &Scheme{Bound: []string{"t3"}, Body: &Arrow{Arg: tv("t3"), Return: tv("t3")}}
	if s := TypeString(scheme); s != "forall 'a. 'a -> 'a" {
		t.Fatalf("scheme: %s", s)
	}
}

func TestOccurs(t *testing.T) {
	if !Occurs("a", &Arrow{Arg: Int, Return: tv("a")}) {
		t.Fatalf("expected a to occur")
	}
	if Occurs("a", &Scheme{Bound: []string{"a"}, Body: tv("a")}) {
		t.Fatalf("bound variables do not occur free")
	}
}
