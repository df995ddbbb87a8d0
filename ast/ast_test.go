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

package ast

import (
	"errors"
	"testing"
)

func TestExprString(t *testing.T) {
	cases := []struct {
		expr Expr
		want string
	}{
		{
			&Let{"double", &Func{"x", &Binary{Add, &Var{"x"}, &Var{"x"}}}, &Call{&Var{"double"}, &Int{3}}},
			"let double = x -> x + x in double 3",
		},
		{
			&Call{&Call{&Var{"add"}, &Int{1}}, &Call{&Var{"f"}, &Bool{true}}},
			"add 1 (f true)",
		},
		{
			&Binary{Minus, &Binary{Minus, &Var{"a"}, &Var{"b"}}, &Binary{Minus, &Var{"c"}, &Var{"d"}}},
			"a - b - (c - d)",
		},
		{
			&Call{&Func{"x", &Var{"x"}}, &Int{5}},
			"(x -> x) 5",
		},
		{
			&LetRec{"f", &Func{"n", &If{&Binary{LessThan, &Var{"n"}, &Int{1}}, &Int{0}, &Call{&Var{"f"}, &Binary{Minus, &Var{"n"}, &Int{1}}}}}, &Call{&Var{"f"}, &Int{3}}},
			"let rec f = n -> if n < 1 then 0 else f (n - 1) in f 3",
		},
	}
	for _, c := range cases {
		if s := ExprString(c.expr); s != c.want {
			t.Fatalf("expr: %s", s)
		}
	}
}

func TestWalkExprOrder(t *testing.T) {
	expr := &Let{"a", &Int{1}, &If{&Bool{false}, &Var{"a"}, &Int{2}}}
	var order []string
	WalkExpr(expr, func(e Expr) { order = append(order, e.ExprName()) })
	want := []string{"Let", "Int", "If", "Bool", "Var", "Int"}
	if len(order) != len(want) {
		t.Fatalf("walk: %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("walk: %v", order)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(&Func{"x", &Var{"x"}}); err != nil {
		t.Fatal(err)
	}

	err := Validate(&Let{"x#1", &Int{1}, &Var{"x#1"}})
	var invalid *InvalidIdentifierError
	if !errors.As(err, &invalid) || invalid.Name != "x#1" {
		t.Fatalf("expected an invalid identifier error, got %v", err)
	}

	if err := Validate(&Call{&Var{"f"}, nil}); err != ErrEmptyExpr {
		t.Fatalf("expected an empty expression error, got %v", err)
	}
	if err := Validate(nil); err != ErrEmptyExpr {
		t.Fatalf("expected an empty expression error, got %v", err)
	}
}
