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

package ir

import (
	"testing"
)

func letIncrement() *Function {
	// let x = p0 in x + 1
	return &Function{
		Name:   "main",
		Params: []ValueType{I32},
		Result: I32,
		Locals: []ValueType{I32},
		Export: true,
		Body: &Block{Children: []Expr{
			&SetLocal{Index: 1, Value: &GetLocal{Index: 0}},
			&Add{Left: &GetLocal{Index: 1}, Right: &Const{Value: 1}},
		}},
	}
}

func TestEval(t *testing.T) {
	fn := letIncrement()
	v, err := Eval(fn, 41)
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
	if _, err = Eval(fn); err == nil {
		t.Fatalf("expected arity error")
	}
}

func TestEvalWraps(t *testing.T) {
	fn := &Function{
		Name:   "max",
		Result: I32,
		Body:   &Add{Left: &Const{Value: 2147483647}, Right: &Const{Value: 1}},
	}
	v, err := Eval(fn)
	if err != nil {
		t.Fatal(err)
	}
	if v != -2147483648 {
		t.Fatalf("expected wrap-around, got %d", v)
	}
}

func TestEvalNoValue(t *testing.T) {
	fn := &Function{
		Name:   "set",
		Result: I32,
		Locals: []ValueType{I32},
		Body:   &Block{Children: []Expr{&SetLocal{Index: 0, Value: &Const{Value: 1}}}},
	}
	if _, err := Eval(fn); err != ErrNoValue {
		t.Fatalf("expected ErrNoValue, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := (&Module{Functions: []*Function{letIncrement()}}).Validate(); err != nil {
		t.Fatal(err)
	}

	bad := letIncrement()
	bad.Locals = nil
	err := (&Module{Functions: []*Function{bad}}).Validate()
	if verr, ok := err.(*ValidationError); !ok || verr.Func != "main" {
		t.Fatalf("expected validation error for slot 1, got %v", err)
	}

	err = (&Module{Functions: []*Function{letIncrement(), letIncrement()}}).Validate()
	if verr, ok := err.(*ValidationError); !ok || verr.Reason != "duplicate name" {
		t.Fatalf("expected duplicate name error, got %v", err)
	}

	if err = (&Function{Name: "empty"}).Validate(); err == nil {
		t.Fatalf("expected missing body error")
	}
}

func TestModuleLookup(t *testing.T) {
	helper := &Function{Name: "helper", Result: I32, Body: &Const{Value: 0}}
	m := &Module{Functions: []*Function{helper, letIncrement()}}
	if fn, ok := m.Lookup("main"); !ok || fn.Name != "main" {
		t.Fatalf("expected main")
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Fatalf("unexpected function")
	}
	if exports := m.Exports(); len(exports) != 1 || exports[0].Name != "main" {
		t.Fatalf("expected only main to be exported, got %d exports", len(exports))
	}
	if slots := letIncrement().Slots(); len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
}

func TestPrinting(t *testing.T) {
	fn := letIncrement()
	if s := ExprString(fn.Body); s != "(block (local.set 1 (local.get 0)) (i32.add (local.get 1) (i32.const 1)))" {
		t.Fatalf("unexpected expression string: %s", s)
	}
	expect := `(func $main (export "main") (param i32) (result i32) (local i32)
  (block
    (local.set 1 (local.get 0))
    (i32.add (local.get 1) (i32.const 1))))`
	if s := ModuleString(&Module{Functions: []*Function{fn}}); s != expect {
		t.Fatalf("unexpected module string:\n%s", s)
	}
}
