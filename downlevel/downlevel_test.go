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
	"testing"

	"github.com/kr/pretty"

	"github.com/wdamron/polyc"
	"github.com/wdamron/polyc/ast"
	. "github.com/wdamron/polyc/construct"
	"github.com/wdamron/polyc/names"
	"github.com/wdamron/polyc/typed"
	"github.com/wdamron/polyc/types"
)

func annotate(t *testing.T, expr ast.Expr, env polyc.TypeEnv) typed.Expr {
	t.Helper()
	ctx := polyc.NewContext()
	ctx.UseSupply(names.NewCounter(100))
	root, err := ctx.Annotate(expr, env)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func lower(t *testing.T, expr ast.Expr, env polyc.TypeEnv) typed.Expr {
	t.Helper()
	root := annotate(t, expr, env)
	out := New(names.NewCounter(0)).DownLevel(root, EmptyEnv)
	if !types.Equal(out.Type(), root.Type()) {
		t.Fatalf("down-leveling changed the type of %s from %s to %s",
			typed.ExprString(root), types.TypeString(root.Type()), types.TypeString(out.Type()))
	}
	return out
}

func TestInlineLetBoundFunction(t *testing.T) {
	// let double = x -> x + x in double 3
	x := Var("x")
	expr := Let("double", Func1("x", Add(x, x)), Call(Var("double"), Int(3)))

	out := lower(t, expr, polyc.NewTypeEnv())
	if s := typed.ExprString(out); s != "3 + 3" {
		t.Fatalf("expr: %s", s)
	}
	if _, ok := out.(*typed.Binary); !ok {
		t.Fatalf("expected no residual let-binding or abstraction, got %s", out.ExprName())
	}
}

func TestInlineSpecializesPolymorphicFunctions(t *testing.T) {
	// let id = x -> x in if id true then id 0 else 1
	id := Var("id")
	expr := Let("id", Func1("x", Var("x")), If(Call(id, True()), Call(id, Int(0)), Int(1)))

	out := lower(t, expr, polyc.NewTypeEnv())
	if s := typed.ExprString(out); s != "if true then 0 else 1" {
		t.Fatalf("expr: %s", s)
	}
	dump := typed.Dump(out)
	want := "If : int\n  Bool true : bool\n  Int 0 : int\n  Int 1 : int"
	if dump != want {
		t.Fatalf("dump:\n%s", dump)
	}
}

func TestInlineHigherOrder(t *testing.T) {
	// let apply = f -> f 1 in let inc = x -> x + 1 in apply inc
	expr := Let("apply", Func1("f", Call(Var("f"), Int(1))),
		Let("inc", Func1("x", Add(Var("x"), Int(1))),
			Call(Var("apply"), Var("inc"))))

	out := lower(t, expr, polyc.NewTypeEnv())
	if s := typed.ExprString(out); s != "1 + 1" {
		t.Fatalf("expr: %s", s)
	}
}

func TestBuiltinApplicationIsKept(t *testing.T) {
	env := polyc.NewTypeEnv().Declare("add", TArrow2(TInt(), TInt(), TInt()))

	// let increment = add 1 in increment 41
	expr := Let("increment", Call(Var("add"), Int(1)), Call(Var("increment"), Int(41)))

	out := lower(t, expr, env)
	if s := typed.ExprString(out); s != "add 1 41" {
		t.Fatalf("expr: %s", s)
	}
}

func TestRotateNestedLet(t *testing.T) {
	env := polyc.NewTypeEnv().DeclareMono("y", TInt())

	// let x = (let y = 1 in y + 1) in x + y
	expr := Let("x", Let("y", Int(1), Add(Var("y"), Int(1))), Add(Var("x"), Var("y")))

	out := lower(t, expr, env)
	if s := typed.ExprString(out); s != "let y#0 = 1 in let x = y#0 + 1 in x + y" {
		t.Fatalf("expr: %s", s)
	}
}

func TestRotateNestedLetWithFunctionValue(t *testing.T) {
	// let f = (let y = 1 in z -> z + y) in f 2
	expr := Let("f", Let("y", Int(1), Func1("z", Add(Var("z"), Var("y")))), Call(Var("f"), Int(2)))

	out := lower(t, expr, polyc.NewTypeEnv())
	if s := typed.ExprString(out); s != "let y#0 = 1 in 2 + y#0" {
		t.Fatalf("expr: %s", s)
	}
}

func TestReassociateLetAboveFunction(t *testing.T) {
	// let a = 1 in x -> x + a
	expr := Let("a", Int(1), Func1("x", Add(Var("x"), Var("a"))))

	out := lower(t, expr, polyc.NewTypeEnv())
	if s := typed.ExprString(out); s != "x#0 -> let a = 1 in x#0 + a" {
		t.Fatalf("expr: %s", s)
	}
	fn := out.(*typed.Func)
	if typeString := types.TypeString(fn.Type()); typeString != "int -> int" {
		t.Fatalf("type: %s", typeString)
	}
	if typeString := types.TypeString(fn.Body.Type()); typeString != "int" {
		t.Fatalf("body type: %s", typeString)
	}
}

func TestReassociateDoesNotCaptureValue(t *testing.T) {
	// x -> let a = x in x -> x + a
	//
	// Moving the inner let-binding within the inner abstraction must not capture the outer x:
	expr := Func1("x", Let("a", Var("x"), Func1("x", Add(Var("x"), Var("a")))))

	out := lower(t, expr, polyc.NewTypeEnv())
	if s := typed.ExprString(out); s != "x -> x#0 -> let a = x in x#0 + a" {
		t.Fatalf("expr: %s", s)
	}
}

// naiveDownLevel substitutes without renaming binders. It is used as a reference which diverges from
// DownLevel exactly where a substituted variable is captured.
func naiveDownLevel(e typed.Expr, env map[string]typed.Expr) typed.Expr {
	with := func(name string, value typed.Expr) map[string]typed.Expr {
		next := make(map[string]typed.Expr, len(env)+1)
		for k, v := range env {
			next[k] = v
		}
		if value == nil {
			delete(next, name)
		} else {
			next[name] = value
		}
		return next
	}
	switch e := e.(type) {
	case *typed.Var:
		if value, ok := env[e.Name]; ok {
			return value
		}
		return e
	case *typed.Let:
		value := naiveDownLevel(e.Value, env)
		if types.IsArrow(e.Value.Type()) {
			return naiveDownLevel(e.Body, with(e.Var, value))
		}
		return &typed.Let{Var: e.Var, Value: value, Body: naiveDownLevel(e.Body, with(e.Var, nil)), Inferred: e.Inferred}
	case *typed.Call:
		callee := naiveDownLevel(e.Func, env)
		arg := naiveDownLevel(e.Arg, env)
		if fn, ok := callee.(*typed.Func); ok {
			return naiveDownLevel(fn.Body, map[string]typed.Expr{fn.Arg: arg})
		}
		return &typed.Call{Func: callee, Arg: arg, Inferred: e.Inferred}
	case *typed.Func:
		return &typed.Func{Arg: e.Arg, Body: naiveDownLevel(e.Body, with(e.Arg, nil)), Inferred: e.Inferred}
	case *typed.Binary:
		return &typed.Binary{Op: e.Op, Left: naiveDownLevel(e.Left, env), Right: naiveDownLevel(e.Right, env), Inferred: e.Inferred}
	}
	return e
}

// eval evaluates an integer expression, for comparing the meaning of rewritten trees.
func eval(t *testing.T, e typed.Expr, vars map[string]int64) int64 {
	t.Helper()
	switch e := e.(type) {
	case *typed.Int:
		return e.Value
	case *typed.Var:
		v, ok := vars[e.Name]
		if !ok {
			t.Fatalf("unbound variable %s", e.Name)
		}
		return v
	case *typed.Binary:
		l, r := eval(t, e.Left, vars), eval(t, e.Right, vars)
		switch e.Op {
		case ast.Add:
			return l + r
		case ast.Minus:
			return l - r
		}
	case *typed.Let:
		next := make(map[string]int64, len(vars)+1)
		for k, v := range vars {
			next[k] = v
		}
		next[e.Var] = eval(t, e.Value, vars)
		return eval(t, e.Body, next)
	}
	t.Fatalf("cannot evaluate %s", e.ExprName())
	return 0
}

func TestRenamingAvoidsCapture(t *testing.T) {
	// y -> let f = x -> x + y in let y = 5 in f y
	//
	// The let-bound y shadows the parameter y which is referenced by f:
	expr := Func1("y",
		Let("f", Func1("x", Add(Var("x"), Var("y"))),
			Let("y", Int(5), Call(Var("f"), Var("y")))))

	root := annotate(t, expr, polyc.NewTypeEnv())
	safe := New(names.NewCounter(0)).DownLevel(root, EmptyEnv)
	naive := naiveDownLevel(root, nil)

	if s := typed.ExprString(safe); s != "y -> let y#0 = 5 in y#0 + y" {
		t.Fatalf("safe: %s", s)
	}
	if s := typed.ExprString(naive); s != "y -> let y = 5 in y + y" {
		t.Fatalf("naive: %s", s)
	}

	// The results differ only by the renamed binder:
	if s := typed.ExprString(typed.Rename(stripBinder(safe), "y#0", "y")); s != typed.ExprString(naive.(*typed.Func).Body) {
		t.Fatalf("unexpected divergence: %s", s)
	}

	// ...which changes the meaning of the naive result:
	arg := map[string]int64{"y": 10}
	safeResult := eval(t, safe.(*typed.Func).Body, arg)
	naiveResult := eval(t, naive.(*typed.Func).Body, arg)
	if safeResult != 15 || naiveResult != 10 {
		t.Fatalf("results: safe=%d naive=%d", safeResult, naiveResult)
	}
}

// stripBinder returns the body of the let-binding within an abstraction, rebuilt with the original binder name.
func stripBinder(fn typed.Expr) typed.Expr {
	let := fn.(*typed.Func).Body.(*typed.Let)
	return &typed.Let{Var: names.Base(let.Var), Value: let.Value, Body: let.Body, Inferred: let.Inferred}
}

func TestInlineRenamesCapturedBinders(t *testing.T) {
	// q -> let g = x -> let q = 2 in x + q in g q
	expr := Func1("q",
		Let("g", Func1("x", Let("q", Int(2), Add(Var("x"), Var("q")))),
			Call(Var("g"), Var("q"))))

	out := lower(t, expr, polyc.NewTypeEnv())
	if s := typed.ExprString(out); s != "q -> let q#0 = 2 in q + q#0" {
		t.Fatalf("expr: %s", s)
	}
	if result := eval(t, out.(*typed.Func).Body, map[string]int64{"q": 40}); result != 42 {
		t.Fatalf("result: %d", result)
	}
}

func TestShadowedReplacement(t *testing.T) {
	// let f = x -> x in (f -> f) 3
	expr := Let("f", Func1("x", Var("x")), Call(Func1("f", Var("f")), Int(3)))

	out := lower(t, expr, polyc.NewTypeEnv())
	if s := typed.ExprString(out); s != "3" {
		t.Fatalf("expr: %s", s)
	}
}

func TestEnvIsPersistent(t *testing.T) {
	one := &typed.Int{Value: 1, Inferred: types.Int}
	a := EmptyEnv.Extend("a", one)
	b := a.Extend("b", &typed.Var{Name: "z", Inferred: types.Int})
	if EmptyEnv.Len() != 0 || a.Len() != 1 || b.Len() != 2 {
		t.Fatalf("lengths: %d %d %d", EmptyEnv.Len(), a.Len(), b.Len())
	}
	if c := b.Delete("a"); c.Len() != 1 || b.Len() != 2 {
		t.Fatalf("expected delete to leave the original environment unchanged")
	}
	if v, ok := a.Lookup("a"); !ok || v != one {
		t.Fatalf("lookup: %# v", pretty.Formatter(v))
	}
	if free := b.FreeVars(); !free.Contains("z") || free.Size() != 1 {
		t.Fatalf("free vars: %v", free.Slice())
	}
}
