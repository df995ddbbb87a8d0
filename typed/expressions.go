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

// Package typed contains expression trees annotated with inferred types.
//
// Annotated trees are produced by inference and are never modified afterward; passes over
// annotated trees build new trees, sharing unchanged sub-trees.
package typed

import (
	"github.com/wdamron/polyc/ast"
	"github.com/wdamron/polyc/types"
)

// Expr is the base for all annotated expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns the inferred type of an expression.
	Type() types.Type
}

var (
	_ Expr = (*Bool)(nil)
	_ Expr = (*Int)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*If)(nil)
)

// Boolean literal
type Bool struct {
	Value    bool
	Inferred types.Type
}

// "Bool"
func (e *Bool) ExprName() string { return "Bool" }

// Get the inferred type of e.
func (e *Bool) Type() types.Type { return e.Inferred }

// Integer literal
type Int struct {
	Value    int64
	Inferred types.Type
}

// "Int"
func (e *Int) ExprName() string { return "Int" }

// Get the inferred type of e.
func (e *Int) Type() types.Type { return e.Inferred }

// Variable, annotated with the type instantiated at this occurrence
type Var struct {
	Name     string
	Inferred types.Type
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Get the inferred type of e.
func (e *Var) Type() types.Type { return e.Inferred }

// Abstraction
type Func struct {
	Arg      string
	Body     Expr
	Inferred types.Type
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Get the inferred type of e.
func (e *Func) Type() types.Type { return e.Inferred }

// Get the inferred type of the argument of e.
func (e *Func) ArgType() types.Type {
	if arrow, ok := e.Inferred.(*types.Arrow); ok {
		return arrow.Arg
	}
	return nil
}

// Application
type Call struct {
	Func     Expr
	Arg      Expr
	Inferred types.Type
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Get the inferred type of e.
func (e *Call) Type() types.Type { return e.Inferred }

// Let-binding
type Let struct {
	Var      string
	Value    Expr
	Body     Expr
	Inferred types.Type
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Get the inferred type of e.
func (e *Let) Type() types.Type { return e.Inferred }

// Recursive let-binding
type LetRec struct {
	Var      string
	Value    Expr
	Body     Expr
	Inferred types.Type
}

// "LetRec"
func (e *LetRec) ExprName() string { return "LetRec" }

// Get the inferred type of e.
func (e *LetRec) Type() types.Type { return e.Inferred }

// Binary operation over integers
type Binary struct {
	Op       ast.Op
	Left     Expr
	Right    Expr
	Inferred types.Type
}

// "Binary"
func (e *Binary) ExprName() string { return "Binary" }

// Get the inferred type of e.
func (e *Binary) Type() types.Type { return e.Inferred }

// Conditional
type If struct {
	Cond     Expr
	Then     Expr
	Else     Expr
	Inferred types.Type
}

// "If"
func (e *If) ExprName() string { return "If" }

// Get the inferred type of e.
func (e *If) Type() types.Type { return e.Inferred }

// Binder returns the name bound by e, for abstractions and let-bindings.
func Binder(e Expr) (string, bool) {
	switch e := e.(type) {
	case *Func:
		return e.Arg, true
	case *Let:
		return e.Var, true
	case *LetRec:
		return e.Var, true
	}
	return "", false
}

// WalkExpr calls f for e and each of its sub-expressions, in pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Bool, *Int, *Var:
		f(e)
	case *Func:
		f(e)
		WalkExpr(e.Body, f)
	case *Call:
		f(e)
		WalkExpr(e.Func, f)
		WalkExpr(e.Arg, f)
	case *Let:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)
	case *LetRec:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)
	case *Binary:
		f(e)
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)
	case *If:
		f(e)
		WalkExpr(e.Cond, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)
	case nil:
	default:
		panic("unknown expression type: " + e.ExprName())
	}
}
