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

package construct

import (
	"github.com/wdamron/polyc/ast"
	"github.com/wdamron/polyc/types"
)

// Types

// Type-variable with the given name
func TVar(name string) *types.Var {
	return &types.Var{Name: name}
}

// Type constant: `int`
func TInt() *types.Const { return types.Int }

// Type constant: `bool`
func TBool() *types.Const { return types.Bool }

// Function type: `int -> int`
func TArrow1(arg types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Arg: arg, Return: ret}
}

// Curried function type: `int -> int -> int`
func TArrow2(arg1, arg2 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Arg: arg1, Return: &types.Arrow{Arg: arg2, Return: ret}}
}

// Type-scheme: `forall 'a. 'a -> 'a`
func TScheme(body types.Type, bound ...string) *types.Scheme {
	return &types.Scheme{Bound: bound, Body: body}
}

// Expressions:

// Boolean literal: `true`
func True() *ast.Bool { return &ast.Bool{Value: true} }

// Boolean literal: `false`
func False() *ast.Bool { return &ast.Bool{Value: false} }

// Integer literal: `42`
func Int(value int64) *ast.Int {
	return &ast.Int{Value: value}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Application of a curried function: `f x y`
func Call(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f
}

// Abstraction: `x -> x`
func Func1(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{Arg: arg, Body: body}
}

// Curried abstraction: `x -> y -> x`
func Func2(arg1, arg2 string, body ast.Expr) *ast.Func {
	return &ast.Func{Arg: arg1, Body: &ast.Func{Arg: arg2, Body: body}}
}

// Let-binding: `let a = 1 in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}

// Recursive let-binding: `let rec f = x -> f x in e`
func LetRec(varName string, value ast.Expr, body ast.Expr) *ast.LetRec {
	return &ast.LetRec{Var: varName, Value: value, Body: body}
}

// Addition: `a + b`
func Add(left, right ast.Expr) *ast.Binary {
	return &ast.Binary{Op: ast.Add, Left: left, Right: right}
}

// Subtraction: `a - b`
func Minus(left, right ast.Expr) *ast.Binary {
	return &ast.Binary{Op: ast.Minus, Left: left, Right: right}
}

// Comparison: `a < b`
func LessThan(left, right ast.Expr) *ast.Binary {
	return &ast.Binary{Op: ast.LessThan, Left: left, Right: right}
}

// Conditional: `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Cond: cond, Then: then, Else: els}
}
