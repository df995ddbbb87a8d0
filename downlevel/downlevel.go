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

// Package downlevel rewrites annotated expressions into a form which can be lowered to the IR.
//
// Let-bound functions are never materialized: each use of a let-bound function is replaced by the
// function itself, and applications of known functions are reduced statically by substituting the
// argument for the parameter. Let-bindings nested within let-bound values are rotated outward, and
// let-bindings above a function are moved within the function. Binders are renamed wherever a
// substituted expression would otherwise be captured.
package downlevel

import (
	"github.com/wdamron/polyc"
	"github.com/wdamron/polyc/names"
	"github.com/wdamron/polyc/typed"
	"github.com/wdamron/polyc/types"
)

// Lowerer down-levels annotated expressions, drawing fresh names for renamed binders from a supply.
//
// A lowerer cannot be used concurrently unless its supply is safe for concurrent use.
type Lowerer struct {
	supply names.Supply
}

// Create a lowerer which draws fresh names from supply, or from names.Default if supply is nil.
func New(supply names.Supply) *Lowerer {
	if supply == nil {
		supply = names.Default
	}
	return &Lowerer{supply: supply}
}

// DownLevel rewrites e with the default name supply and no initial replacements.
func DownLevel(e typed.Expr) typed.Expr { return New(nil).DownLevel(e, EmptyEnv) }

// DownLevel rewrites e, replacing free variables of e which are bound in env.
func (l *Lowerer) DownLevel(e typed.Expr, env Env) typed.Expr { return l.downLevel(e, env) }

func (l *Lowerer) downLevel(e typed.Expr, env Env) typed.Expr {
	switch e := e.(type) {
	case *typed.Var:
		if value, ok := env.Lookup(e.Name); ok {
			return specialize(value, e.Inferred)
		}
		return e

	case *typed.Let:
		if inner, ok := e.Value.(*typed.Let); ok {
			return l.downLevel(l.rotate(e, inner), env)
		}
		value := l.downLevel(e.Value, env)
		if types.IsArrow(e.Value.Type()) {
			return l.downLevel(e.Body, env.Extend(e.Var, value))
		}
		name, scope, bodyEnv := l.bind(e.Var, e.Body, env)
		body := l.downLevel(scope, bodyEnv)
		fn, ok := body.(*typed.Func)
		if !ok {
			return &typed.Let{Var: name, Value: value, Body: body, Inferred: e.Inferred}
		}
		// let a = v in x -> b  ==>  x' -> let a = v in b[x := x']
		arg := names.Fresh(fn.Arg, l.supply)
		inner := typed.Rename(fn.Body, fn.Arg, arg)
		return &typed.Func{
			Arg:      arg,
			Body:     &typed.Let{Var: name, Value: value, Body: inner, Inferred: inner.Type()},
			Inferred: fn.Inferred,
		}

	case *typed.LetRec:
		name, value, bodyEnv := l.bind(e.Var, e.Value, env)
		body := e.Body
		if name != e.Var {
			body = typed.Rename(body, e.Var, name)
		}
		return &typed.LetRec{
			Var:      name,
			Value:    l.downLevel(value, bodyEnv),
			Body:     l.downLevel(body, bodyEnv),
			Inferred: e.Inferred,
		}

	case *typed.Call:
		callee := l.downLevel(e.Func, env)
		arg := l.downLevel(e.Arg, env)
		if fn, ok := callee.(*typed.Func); ok {
			return l.inline(fn, arg)
		}
		return &typed.Call{Func: callee, Arg: arg, Inferred: e.Inferred}

	case *typed.Func:
		name, scope, bodyEnv := l.bind(e.Arg, e.Body, env)
		return &typed.Func{Arg: name, Body: l.downLevel(scope, bodyEnv), Inferred: e.Inferred}

	case *typed.Binary:
		return &typed.Binary{
			Op:       e.Op,
			Left:     l.downLevel(e.Left, env),
			Right:    l.downLevel(e.Right, env),
			Inferred: e.Inferred,
		}

	case *typed.If:
		return &typed.If{
			Cond:     l.downLevel(e.Cond, env),
			Then:     l.downLevel(e.Then, env),
			Else:     l.downLevel(e.Else, env),
			Inferred: e.Inferred,
		}
	}
	return e
}

// rotate flattens a let-binding within the value of another let-binding:
//
//  let x = (let y = v in b) in rest  ==>  let y' = v in let x = b[y := y'] in rest
func (l *Lowerer) rotate(outer, inner *typed.Let) *typed.Let {
	name := names.Fresh(inner.Var, l.supply)
	return &typed.Let{
		Var:   name,
		Value: inner.Value,
		Body: &typed.Let{
			Var:      outer.Var,
			Value:    typed.Rename(inner.Body, inner.Var, name),
			Body:     outer.Body,
			Inferred: outer.Inferred,
		},
		Inferred: outer.Inferred,
	}
}

// inline reduces an application of a known function. The body of fn has already been down-leveled,
// so only the parameter is replaced.
func (l *Lowerer) inline(fn *typed.Func, arg typed.Expr) typed.Expr {
	return l.downLevel(fn.Body, EmptyEnv.Extend(fn.Arg, arg))
}

// bind enters the scope of a binder. The binder shadows any replacement for its name, and is renamed
// within scope when a replacement refers to a variable with the same name.
func (l *Lowerer) bind(name string, scope typed.Expr, env Env) (string, typed.Expr, Env) {
	env = env.Delete(name)
	if env.Len() == 0 || !env.FreeVars().Contains(name) {
		return name, scope, env
	}
	fresh := names.Fresh(name, l.supply)
	return fresh, typed.Rename(scope, name, fresh), env
}

// specialize instantiates the annotations of a replacement for a variable with the type of the
// variable at the replaced occurrence.
func specialize(value typed.Expr, t types.Type) typed.Expr {
	if t == nil || value.Type() == nil {
		return value
	}
	_, s, err := polyc.Unify(value.Type(), t)
	if err != nil {
		return value
	}
	return typed.ApplySubst(value, s)
}
