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
	"github.com/wdamron/polyc/ast"
	"github.com/wdamron/polyc/typed"
	"github.com/wdamron/polyc/types"
)

// infer returns the annotated copy of e and the substitution solved by e and its sub-expressions.
//
// Each sub-expression after the first is inferred within env updated by the substitution accumulated
// from its preceding siblings.
func (ti *InferenceContext) infer(env TypeEnv, e ast.Expr) (typed.Expr, types.Subst, error) {
	switch e := e.(type) {
	case *ast.Bool:
		return &typed.Bool{Value: e.Value, Inferred: types.Bool}, types.EmptySubst, nil

	case *ast.Int:
		return &typed.Int{Value: e.Value, Inferred: types.Int}, types.EmptySubst, nil

	case *ast.Var:
		scheme, ok := env.Lookup(e.Name)
		if !ok {
			return ti.fail(e, &UndefinedVariableError{Name: e.Name})
		}
		return &typed.Var{Name: e.Name, Inferred: ti.instantiate(scheme)}, types.EmptySubst, nil

	case *ast.Func:
		tv := ti.newVar()
		body, s, err := ti.infer(env.Extend(e.Arg, types.Mono(tv)), e.Body)
		if err != nil {
			return nil, s, err
		}
		t := &types.Arrow{Arg: types.Apply(tv, s), Return: body.Type()}
		return &typed.Func{Arg: e.Arg, Body: body, Inferred: t}, s, nil

	case *ast.Call:
		fn, s, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, s, err
		}
		arg, argSubst, err := ti.infer(env.Apply(s), e.Arg)
		if err != nil {
			return nil, argSubst, err
		}
		s = types.Compose(argSubst, s)
		ret := ti.newVar()
		_, callSubst, err := Unify(&types.Arrow{Arg: arg.Type(), Return: ret}, types.Apply(fn.Type(), argSubst))
		if err != nil {
			return ti.fail(e, err)
		}
		s = types.Compose(callSubst, s)
		return &typed.Call{Func: fn, Arg: arg, Inferred: types.Apply(ret, callSubst)}, s, nil

	case *ast.Let:
		value, s, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, s, err
		}
		env = env.Apply(s)
		scheme := Generalize(env, value.Type())
		body, bodySubst, err := ti.infer(env.Extend(e.Var, scheme), e.Body)
		if err != nil {
			return nil, bodySubst, err
		}
		s = types.Compose(bodySubst, s)
		return &typed.Let{Var: e.Var, Value: value, Body: body, Inferred: body.Type()}, s, nil

	case *ast.LetRec:
		// The binding is monomorphic within its own value, and generalized within the body:
		tv := ti.newVar()
		value, s, err := ti.infer(env.Extend(e.Var, types.Mono(tv)), e.Value)
		if err != nil {
			return nil, s, err
		}
		t, recSubst, err := Unify(value.Type(), types.Apply(tv, s))
		if err != nil {
			return ti.fail(e, err)
		}
		s = types.Compose(recSubst, s)
		env = env.Apply(s)
		scheme := Generalize(env, t)
		body, bodySubst, err := ti.infer(env.Extend(e.Var, scheme), e.Body)
		if err != nil {
			return nil, bodySubst, err
		}
		s = types.Compose(bodySubst, s)
		return &typed.LetRec{Var: e.Var, Value: value, Body: body, Inferred: body.Type()}, s, nil

	case *ast.Binary:
		left, s, err := ti.infer(env, e.Left)
		if err != nil {
			return nil, s, err
		}
		_, leftSubst, err := Unify(left.Type(), types.Int)
		if err != nil {
			return ti.fail(e.Left, err)
		}
		s = types.Compose(leftSubst, s)
		right, rightSubst, err := ti.infer(env.Apply(s), e.Right)
		if err != nil {
			return nil, rightSubst, err
		}
		s = types.Compose(rightSubst, s)
		_, rightSubst, err = Unify(right.Type(), types.Int)
		if err != nil {
			return ti.fail(e.Right, err)
		}
		s = types.Compose(rightSubst, s)
		var t types.Type = types.Int
		if e.Op == ast.LessThan {
			t = types.Bool
		}
		return &typed.Binary{Op: e.Op, Left: left, Right: right, Inferred: t}, s, nil

	case *ast.If:
		cond, s, err := ti.infer(env, e.Cond)
		if err != nil {
			return nil, s, err
		}
		_, condSubst, err := Unify(cond.Type(), types.Bool)
		if err != nil {
			return ti.fail(e.Cond, err)
		}
		s = types.Compose(condSubst, s)
		then, thenSubst, err := ti.infer(env.Apply(s), e.Then)
		if err != nil {
			return nil, thenSubst, err
		}
		s = types.Compose(thenSubst, s)
		els, elseSubst, err := ti.infer(env.Apply(s), e.Else)
		if err != nil {
			return nil, elseSubst, err
		}
		s = types.Compose(elseSubst, s)
		t, branchSubst, err := Unify(els.Type(), types.Apply(then.Type(), elseSubst))
		if err != nil {
			return ti.fail(e.Else, err)
		}
		s = types.Compose(branchSubst, s)
		return &typed.If{Cond: cond, Then: then, Else: els, Inferred: t}, s, nil

	case nil:
		return ti.fail(e, ast.ErrEmptyExpr)
	}
	panic("unknown expression type: " + e.ExprName())
}
