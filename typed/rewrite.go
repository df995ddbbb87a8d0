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

package typed

import (
	"github.com/wdamron/polyc/types"
)

// Rename replaces free occurrences of the variable from with to, within e.
// Renaming stops at any binder which shadows from. Unchanged sub-trees are shared with e.
//
// The name to must not be bound within e; fresh names from the names package satisfy this.
func Rename(e Expr, from, to string) Expr {
	if from == to {
		return e
	}
	switch e := e.(type) {
	case *Var:
		if e.Name != from {
			return e
		}
		return &Var{Name: to, Inferred: e.Inferred}

	case *Func:
		if e.Arg == from {
			return e
		}
		body := Rename(e.Body, from, to)
		if body == e.Body {
			return e
		}
		return &Func{Arg: e.Arg, Body: body, Inferred: e.Inferred}

	case *Call:
		fn, arg := Rename(e.Func, from, to), Rename(e.Arg, from, to)
		if fn == e.Func && arg == e.Arg {
			return e
		}
		return &Call{Func: fn, Arg: arg, Inferred: e.Inferred}

	case *Let:
		value, body := Rename(e.Value, from, to), e.Body
		if e.Var != from {
			body = Rename(e.Body, from, to)
		}
		if value == e.Value && body == e.Body {
			return e
		}
		return &Let{Var: e.Var, Value: value, Body: body, Inferred: e.Inferred}

	case *LetRec:
		if e.Var == from {
			return e
		}
		value, body := Rename(e.Value, from, to), Rename(e.Body, from, to)
		if value == e.Value && body == e.Body {
			return e
		}
		return &LetRec{Var: e.Var, Value: value, Body: body, Inferred: e.Inferred}

	case *Binary:
		left, right := Rename(e.Left, from, to), Rename(e.Right, from, to)
		if left == e.Left && right == e.Right {
			return e
		}
		return &Binary{Op: e.Op, Left: left, Right: right, Inferred: e.Inferred}

	case *If:
		cond, then, els := Rename(e.Cond, from, to), Rename(e.Then, from, to), Rename(e.Else, from, to)
		if cond == e.Cond && then == e.Then && els == e.Else {
			return e
		}
		return &If{Cond: cond, Then: then, Else: els, Inferred: e.Inferred}
	}
	return e
}

// ApplySubst applies s to the type of every node within e.
func ApplySubst(e Expr, s types.Subst) Expr {
	if s.Len() == 0 {
		return e
	}
	switch e := e.(type) {
	case *Bool:
		return &Bool{Value: e.Value, Inferred: types.Apply(e.Inferred, s)}
	case *Int:
		return &Int{Value: e.Value, Inferred: types.Apply(e.Inferred, s)}
	case *Var:
		return &Var{Name: e.Name, Inferred: types.Apply(e.Inferred, s)}
	case *Func:
		return &Func{Arg: e.Arg, Body: ApplySubst(e.Body, s), Inferred: types.Apply(e.Inferred, s)}
	case *Call:
		return &Call{Func: ApplySubst(e.Func, s), Arg: ApplySubst(e.Arg, s), Inferred: types.Apply(e.Inferred, s)}
	case *Let:
		return &Let{Var: e.Var, Value: ApplySubst(e.Value, s), Body: ApplySubst(e.Body, s), Inferred: types.Apply(e.Inferred, s)}
	case *LetRec:
		return &LetRec{Var: e.Var, Value: ApplySubst(e.Value, s), Body: ApplySubst(e.Body, s), Inferred: types.Apply(e.Inferred, s)}
	case *Binary:
		return &Binary{Op: e.Op, Left: ApplySubst(e.Left, s), Right: ApplySubst(e.Right, s), Inferred: types.Apply(e.Inferred, s)}
	case *If:
		return &If{Cond: ApplySubst(e.Cond, s), Then: ApplySubst(e.Then, s), Else: ApplySubst(e.Else, s), Inferred: types.Apply(e.Inferred, s)}
	}
	return e
}
