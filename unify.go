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
	"github.com/wdamron/polyc/types"
)

// Unify computes the most general substitution which makes two types structurally equal, and the
// unified type. For diagnostics, actual is the type which was found and expected is the type it
// must agree with.
//
// Type-schemes must be instantiated before unification; Unify panics if either type is a scheme.
func Unify(actual, expected types.Type) (types.Type, types.Subst, error) {
	if tv, ok := actual.(*types.Var); ok {
		return bindVar(tv, expected)
	}
	if tv, ok := expected.(*types.Var); ok {
		return bindVar(tv, actual)
	}

	switch a := actual.(type) {
	case *types.Const:
		if b, ok := expected.(*types.Const); ok && a.Name == b.Name {
			return a, types.EmptySubst, nil
		}

	case *types.Arrow:
		b, ok := expected.(*types.Arrow)
		if !ok {
			break
		}
		_, argSubst, err := Unify(a.Arg, b.Arg)
		if err != nil {
			return nil, types.EmptySubst, err
		}
		// Variables solved by the arguments must be visible when unifying the return types:
		_, retSubst, err := Unify(types.Apply(a.Return, argSubst), types.Apply(b.Return, argSubst))
		if err != nil {
			return nil, types.EmptySubst, err
		}
		s := types.Compose(retSubst, argSubst)
		return types.Apply(a, s), s, nil

	case *types.Scheme:
		panic("cannot unify type-scheme " + types.TypeString(a))
	}

	if _, ok := expected.(*types.Scheme); ok {
		panic("cannot unify type-scheme " + types.TypeString(expected))
	}
	return nil, types.EmptySubst, &TypeMismatchError{Expected: expected, Actual: actual}
}

func bindVar(tv *types.Var, t types.Type) (types.Type, types.Subst, error) {
	if other, ok := t.(*types.Var); ok && other.Name == tv.Name {
		return tv, types.EmptySubst, nil
	}
	if _, ok := t.(*types.Scheme); ok {
		panic("cannot unify type-scheme " + types.TypeString(t))
	}
	if types.Occurs(tv.Name, t) {
		return nil, types.EmptySubst, &InfiniteTypeError{Var: tv, Type: t}
	}
	return t, types.SingletonSubst(tv.Name, t), nil
}
