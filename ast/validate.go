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

	"github.com/wdamron/polyc/names"
)

// InvalidIdentifierError is returned by Validate for a binder or variable whose name is not a source identifier.
type InvalidIdentifierError struct {
	Name string
	Expr Expr
}

func (e *InvalidIdentifierError) Error() string {
	return "Invalid identifier " + quote(e.Name) + " in " + e.Expr.ExprName()
}

// ErrEmptyExpr is returned by Validate for a missing sub-expression.
var ErrEmptyExpr = errors.New("Empty expression")

// Validate checks that e is complete and that every bound or referenced name is a valid identifier.
func Validate(e Expr) error {
	if e == nil {
		return ErrEmptyExpr
	}
	var err error
	check := func(name string, e Expr) {
		if err == nil && !names.IsIdentifier(name) {
			err = &InvalidIdentifierError{Name: name, Expr: e}
		}
	}
	WalkExpr(e, func(e Expr) {
		if err != nil {
			return
		}
		switch e := e.(type) {
		case *Var:
			check(e.Name, e)
		case *Func:
			check(e.Arg, e)
			if e.Body == nil {
				err = ErrEmptyExpr
			}
		case *Call:
			if e.Func == nil || e.Arg == nil {
				err = ErrEmptyExpr
			}
		case *Let:
			check(e.Var, e)
			if e.Value == nil || e.Body == nil {
				err = ErrEmptyExpr
			}
		case *LetRec:
			check(e.Var, e)
			if e.Value == nil || e.Body == nil {
				err = ErrEmptyExpr
			}
		case *Binary:
			if e.Left == nil || e.Right == nil {
				err = ErrEmptyExpr
			}
		case *If:
			if e.Cond == nil || e.Then == nil || e.Else == nil {
				err = ErrEmptyExpr
			}
		}
	})
	return err
}

func quote(s string) string { return "`" + s + "`" }
