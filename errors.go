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
	"github.com/wdamron/polyc/types"
)

// UndefinedVariableError is returned when an identifier is not bound in the type-environment.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string { return "Variable " + e.Name + " not found" }

// TypeMismatchError is returned when two types with different constructors are unified.
type TypeMismatchError struct {
	Expected types.Type
	Actual   types.Type
}

func (e *TypeMismatchError) Error() string {
	names := types.TypeStrings(e.Actual, e.Expected)
	return "Failed to unify " + names[0] + " with " + names[1]
}

// InfiniteTypeError is returned when a type-variable would be bound to a type containing itself.
type InfiniteTypeError struct {
	Var  *types.Var
	Type types.Type
}

func (e *InfiniteTypeError) Error() string {
	names := types.TypeStrings(e.Var, e.Type)
	return "Infinite type: " + names[0] + " occurs within " + names[1]
}

// InferenceError wraps the error which caused inference to fail, along with the failing expression.
type InferenceError struct {
	Expr ast.Expr
	Err  error
}

func (e *InferenceError) Error() string {
	return e.Err.Error() + " in `" + ast.ExprString(e.Expr) + "`"
}

func (e *InferenceError) Unwrap() error { return e.Err }
