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

package irgen

import (
	"github.com/wdamron/polyc/typed"
)

// UnsupportedConstructError is returned when an expression has no lowering to the IR.
type UnsupportedConstructError struct {
	Expr   typed.Expr
	Reason string
}

func (e *UnsupportedConstructError) Error() string {
	msg := "Unsupported " + e.Expr.ExprName() + " expression `" + typed.ExprString(e.Expr) + "`"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// MissingVariableError is returned when a variable is not bound to a slot.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string { return "Variable " + e.Name + " is not bound to a slot" }
