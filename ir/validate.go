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

package ir

import (
	"strconv"
)

// ValidationError describes a malformed function.
type ValidationError struct {
	Func   string
	Reason string
}

func (e *ValidationError) Error() string { return "Invalid function " + e.Func + ": " + e.Reason }

// Validate checks that every function has a unique name and a body, and that every slot reference is in range.
func (m *Module) Validate() error {
	seen := make(map[string]bool, len(m.Functions))
	for _, fn := range m.Functions {
		if fn == nil {
			return &ValidationError{Reason: "nil function"}
		}
		if fn.Name == "" {
			return &ValidationError{Reason: "missing name"}
		}
		if seen[fn.Name] {
			return &ValidationError{Func: fn.Name, Reason: "duplicate name"}
		}
		seen[fn.Name] = true
		if err := fn.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that f has a body, and that every slot reference is in range.
func (f *Function) Validate() error {
	if f.Body == nil {
		return &ValidationError{Func: f.Name, Reason: "missing body"}
	}
	slots := len(f.Params) + len(f.Locals)
	var check func(e Expr) error
	check = func(e Expr) error {
		switch e := e.(type) {
		case *Const:
		case *GetLocal:
			if e.Index < 0 || e.Index >= slots {
				return &ValidationError{Func: f.Name, Reason: "slot " + strconv.Itoa(e.Index) + " out of range"}
			}
		case *SetLocal:
			if e.Index < 0 || e.Index >= slots {
				return &ValidationError{Func: f.Name, Reason: "cannot set slot " + strconv.Itoa(e.Index)}
			}
			return check(e.Value)
		case *Block:
			for _, child := range e.Children {
				if err := check(child); err != nil {
					return err
				}
			}
		case *Add:
			if err := check(e.Left); err != nil {
				return err
			}
			return check(e.Right)
		default:
			return &ValidationError{Func: f.Name, Reason: "unknown expression"}
		}
		return nil
	}
	return check(f.Body)
}
