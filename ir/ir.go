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

// Package ir defines a minimal, function-oriented intermediate representation.
//
// Locals are referenced only by index into the flat slot array of a function: parameters first,
// followed by declared locals in declaration order.
package ir

// Type of a value held by a slot, or produced by a function
type ValueType int

const (
	I32 ValueType = iota
	I64
)

func (t ValueType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	}
	return "?"
}

// Expr is the base for all IR expressions.
type Expr interface {
	// Name of the kind of the expression.
	IRName() string
}

var (
	_ Expr = (*Const)(nil)
	_ Expr = (*GetLocal)(nil)
	_ Expr = (*SetLocal)(nil)
	_ Expr = (*Block)(nil)
	_ Expr = (*Add)(nil)
)

// Integer literal: `(i32.const 1)`
type Const struct {
	Value int32
}

// "Const"
func (e *Const) IRName() string { return "Const" }

// Read a slot: `(local.get 0)`
type GetLocal struct {
	Index int
}

// "GetLocal"
func (e *GetLocal) IRName() string { return "GetLocal" }

// Write a slot: `(local.set 0 ...)`
//
// Writing a slot produces no value.
type SetLocal struct {
	Index int
	Value Expr
}

// "SetLocal"
func (e *SetLocal) IRName() string { return "SetLocal" }

// Sequence of expressions: `(block ...)`
//
// The value of a block is the value of its last child.
type Block struct {
	Label    string
	Children []Expr
}

// "Block"
func (e *Block) IRName() string { return "Block" }

// Integer addition: `(i32.add ...)`
type Add struct {
	Left  Expr
	Right Expr
}

// "Add"
func (e *Add) IRName() string { return "Add" }

// Function
type Function struct {
	Name   string
	Params []ValueType
	Result ValueType
	Locals []ValueType
	Body   Expr
	Export bool
}

// Slots returns the types of all slots of f: parameters, then locals.
func (f *Function) Slots() []ValueType {
	slots := make([]ValueType, 0, len(f.Params)+len(f.Locals))
	slots = append(slots, f.Params...)
	return append(slots, f.Locals...)
}

// Module is an ordered sequence of functions.
type Module struct {
	Functions []*Function
}

// Lookup the function with the given name.
func (m *Module) Lookup(name string) (*Function, bool) {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return nil, false
}

// Exports returns the exported functions of m, in order.
func (m *Module) Exports() []*Function {
	var exports []*Function
	for _, fn := range m.Functions {
		if fn.Export {
			exports = append(exports, fn)
		}
	}
	return exports
}
