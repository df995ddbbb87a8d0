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

// Package irgen lowers down-leveled expressions into IR functions.
//
// Every let-binding is given a new slot within the generated function. Slots are numbered from the
// parameters of the function, followed by its locals in declaration order.
package irgen

import (
	"math"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/polyc"
	"github.com/wdamron/polyc/ast"
	"github.com/wdamron/polyc/ir"
	"github.com/wdamron/polyc/typed"
	"github.com/wdamron/polyc/types"
)

// MainFunc is the name of the exported function produced by Generate.
const MainFunc = "main"

// Name of the built-in addition function, lowered to ir.Add when fully applied.
const builtinAdd = "add"

var emptyScope = immutable.NewSortedMap(nil)

// frame is the state of the function being generated. Each step returns an updated frame.
type frame struct {
	params int
	locals *immutable.List // ir.ValueType
}

func (f frame) declare(t ir.ValueType) (int, frame) {
	slot := f.params + f.locals.Len()
	return slot, frame{params: f.params, locals: f.locals.Append(t)}
}

func (f frame) localTypes() []ir.ValueType {
	out := make([]ir.ValueType, f.locals.Len())
	for i := range out {
		out[i] = f.locals.Get(i).(ir.ValueType)
	}
	return out
}

// scope maps variable names to slots.
type scope struct {
	m *immutable.SortedMap
}

func (s scope) lookup(name string) (int, bool) {
	slot, ok := s.m.Get(name)
	if !ok {
		return 0, false
	}
	return slot.(int), true
}

func (s scope) bind(name string, slot int) scope { return scope{s.m.Set(name, slot)} }

// Generate lowers a down-leveled expression into a module with a single exported function named "main".
//
// A top-level function must have type int -> int; its parameter is given slot 0. Any other top-level
// expression must have type int, and main is generated without parameters.
func Generate(expr typed.Expr) (*ir.Module, error) {
	fr := frame{locals: immutable.NewList()}
	sc := scope{emptyScope}
	body := expr
	var params []ir.ValueType

	if fn, ok := expr.(*typed.Func); ok {
		if _, _, err := polyc.Unify(fn.Type(), types.NewArrow(types.Int, types.Int)); err != nil {
			return nil, err
		}
		params = []ir.ValueType{ir.I32}
		fr.params = 1
		sc = sc.bind(fn.Arg, 0)
		body = fn.Body
	} else if _, _, err := polyc.Unify(expr.Type(), types.Int); err != nil {
		return nil, err
	}

	out, fr, err := generate(body, sc, fr)
	if err != nil {
		return nil, err
	}
	if _, ok := out.(*ir.Block); !ok {
		out = &ir.Block{Children: []ir.Expr{out}}
	}
	main := &ir.Function{
		Name:   MainFunc,
		Params: params,
		Result: ir.I32,
		Locals: fr.localTypes(),
		Body:   out,
		Export: true,
	}
	return &ir.Module{Functions: []*ir.Function{main}}, nil
}

func generate(e typed.Expr, sc scope, fr frame) (ir.Expr, frame, error) {
	switch e := e.(type) {
	case *typed.Bool:
		if e.Value {
			return &ir.Const{Value: 1}, fr, nil
		}
		return &ir.Const{Value: 0}, fr, nil

	case *typed.Int:
		if e.Value < math.MinInt32 || e.Value > math.MaxInt32 {
			return nil, fr, &UnsupportedConstructError{Expr: e, Reason: "integer does not fit in i32"}
		}
		return &ir.Const{Value: int32(e.Value)}, fr, nil

	case *typed.Var:
		slot, ok := sc.lookup(e.Name)
		if !ok {
			return nil, fr, &MissingVariableError{Name: e.Name}
		}
		return &ir.GetLocal{Index: slot}, fr, nil

	case *typed.Let:
		var value, body ir.Expr
		var slot int
		var err error
		if value, fr, err = generate(e.Value, sc, fr); err != nil {
			return nil, fr, err
		}
		slot, fr = fr.declare(ir.I32)
		if body, fr, err = generate(e.Body, sc.bind(e.Var, slot), fr); err != nil {
			return nil, fr, err
		}
		return &ir.Block{Children: []ir.Expr{&ir.SetLocal{Index: slot, Value: value}, body}}, fr, nil

	case *typed.Binary:
		if e.Op != ast.Add {
			return nil, fr, &UnsupportedConstructError{Expr: e, Reason: "no IR instruction for " + e.Op.String()}
		}
		return generateAdd(e.Left, e.Right, sc, fr)

	case *typed.Call:
		if inner, ok := e.Func.(*typed.Call); ok {
			if fn, ok := inner.Func.(*typed.Var); ok && fn.Name == builtinAdd {
				if _, bound := sc.lookup(builtinAdd); !bound {
					return generateAdd(inner.Arg, e.Arg, sc, fr)
				}
			}
		}
		return nil, fr, &UnsupportedConstructError{Expr: e, Reason: "only full applications of add are supported"}

	case *typed.Func:
		return nil, fr, &UnsupportedConstructError{Expr: e, Reason: "functions are only supported at the top level"}
	}
	return nil, fr, &UnsupportedConstructError{Expr: e}
}

func generateAdd(left, right typed.Expr, sc scope, fr frame) (ir.Expr, frame, error) {
	l, fr, err := generate(left, sc, fr)
	if err != nil {
		return nil, fr, err
	}
	r, fr, err := generate(right, sc, fr)
	if err != nil {
		return nil, fr, err
	}
	return &ir.Add{Left: l, Right: r}, fr, nil
}
