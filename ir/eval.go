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
	"errors"
	"strconv"
)

// ErrNoValue is returned by Eval when a function body produces no value.
var ErrNoValue = errors.New("Expression produces no value")

// Eval interprets fn with the given arguments. Addition wraps around at 32 bits.
func Eval(fn *Function, args ...int64) (int64, error) {
	if len(args) != len(fn.Params) {
		return 0, errors.New("Expected " + strconv.Itoa(len(fn.Params)) + " arguments for " + fn.Name + ", got " + strconv.Itoa(len(args)))
	}
	if err := fn.Validate(); err != nil {
		return 0, err
	}
	slots := make([]int64, len(fn.Params)+len(fn.Locals))
	copy(slots, args)
	v, ok := eval(fn.Body, slots)
	if !ok {
		return 0, ErrNoValue
	}
	if fn.Result == I32 {
		v = int64(int32(v))
	}
	return v, nil
}

func eval(e Expr, slots []int64) (int64, bool) {
	switch e := e.(type) {
	case *Const:
		return int64(e.Value), true
	case *GetLocal:
		return slots[e.Index], true
	case *SetLocal:
		v, _ := eval(e.Value, slots)
		slots[e.Index] = v
		return 0, false
	case *Block:
		var v int64
		var ok bool
		for _, child := range e.Children {
			v, ok = eval(child, slots)
		}
		return v, ok
	case *Add:
		l, _ := eval(e.Left, slots)
		r, _ := eval(e.Right, slots)
		return int64(int32(l) + int32(r)), true
	}
	return 0, false
}
