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
	"strings"
)

// ModuleString returns the text form of m:
//
//  (func $main (export "main") (param i32) (result i32) (local i32)
//    (block
//      (local.set 1 (local.get 0))
//      (local.get 1)))
func ModuleString(m *Module) string {
	var sb strings.Builder
	for i, fn := range m.Functions {
		if i > 0 {
			sb.WriteByte('\n')
		}
		funcString(&sb, fn)
	}
	return sb.String()
}

// ExprString returns the text form of e, on a single line.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, -1, e)
	return sb.String()
}

func funcString(sb *strings.Builder, fn *Function) {
	sb.WriteString("(func $")
	sb.WriteString(fn.Name)
	if fn.Export {
		sb.WriteString(" (export \"")
		sb.WriteString(fn.Name)
		sb.WriteString("\")")
	}
	writeTypes(sb, "param", fn.Params)
	sb.WriteString(" (result ")
	sb.WriteString(fn.Result.String())
	sb.WriteByte(')')
	writeTypes(sb, "local", fn.Locals)
	sb.WriteString("\n  ")
	exprString(sb, 1, fn.Body)
	sb.WriteByte(')')
}

func writeTypes(sb *strings.Builder, kind string, ts []ValueType) {
	if len(ts) == 0 {
		return
	}
	sb.WriteString(" (")
	sb.WriteString(kind)
	for _, t := range ts {
		sb.WriteByte(' ')
		sb.WriteString(t.String())
	}
	sb.WriteByte(')')
}

// exprString writes e; blocks are written over multiple lines when depth is not negative.
func exprString(sb *strings.Builder, depth int, e Expr) {
	switch e := e.(type) {
	case *Const:
		sb.WriteString("(i32.const ")
		sb.WriteString(strconv.Itoa(int(e.Value)))
		sb.WriteByte(')')

	case *GetLocal:
		sb.WriteString("(local.get ")
		sb.WriteString(strconv.Itoa(e.Index))
		sb.WriteByte(')')

	case *SetLocal:
		sb.WriteString("(local.set ")
		sb.WriteString(strconv.Itoa(e.Index))
		sb.WriteByte(' ')
		exprString(sb, depth, e.Value)
		sb.WriteByte(')')

	case *Block:
		sb.WriteString("(block")
		if e.Label != "" {
			sb.WriteString(" $")
			sb.WriteString(e.Label)
		}
		for _, child := range e.Children {
			if depth < 0 {
				sb.WriteByte(' ')
				exprString(sb, depth, child)
				continue
			}
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat("  ", depth+1))
			exprString(sb, depth+1, child)
		}
		sb.WriteByte(')')

	case *Add:
		sb.WriteString("(i32.add ")
		exprString(sb, depth, e.Left)
		sb.WriteByte(' ')
		exprString(sb, depth, e.Right)
		sb.WriteByte(')')

	case nil:
		sb.WriteString("(nil)")
	}
}
