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
	"strings"

	"github.com/wdamron/polyc/ast"
	"github.com/wdamron/polyc/types"
)

// Erase removes type annotations from e.
func Erase(e Expr) ast.Expr {
	switch e := e.(type) {
	case *Bool:
		return &ast.Bool{Value: e.Value}
	case *Int:
		return &ast.Int{Value: e.Value}
	case *Var:
		return &ast.Var{Name: e.Name}
	case *Func:
		return &ast.Func{Arg: e.Arg, Body: Erase(e.Body)}
	case *Call:
		return &ast.Call{Func: Erase(e.Func), Arg: Erase(e.Arg)}
	case *Let:
		return &ast.Let{Var: e.Var, Value: Erase(e.Value), Body: Erase(e.Body)}
	case *LetRec:
		return &ast.LetRec{Var: e.Var, Value: Erase(e.Value), Body: Erase(e.Body)}
	case *Binary:
		return &ast.Binary{Op: e.Op, Left: Erase(e.Left), Right: Erase(e.Right)}
	case *If:
		return &ast.If{Cond: Erase(e.Cond), Then: Erase(e.Then), Else: Erase(e.Else)}
	}
	return nil
}

// ExprString returns the source form of e, without type annotations.
func ExprString(e Expr) string { return ast.ExprString(Erase(e)) }

// Dump returns an indented listing of e with the type of each node. Type-variable names are shared between nodes.
//
//  Let a : int
//    Int 1 : int
//    Var a : int
func Dump(e Expr) string {
	var nodes []Expr
	var depths []int
	var visit func(e Expr, depth int)
	visit = func(e Expr, depth int) {
		nodes, depths = append(nodes, e), append(depths, depth)
		switch e := e.(type) {
		case *Func:
			visit(e.Body, depth+1)
		case *Call:
			visit(e.Func, depth+1)
			visit(e.Arg, depth+1)
		case *Let:
			visit(e.Value, depth+1)
			visit(e.Body, depth+1)
		case *LetRec:
			visit(e.Value, depth+1)
			visit(e.Body, depth+1)
		case *Binary:
			visit(e.Left, depth+1)
			visit(e.Right, depth+1)
		case *If:
			visit(e.Cond, depth+1)
			visit(e.Then, depth+1)
			visit(e.Else, depth+1)
		}
	}
	visit(e, 0)

	ts := make([]types.Type, len(nodes))
	for i, node := range nodes {
		ts[i] = node.Type()
	}
	typeStrings := types.TypeStrings(ts...)

	var sb strings.Builder
	for i, node := range nodes {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat("  ", depths[i]))
		sb.WriteString(node.ExprName())
		switch node := node.(type) {
		case *Var, *Bool, *Int:
			sb.WriteByte(' ')
			sb.WriteString(ExprString(node))
		case *Func:
			sb.WriteByte(' ')
			sb.WriteString(node.Arg)
		case *Let:
			sb.WriteByte(' ')
			sb.WriteString(node.Var)
		case *LetRec:
			sb.WriteByte(' ')
			sb.WriteString(node.Var)
		case *Binary:
			sb.WriteByte(' ')
			sb.WriteString(node.Op.String())
		}
		sb.WriteString(" : ")
		sb.WriteString(typeStrings[i])
	}
	return sb.String()
}
