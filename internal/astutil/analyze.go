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

package astutil

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/polyc/typed"
)

// Analysis collects the free variables of annotated expressions.
//
// An analysis may be reused, but cannot be used concurrently.
type Analysis struct {
	Scopes     map[string]int // number of enclosing binders for each bound name
	ScopeStash []string       // names bound by the binders currently entered
	Free       *set.Set[string]

	// initial space:
	_scopeStash [16]string
}

func (a *Analysis) Init() {
	a.Scopes = make(map[string]int, 32)
	a.ScopeStash = a._scopeStash[:0]
	a.Free = set.New[string](8)
}

func (a *Analysis) Reset() {
	for v := range a.Scopes {
		delete(a.Scopes, v)
	}
	for i := range a._scopeStash {
		a._scopeStash[i] = ""
	}
	a.ScopeStash = a._scopeStash[:0]
	a.Free = set.New[string](8)
}

// FreeVars returns the names referenced within e which are not bound within e.
func FreeVars(exprs ...typed.Expr) *set.Set[string] {
	var a Analysis
	a.Init()
	for _, e := range exprs {
		a.Analyze(e)
	}
	return a.Free
}

// IsFree reports whether name is referenced within e without being bound within e.
func IsFree(name string, e typed.Expr) bool {
	return FreeVars(e).Contains(name)
}

// Analyze adds the free variables of e to a.Free.
func (a *Analysis) Analyze(e typed.Expr) {
	if a.Scopes == nil {
		a.Init()
	}
	a.analyzeExpr(e)
}

func (a *Analysis) bind(name string) {
	a.Scopes[name]++
	a.ScopeStash = append(a.ScopeStash, name)
}

func (a *Analysis) unbind() {
	last := len(a.ScopeStash) - 1
	name := a.ScopeStash[last]
	a.ScopeStash = a.ScopeStash[:last]
	if a.Scopes[name]--; a.Scopes[name] == 0 {
		delete(a.Scopes, name)
	}
}

func (a *Analysis) analyzeExpr(e typed.Expr) {
	switch e := e.(type) {
	case *typed.Var:
		if a.Scopes[e.Name] == 0 {
			a.Free.Insert(e.Name)
		}

	case *typed.Func:
		a.bind(e.Arg)
		a.analyzeExpr(e.Body)
		a.unbind()

	case *typed.Call:
		a.analyzeExpr(e.Func)
		a.analyzeExpr(e.Arg)

	case *typed.Let:
		a.analyzeExpr(e.Value)
		a.bind(e.Var)
		a.analyzeExpr(e.Body)
		a.unbind()

	case *typed.LetRec:
		a.bind(e.Var)
		a.analyzeExpr(e.Value)
		a.analyzeExpr(e.Body)
		a.unbind()

	case *typed.Binary:
		a.analyzeExpr(e.Left)
		a.analyzeExpr(e.Right)

	case *typed.If:
		a.analyzeExpr(e.Cond)
		a.analyzeExpr(e.Then)
		a.analyzeExpr(e.Else)
	}
}
