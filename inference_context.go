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
	"github.com/wdamron/polyc/names"
	"github.com/wdamron/polyc/typed"
	"github.com/wdamron/polyc/types"
)

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	supply names.Supply

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
//
// Fresh type-variables are drawn from names.Default unless another supply is configured with UseSupply.
func NewContext() *InferenceContext { return &InferenceContext{supply: names.Default} }

// Draw fresh type-variables from s. Tests may use a private supply for reproducible names.
func (ti *InferenceContext) UseSupply(s names.Supply) {
	if s == nil {
		s = names.Default
	}
	ti.supply = s
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() { ti.err, ti.invalid = nil, nil }

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within env.
func (ti *InferenceContext) Infer(expr ast.Expr, env TypeEnv) (types.Type, error) {
	root, err := ti.Annotate(expr, env)
	if err != nil {
		return nil, err
	}
	return root.Type(), nil
}

// Infer the type of expr within env. The type-annotated copy of expr will be returned.
//
// The solved substitution has been applied to every annotation within the returned tree.
func (ti *InferenceContext) Annotate(expr ast.Expr, env TypeEnv) (typed.Expr, error) {
	root, s, err := ti.InferSubst(expr, env)
	if err != nil {
		return nil, err
	}
	return typed.ApplySubst(root, s), nil
}

// Infer the type of expr within env. The type-annotated copy of expr will be returned, along with the
// substitution solved during inference. Annotations within the returned tree have not been resolved
// through the substitution.
func (ti *InferenceContext) InferSubst(expr ast.Expr, env TypeEnv) (typed.Expr, types.Subst, error) {
	ti.Reset()
	if ti.supply == nil {
		ti.supply = names.Default
	}
	if expr == nil {
		ti.err = ast.ErrEmptyExpr
		return nil, types.EmptySubst, ti.err
	}
	return ti.infer(env, expr)
}

func (ti *InferenceContext) fail(e ast.Expr, err error) (typed.Expr, types.Subst, error) {
	if ti.err == nil {
		ti.invalid, ti.err = e, &InferenceError{Expr: e, Err: err}
	}
	return nil, types.EmptySubst, ti.err
}
