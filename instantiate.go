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
	"github.com/wdamron/polyc/names"
	"github.com/wdamron/polyc/types"
)

// Replace each quantified type-variable of scheme with a fresh type-variable.
func (ti *InferenceContext) instantiate(scheme *types.Scheme) types.Type {
	if len(scheme.Bound) == 0 {
		return scheme.Body
	}
	fresh := make(map[string]types.Type, len(scheme.Bound))
	for _, name := range scheme.Bound {
		fresh[name] = ti.newVar()
	}
	return types.Apply(scheme.Body, types.NewSubst(fresh))
}

func (ti *InferenceContext) newVar() *types.Var {
	return &types.Var{Name: names.TypeVar(ti.supply)}
}
