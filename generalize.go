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
	"github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"

	"github.com/wdamron/polyc/types"
)

// Generalize quantifies the type-variables which are free in t but not free in env.
//
// Quantified type-variables are listed in order of first appearance within t.
func Generalize(env TypeEnv, t types.Type) *types.Scheme {
	envVars := set.New[string](0)
	env.FreeVars(envVars)
	bound := lo.Filter(lo.Uniq(typeVarOrder(t, nil)), func(name string, _ int) bool {
		return !envVars.Contains(name)
	})
	return &types.Scheme{Bound: bound, Body: t}
}
