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

package polyc_test

import (
	"testing"

	. "github.com/wdamron/polyc"
	. "github.com/wdamron/polyc/construct"

	"github.com/wdamron/polyc/names"
	"github.com/wdamron/polyc/types"
)

func BenchmarkLetPolymorphism(b *testing.B) {
	env := NewTypeEnv()
	ctx := NewContext()
	ctx.UseSupply(names.NewCounter(0))

	id := Var("id")
	x := Var("x")

	expr := Let("id", Func1("x", x),
		If(Call(id, True()), Call(id, Int(0)), Int(1)))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecursiveLet(b *testing.B) {
	env := NewTypeEnv().Declare("add", TArrow2(TInt(), TInt(), TInt()))
	ctx := NewContext()
	ctx.UseSupply(names.NewCounter(0))

	n := Var("n")
	fib := Var("fib")

	expr := LetRec("fib",
		Func1("n", If(LessThan(n, Int(2)),
			n,
			Call(Var("add"), Call(fib, Minus(n, Int(1))), Call(fib, Minus(n, Int(2)))))),
		Call(fib, Int(10)))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNestedLets(b *testing.B) {
	env := NewTypeEnv()
	ctx := NewContext()
	ctx.UseSupply(names.NewCounter(0))

	var expr = Add(Var("v0"), Int(1))
	for i := 7; i >= 0; i-- {
		name := "v" + string(rune('0'+i))
		expr = Add(Let(name, Int(int64(i)), expr), Int(0))
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || !types.Equal(ty, types.Int) {
			b.Fatal(err)
		}
	}
}
