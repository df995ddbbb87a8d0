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

package types

import (
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{names: make(map[string]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.names {
		delete(p.names, k)
	}
	p.raw = false
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type.
//
// Type-variables are named 'a, 'b, ... in order of first appearance.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStrings returns string representations of several types, sharing names of type-variables between them.
func TypeStrings(ts ...Type) []string {
	p := newTypePrinter()
	out := lo.Map(ts, func(t Type, _ int) string {
		p.sb.Reset()
		typeString(p, false, t)
		return p.sb.String()
	})
	p.Release()
	return out
}

// SubstString returns a string representation of a substitution: `{t1: int, t2: t3 -> t3}`
//
// Type-variables are printed with their original names.
func SubstString(s Subst) string {
	p := newTypePrinter()
	p.raw = true
	p.sb.WriteByte('{')
	i := 0
	s.Range(func(name string, t Type) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(name)
		p.sb.WriteString(": ")
		typeString(p, false, t)
		i++
		return true
	})
	p.sb.WriteByte('}')
	out := p.sb.String()
	p.Release()
	return out
}

type typePrinter struct {
	names map[string]string
	raw   bool
	sb    strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = getVarName(uint(i))
	}
}

func getVarName(i uint) string {
	if i < uint(len(_names)) && _names[i] != "" {
		return _names[i]
	}
	if i >= 26 {
		return "'" + string(byte(97+i%26)) + strconv.Itoa(int(i/26))
	}
	return "'" + string(byte(97+i%26))
}

func (p *typePrinter) varName(name string) string {
	if p.raw {
		return name
	}
	if pretty, ok := p.names[name]; ok {
		return pretty
	}
	pretty := getVarName(uint(len(p.names)))
	p.names[name] = pretty
	return pretty
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		p.sb.WriteString(p.varName(t.Name))

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Arg)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Scheme:
		if len(t.Bound) > 0 {
			p.sb.WriteString("forall")
			for _, name := range t.Bound {
				p.sb.WriteByte(' ')
				p.sb.WriteString(p.varName(name))
			}
			p.sb.WriteString(". ")
		}
		typeString(p, false, t.Body)

	case nil:
		p.sb.WriteString("<nil>")
	}
}
