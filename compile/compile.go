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

// Package compile runs the middle end over a parsed expression: validation, type inference,
// down-leveling and IR generation.
package compile

import (
	"context"
	"io"
	"log/slog"

	"github.com/sanity-io/litter"

	"github.com/wdamron/polyc"
	"github.com/wdamron/polyc/ast"
	"github.com/wdamron/polyc/downlevel"
	"github.com/wdamron/polyc/ir"
	"github.com/wdamron/polyc/irgen"
	"github.com/wdamron/polyc/names"
	"github.com/wdamron/polyc/typed"
	"github.com/wdamron/polyc/types"
)

// Prelude returns the built-in type environment: `add : int -> int -> int`.
func Prelude() polyc.TypeEnv {
	return polyc.NewTypeEnv().DeclareMono("add", types.NewArrow(types.Int, types.Int, types.Int))
}

// Config for a compilation. The zero value is ready to use.
type Config struct {
	// Built-in bindings. If empty, Prelude() is used.
	Env polyc.TypeEnv
	// Source of fresh type-variables and binder names. If nil, names.Default is used.
	Supply names.Supply
	// Stage boundaries are logged at debug level. If nil, nothing is logged.
	Logger *slog.Logger
}

// Result of a successful compilation.
type Result struct {
	// Expression annotated with inferred types
	Typed typed.Expr
	// Expression after down-leveling
	Lowered typed.Expr
	// Inferred type of the expression
	Type types.Type
	Module *ir.Module
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var dumper = litter.Options{
	HidePrivateFields: true,
	Compact:           true,
}

// Compile validates, annotates, down-levels and lowers expr into an IR module.
// No partial result is returned with an error.
func Compile(expr ast.Expr, cfg Config) (*Result, error) {
	env := cfg.Env
	if env.Len() == 0 {
		env = Prelude()
	}
	supply := cfg.Supply
	if supply == nil {
		supply = names.Default
	}
	log := cfg.Logger
	if log == nil {
		log = discard
	}
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	if err := ast.Validate(expr); err != nil {
		log.Debug("validation failed", "err", err)
		return nil, err
	}

	ctx := polyc.NewContext()
	ctx.UseSupply(supply)
	root, err := ctx.Annotate(expr, env)
	if err != nil {
		log.Debug("inference failed", "err", err)
		return nil, err
	}
	if debug {
		log.Debug("inferred", "expr", typed.ExprString(root), "type", types.TypeString(root.Type()))
	}

	lowered := downlevel.New(supply).DownLevel(root, downlevel.EmptyEnv)
	if debug {
		log.Debug("down-leveled", "expr", typed.ExprString(lowered))
	}

	m, err := irgen.Generate(lowered)
	if err != nil {
		log.Debug("ir generation failed", "err", err)
		return nil, err
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}
	if debug {
		log.Debug("generated", "module", dumper.Sdump(m))
	}

	return &Result{Typed: root, Lowered: lowered, Type: root.Type(), Module: m}, nil
}
