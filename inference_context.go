// The MIT License (MIT)
//
// Copyright (c) 2020 The typelev Authors
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

package infer

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/typelev/infer/ast"
	"github.com/typelev/infer/types"
)

// InferenceContext is a reusable context for type inference. All mutable
// engine state (the current binding-level, the variable id counter and the
// level-adjustment queue) lives here and is reset at the start of every
// top-level inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	level      int
	nextVarId  int
	adjQueue   []types.Type
	instLookup map[int]*types.Var
	logger     *slog.Logger

	err        error
	invalid    ast.Expr
	needsReset bool
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	return &InferenceContext{instLookup: make(map[int]*types.Var, 16)}
}

// SetLogger attaches a logger used for debug output during inference.
func (ti *InferenceContext) SetLogger(logger *slog.Logger) { ti.logger = logger }

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

func (ti *InferenceContext) reset() {
	ti.level, ti.nextVarId = types.TopLevel, 0
	ti.adjQueue = ti.adjQueue[:0]
	ti.clearInstLookup()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

func (ti *InferenceContext) clearInstLookup() {
	for k := range ti.instLookup {
		delete(ti.instLookup, k)
	}
}

func (ti *InferenceContext) freshId() int {
	id := ti.nextVarId
	ti.nextVarId++
	return id
}

// Create an unbound type-variable at the current binding-level.
func (ti *InferenceContext) newVar() *types.Var {
	return types.NewVar(ti.freshId(), ti.level)
}

// Create an arrow type stamped with the current binding-level.
func (ti *InferenceContext) newArrow(args []types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: args, Return: ret, Levels: types.NewLevels(ti.level)}
}

// Create a type-application stamped with the current binding-level.
func (ti *InferenceContext) newApp(head types.Type, args []types.Type) *types.App {
	return &types.App{Const: head, Args: args, Levels: types.NewLevels(ti.level)}
}

func (ti *InferenceContext) enterLevel() { ti.level++ }
func (ti *InferenceContext) leaveLevel() { ti.level-- }

// Infer the type of expr within env, returning its principal type with all
// free variables generalized.
//
// Each call sees a clean slate: the context is reset on entry, so a context
// may be reused across inferences (but never concurrently).
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	if ti.logger != nil {
		ti.logger.Debug("inferring", "expr", slogExpr(expr))
	}

	ti.level = types.TopLevel + 1
	t, err := ti.infer(env.Types, expr)
	if err == nil {
		ti.level = types.TopLevel
		err = ti.generalize(t)
	}
	if err == nil {
		err = ti.cycleCheck(t)
	}
	if err != nil {
		ti.err = err
		if ti.logger != nil {
			ti.logger.Debug("inference failed", "expr", slogExpr(expr), "error", err)
		}
		return nil, err
	}
	if ti.logger != nil {
		ti.logger.Debug("inferred", "expr", slogExpr(expr), "type", slogType(t))
	}
	return t, nil
}

// A DFS over the final type which gray-marks each composite on the way down;
// reaching a composite which is already gray means the type is cyclic.
func (ti *InferenceContext) cycleCheck(t types.Type) error {
	t = types.RealType(t)
	ls := types.LevelsOf(t)
	if ls == nil {
		return nil
	}
	if ls.New == types.GrayLevel {
		return errors.Wrap(ErrCycle, "recursive type")
	}
	saved := ls.New
	ls.New = types.GrayLevel
	err := ti.cycleCheckChildren(t)
	ls.New = saved
	return err
}

func (ti *InferenceContext) cycleCheckChildren(t types.Type) error {
	switch t := t.(type) {
	case *types.Arrow:
		for _, arg := range t.Args {
			if err := ti.cycleCheck(arg); err != nil {
				return err
			}
		}
		return ti.cycleCheck(t.Return)
	case *types.App:
		if err := ti.cycleCheck(t.Const); err != nil {
			return err
		}
		for _, arg := range t.Args {
			if err := ti.cycleCheck(arg); err != nil {
				return err
			}
		}
	}
	return nil
}
