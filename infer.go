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
	"github.com/pkg/errors"
	"github.com/typelev/infer/ast"
	"github.com/typelev/infer/types"
)

// The environment is threaded by value: binders extend the persistent map for
// the duration of their scope, and the enclosing frame keeps the previous map,
// so the innermost binding for a name wins and disappears on scope exit.
func (ti *InferenceContext) infer(env types.EnvMap, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Var:
		t, ok := env.Lookup(e.Name)
		if !ok {
			ti.invalid, ti.err = e, errors.Wrapf(ErrUnbound, "variable %s not found", e.Name)
			return nil, ti.err
		}
		ti.clearInstLookup()
		return ti.instantiate(t), nil

	case *ast.Func:
		args := make([]types.Type, len(e.ArgNames))
		fnEnv := env
		for i, name := range e.ArgNames {
			tv := ti.newVar()
			args[i] = tv
			fnEnv = fnEnv.Bind(name, tv)
		}
		ret, err := ti.infer(fnEnv, e.Body)
		if err != nil {
			return nil, err
		}
		return ti.newArrow(args, ret), nil

	case *ast.Call:
		fn, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		args := make([]types.Type, len(e.Args))
		for i, arg := range e.Args {
			if args[i], err = ti.infer(env, arg); err != nil {
				return nil, err
			}
		}
		ret := ti.newVar()
		if err := ti.unify(fn, ti.newArrow(args, ret)); err != nil {
			ti.invalid, ti.err = e, err
			return nil, err
		}
		return ret, nil

	case *ast.Let:
		ti.enterLevel()
		val, err := ti.infer(env, e.Value)
		ti.leaveLevel()
		if err != nil {
			return nil, err
		}
		if err := ti.generalize(val); err != nil {
			ti.invalid, ti.err = e, err
			return nil, err
		}
		return ti.infer(env.Bind(e.Var, val), e.Body)
	}
	panic("unknown expression type " + e.ExprName())
}
