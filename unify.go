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
	"github.com/typelev/infer/types"
)

func (ti *InferenceContext) unify(a, b types.Type) error {
	// Path compression:
	a, b = types.RealType(a), types.RealType(b)
	if a == b {
		return nil
	}

	// unify type variables:

	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar == nil && bvar != nil:
		return ti.unify(b, a)

	case avar != nil:
		if avar.IsGenericVar() {
			return errors.Wrap(ErrFail, "generic type-variable was not instantiated before unification")
		}
		// The linked type must not hold variables above the variable's level:
		if err := ti.updateLevel(avar.Level(), b); err != nil {
			return err
		}
		avar.SetLink(b)
		return nil
	}

	// unify types:

	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok {
			if a.Name == b.Name {
				return nil
			}
			return errors.Wrapf(ErrFail, "cannot unify %s with %s", a.Name, b.Name)
		}

	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		la, lb := a.Levels, b.Levels
		if la.New == types.GrayLevel || lb.New == types.GrayLevel {
			return errors.Wrap(ErrCycle, "recursive type in unification")
		}
		if len(a.Args) != len(b.Args) {
			return errors.Wrap(ErrLength, "cannot unify arrows with differing arity")
		}
		level := min(la.New, lb.New)
		la.New, lb.New = types.GrayLevel, types.GrayLevel
		err := ti.unifyArrows(level, a, b)
		la.New, lb.New = level, level
		return err

	case *types.App:
		b, ok := b.(*types.App)
		if !ok {
			break
		}
		la, lb := a.Levels, b.Levels
		if la.New == types.GrayLevel || lb.New == types.GrayLevel {
			return errors.Wrap(ErrCycle, "recursive type in unification")
		}
		if len(a.Args) != len(b.Args) {
			return errors.Wrap(ErrLength, "cannot unify type-applications with differing arity")
		}
		level := min(la.New, lb.New)
		la.New, lb.New = types.GrayLevel, types.GrayLevel
		err := ti.unifyApps(level, a, b)
		la.New, lb.New = level, level
		return err
	}

	return errors.Wrapf(ErrFail, "cannot unify %s with %s", a.TypeName(), b.TypeName())
}

func (ti *InferenceContext) unifyArrows(level int, a, b *types.Arrow) error {
	for i := range a.Args {
		if err := ti.unifyLevel(level, a.Args[i], b.Args[i]); err != nil {
			return err
		}
	}
	return ti.unifyLevel(level, a.Return, b.Return)
}

func (ti *InferenceContext) unifyApps(level int, a, b *types.App) error {
	if err := ti.unifyLevel(level, a.Const, b.Const); err != nil {
		return err
	}
	for i := range a.Args {
		if err := ti.unifyLevel(level, a.Args[i], b.Args[i]); err != nil {
			return err
		}
	}
	return nil
}

// unifyLevel propagates the shallower of the two parents' levels into a
// before unifying it with b, so whichever side has not yet been constrained
// picks up the bound.
func (ti *InferenceContext) unifyLevel(level int, a, b types.Type) error {
	a = types.RealType(a)
	if err := ti.updateLevel(level, a); err != nil {
		return err
	}
	return ti.unify(a, b)
}
