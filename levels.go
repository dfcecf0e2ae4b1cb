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

// See "Efficient Generalization with Levels" (Oleg Kiselyov)
// http://okmij.org/ftp/ML/generalization.html#levels
//
// This implementation follows the sound_lazy algorithm: lowering the level of
// a composite type only tightens its upper bound (Levels.New) and enqueues the
// composite; the structural traversal is deferred until the adjustment queue
// is drained at the next generalization.

import (
	"github.com/pkg/errors"
	"github.com/typelev/infer/types"
)

// updateLevel records that t must not contain variables above level.
// Unbound variables are lowered in place; composites are enqueued for
// deferred adjustment unless their bound is already tight enough.
func (ti *InferenceContext) updateLevel(level int, t types.Type) error {
	t = types.RealType(t)
	switch t := t.(type) {
	case *types.Const:
		return nil

	case *types.Var:
		if t.IsUnboundVar() && level < t.Level() {
			t.SetLevel(level)
		}
		return nil

	case *types.Arrow, *types.App:
		ls := types.LevelsOf(t)
		if ls.New == types.GrayLevel {
			return errors.Wrap(ErrCycle, "recursive type in level adjustment")
		}
		if level < ls.New {
			// A settled composite becomes dirty and joins the queue; a dirty
			// one is already enqueued and only needs its bound tightened.
			if ls.Settled() {
				ti.adjQueue = append(ti.adjQueue, t)
			}
			ls.New = level
		}
		return nil
	}
	return nil
}

// forceAdjQueue drains the adjustment queue, propagating every deferred level
// bound into the structure it belongs to. Called once per generalization, so
// every level inspected by the generalizer is exact.
func (ti *InferenceContext) forceAdjQueue() error {
	queue := ti.adjQueue
	ti.adjQueue = nil
	var deferred []types.Type
	var err error
	for _, t := range queue {
		if deferred, err = ti.adjustOne(deferred, t); err != nil {
			return err
		}
	}
	ti.adjQueue = deferred
	return nil
}

// adjustOne settles a single enqueued composite. Composites whose structure
// was last visited at or below the current level are outside the scope being
// generalized and stay on the queue untouched.
func (ti *InferenceContext) adjustOne(acc []types.Type, t types.Type) ([]types.Type, error) {
	ls := types.LevelsOf(t)
	if ls.Old <= ti.level {
		return append(acc, t), nil
	}
	if ls.Settled() {
		return acc, nil
	}
	level := ls.New
	ls.New = types.GrayLevel
	acc, err := ti.adjustChildren(acc, level, t)
	ls.New = level
	if err != nil {
		return acc, err
	}
	ls.Old = level
	return acc, nil
}

func (ti *InferenceContext) adjustChildren(acc []types.Type, level int, t types.Type) ([]types.Type, error) {
	var err error
	switch t := t.(type) {
	case *types.Arrow:
		for _, arg := range t.Args {
			if acc, err = ti.adjustLoop(acc, level, arg); err != nil {
				return acc, err
			}
		}
		return ti.adjustLoop(acc, level, t.Return)
	case *types.App:
		if acc, err = ti.adjustLoop(acc, level, t.Const); err != nil {
			return acc, err
		}
		for _, arg := range t.Args {
			if acc, err = ti.adjustLoop(acc, level, arg); err != nil {
				return acc, err
			}
		}
	}
	return acc, nil
}

func (ti *InferenceContext) adjustLoop(acc []types.Type, level int, t types.Type) ([]types.Type, error) {
	t = types.RealType(t)
	switch t := t.(type) {
	case *types.Var:
		if t.IsUnboundVar() && t.Level() > level {
			t.SetLevel(level)
		}
		return acc, nil

	case *types.Arrow, *types.App:
		ls := types.LevelsOf(t)
		if ls.New == types.GrayLevel {
			return acc, errors.Wrap(ErrCycle, "recursive type in level adjustment")
		}
		if ls.New > level {
			ls.New = level
		}
		return ti.adjustOne(acc, t)
	}
	return acc, nil
}
