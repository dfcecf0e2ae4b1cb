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

// generalize retags, in place, every unbound variable in t which was
// introduced below the current binding-level. The adjustment queue is drained
// first so the levels inspected here are exact.
//
// Composites are gray-marked on the way down; a variable linked back into an
// enclosing composite would otherwise send the walk into a cycle.
func (ti *InferenceContext) generalize(t types.Type) error {
	if err := ti.forceAdjQueue(); err != nil {
		return err
	}
	return ti.generalizeRecursive(t)
}

func (ti *InferenceContext) generalizeRecursive(t types.Type) error {
	t = types.RealType(t)
	switch t := t.(type) {
	case *types.Var:
		if t.IsUnboundVar() && t.Level() > ti.level {
			t.SetGeneric()
		}
		return nil

	case *types.Arrow:
		if t.Levels.New == types.GrayLevel {
			return errors.Wrap(ErrCycle, "recursive type in generalization")
		}
		if t.Levels.New <= ti.level {
			return nil
		}
		saved := t.Levels.New
		t.Levels.New = types.GrayLevel
		level := 0
		var err error
		for _, arg := range t.Args {
			if level, err = ti.generalizeChild(level, arg); err != nil {
				t.Levels.New = saved
				return err
			}
		}
		if level, err = ti.generalizeChild(level, t.Return); err != nil {
			t.Levels.New = saved
			return err
		}
		// Generalizing rewrote some descendants, so the stored bound is
		// recomputed from the children; a generic child makes the whole
		// composite generic.
		t.Levels.Old, t.Levels.New = level, level
		return nil

	case *types.App:
		if t.Levels.New == types.GrayLevel {
			return errors.Wrap(ErrCycle, "recursive type in generalization")
		}
		if t.Levels.New <= ti.level {
			return nil
		}
		saved := t.Levels.New
		t.Levels.New = types.GrayLevel
		level, err := ti.generalizeChild(0, t.Const)
		if err == nil {
			for _, arg := range t.Args {
				if level, err = ti.generalizeChild(level, arg); err != nil {
					break
				}
			}
		}
		if err != nil {
			t.Levels.New = saved
			return err
		}
		t.Levels.Old, t.Levels.New = level, level
		return nil
	}
	return nil
}

// generalizeChild generalizes a child in place and folds its settled level
// into the running maximum for the parent.
func (ti *InferenceContext) generalizeChild(level int, t types.Type) (int, error) {
	t = types.RealType(t)
	if err := ti.generalizeRecursive(t); err != nil {
		return level, err
	}
	return max(level, types.LevelOf(t)), nil
}
