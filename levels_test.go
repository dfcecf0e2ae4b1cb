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
	"testing"

	"github.com/pkg/errors"
	"github.com/typelev/infer/types"
)

func TestUpdateLevelLowersVariables(t *testing.T) {
	ti := NewContext()
	ti.level = 3
	tv := ti.newVar()
	if err := ti.updateLevel(1, tv); err != nil {
		t.Fatal(err)
	}
	if tv.Level() != 1 {
		t.Fatalf("level: %d", tv.Level())
	}
	// Levels are only ever lowered:
	if err := ti.updateLevel(2, tv); err != nil {
		t.Fatal(err)
	}
	if tv.Level() != 1 {
		t.Fatalf("level after larger update: %d", tv.Level())
	}
}

func TestUpdateLevelDefersComposites(t *testing.T) {
	ti := NewContext()
	ti.level = 3
	tv := ti.newVar()
	arrow := ti.newArrow([]types.Type{tv}, tv)

	if err := ti.updateLevel(1, arrow); err != nil {
		t.Fatal(err)
	}
	// The bound is tightened and the composite enqueued, but the structure is
	// untouched:
	if arrow.Levels.New != 1 || arrow.Levels.Old != 3 {
		t.Fatalf("levels: %+v", arrow.Levels)
	}
	if tv.Level() != 3 {
		t.Fatalf("deferred adjustment must not touch children yet: %d", tv.Level())
	}
	if len(ti.adjQueue) != 1 {
		t.Fatalf("queue length: %d", len(ti.adjQueue))
	}

	// A second tightening of a dirty composite must not enqueue it again:
	if err := ti.updateLevel(0, arrow); err != nil {
		t.Fatal(err)
	}
	if arrow.Levels.New != 0 || len(ti.adjQueue) != 1 {
		t.Fatalf("levels: %+v queue: %d", arrow.Levels, len(ti.adjQueue))
	}
}

func TestForceAdjQueueSettles(t *testing.T) {
	ti := NewContext()
	ti.level = 3
	tv := ti.newVar()
	arrow := ti.newArrow([]types.Type{tv}, tv)
	if err := ti.updateLevel(1, arrow); err != nil {
		t.Fatal(err)
	}

	ti.level = 1
	if err := ti.forceAdjQueue(); err != nil {
		t.Fatal(err)
	}
	if !arrow.Levels.Settled() || arrow.Levels.New != 1 {
		t.Fatalf("levels: %+v", arrow.Levels)
	}
	if tv.Level() != 1 {
		t.Fatalf("level: %d", tv.Level())
	}
	if len(ti.adjQueue) != 0 {
		t.Fatalf("queue length: %d", len(ti.adjQueue))
	}
}

func TestForceAdjQueueKeepsOuterComposites(t *testing.T) {
	ti := NewContext()
	ti.level = 3
	tv := ti.newVar()
	arrow := ti.newArrow([]types.Type{tv}, tv)
	if err := ti.updateLevel(2, arrow); err != nil {
		t.Fatal(err)
	}

	// The composite's structure was last visited at level 3, which is not
	// above the current level, so it is outside the scope being generalized
	// and must survive on the queue:
	if err := ti.forceAdjQueue(); err != nil {
		t.Fatal(err)
	}
	if len(ti.adjQueue) != 1 {
		t.Fatalf("queue length: %d", len(ti.adjQueue))
	}
	if arrow.Levels.Settled() {
		t.Fatalf("outer composite must stay dirty: %+v", arrow.Levels)
	}
	if tv.Level() != 3 {
		t.Fatalf("level: %d", tv.Level())
	}

	// Leaving the scope lets the next drain settle it:
	ti.level = 2
	if err := ti.forceAdjQueue(); err != nil {
		t.Fatal(err)
	}
	if !arrow.Levels.Settled() || tv.Level() != 2 || len(ti.adjQueue) != 0 {
		t.Fatalf("levels: %+v var: %d queue: %d", arrow.Levels, tv.Level(), len(ti.adjQueue))
	}
}

func TestUnifyPropagatesLevels(t *testing.T) {
	ti := NewContext()
	ti.level = 1
	a := ti.newVar()
	left := ti.newArrow([]types.Type{a}, a)

	ti.level = 3
	b := ti.newVar()
	right := ti.newArrow([]types.Type{b}, b)

	if err := ti.unify(left, right); err != nil {
		t.Fatal(err)
	}
	if left.Levels.New != 1 || right.Levels.New != 1 {
		t.Fatalf("levels: %+v %+v", left.Levels, right.Levels)
	}
	if b.Level() != 1 {
		t.Fatalf("variable level must drop to the shallower side: %d", b.Level())
	}
	// No gray marks survive a successful unification:
	if left.Levels.New == types.GrayLevel || right.Levels.New == types.GrayLevel {
		t.Fatalf("gray mark leaked")
	}
}

func TestUnifyArityMismatch(t *testing.T) {
	ti := NewContext()
	ti.level = 1
	intType := &types.Const{Name: "int"}
	left := ti.newArrow([]types.Type{intType, intType}, intType)
	right := ti.newArrow([]types.Type{intType}, intType)

	err := ti.unify(left, right)
	if !errors.Is(err, ErrLength) {
		t.Fatalf("error: %v", err)
	}
}

func TestUnifyShapeMismatch(t *testing.T) {
	ti := NewContext()
	ti.level = 1
	if err := ti.unify(&types.Const{Name: "int"}, &types.Const{Name: "bool"}); !errors.Is(err, ErrFail) {
		t.Fatalf("error: %v", err)
	}
	arrow := ti.newArrow([]types.Type{&types.Const{Name: "int"}}, &types.Const{Name: "int"})
	if err := ti.unify(&types.Const{Name: "int"}, arrow); !errors.Is(err, ErrFail) {
		t.Fatalf("error: %v", err)
	}
}

func TestGeneralizeRetagsDeeperVariables(t *testing.T) {
	ti := NewContext()
	ti.level = 2
	deep := ti.newVar()
	ti.level = 1
	shallow := ti.newVar()
	ti.level = 2
	arrow := ti.newArrow([]types.Type{shallow}, deep)

	ti.level = 1
	if err := ti.generalize(arrow); err != nil {
		t.Fatal(err)
	}
	// Only variables strictly below the current scope are quantified:
	if !deep.IsGenericVar() {
		t.Fatalf("deep variable must be generic")
	}
	if !shallow.IsUnboundVar() || shallow.Level() != 1 {
		t.Fatalf("shallow variable must stay unbound at its level")
	}
	// A generic descendant makes the composite generic:
	if arrow.Levels.New != types.GenericLevel || !arrow.Levels.Settled() {
		t.Fatalf("levels: %+v", arrow.Levels)
	}
}

func TestGeneralizeSettlesMonomorphicComposites(t *testing.T) {
	ti := NewContext()
	ti.level = 2
	tv := ti.newVar()
	arrow := ti.newArrow([]types.Type{tv}, &types.Const{Name: "int"})
	if err := ti.unify(tv, &types.Const{Name: "int"}); err != nil {
		t.Fatal(err)
	}

	ti.level = 1
	if err := ti.generalize(arrow); err != nil {
		t.Fatal(err)
	}
	if arrow.Levels.New != 0 || !arrow.Levels.Settled() {
		t.Fatalf("levels: %+v", arrow.Levels)
	}
}

func TestGeneralizeInstantiateRoundTrip(t *testing.T) {
	ti := NewContext()
	ti.level = 1
	a := ti.newVar()
	list := ti.newApp(&types.Const{Name: "list"}, []types.Type{a})
	scheme := ti.newArrow([]types.Type{list}, a)

	ti.level = 0
	if err := ti.generalize(scheme); err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(scheme); s != "forall[a] list[a] -> a" {
		t.Fatalf("scheme: %s", s)
	}

	ti.level = 1
	ti.clearInstLookup()
	inst := ti.instantiate(scheme)
	if inst == types.Type(scheme) {
		t.Fatalf("generic types must be copied on instantiation")
	}
	// The instance is the scheme with quantifiers stripped, up to renaming:
	if s := types.TypeString(inst); s != "list[a] -> a" {
		t.Fatalf("instance: %s", s)
	}
	// Shared occurrences of a generic variable stay shared:
	instArrow := inst.(*types.Arrow)
	instList := types.RealType(instArrow.Args[0]).(*types.App)
	if types.RealType(instList.Args[0]) != types.RealType(instArrow.Return) {
		t.Fatalf("instantiated occurrences must share one variable")
	}
	// Instantiating a monomorphic type shares it instead of copying:
	intType := &types.Const{Name: "int"}
	ti.clearInstLookup()
	if ti.instantiate(intType) != types.Type(intType) {
		t.Fatalf("monomorphic types must be shared")
	}
}

func TestCycleCheck(t *testing.T) {
	ti := NewContext()
	ti.level = 1
	x := ti.newVar()
	arrow := ti.newArrow([]types.Type{x}, ti.newVar())
	if err := ti.unify(x, arrow); err != nil {
		t.Fatal(err)
	}
	// x now links into a structure containing x:
	if err := ti.cycleCheck(arrow); !errors.Is(err, ErrCycle) {
		t.Fatalf("error: %v", err)
	}

	ok := ti.newArrow([]types.Type{ti.newVar()}, ti.newVar())
	if err := ti.cycleCheck(ok); err != nil {
		t.Fatal(err)
	}
	if ok.Levels.New == types.GrayLevel {
		t.Fatalf("gray mark leaked")
	}
}

func TestGeneralizeDetectsCycles(t *testing.T) {
	ti := NewContext()
	ti.level = 2
	x := ti.newVar()
	arrow := ti.newArrow([]types.Type{x}, ti.newVar())
	if err := ti.unify(x, arrow); err != nil {
		t.Fatal(err)
	}

	ti.level = 1
	if err := ti.generalize(arrow); !errors.Is(err, ErrCycle) {
		t.Fatalf("error: %v", err)
	}
}
