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

package types

import (
	"testing"
)

func TestRealTypePathCompression(t *testing.T) {
	root := NewVar(2, 1)
	mid := NewVar(1, 1)
	head := NewVar(0, 1)
	mid.SetLink(root)
	head.SetLink(mid)

	if r := RealType(head); r != root {
		t.Fatalf("expected the terminal representative, got %#v", r)
	}
	// Every visited link now points directly at the representative:
	if head.Link() != root {
		t.Fatalf("head link was not compressed")
	}
	if mid.Link() != root {
		t.Fatalf("mid link was not compressed")
	}
}

func TestRealTypeTerminatesAtStructure(t *testing.T) {
	tv := NewVar(0, 1)
	arrow := &Arrow{Args: []Type{&Const{"int"}}, Return: &Const{"int"}, Levels: NewLevels(0)}
	tv.SetLink(arrow)
	if r := RealType(tv); r != arrow {
		t.Fatalf("expected the linked arrow, got %#v", r)
	}
	if r := RealType(arrow); r != arrow {
		t.Fatalf("RealType must be the identity on non-links")
	}
}

func TestLevelOf(t *testing.T) {
	if l := LevelOf(&Const{"int"}); l != 0 {
		t.Fatalf("constant level: %d", l)
	}
	if l := LevelOf(NewVar(0, 3)); l != 3 {
		t.Fatalf("variable level: %d", l)
	}
	if l := LevelOf(NewGenericVar(0)); l != GenericLevel {
		t.Fatalf("generic variable level: %d", l)
	}
	arrow := &Arrow{Args: []Type{&Const{"int"}}, Return: &Const{"int"}, Levels: &Levels{Old: 2, New: 1}}
	if l := LevelOf(arrow); l != 1 {
		t.Fatalf("composite level must be the current bound: %d", l)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for LevelOf on a link")
		}
	}()
	tv := NewVar(0, 1)
	tv.SetLink(&Const{"int"})
	LevelOf(tv)
}

func TestVarStates(t *testing.T) {
	tv := NewVar(7, 2)
	if !tv.IsUnboundVar() || tv.VarType() != UnboundVar {
		t.Fatalf("fresh variable must be unbound")
	}
	tv.SetGeneric()
	if !tv.IsGenericVar() || tv.VarType() != GenericVar {
		t.Fatalf("retagged variable must be generic")
	}
	tv = NewVar(8, 2)
	tv.SetLink(&Const{"bool"})
	if !tv.IsLinkVar() || tv.VarType() != LinkVar {
		t.Fatalf("bound variable must be a link")
	}
}

func TestStampLevels(t *testing.T) {
	plain := &Arrow{Args: []Type{&Const{"int"}, &Const{"int"}}, Return: &Const{"int"}}
	StampLevels(plain)
	if plain.Levels == nil || !plain.Levels.Settled() || plain.Levels.New != 0 {
		t.Fatalf("constant-only arrow must settle at the top level: %#v", plain.Levels)
	}

	a := NewGenericVar(0)
	list := &App{Const: &Const{"list"}, Args: []Type{a}}
	scheme := &Arrow{Args: []Type{list}, Return: a}
	StampLevels(scheme)
	if list.Levels.New != GenericLevel || scheme.Levels.New != GenericLevel {
		t.Fatalf("composites holding generic variables must be generic")
	}
	if !scheme.IsGeneric() {
		t.Fatalf("stamped scheme must report generic")
	}
}

func TestEnvMapShadowing(t *testing.T) {
	intType := &Const{"int"}
	boolType := &Const{"bool"}

	base := NewEnvMap().Bind("x", intType)
	inner := base.Bind("x", boolType)

	if got, _ := inner.Lookup("x"); got != boolType {
		t.Fatalf("innermost binding must win")
	}
	// Leaving the scope means using the previous map; the outer binding is intact:
	if got, _ := base.Lookup("x"); got != intType {
		t.Fatalf("outer binding must survive shadowing")
	}
	if _, ok := base.Lookup("y"); ok {
		t.Fatalf("unexpected binding for y")
	}
	if base.Len() != 1 || inner.Len() != 1 {
		t.Fatalf("rebinding must not grow the map")
	}
}
