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

func TestTypeStringConst(t *testing.T) {
	if s := TypeString(&Const{"int"}); s != "int" {
		t.Fatalf("type: %s", s)
	}
}

func TestTypeStringArrows(t *testing.T) {
	intType := Type(&Const{"int"})
	unary := &Arrow{Args: []Type{intType}, Return: &Const{"bool"}}
	if s := TypeString(StampLevels(unary)); s != "int -> bool" {
		t.Fatalf("type: %s", s)
	}

	binary := &Arrow{Args: []Type{intType, intType}, Return: intType}
	if s := TypeString(StampLevels(binary)); s != "(int, int) -> int" {
		t.Fatalf("type: %s", s)
	}

	// Arrows are right-associative; only an arrow in argument position is
	// parenthesized:
	curried := &Arrow{Args: []Type{intType}, Return: &Arrow{Args: []Type{intType}, Return: intType}}
	if s := TypeString(StampLevels(curried)); s != "int -> int -> int" {
		t.Fatalf("type: %s", s)
	}
	higher := &Arrow{Args: []Type{&Arrow{Args: []Type{intType}, Return: intType}}, Return: intType}
	if s := TypeString(StampLevels(higher)); s != "(int -> int) -> int" {
		t.Fatalf("type: %s", s)
	}
}

func TestTypeStringGenericVars(t *testing.T) {
	a, b := NewGenericVar(100), NewGenericVar(7)
	// Letters are assigned in first-encounter order, not id order:
	scheme := &Arrow{Args: []Type{a, b}, Return: a}
	if s := TypeString(StampLevels(scheme)); s != "forall[a b] (a, b) -> a" {
		t.Fatalf("type: %s", s)
	}
}

func TestTypeStringSharedVar(t *testing.T) {
	a := NewGenericVar(0)
	scheme := &Arrow{Args: []Type{a}, Return: a}
	if s := TypeString(StampLevels(scheme)); s != "forall[a] a -> a" {
		t.Fatalf("type: %s", s)
	}
}

func TestTypeStringApp(t *testing.T) {
	a, b := NewGenericVar(0), NewGenericVar(1)
	pair := &App{Const: &Const{"pair"}, Args: []Type{a, b}}
	if s := TypeString(StampLevels(pair)); s != "forall[a b] pair[a, b]" {
		t.Fatalf("type: %s", s)
	}

	concrete := &App{Const: &Const{"pair"}, Args: []Type{&Const{"int"}, &Const{"bool"}}}
	if s := TypeString(StampLevels(concrete)); s != "pair[int, bool]" {
		t.Fatalf("type: %s", s)
	}
}

func TestTypeStringUnboundVar(t *testing.T) {
	// Unbound variables are named like generic ones but never quantified:
	tv := NewVar(42, 1)
	arrow := &Arrow{Args: []Type{tv}, Return: tv, Levels: NewLevels(1)}
	if s := TypeString(arrow); s != "a -> a" {
		t.Fatalf("type: %s", s)
	}
}

func TestTypeStringFollowsLinks(t *testing.T) {
	tv := NewVar(0, 1)
	tv.SetLink(&Const{"int"})
	arrow := &Arrow{Args: []Type{tv}, Return: tv, Levels: NewLevels(1)}
	if s := TypeString(arrow); s != "int -> int" {
		t.Fatalf("type: %s", s)
	}
}
