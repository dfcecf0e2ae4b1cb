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

// universe provides the built-in environment of polymorphic primitives.
package universe

import (
	"github.com/pkg/errors"
	"github.com/typelev/infer"
	"github.com/typelev/infer/parser"
)

// Primitive is a named built-in with its type scheme in surface syntax.
type Primitive struct {
	Name, Scheme string
}

// Primitives lists the built-in environment.
var Primitives = []Primitive{
	{"head", "forall[a] list[a] -> a"},
	{"tail", "forall[a] list[a] -> list[a]"},
	{"nil", "forall[a] list[a]"},
	{"cons", "forall[a] (a, list[a]) -> list[a]"},
	{"cons_curry", "forall[a] a -> list[a] -> list[a]"},
	{"map", "forall[a b] (a -> b, list[a]) -> list[b]"},
	{"map_curry", "forall[a b] (a -> b) -> list[a] -> list[b]"},
	{"one", "int"},
	{"zero", "int"},
	{"succ", "int -> int"},
	{"plus", "(int, int) -> int"},
	{"eq", "forall[a] (a, a) -> bool"},
	{"eq_curry", "forall[a] a -> a -> bool"},
	{"not", "bool -> bool"},
	{"true", "bool"},
	{"false", "bool"},
	{"pair", "forall[a b] (a, b) -> pair[a, b]"},
	{"pair_curry", "forall[a b] a -> b -> pair[a, b]"},
	{"first", "forall[a b] pair[a, b] -> a"},
	{"second", "forall[a b] pair[a, b] -> b"},
	{"id", "forall[a] a -> a"},
	{"const", "forall[a b] a -> b -> a"},
	{"apply", "forall[a b] (a -> b, a) -> b"},
	{"apply_curry", "forall[a b] (a -> b) -> a -> b"},
	{"choose", "forall[a] (a, a) -> a"},
	{"choose_curry", "forall[a] a -> a -> a"},
}

// New builds a type-environment containing every primitive.
func New() (*infer.TypeEnv, error) {
	env := infer.NewTypeEnv(nil)
	for _, p := range Primitives {
		t, err := parser.ParseScheme(p.Scheme)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid primitive %s", p.Name)
		}
		env.Declare(p.Name, t)
	}
	return env, nil
}

// MustNew builds the built-in environment, panicking if a primitive fails to
// parse. The primitive table is fixed, so a failure is a programming error.
func MustNew() *infer.TypeEnv {
	env, err := New()
	if err != nil {
		panic(err)
	}
	return env
}
