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
	"github.com/typelev/infer/types"
)

// instantiate produces a monomorphic instance of t: every generic variable is
// replaced by a fresh unbound variable at the current binding-level, with
// shared occurrences staying shared through the instantiation lookup.
// Non-generic structure is shared, not copied.
//
// Callers clear the instantiation lookup before each use of a scheme.
func (ti *InferenceContext) instantiate(t types.Type) types.Type {
	// Path compression:
	t = types.RealType(t)
	// Non-generic types can be shared:
	if !t.IsGeneric() {
		return t
	}

	switch t := t.(type) {
	case *types.Var:
		if tv, ok := ti.instLookup[t.Id()]; ok {
			return tv
		}
		tv := ti.newVar()
		ti.instLookup[t.Id()] = tv
		return tv

	case *types.Arrow:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ti.instantiate(arg)
		}
		return ti.newArrow(args, ti.instantiate(t.Return))

	case *types.App:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ti.instantiate(arg)
		}
		return ti.newApp(ti.instantiate(t.Const), args)
	}
	panic("unexpected generic type " + t.TypeName())
}
