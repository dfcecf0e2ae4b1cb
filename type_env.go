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

// TypeEnv is a type-environment containing mappings from identifiers to
// declared type schemes. Declared schemes are shared, never copied; generic
// schemes are freshly instantiated at every use during inference, so a
// TypeEnv may be reused across inferences.
//
// A type-environment cannot be used concurrently for inference.
type TypeEnv struct {
	// Next unused type-variable id
	NextVarId int
	// Mappings from identifiers to declared types
	Types types.EnvMap
}

// Create a type-environment. The new environment will inherit bindings from
// the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	env := &TypeEnv{Types: types.NewEnvMap()}
	if parent != nil {
		env.NextVarId, env.Types = parent.NextVarId, parent.Types
	}
	return env
}

func (e *TypeEnv) freshId() int {
	id := e.NextVarId
	e.NextVarId++
	return id
}

// Create a generic type-variable with a unique id.
func (e *TypeEnv) NewGenericVar() *types.Var { return types.NewGenericVar(e.freshId()) }

// Declare a type for an identifier within the type environment, shadowing any
// existing declaration with the same name. Level records are stamped on the
// declared type, so hand-built schemes need no level bookkeeping.
func (e *TypeEnv) Declare(name string, t types.Type) {
	e.Types = e.Types.Bind(name, types.StampLevels(t))
}

// Get the declared type for an identifier.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	return e.Types.Lookup(name)
}
