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
	"github.com/benbjohnson/immutable"
)

var emptyEnv = immutable.NewSortedMap(nil)

// EnvMap contains immutable mappings from identifiers to types.
//
// Binding produces a new map and leaves the receiver untouched, so scopes
// shadow by extension: a binder extends the map for the scope's duration and
// the enclosing scope keeps using the previous map. The innermost binding for
// a name always wins, and vanishes when its scope is left.
type EnvMap struct {
	m *immutable.SortedMap
}

func NewEnvMap() EnvMap { return EnvMap{emptyEnv} }

// Create an EnvMap from an ordinary map.
func NewFlatEnvMap(m map[string]Type) EnvMap {
	env := NewEnvMap()
	for name, t := range m {
		env = env.Bind(name, t)
	}
	return env
}

// Get the number of bindings in the map.
func (m EnvMap) Len() int { return m.m.Len() }

// Bind returns a copy of the map with name bound to t, shadowing any
// existing binding for name.
func (m EnvMap) Bind(name string, t Type) EnvMap {
	return EnvMap{m.m.Set(name, t)}
}

// Get the type bound to a name.
func (m EnvMap) Lookup(name string) (Type, bool) {
	t, ok := m.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over bindings in the map, ordered by name.
// If f returns false, iteration will be stopped.
func (m EnvMap) Range(f func(string, Type) bool) {
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}
