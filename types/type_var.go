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

// Var is a mutable type-variable cell. Cells are shared by pointer between
// every type which references them, so solving a variable is a single write
// observed by all holders.
//
// The cell's state is encoded in its level: LinkLevel means the cell forwards
// to the type in link, GenericLevel means the variable has been generalized,
// and any other level means the variable is unbound at that binding-level.
type Var struct {
	link  Type
	id    int32
	level int32
}

// Instance of a type-variable
type VarType int

const (
	// Unbound type-variable
	UnboundVar VarType = iota
	// Linked type-variable
	LinkVar
	// Generic type-variable
	GenericVar
)

// Create a new type-variable with the given id and binding-level.
func NewVar(id, level int) *Var {
	return &Var{id: int32(id), level: int32(level)}
}

// Create a new generic type-variable.
func NewGenericVar(id int) *Var {
	return &Var{id: int32(id), level: GenericLevel}
}

// "Var"
func (tv *Var) TypeName() string { return "Var" }

func (tv *Var) IsGeneric() bool {
	r := RealType(tv)
	if r, ok := r.(*Var); ok {
		return r.IsGenericVar()
	}
	return r.IsGeneric()
}

// VarType indicates whether the type-variable is linked, unbound, or generic.
func (tv *Var) VarType() VarType {
	switch tv.level {
	case LinkLevel:
		return LinkVar
	case GenericLevel:
		return GenericVar
	default:
		return UnboundVar
	}
}

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return int(tv.id) }

// Level returns the binding-level of the type-variable.
func (tv *Var) Level() int { return int(tv.level) }

// Link returns the type which the type-variable is bound to, if the
// type-variable is bound.
func (tv *Var) Link() Type { return tv.link }

func (tv *Var) IsUnboundVar() bool { return tv.level != LinkLevel && tv.level != GenericLevel }
func (tv *Var) IsLinkVar() bool    { return tv.level == LinkLevel }
func (tv *Var) IsGenericVar() bool { return tv.level == GenericLevel }

// Set the binding-level of the type-variable.
func (tv *Var) SetLevel(level int) { tv.level = int32(level) }

// Set the type which the type-variable is bound to.
func (tv *Var) SetLink(t Type) { tv.link, tv.level = t, LinkLevel }

// Set the binding-level of the type-variable to the generic level.
func (tv *Var) SetGeneric() { tv.level = GenericLevel }
