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

// Special binding-levels (used as flags):
const (
	// GenericLevel marks a type-variable or composite type as generalized.
	// Generalized types are freshly copied at each use site.
	GenericLevel = 1<<31 - 1
	// LinkLevel marks a type-variable cell as a forwarding link to another type.
	LinkLevel = -1 << 31
	// GrayLevel marks a composite type which is on the active traversal stack.
	// Re-entering a gray composite means the type is cyclic.
	GrayLevel = -1
	// TopLevel is the binding-level of the outermost scope.
	TopLevel = 0
)

// Type is the base interface for all types.
type Type interface {
	TypeName() string
	IsGeneric() bool
}

var (
	_ Type = (*Const)(nil)
	_ Type = (*Var)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*App)(nil)
)

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// "Const"
func (t *Const) TypeName() string { return "Const" }

func (t *Const) IsGeneric() bool { return false }

// Levels is the mutable level record carried by every composite type.
//
// Old is the deepest level at which the composite's structure was last fully
// adjusted; New is the current best-known upper bound on the levels of unbound
// type-variables reachable within the composite. New <= Old at every stable
// point, and New == Old after the adjustment queue is drained. New is set to
// GrayLevel while the composite is on an active unify/adjust/check stack.
type Levels struct {
	Old, New int
}

// Create a level record for a composite allocated at the given binding-level.
func NewLevels(level int) *Levels { return &Levels{Old: level, New: level} }

// Settled returns true once all deferred level adjustments for the composite
// have been applied.
func (ls *Levels) Settled() bool { return ls.Old == ls.New }

// Function type: `(int, int) -> int`
type Arrow struct {
	Args   []Type
	Return Type
	Levels *Levels
}

// "Arrow"
func (t *Arrow) TypeName() string { return "Arrow" }

func (t *Arrow) IsGeneric() bool { return t.Levels.New == GenericLevel }

// Type application: `list[int]`
type App struct {
	Const  Type
	Args   []Type
	Levels *Levels
}

// "App"
func (t *App) TypeName() string { return "App" }

func (t *App) IsGeneric() bool { return t.Levels.New == GenericLevel }

// Get the underlying type for a chain of linked type-variables, when applicable.
//
// Link chains are compressed along the way: every visited link cell is
// rewritten to point directly at the terminal representative, so the rewrite
// is observed by all holders of the cell.
func RealType(t Type) Type {
	tv, ok := t.(*Var)
	if !ok || !tv.IsLinkVar() {
		return t
	}
	root := RealType(tv.link)
	tv.link = root
	return root
}

// LevelOf returns the binding-level of a type: zero for a constant, the
// variable's level for an unbound or generic type-variable, and the current
// upper bound (Levels.New) for a composite.
//
// LevelOf must not be called on a link cell; callers apply RealType first.
func LevelOf(t Type) int {
	switch t := t.(type) {
	case *Const:
		return 0
	case *Var:
		if t.IsLinkVar() {
			panic("types: LevelOf called on a linked type-variable")
		}
		return t.Level()
	case *Arrow:
		return t.Levels.New
	case *App:
		return t.Levels.New
	}
	panic("types: LevelOf called on unknown type " + t.TypeName())
}

// LevelsOf returns the mutable level record of a composite type, or nil for
// constants and type-variables.
func LevelsOf(t Type) *Levels {
	switch t := t.(type) {
	case *Arrow:
		return t.Levels
	case *App:
		return t.Levels
	}
	return nil
}
