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

// StampLevels stamps exact level bounds, bottom-up, on every composite
// reachable from t, allocating level records where they are missing.
//
// Declared schemes are built outside the inference engine (by hand or by the
// scheme parser) and carry no level information; stamping makes a composite
// holding generic variables generic itself, and settles everything else at
// the top level.
func StampLevels(t Type) Type {
	t = RealType(t)
	stampLevels(t)
	return t
}

func stampLevels(t Type) int {
	t = RealType(t)
	switch t := t.(type) {
	case *Arrow:
		level := 0
		for _, arg := range t.Args {
			level = max(level, stampLevels(arg))
		}
		level = max(level, stampLevels(t.Return))
		if t.Levels == nil {
			t.Levels = &Levels{}
		}
		t.Levels.Old, t.Levels.New = level, level
		return level

	case *App:
		level := stampLevels(t.Const)
		for _, arg := range t.Args {
			level = max(level, stampLevels(arg))
		}
		if t.Levels == nil {
			t.Levels = &Levels{}
		}
		t.Levels.Old, t.Levels.New = level, level
		return level
	}
	return LevelOf(t)
}
