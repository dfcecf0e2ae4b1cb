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
	"sort"
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.generic = p.generic[:0]
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns the canonical string representation of a type.
//
// Type-variables are renamed to a, b, c, ... in first-encounter order. If the
// type contains generic variables, the result is prefixed with a
// "forall[...]" binder listing their letters in sorted order.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	if len(p.generic) == 0 {
		s := p.sb.String()
		p.release()
		return s
	}

	sort.Strings(p.generic)
	var sb strings.Builder
	sb.WriteString("forall[")
	for i, name := range p.generic {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
	}
	sb.WriteString("] ")
	sb.WriteString(p.sb.String())
	p.release()
	return sb.String()
}

type typePrinter struct {
	idNames map[int]string
	generic []string
	sb      strings.Builder
}

func getVarName(i int) string {
	if i < 26 {
		return string(byte(97 + i))
	}
	return string(byte(97+i%26)) + strconv.Itoa(i/26)
}

func (p *typePrinter) nextName() string { return getVarName(len(p.idNames)) }

// When simple is true, arrows are parenthesized (the type occurs where a bare
// arrow would be ambiguous, e.g. as the single argument of another arrow).
func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		switch {
		case t.IsLinkVar():
			typeString(p, simple, t.Link())

		case t.IsGenericVar():
			name, ok := p.idNames[t.Id()]
			if !ok {
				name = p.nextName()
				p.idNames[t.Id()] = name
				p.generic = append(p.generic, name)
			}
			p.sb.WriteString(name)

		default: // unbound
			name, ok := p.idNames[t.Id()]
			if !ok {
				name = p.nextName()
				p.idNames[t.Id()] = name
			}
			p.sb.WriteString(name)
		}

	case *App:
		typeString(p, true, t.Const)
		p.sb.WriteByte('[')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, false, arg)
		}
		p.sb.WriteByte(']')

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		if len(t.Args) == 1 {
			typeString(p, true, t.Args[0])
			p.sb.WriteString(" -> ")
			typeString(p, false, t.Return)
		} else {
			p.sb.WriteByte('(')
			for i, arg := range t.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, false, arg)
			}
			p.sb.WriteString(") -> ")
			typeString(p, false, t.Return)
		}
		if simple {
			p.sb.WriteByte(')')
		}
	}
}
