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

package parser

import (
	"github.com/pkg/errors"
	"github.com/typelev/infer/types"
)

// Type scheme grammar:
//
//	scheme  := ("forall[" IDENT* "]")? ty
//	ty      := tyatom bracket* ("->" ty)?
//	        |  "(" ty ("," ty)* ")" ("->" ty)?
//	bracket := "[" ty ("," ty)* "]"
//	tyatom  := IDENT
//
// Arrows are right-associative. Identifiers bound by forall become generic
// type-variables (shared between occurrences); all others become constants.
type schemeParser struct {
	parser
	bound map[string]*types.Var
}

// ParseScheme parses a single complete type scheme; trailing input is an
// error. The returned type carries settled level records and is ready to
// declare in a type-environment.
func ParseScheme(src string) (types.Type, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &schemeParser{parser: parser{toks: toks}}
	if p.peek().kind == tokenForall {
		p.next()
		if err := p.parseBinders(); err != nil {
			return nil, err
		}
	}
	t, err := p.parseTy()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenEOF); err != nil {
		return nil, err
	}
	return types.StampLevels(t), nil
}

func (p *schemeParser) parseBinders() error {
	if _, err := p.expect(tokenLBracket); err != nil {
		return err
	}
	p.bound = make(map[string]*types.Var)
	for p.peek().kind == tokenIdent {
		tok := p.next()
		if _, ok := p.bound[tok.text]; ok {
			return errors.Wrapf(ErrParse, "duplicate binder %s at offset %d", tok.text, tok.pos)
		}
		p.bound[tok.text] = types.NewGenericVar(len(p.bound))
	}
	_, err := p.expect(tokenRBracket)
	return err
}

func (p *schemeParser) parseTy() (types.Type, error) {
	if p.peek().kind == tokenLParen {
		p.next()
		arg, err := p.parseTy()
		if err != nil {
			return nil, err
		}
		args := []types.Type{arg}
		for p.peek().kind == tokenComma {
			p.next()
			if arg, err = p.parseTy(); err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		if p.peek().kind == tokenArrow {
			p.next()
			ret, err := p.parseTy()
			if err != nil {
				return nil, err
			}
			return &types.Arrow{Args: args, Return: ret}, nil
		}
		if len(args) == 1 {
			return args[0], nil
		}
		tok := p.peek()
		return nil, errors.Wrapf(ErrParse, "expected -> after argument list but found %s at offset %d", tok.kind, tok.pos)
	}

	name, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}
	var t types.Type
	if tv, ok := p.bound[name.text]; ok {
		t = tv
	} else {
		t = &types.Const{Name: name.text}
	}
	for p.peek().kind == tokenLBracket {
		p.next()
		arg, err := p.parseTy()
		if err != nil {
			return nil, err
		}
		args := []types.Type{arg}
		for p.peek().kind == tokenComma {
			p.next()
			if arg, err = p.parseTy(); err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		if _, err := p.expect(tokenRBracket); err != nil {
			return nil, err
		}
		t = &types.App{Const: t, Args: args}
	}
	if p.peek().kind == tokenArrow {
		p.next()
		ret, err := p.parseTy()
		if err != nil {
			return nil, err
		}
		return &types.Arrow{Args: []types.Type{t}, Return: ret}, nil
	}
	return t, nil
}
