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

// parser implements the surface syntax for expressions and type schemes
// as a deterministic recursive-descent parser with one token of lookahead.
//
// Expression grammar:
//
//	expr   := let | fun | app
//	let    := "let" IDENT "=" expr "in" expr
//	fun    := "fun" IDENT+ "->" expr
//	app    := atom ( "(" expr ("," expr)* ")" )*
//	atom   := "(" expr ")" | IDENT
//	IDENT  := [A-Za-z0-9_]+
package parser

import (
	"github.com/pkg/errors"
	"github.com/typelev/infer/ast"
)

// ErrParse reports input which does not match the grammar, including trailing
// content after a complete parse. Failure sites wrap it with context; match
// with errors.Is.
var ErrParse = errors.New("ParseError")

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return tok, errors.Wrapf(ErrParse, "expected %s but found %s at offset %d", kind, tok.kind, tok.pos)
	}
	return tok, nil
}

// ParseExpr parses a single complete expression; trailing input is an error.
func ParseExpr(src string) (ast.Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenEOF); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *parser) parseExpr() (ast.Expr, error) {
	switch p.peek().kind {
	case tokenLet:
		return p.parseLet()
	case tokenFun:
		return p.parseFun()
	default:
		return p.parseSimpleExpr()
	}
}

func (p *parser) parseLet() (ast.Expr, error) {
	if _, err := p.expect(tokenLet); err != nil {
		return nil, err
	}
	name, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenEquals); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenIn); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Var: name.text, Value: value, Body: body}, nil
}

func (p *parser) parseFun() (ast.Expr, error) {
	if _, err := p.expect(tokenFun); err != nil {
		return nil, err
	}
	var params []string
	for p.peek().kind == tokenIdent {
		params = append(params, p.next().text)
	}
	if len(params) == 0 {
		tok := p.peek()
		return nil, errors.Wrapf(ErrParse, "expected parameter but found %s at offset %d", tok.kind, tok.pos)
	}
	if _, err := p.expect(tokenArrow); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Func{ArgNames: params, Body: body}, nil
}

// An atom followed by any number of argument lists; application is
// left-associative.
func (p *parser) parseSimpleExpr() (ast.Expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenLParen {
		p.next()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		e = &ast.Call{Func: e, Args: args}
	}
	return e, nil
}

func (p *parser) parseAtom() (ast.Expr, error) {
	switch tok := p.next(); tok.kind {
	case tokenIdent:
		return &ast.Var{Name: tok.text}, nil
	case tokenLParen:
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, errors.Wrapf(ErrParse, "expected expression but found %s at offset %d", tok.kind, tok.pos)
	}
}

func (p *parser) parseArgs() ([]ast.Expr, error) {
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args := []ast.Expr{arg}
	for p.peek().kind == tokenComma {
		p.next()
		if arg, err = p.parseExpr(); err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}
	return args, nil
}
