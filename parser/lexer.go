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
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenLet
	tokenFun
	tokenIn
	tokenForall
	tokenLParen
	tokenRParen
	tokenLBracket
	tokenRBracket
	tokenComma
	tokenEquals
	tokenArrow
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return "identifier"
	case tokenLet:
		return "let"
	case tokenFun:
		return "fun"
	case tokenIn:
		return "in"
	case tokenForall:
		return "forall"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	case tokenLBracket:
		return "["
	case tokenRBracket:
		return "]"
	case tokenComma:
		return ","
	case tokenEquals:
		return "="
	case tokenArrow:
		return "->"
	}
	return "unknown token"
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

var keywords = map[string]tokenKind{
	"let":    tokenLet,
	"fun":    tokenFun,
	"in":     tokenIn,
	"forall": tokenForall,
}

func lex(src string) ([]token, error) {
	toks := make([]token, 0, 16)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++

		case isIdentByte(c):
			start := i
			for i < len(src) && isIdentByte(src[i]) {
				i++
			}
			text := src[start:i]
			if kw, ok := keywords[text]; ok {
				toks = append(toks, token{kind: kw, text: text, pos: start})
			} else {
				toks = append(toks, token{kind: tokenIdent, text: text, pos: start})
			}

		case c == '(':
			toks = append(toks, token{kind: tokenLParen, text: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokenRParen, text: ")", pos: i})
			i++
		case c == '[':
			toks = append(toks, token{kind: tokenLBracket, text: "[", pos: i})
			i++
		case c == ']':
			toks = append(toks, token{kind: tokenRBracket, text: "]", pos: i})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokenComma, text: ",", pos: i})
			i++
		case c == '=':
			toks = append(toks, token{kind: tokenEquals, text: "=", pos: i})
			i++
		case c == '-':
			if i+1 >= len(src) || src[i+1] != '>' {
				return nil, errors.Wrapf(ErrParse, "unexpected character %q at offset %d", c, i)
			}
			toks = append(toks, token{kind: tokenArrow, text: "->", pos: i})
			i += 2

		default:
			return nil, errors.Wrapf(ErrParse, "unexpected character %q at offset %d", c, i)
		}
	}
	toks = append(toks, token{kind: tokenEOF, pos: len(src)})
	return toks, nil
}
