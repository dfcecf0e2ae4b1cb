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
	"log/slog"

	"github.com/typelev/infer/ast"
	"github.com/typelev/infer/types"
)

// slogExpr wraps an Expr as a slog.LogValuer so expression strings are not
// rendered unless they are actually logged.
func slogExpr(e ast.Expr) slog.LogValuer { return exprLogValuer{e} }

// slogType wraps a Type the same way.
func slogType(t types.Type) slog.LogValuer { return typeLogValuer{t} }

type exprLogValuer struct{ ast.Expr }
type typeLogValuer struct{ types.Type }

func (l exprLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", ast.ExprString(l.Expr)),
		slog.String("name", l.ExprName()),
	)
}

func (l typeLogValuer) LogValue() slog.Value {
	return slog.StringValue(types.TypeString(l.Type))
}
