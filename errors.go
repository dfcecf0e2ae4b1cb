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
	"github.com/pkg/errors"
)

// The kinds of inference failure. Failure sites wrap these with context;
// match with errors.Is.
var (
	// ErrCycle reports a failed occurs check: the type would be infinite.
	ErrCycle = errors.New("Cycle")
	// ErrFail reports a shape mismatch between two types.
	ErrFail = errors.New("Fail")
	// ErrLength reports an arity mismatch between two arrow or
	// type-application types.
	ErrLength = errors.New("Length")
	// ErrUnbound reports a reference to an identifier with no binding in
	// scope.
	ErrUnbound = errors.New("Unbound")
)
