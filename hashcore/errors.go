// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/hashes/hashcore/errors.go

package hashcore

import "errors"

// ErrLengthOverflow is returned by Write when absorbing the given bytes
// would overflow the engine's length counter.
var ErrLengthOverflow = errors.New("hashcore: input length would overflow the engine's length counter")

// ErrMidstateUnaligned is returned by FromMidstate when the supplied
// absorbed length is not a multiple of the engine's block size.
var ErrMidstateUnaligned = errors.New("hashcore: midstate absorbed length is not block-aligned")

// ErrInvalidParams is returned by PBKDF2 when given a zero iteration count
// or a requested derived-key length that doesn't match the underlying
// digest size.
var ErrInvalidParams = errors.New("hashcore: invalid pbkdf2 parameters")
