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
// github.com:SymbolNotFound/hashes/internal/block/length.go

package block

// Length128 tracks an absorbed byte count wider than a single uint64, as
// needed by the 128-byte-block SHA-2 family whose length suffix is a
// 128-bit bit count. Hi holds the upper 64 bits of the byte count, Lo the
// lower 64 bits.
type Length128 struct {
	Hi, Lo uint64
}

// maxLen64Bytes is the largest byte count whose bit count (count*8) still
// fits in a single uint64: floor((2^64-1)/8).
const maxLen64Bytes = (^uint64(0)) / 8

// maxLen128Hi bounds Length128 so that (Hi:Lo)*8 fits in 128 bits: the byte
// count must stay below 2^125, i.e. Hi below 2^61.
const maxLen128Hi = uint64(1) << 61

// AddLen64 adds n to the tracked byte count, reporting whether doing so
// would overflow the 64-bit bit-length counter used by the length suffix.
func AddLen64(length uint64, n uint64) (newLength uint64, overflow bool) {
	newLength = length + n
	if newLength < length || newLength > maxLen64Bytes {
		return length, true
	}
	return newLength, false
}

// AddBytes adds n to the length, reporting overflow per the 128-bit bound.
func (l Length128) AddBytes(n uint64) (Length128, bool) {
	newLo := l.Lo + n
	carry := uint64(0)
	if newLo < l.Lo {
		carry = 1
	}
	newHi := l.Hi + carry
	if newHi < l.Hi {
		return l, true
	}
	if newHi >= maxLen128Hi {
		return l, true
	}
	return Length128{Hi: newHi, Lo: newLo}, false
}

// Bits returns the length as a 128-bit bit count, split as (hi, lo) 64-bit
// big-endian-ordered words (hi is the more significant word).
func (l Length128) Bits() (hi, lo uint64) {
	hi = (l.Hi << 3) | (l.Lo >> 61)
	lo = l.Lo << 3
	return hi, lo
}
