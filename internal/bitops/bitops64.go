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
// github.com:SymbolNotFound/hashes/internal/bitops/bitops64.go

package bitops

import "math/bits"

// Choice64 selects, bit for bit, y where x is set and z where x is clear.
func Choice64(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

// Majority64 returns, bit for bit, whichever value two or more of x, y, z
// agree on.
func Majority64(x, y, z uint64) uint64 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// UpperSigma0_64 is Σ0 for the 64-bit SHA-2 compression function.
func UpperSigma0_64(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
}

// UpperSigma1_64 is Σ1 for the 64-bit SHA-2 compression function.
func UpperSigma1_64(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
}

// LowerSigma0_64 is σ0, used in 64-bit SHA-2 message schedule expansion.
func LowerSigma0_64(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
}

// LowerSigma1_64 is σ1, used in 64-bit SHA-2 message schedule expansion.
func LowerSigma1_64(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
}
