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
// github.com:SymbolNotFound/hashes/internal/bitops/bitops32.go

// Package bitops holds the bitwise round functions shared by the SHA-2
// compression functions and RIPEMD-160, split by word width since Go has
// no single integer type that is "32 or 64 bits" and generics would only
// hide the rotate-amount arithmetic rather than simplify it.
package bitops

import "math/bits"

// Choice32 selects, bit for bit, y where x is set and z where x is clear.
func Choice32(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// Majority32 returns, bit for bit, whichever value two or more of x, y, z
// agree on.
func Majority32(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// UpperSigma0_32 is Σ0 for the 32-bit SHA-2 compression function.
func UpperSigma0_32(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

// UpperSigma1_32 is Σ1 for the 32-bit SHA-2 compression function.
func UpperSigma1_32(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

// LowerSigma0_32 is σ0, used in 32-bit SHA-2 message schedule expansion,
// with rotation amounts (7, 18, 3) per FIPS 180-4.
func LowerSigma0_32(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

// LowerSigma1_32 is σ1, used in 32-bit SHA-2 message schedule expansion.
func LowerSigma1_32(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}
