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
// github.com:SymbolNotFound/hashes/internal/bitops/ripemd.go

package bitops

// RipemdF is round 1 (left line) / round 5 (parallel line): a plain parity.
func RipemdF(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

// RipemdG is round 2 (left line) / round 4 (parallel line).
func RipemdG(x, y, z uint32) uint32 {
	return (x & y) | (^x & z)
}

// RipemdH is round 3 (left line) / round 3 (parallel line).
func RipemdH(x, y, z uint32) uint32 {
	return (x | ^y) ^ z
}

// RipemdI is round 4 (left line) / round 2 (parallel line).
func RipemdI(x, y, z uint32) uint32 {
	return (x & z) | (y & ^z)
}

// RipemdJ is round 5 (left line) / round 1 (parallel line).
func RipemdJ(x, y, z uint32) uint32 {
	return x ^ (y | ^z)
}
