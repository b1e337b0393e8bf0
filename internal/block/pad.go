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
// github.com:SymbolNotFound/hashes/internal/block/pad.go

package block

import "encoding/binary"

// PadTail appends the mandatory 0x80 byte and enough 0x00 bytes to tail so
// that the result's length modulo blockSize equals blockSize-lenSuffixBytes,
// leaving exactly enough room for the caller to append the length suffix
// and land on a block boundary.
func PadTail(tail []byte, blockSize, lenSuffixBytes int) []byte {
	tail = append(tail, 0x80)
	for len(tail)%blockSize != blockSize-lenSuffixBytes {
		tail = append(tail, 0x00)
	}
	return tail
}

// AppendLengthBE64 appends bitLen as 8 big-endian bytes (the SHA-2 32-bit
// family's length suffix).
func AppendLengthBE64(dst []byte, bitLen uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], bitLen)
	return append(dst, b[:]...)
}

// AppendLengthLE64 appends bitLen as 8 little-endian bytes (RIPEMD-160's
// length suffix).
func AppendLengthLE64(dst []byte, bitLen uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], bitLen)
	return append(dst, b[:]...)
}

// AppendLengthBE128 appends the 128-bit bit count of l as 16 big-endian
// bytes (the SHA-2 64-bit family's length suffix).
func AppendLengthBE128(dst []byte, l Length128) []byte {
	hi, lo := l.Bits()
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], hi)
	binary.BigEndian.PutUint64(b[8:16], lo)
	return append(dst, b[:]...)
}
