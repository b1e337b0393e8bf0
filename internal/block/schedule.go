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
// github.com:SymbolNotFound/hashes/internal/block/schedule.go

package block

import (
	"encoding/binary"

	"github.com/SymbolNotFound/hashes/internal/bitops"
)

// ExpandSHA2_32 partitions a 64-byte block into sixteen big-endian 32-bit
// words and expands them into the 64-word message schedule used by
// SHA-224/SHA-256.
func ExpandSHA2_32(blk *[64]byte) [64]uint32 {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(blk[i*4:])
	}
	for i := 16; i < 64; i++ {
		w[i] = bitops.LowerSigma1_32(w[i-2]) + w[i-7] + bitops.LowerSigma0_32(w[i-15]) + w[i-16]
	}
	return w
}

// ExpandSHA2_64 partitions a 128-byte block into sixteen big-endian 64-bit
// words and expands them into the 80-word message schedule used by
// SHA-384/SHA-512.
func ExpandSHA2_64(blk *[128]byte) [80]uint64 {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(blk[i*8:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bitops.LowerSigma1_64(w[i-2]) + w[i-7] + bitops.LowerSigma0_64(w[i-15]) + w[i-16]
	}
	return w
}

// WordsLE16 partitions a 64-byte block into sixteen little-endian 32-bit
// words. RIPEMD-160 does not expand its schedule: the block's words are
// used directly.
func WordsLE16(blk *[64]byte) [16]uint32 {
	var w [16]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.LittleEndian.Uint32(blk[i*4:])
	}
	return w
}
