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
// github.com:SymbolNotFound/hashes/internal/block/stream.go

// Package block implements the pieces shared by every streaming hash
// engine in this module: a reusable trailing-tail input buffer
// parameterized by a process-one-block callback, padding, and SHA-2
// message schedule expansion.
package block

// Stream32 is the input-buffering core shared by every hash engine whose
// block size is 64 bytes and whose length counter fits in a uint64 byte
// count (the SHA-2 32-bit family and RIPEMD-160).
type Stream32 struct {
	Buf    [64]byte
	NBuf   int
	Length uint64
}

// Reset returns the core to its zero state.
func (s *Stream32) Reset() {
	s.Buf = [64]byte{}
	s.NBuf = 0
	s.Length = 0
}

// Absorb buffers p, invoking process once per full 64-byte block as the
// buffer fills, and advances the length counter. It reports how many bytes
// of p were accepted and whether accepting all of p would have overflowed
// the length counter (in which case nothing is absorbed and the core is
// left unchanged).
func (s *Stream32) Absorb(p []byte, process func(block *[64]byte)) (n int, overflow bool) {
	newLength, overflow := AddLen64(s.Length, uint64(len(p)))
	if overflow {
		return 0, true
	}

	total := len(p)
	if s.NBuf > 0 {
		c := copy(s.Buf[s.NBuf:], p)
		s.NBuf += c
		p = p[c:]
		if s.NBuf == 64 {
			process(&s.Buf)
			s.NBuf = 0
		}
	}
	for len(p) >= 64 {
		var blk [64]byte
		copy(blk[:], p[:64])
		process(&blk)
		p = p[64:]
	}
	if len(p) > 0 {
		s.NBuf = copy(s.Buf[:], p)
	}
	s.Length = newLength
	return total, false
}

// Stream64 is the input-buffering core shared by every hash engine whose
// block size is 128 bytes and whose length counter needs 128 bits (the
// SHA-2 64-bit family).
type Stream64 struct {
	Buf    [128]byte
	NBuf   int
	Length Length128
}

// Reset returns the core to its zero state.
func (s *Stream64) Reset() {
	s.Buf = [128]byte{}
	s.NBuf = 0
	s.Length = Length128{}
}

// Absorb buffers p, invoking process once per full 128-byte block, and
// advances the length counter. Semantics mirror Stream32.Absorb.
func (s *Stream64) Absorb(p []byte, process func(block *[128]byte)) (n int, overflow bool) {
	newLength, overflow := s.Length.AddBytes(uint64(len(p)))
	if overflow {
		return 0, true
	}

	total := len(p)
	if s.NBuf > 0 {
		c := copy(s.Buf[s.NBuf:], p)
		s.NBuf += c
		p = p[c:]
		if s.NBuf == 128 {
			process(&s.Buf)
			s.NBuf = 0
		}
	}
	for len(p) >= 128 {
		var blk [128]byte
		copy(blk[:], p[:128])
		process(&blk)
		p = p[128:]
	}
	if len(p) > 0 {
		s.NBuf = copy(s.Buf[:], p)
	}
	s.Length = newLength
	return total, false
}
