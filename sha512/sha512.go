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
// github.com:SymbolNotFound/hashes/sha512/sha512.go

// Package sha512 implements SHA-384 and SHA-512 (FIPS 180-4) as streaming
// hashcore.Resumable engines, mirroring sha256's structure at the 64-bit
// word width (128-byte blocks, 80-word schedule, 128-bit length suffix).
package sha512

import (
	"encoding/binary"

	"github.com/SymbolNotFound/hashes/hashcore"
	"github.com/SymbolNotFound/hashes/internal/bitops"
	"github.com/SymbolNotFound/hashes/internal/block"
	"github.com/SymbolNotFound/hashes/internal/consts"
)

const BlockSize = 128

// Engine streams input through the SHA-384/SHA-512 block pipeline.
type Engine struct {
	stream block.Stream64
	state  [8]uint64
	iv     [8]uint64
	size   int
}

// New returns a fresh SHA-512 engine (64-byte digest).
func New() *Engine {
	e := &Engine{iv: consts.SHA512IV, size: 64}
	e.Reset()
	return e
}

// New384 returns a fresh SHA-384 engine (48-byte digest).
func New384() *Engine {
	e := &Engine{iv: consts.SHA384IV, size: 48}
	e.Reset()
	return e
}

func (e *Engine) BlockSize() int { return BlockSize }
func (e *Engine) Size() int      { return e.size }

// Reset returns the engine to its initial constants with an empty buffer.
func (e *Engine) Reset() {
	e.stream.Reset()
	e.state = e.iv
}

// Write absorbs p, processing full blocks as they fill.
func (e *Engine) Write(p []byte) (int, error) {
	n, overflow := e.stream.Absorb(p, e.compress)
	if overflow {
		return 0, hashcore.ErrLengthOverflow
	}
	return n, nil
}

// Sum pads the buffered tail with the standard Merkle-Damgard suffix,
// processes the final block(s), and returns the (possibly truncated)
// digest. The engine must be Reset before further use.
func (e *Engine) Sum() []byte {
	tail := make([]byte, e.stream.NBuf, BlockSize*2)
	copy(tail, e.stream.Buf[:e.stream.NBuf])
	tail = block.PadTail(tail, BlockSize, 16)
	tail = block.AppendLengthBE128(tail, e.stream.Length)

	for len(tail) > 0 {
		var blk [128]byte
		copy(blk[:], tail[:BlockSize])
		e.compress(&blk)
		tail = tail[BlockSize:]
	}

	digest := make([]byte, e.size)
	for i := 0; i*8 < e.size; i++ {
		binary.BigEndian.PutUint64(digest[i*8:], e.state[i])
	}
	return digest
}

// Midstate snapshots the engine's register state after the last fully
// absorbed block.
func (e *Engine) Midstate() hashcore.Midstate {
	return Midstate{State: e.state, Length: e.absorbedLength()}
}

// FromMidstate restores state from a snapshot, clearing any buffered tail.
func (e *Engine) FromMidstate(ms hashcore.Midstate) error {
	m, ok := ms.(Midstate)
	if !ok || m.Length%BlockSize != 0 {
		return hashcore.ErrMidstateUnaligned
	}
	e.stream.Reset()
	e.stream.Length = block.Length128{Lo: m.Length}
	e.state = m.State
	return nil
}

// absorbedLength reports the absorbed byte count as a uint64. The
// 128-byte-block family's length counter is internally 128 bits wide (see
// internal/block.Length128) to honor the full FIPS 180-4 overflow bound,
// but midstate snapshots only need to support realistic message sizes, so
// a uint64 is sufficient here; Hi is only ever nonzero after absorbing
// more than 2^64 bytes, a regime Midstate-based resumption does not need
// to support.
func (e *Engine) absorbedLength() uint64 {
	return e.stream.Length.Lo
}

func (e *Engine) compress(blk *[128]byte) {
	sched := block.ExpandSHA2_64(blk)
	compress(&e.state, &sched)
}

// compress runs the 80-round SHA-2 64-bit compression function over sched,
// mutating state in place.
func compress(state *[8]uint64, sched *[80]uint64) {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < 80; i++ {
		t1 := h + bitops.UpperSigma1_64(e) + bitops.Choice64(e, f, g) + consts.SHA512RoundConstants[i] + sched[i]
		t2 := bitops.UpperSigma0_64(a) + bitops.Majority64(a, b, c)
		h, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// Midstate is a snapshot of a SHA-384/SHA-512 engine's register state.
type Midstate struct {
	State  [8]uint64
	Length uint64
}

func (m Midstate) AbsorbedLength() uint64 { return m.Length }

// Sum512 computes the SHA-512 digest of data in one call.
func Sum512(data []byte) [64]byte {
	e := New()
	e.Write(data)
	var out [64]byte
	copy(out[:], e.Sum())
	return out
}

// Sum384 computes the SHA-384 digest of data in one call.
func Sum384(data []byte) [48]byte {
	e := New384()
	e.Write(data)
	var out [48]byte
	copy(out[:], e.Sum())
	return out
}
