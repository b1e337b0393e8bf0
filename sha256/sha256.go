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
// github.com:SymbolNotFound/hashes/sha256/sha256.go

// Package sha256 implements SHA-224 and SHA-256 (FIPS 180-4) as streaming
// hashcore.Resumable engines. The two share a compression function and
// round-constant table, differing only in initial chain value and digest
// truncation, so one Engine type serves both.
package sha256

import (
	"encoding/binary"

	"github.com/SymbolNotFound/hashes/hashcore"
	"github.com/SymbolNotFound/hashes/internal/bitops"
	"github.com/SymbolNotFound/hashes/internal/block"
	"github.com/SymbolNotFound/hashes/internal/consts"
)

const BlockSize = 64

// Engine streams input through the SHA-224/SHA-256 block pipeline.
type Engine struct {
	stream block.Stream32
	state  [8]uint32
	iv     [8]uint32
	size   int
}

// New returns a fresh SHA-256 engine (32-byte digest).
func New() *Engine {
	e := &Engine{iv: consts.SHA256IV, size: 32}
	e.Reset()
	return e
}

// New224 returns a fresh SHA-224 engine (28-byte digest).
func New224() *Engine {
	e := &Engine{iv: consts.SHA224IV, size: 28}
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

// Write absorbs p, processing full blocks as they fill. It satisfies
// io.Writer and never returns a short write except via ErrLengthOverflow.
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
	bitLen := e.stream.Length * 8
	tail := make([]byte, e.stream.NBuf, BlockSize*2)
	copy(tail, e.stream.Buf[:e.stream.NBuf])
	tail = block.PadTail(tail, BlockSize, 8)
	tail = block.AppendLengthBE64(tail, bitLen)

	for len(tail) > 0 {
		var blk [64]byte
		copy(blk[:], tail[:BlockSize])
		e.compress(&blk)
		tail = tail[BlockSize:]
	}

	digest := make([]byte, e.size)
	for i := 0; i*4 < e.size; i++ {
		binary.BigEndian.PutUint32(digest[i*4:], e.state[i])
	}
	return digest
}

// Midstate snapshots the engine's register state after the last fully
// absorbed block.
func (e *Engine) Midstate() hashcore.Midstate {
	return Midstate{State: e.state, Length: e.stream.Length}
}

// FromMidstate restores state from a snapshot, clearing any buffered tail.
func (e *Engine) FromMidstate(ms hashcore.Midstate) error {
	m, ok := ms.(Midstate)
	if !ok || m.Length%BlockSize != 0 {
		return hashcore.ErrMidstateUnaligned
	}
	e.stream.Reset()
	e.stream.Length = m.Length
	e.state = m.State
	return nil
}

func (e *Engine) compress(blk *[64]byte) {
	sched := block.ExpandSHA2_32(blk)
	compress(&e.state, &sched)
}

// compress runs the 64-round SHA-2 32-bit compression function over sched,
// mutating state in place.
func compress(state *[8]uint32, sched *[64]uint32) {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i++ {
		t1 := h + bitops.UpperSigma1_32(e) + bitops.Choice32(e, f, g) + consts.SHA256RoundConstants[i] + sched[i]
		t2 := bitops.UpperSigma0_32(a) + bitops.Majority32(a, b, c)
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

// Midstate is a snapshot of a SHA-224/SHA-256 engine's register state.
type Midstate struct {
	State  [8]uint32
	Length uint64
}

func (m Midstate) AbsorbedLength() uint64 { return m.Length }

// Sum256 computes the SHA-256 digest of data in one call.
func Sum256(data []byte) [32]byte {
	e := New()
	e.Write(data)
	var out [32]byte
	copy(out[:], e.Sum())
	return out
}

// Sum224 computes the SHA-224 digest of data in one call.
func Sum224(data []byte) [28]byte {
	e := New224()
	e.Write(data)
	var out [28]byte
	copy(out[:], e.Sum())
	return out
}
