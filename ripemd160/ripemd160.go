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
// github.com:SymbolNotFound/hashes/ripemd160/ripemd160.go

// Package ripemd160 implements RIPEMD-160 as a streaming hashcore.Resumable
// engine: little-endian words, no schedule expansion, and a dual-line
// compression function whose two halves are combined at the end of each
// block.
package ripemd160

import (
	"math/bits"

	"github.com/SymbolNotFound/hashes/hashcore"
	"github.com/SymbolNotFound/hashes/internal/bitops"
	"github.com/SymbolNotFound/hashes/internal/block"
	"github.com/SymbolNotFound/hashes/internal/consts"
)

const (
	BlockSize = 64
	Size      = 20
)

// Engine streams input through the RIPEMD-160 block pipeline.
type Engine struct {
	stream block.Stream32
	state  [5]uint32
}

// New returns a fresh RIPEMD-160 engine.
func New() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

func (e *Engine) BlockSize() int { return BlockSize }
func (e *Engine) Size() int      { return Size }

// Reset returns the engine to its initial constants with an empty buffer.
func (e *Engine) Reset() {
	e.stream.Reset()
	e.state = consts.RIPEMD160IV
}

// Write absorbs p, processing full blocks as they fill.
func (e *Engine) Write(p []byte) (int, error) {
	n, overflow := e.stream.Absorb(p, e.compress)
	if overflow {
		return 0, hashcore.ErrLengthOverflow
	}
	return n, nil
}

// Sum pads the buffered tail with a little-endian length suffix, processes
// the final block(s), and returns the digest in little-endian register
// order. The engine must be Reset before further use.
func (e *Engine) Sum() []byte {
	bitLen := e.stream.Length * 8
	tail := make([]byte, e.stream.NBuf, BlockSize*2)
	copy(tail, e.stream.Buf[:e.stream.NBuf])
	tail = block.PadTail(tail, BlockSize, 8)
	tail = block.AppendLengthLE64(tail, bitLen)

	for len(tail) > 0 {
		var blk [64]byte
		copy(blk[:], tail[:BlockSize])
		e.compress(&blk)
		tail = tail[BlockSize:]
	}

	digest := make([]byte, Size)
	for i := 0; i < 5; i++ {
		digest[i*4] = byte(e.state[i])
		digest[i*4+1] = byte(e.state[i] >> 8)
		digest[i*4+2] = byte(e.state[i] >> 16)
		digest[i*4+3] = byte(e.state[i] >> 24)
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
	compress(&e.state, blk)
}

type roundFn func(x, y, z uint32) uint32

var leftFuncs = [5]roundFn{bitops.RipemdF, bitops.RipemdG, bitops.RipemdH, bitops.RipemdI, bitops.RipemdJ}
var rightFuncs = [5]roundFn{bitops.RipemdJ, bitops.RipemdI, bitops.RipemdH, bitops.RipemdG, bitops.RipemdF}

// runLine executes the five 16-step rounds of one line (left or parallel)
// of the RIPEMD-160 compression function over words, starting from the
// given register values, and returns the line's final register values.
func runLine(words [16]uint32, funcs [5]roundFn, roundConst [5]uint32, wordOrder, rotate [5][16]int, a, b, c, d, e uint32) (uint32, uint32, uint32, uint32, uint32) {
	A, B, C, D, E := a, b, c, d, e
	for r := 0; r < 5; r++ {
		fn := funcs[r]
		k := roundConst[r]
		order := wordOrder[r]
		rot := rotate[r]
		for i := 0; i < 16; i++ {
			t := A + fn(B, C, D) + words[order[i]] + k
			t = bits.RotateLeft32(t, rot[i]) + E
			c2 := bits.RotateLeft32(C, 10)
			A, B, C, D, E = E, t, B, c2, D
		}
	}
	return A, B, C, D, E
}

// compress runs both RIPEMD-160 lines over one block and folds their
// results into state.
func compress(state *[5]uint32, blk *[64]byte) {
	words := block.WordsLE16(blk)

	aa, bb, cc, dd, ee := runLine(words, leftFuncs, consts.RIPEMD160LeftConst,
		consts.RIPEMD160LeftWordOrder, consts.RIPEMD160LeftRotate,
		state[0], state[1], state[2], state[3], state[4])
	aaa, bbb, ccc, ddd, eee := runLine(words, rightFuncs, consts.RIPEMD160RightConst,
		consts.RIPEMD160RightWordOrder, consts.RIPEMD160RightRotate,
		state[0], state[1], state[2], state[3], state[4])

	t := state[1] + cc + ddd
	state[1] = state[2] + dd + eee
	state[2] = state[3] + ee + aaa
	state[3] = state[4] + aa + bbb
	state[4] = state[0] + bb + ccc
	state[0] = t
}

// Midstate is a snapshot of a RIPEMD-160 engine's register state.
type Midstate struct {
	State  [5]uint32
	Length uint64
}

func (m Midstate) AbsorbedLength() uint64 { return m.Length }

// Sum160 computes the RIPEMD-160 digest of data in one call.
func Sum160(data []byte) [20]byte {
	e := New()
	e.Write(data)
	var out [20]byte
	copy(out[:], e.Sum())
	return out
}
