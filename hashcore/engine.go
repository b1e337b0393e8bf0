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
// github.com:SymbolNotFound/hashes/hashcore/engine.go

// Package hashcore defines the contract every streaming hash engine in
// this module satisfies: a common Hasher/Digest-style interface pair so
// that hmac and pbkdf2 can be written once against any of sha256, sha512
// or ripemd160 rather than once per primitive.
package hashcore

import "io"

// Engine is a streaming hash function: bytes go in via Write, and Sum
// finalizes the current message (padding the trailing buffer and running
// the compression function over the final block or two) into a digest.
//
// After Sum, the engine is left in an unspecified state; callers must call
// Reset before feeding it further input. Finalization and reset are kept
// separate so HMAC can finalize its inner engine without losing the
// outer engine's state.
type Engine interface {
	io.Writer

	// BlockSize returns the engine's block size in bytes.
	BlockSize() int

	// Size returns the digest size in bytes.
	Size() int

	// Sum pads and processes the buffered tail and returns the digest.
	// The engine must be Reset before it can be used again.
	Sum() []byte

	// Reset returns the engine to its freshly constructed state.
	Reset()
}

// Midstate is an opaque snapshot of an Engine's register state after a
// whole number of blocks have been absorbed.
type Midstate interface {
	// AbsorbedLength is the number of message bytes the engine had
	// absorbed when the snapshot was taken, including any partially
	// buffered tail that the register state does not yet reflect.
	// FromMidstate accepts only snapshots whose AbsorbedLength is a
	// multiple of the owning engine's block size.
	AbsorbedLength() uint64
}

// Resumable is an Engine that can export and restore its register state
// mid-stream, without retaining the message bytes that produced it.
type Resumable interface {
	Engine

	// Midstate snapshots the current register state. It only reflects
	// fully-absorbed blocks; any partial trailing buffer is not part of
	// the snapshot (callers that need it must track it separately).
	Midstate() Midstate

	// FromMidstate restores state from a snapshot, clearing any buffered
	// tail. It fails with ErrMidstateUnaligned if the midstate's
	// AbsorbedLength is not a multiple of BlockSize.
	FromMidstate(Midstate) error
}

// KeyedEngine is a Resumable engine that can be primed with a key before
// use, as required by the HMAC construction.
type KeyedEngine interface {
	Resumable

	// Key primes the engine with key material. It must be called before
	// any Write; calling it afterwards re-keys the engine and is the
	// caller's responsibility to sequence correctly.
	Key(key []byte)
}
