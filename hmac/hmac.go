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
// github.com:SymbolNotFound/hashes/hmac/hmac.go

// Package hmac implements the keyed-hash message authentication code,
// generic over any hashcore.Resumable engine. The inner/outer engines
// primed with the key-derived ipad/opad prefixes are cached as midstates
// so Reset can restore the keyed state without retaining the raw key.
package hmac

import "github.com/SymbolNotFound/hashes/hashcore"

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// HMAC streams a message through the inner engine and folds the result
// into the outer engine on Sum.
type HMAC struct {
	newEngine func() hashcore.Resumable
	inner     hashcore.Resumable
	outer     hashcore.Resumable

	cachedInner hashcore.Midstate
	cachedOuter hashcore.Midstate

	blockSize int
	size      int
}

// New constructs an HMAC keyed with key, using newEngine to build the
// inner/outer engines (and a throw-away engine to hash an over-length
// key). newEngine is typically sha256.New, sha512.New, ripemd160.New, etc.
func New(newEngine func() hashcore.Resumable, key []byte) *HMAC {
	probe := newEngine()
	h := &HMAC{
		newEngine: newEngine,
		inner:     newEngine(),
		outer:     newEngine(),
		blockSize: probe.BlockSize(),
		size:      probe.Size(),
	}
	h.Key(key)
	return h
}

func (h *HMAC) BlockSize() int { return h.blockSize }
func (h *HMAC) Size() int      { return h.size }

// Key primes the inner/outer engines with the ipad/opad-masked key and
// caches the resulting midstates. It must be called before Write; calling
// it again re-keys the HMAC.
func (h *HMAC) Key(key []byte) {
	if len(key) > h.blockSize {
		kh := h.newEngine()
		kh.Write(key)
		key = kh.Sum()
	}
	padded := make([]byte, h.blockSize)
	copy(padded, key)

	ipad := make([]byte, h.blockSize)
	opad := make([]byte, h.blockSize)
	for i, kb := range padded {
		ipad[i] = kb ^ ipadByte
		opad[i] = kb ^ opadByte
	}

	h.inner.Reset()
	h.inner.Write(ipad)
	h.cachedInner = h.inner.Midstate()

	h.outer.Reset()
	h.outer.Write(opad)
	h.cachedOuter = h.outer.Midstate()
}

// Write forwards message bytes to the inner engine.
func (h *HMAC) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

// Sum finalizes the inner engine and folds its digest into the outer
// engine, returning the outer engine's digest. Both inner and outer are
// left unspecified afterwards; call Reset before reuse.
func (h *HMAC) Sum() []byte {
	innerDigest := h.inner.Sum()
	h.outer.Write(innerDigest)
	return h.outer.Sum()
}

// Reset restores the inner and outer engines from the cached keyed
// midstates, preserving the key without retaining the raw key bytes.
func (h *HMAC) Reset() {
	h.inner.FromMidstate(h.cachedInner)
	h.outer.FromMidstate(h.cachedOuter)
}

// Midstate returns the pair of inner/outer midstates reflecting whatever
// has been absorbed so far (including any message bytes written since the
// last Key/Reset).
func (h *HMAC) Midstate() hashcore.Midstate {
	return Midstate{Inner: h.inner.Midstate(), Outer: h.outer.Midstate()}
}

// FromMidstate restores the inner/outer engines from a previously
// captured pair, per the same alignment rule as the underlying engines.
func (h *HMAC) FromMidstate(ms hashcore.Midstate) error {
	m, ok := ms.(Midstate)
	if !ok {
		return hashcore.ErrMidstateUnaligned
	}
	if err := h.inner.FromMidstate(m.Inner); err != nil {
		return err
	}
	return h.outer.FromMidstate(m.Outer)
}

// Midstate is the pair of inner/outer hashcore.Midstate snapshots that
// together describe an HMAC engine's resumable state.
type Midstate struct {
	Inner hashcore.Midstate
	Outer hashcore.Midstate
}

func (m Midstate) AbsorbedLength() uint64 { return m.Inner.AbsorbedLength() }
