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
// github.com:SymbolNotFound/hashes/pbkdf2/pbkdf2.go

// Package pbkdf2 implements the single-block PBKDF2 key derivation
// function (RFC 8018 §5.2) built on the module's own hmac package. It is
// "single-block" in that the derived key length is fixed to exactly one
// block of the underlying HMAC's output (dkLen == the HMAC's digest
// size); multi-block concatenation is out of scope.
package pbkdf2

import (
	"github.com/SymbolNotFound/hashes/hashcore"
	"github.com/SymbolNotFound/hashes/hmac"
)

// PBKDF2 accumulates a password, a salt, and an iteration count, then
// derives a key on demand via DeriveKey. newEngine constructs the
// underlying hash engine (e.g. sha256.New) that the internal HMAC is
// built from.
type PBKDF2 struct {
	newEngine func() hashcore.Resumable
	password  []byte
	salt      []byte
	iter      int
}

// New returns a PBKDF2 deriver keyed to the given underlying hash engine
// constructor, with iteration count defaulted to 1.
func New(newEngine func() hashcore.Resumable) *PBKDF2 {
	return &PBKDF2{newEngine: newEngine, iter: 1}
}

// Input appends data to the accumulated password.
func (p *PBKDF2) Input(data []byte) {
	p.password = append(p.password, data...)
}

// Salt appends data to the accumulated salt.
func (p *PBKDF2) Salt(data []byte) {
	p.salt = append(p.salt, data...)
}

// Iter sets the iteration count.
func (p *PBKDF2) Iter(c int) {
	p.iter = c
}

// Reset clears the accumulated password, salt, and iteration count back
// to their zero values (iteration count back to 1).
func (p *PBKDF2) Reset() {
	p.password = nil
	p.salt = nil
	p.iter = 1
}

// DeriveKey computes T_1 = U_1 XOR U_2 XOR ... XOR U_c, where
// U_1 = HMAC(password, salt || BE32(1)) and U_i = HMAC(password, U_{i-1})
// for i > 1, each HMAC invocation reusing the same password-keyed engine
// via its cached midstate. dkLen must equal the underlying engine's
// digest size; any other value, or a zero iteration count, is rejected
// with hashcore.ErrInvalidParams.
func (p *PBKDF2) DeriveKey(dkLen int) ([]byte, error) {
	if p.iter < 1 {
		return nil, hashcore.ErrInvalidParams
	}
	probe := p.newEngine()
	if dkLen != probe.Size() {
		return nil, hashcore.ErrInvalidParams
	}

	mac := hmac.New(p.newEngine, p.password)
	mac.Write(p.salt)
	mac.Write([]byte{0, 0, 0, 1})
	u := mac.Sum()

	t := make([]byte, len(u))
	copy(t, u)
	prev := u

	for i := 1; i < p.iter; i++ {
		mac.Reset()
		mac.Write(prev)
		next := mac.Sum()
		for j := range t {
			t[j] ^= next[j]
		}
		prev = next
	}
	return t, nil
}

// DeriveKey is a one-shot convenience wrapper: derive a dkLen-byte key
// from password and salt over c iterations, using newEngine as the
// underlying hash (e.g. sha512.New for PBKDF2-HMAC-SHA-512).
func DeriveKey(newEngine func() hashcore.Resumable, password, salt []byte, c, dkLen int) ([]byte, error) {
	p := New(newEngine)
	p.Input(password)
	p.Salt(salt)
	p.Iter(c)
	return p.DeriveKey(dkLen)
}
