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
// github.com:SymbolNotFound/hashes/pbkdf2/pbkdf2_test.go

package pbkdf2_test

import (
	"bytes"
	"testing"

	"github.com/SymbolNotFound/hashes/hashcore"
	"github.com/SymbolNotFound/hashes/pbkdf2"
	"github.com/SymbolNotFound/hashes/sha256"
	"github.com/SymbolNotFound/hashes/sha512"
)

func newSHA256() hashcore.Resumable { return sha256.New() }
func newSHA512() hashcore.Resumable { return sha512.New() }

func Test_DeriveKeySHA512Vector(t *testing.T) {
	// PBKDF2-HMAC-SHA-512, password "password", salt "salt", c=4096.
	want := [64]byte{
		0xd1, 0x97, 0xb1, 0xb3, 0x3d, 0xb0, 0x14, 0x3e, 0x01, 0x8b, 0x12, 0xf3, 0xd1, 0xd1, 0x47, 0x9e,
		0x6c, 0xde, 0xbd, 0xcc, 0x97, 0xc5, 0xc0, 0xf8, 0x7f, 0x69, 0x02, 0xe0, 0x72, 0xf4, 0x57, 0xb5,
		0x14, 0x3f, 0x30, 0x60, 0x26, 0x41, 0xb3, 0xd5, 0x5c, 0xd3, 0x35, 0x98, 0x8c, 0xb3, 0x6b, 0x84,
		0x37, 0x60, 0x60, 0xec, 0xd5, 0x32, 0xe0, 0x39, 0xb7, 0x42, 0xa2, 0x39, 0x43, 0x4a, 0xf2, 0xd5}

	got, err := pbkdf2.DeriveKey(newSHA512, []byte("password"), []byte("salt"), 4096, 64)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if !bytes.Equal(got, want[:]) {
		t.Errorf("PBKDF2-HMAC-SHA512(\"password\", \"salt\", 4096) = %x, want %x", got, want)
	}
}

func Test_IterationCounts(t *testing.T) {
	password := []byte("a password")
	salt := []byte("a salt")

	d1, err := pbkdf2.DeriveKey(newSHA256, password, salt, 1, 32)
	if err != nil {
		t.Fatalf("c=1: %v", err)
	}
	d2, err := pbkdf2.DeriveKey(newSHA256, password, salt, 2, 32)
	if err != nil {
		t.Fatalf("c=2: %v", err)
	}
	d4096, err := pbkdf2.DeriveKey(newSHA256, password, salt, 4096, 32)
	if err != nil {
		t.Fatalf("c=4096: %v", err)
	}

	if bytes.Equal(d1, d2) || bytes.Equal(d2, d4096) || bytes.Equal(d1, d4096) {
		t.Errorf("derived keys for distinct iteration counts must differ: c=1 %x, c=2 %x, c=4096 %x", d1, d2, d4096)
	}
}

func Test_RejectsMismatchedDKLen(t *testing.T) {
	_, err := pbkdf2.DeriveKey(newSHA256, []byte("p"), []byte("s"), 1, 20)
	if err != hashcore.ErrInvalidParams {
		t.Errorf("DeriveKey with dkLen != digest size = %v, want ErrInvalidParams", err)
	}
}

func Test_RejectsZeroIterations(t *testing.T) {
	_, err := pbkdf2.DeriveKey(newSHA256, []byte("p"), []byte("s"), 0, 32)
	if err != hashcore.ErrInvalidParams {
		t.Errorf("DeriveKey with iter=0 = %v, want ErrInvalidParams", err)
	}
}

func Test_BuilderAPI(t *testing.T) {
	p := pbkdf2.New(newSHA256)
	p.Input([]byte("pass"))
	p.Input([]byte("word"))
	p.Salt([]byte("salt"))
	p.Iter(100)
	got, err := p.DeriveKey(32)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	want, err := pbkdf2.DeriveKey(newSHA256, []byte("password"), []byte("salt"), 100, 32)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("builder-accumulated Input() = %x, want %x", got, want)
	}

	p.Reset()
	p.Input([]byte("password"))
	p.Salt([]byte("salt"))
	p.Iter(1)
	if _, err := p.DeriveKey(32); err != nil {
		t.Fatalf("DeriveKey after Reset: %v", err)
	}
}
