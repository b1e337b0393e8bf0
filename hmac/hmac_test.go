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
// github.com:SymbolNotFound/hashes/hmac/hmac_test.go

package hmac_test

import (
	"bytes"
	"testing"

	"github.com/SymbolNotFound/hashes/hashcore"
	"github.com/SymbolNotFound/hashes/hmac"
	"github.com/SymbolNotFound/hashes/sha256"
)

func newSHA256() hashcore.Resumable { return sha256.New() }

func Test_HMACSHA256Vectors(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		message  string
		expected [32]byte
	}{
		{"key/value", "key", "The quick brown fox jumps over the lazy dog", [32]byte{
			0xf7, 0xbc, 0x83, 0xf4, 0x30, 0x53, 0x84, 0x24, 0xb1, 0x32, 0x98, 0xe6, 0xaa, 0x6f, 0xb1, 0x43,
			0xef, 0x4d, 0x59, 0xa1, 0x49, 0x46, 0x17, 0x59, 0x97, 0x47, 0x9d, 0xbc, 0x2d, 0x1a, 0x3c, 0xd8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mac := hmac.New(newSHA256, []byte(tt.key))
			mac.Write([]byte(tt.message))
			got := mac.Sum()
			if !bytes.Equal(got, tt.expected[:]) {
				t.Errorf("HMAC-SHA256(%q, %q) = %x, want %x", tt.key, tt.message, got, tt.expected)
			}
		})
	}
}

// Test_ResetEquivalence checks that Reset followed by writing the same
// message reproduces the same digest as a fresh HMAC with the same key.
func Test_ResetEquivalence(t *testing.T) {
	key := []byte("a shared secret")
	msg := []byte("message one")

	mac := hmac.New(newSHA256, key)
	mac.Write(msg)
	first := mac.Sum()

	mac.Reset()
	mac.Write(msg)
	second := mac.Sum()

	if !bytes.Equal(first, second) {
		t.Errorf("HMAC after Reset = %x, want %x (same as before reset)", second, first)
	}

	fresh := hmac.New(newSHA256, key)
	fresh.Write(msg)
	want := fresh.Sum()
	if !bytes.Equal(second, want) {
		t.Errorf("HMAC after Reset = %x, want %x (matching a fresh instance)", second, want)
	}
}

// Test_LongKey exercises the key-priming branch that hashes keys longer
// than the block size down to the digest size before padding.
func Test_LongKey(t *testing.T) {
	longKey := bytes.Repeat([]byte("k"), 200)
	mac := hmac.New(newSHA256, longKey)
	mac.Write([]byte("payload"))
	digest := mac.Sum()
	if len(digest) != 32 {
		t.Fatalf("len(digest) = %d, want 32", len(digest))
	}
}

func Test_MidstateRoundTrip(t *testing.T) {
	key := []byte("midstate key")
	// partOne is exactly one SHA-256 block so the inner engine's trailing
	// buffer is empty (and its Midstate therefore block-aligned) after
	// absorbing it.
	partOne := bytes.Repeat([]byte("A"), 64)
	partTwo := []byte("part two")

	full := hmac.New(newSHA256, key)
	full.Write(partOne)
	full.Write(partTwo)
	want := full.Sum()

	primed := hmac.New(newSHA256, key)
	primed.Write(partOne)
	ms := primed.Midstate()

	resumed := hmac.New(newSHA256, key)
	if err := resumed.FromMidstate(ms); err != nil {
		t.Fatalf("FromMidstate: %v", err)
	}
	resumed.Write(partTwo)
	got := resumed.Sum()

	if !bytes.Equal(got, want) {
		t.Errorf("midstate round trip = %x, want %x", got, want)
	}
}
