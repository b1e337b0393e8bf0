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
// github.com:SymbolNotFound/hashes/ripemd160/ripemd160_test.go

package ripemd160_test

import (
	"bytes"
	"testing"

	"github.com/SymbolNotFound/hashes/ripemd160"
)

// Test_Sum160 checks the standard RIPEMD-160 test vectors, including the
// ones in original_source: "a", "message digest", the lowercase alphabet,
// and a mixed-case alphanumeric string. The million-times-"1234567890"
// stress vector is intentionally excluded.
func Test_Sum160(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [20]byte
	}{
		{"empty", "", [20]byte{
			0x9c, 0x11, 0x85, 0xa5, 0xc5, 0xe9, 0xfc, 0x54, 0x61, 0x28,
			0x08, 0x97, 0x7e, 0xe8, 0xf5, 0x48, 0xb2, 0x25, 0x8d, 0x31}},
		{"a", "a", [20]byte{
			0x0b, 0xdc, 0x9d, 0x2d, 0x25, 0x6b, 0x3e, 0xe9, 0xda, 0xae,
			0x34, 0x7b, 0xe6, 0xf4, 0xdc, 0x83, 0x5a, 0x46, 0x7f, 0xfe}},
		{"abc", "abc", [20]byte{
			0x8e, 0xb2, 0x08, 0xf7, 0xe0, 0x5d, 0x98, 0x7a, 0x9b, 0x04,
			0x4a, 0x8e, 0x98, 0xc6, 0xb0, 0x87, 0xf1, 0x5a, 0x0b, 0xfc}},
		{"message digest", "message digest", [20]byte{
			0x5d, 0x06, 0x89, 0xef, 0x49, 0xd2, 0xfa, 0xe5, 0x72, 0xb8,
			0x81, 0xb1, 0x23, 0xa8, 0x5f, 0xfa, 0x21, 0x59, 0x5f, 0x36}},
		{"alphabet", "abcdefghijklmnopqrstuvwxyz", [20]byte{
			0xf7, 0x1c, 0x27, 0x10, 0x9c, 0x69, 0x2c, 0x1b, 0x56, 0xbb,
			0xdc, 0xeb, 0x5b, 0x9d, 0x28, 0x65, 0xb3, 0x70, 0x8d, 0xbc}},
		{"mixed alphanumeric", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", [20]byte{
			0xb0, 0xe2, 0x0b, 0x6e, 0x31, 0x16, 0x64, 0x02, 0x86, 0xed,
			0x3a, 0x87, 0xa5, 0x71, 0x30, 0x79, 0xb2, 0x1f, 0x51, 0x89}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ripemd160.Sum160([]byte(tt.input))
			if !bytes.Equal(got[:], tt.expected[:]) {
				t.Errorf("Sum160(%q) = %x, want %x", tt.input, got, tt.expected)
			}
		})
	}
}

func Test_ChunkedWrites(t *testing.T) {
	boundaries := []int{0, 1, 55, 56, 57, 63, 64, 65, 128}
	for _, n := range boundaries {
		msg := bytes.Repeat([]byte("z"), n)

		whole := ripemd160.New()
		whole.Write(msg)
		want := whole.Sum()

		for _, split := range []int{1, 3, 17, 64} {
			if split > len(msg) && len(msg) > 0 {
				continue
			}
			chunked := ripemd160.New()
			for i := 0; i < len(msg); i += split {
				end := i + split
				if end > len(msg) {
					end = len(msg)
				}
				chunked.Write(msg[i:end])
			}
			got := chunked.Sum()
			if !bytes.Equal(got, want) {
				t.Errorf("chunked write (len=%d, split=%d) = %x, want %x", n, split, got, want)
			}
		}
	}
}

func Test_MidstateRoundTrip(t *testing.T) {
	msg := bytes.Repeat([]byte("0123456789"), 10)
	firstBlock := msg[:64]
	rest := msg[64:]

	full := ripemd160.New()
	full.Write(msg)
	want := full.Sum()

	primed := ripemd160.New()
	primed.Write(firstBlock)
	ms := primed.Midstate()

	resumed := ripemd160.New()
	if err := resumed.FromMidstate(ms); err != nil {
		t.Fatalf("FromMidstate: %v", err)
	}
	resumed.Write(rest)
	got := resumed.Sum()

	if !bytes.Equal(got, want) {
		t.Errorf("midstate round trip = %x, want %x", got, want)
	}
}
