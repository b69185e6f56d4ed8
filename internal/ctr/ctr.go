// Copyright 2024 The CTRKit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ctr implements the Counter (CTR) mode of operation over a
// 16-byte block cipher.
//
// CTR mode turns a block cipher into a stream cipher by encrypting an
// incrementing counter and XORing the resulting key-stream with the
// input. See NIST SP 800-38A, pp 13-15.
package ctr

import (
	"crypto/cipher"
	"fmt"
)

// BlockSize is the block size, in bytes, of the ciphers this package
// accepts. The counter block and the IV are both exactly this long.
const BlockSize = 16

// Stream is a single direction of a CTR-mode stream.
//
// The counter block is treated as a single 128-bit big-endian integer.
// It is seeded verbatim from the IV, so the first key-stream block is
// the block encryption of the IV itself, and it is incremented once
// per 16 bytes of key-stream produced. Unused key-stream bytes from a
// partially consumed block are carried between calls, which makes the
// output independent of how callers chunk their input.
//
// A Stream is not safe for concurrent use: every call to XORKeyStream
// mutates the counter and the residual key-stream offset.
type Stream struct {
	block   cipher.Block
	counter [BlockSize]byte

	// out holds the key-stream block for the current counter value;
	// outUsed bytes of it have already been consumed. outUsed ==
	// BlockSize means the residual buffer is empty.
	out     [BlockSize]byte
	outUsed int
}

// NewStream returns a Stream producing the CTR key-stream of block
// seeded with iv. The block cipher must have a 16-byte block size and
// the IV must be exactly 16 bytes.
func NewStream(block cipher.Block, iv []byte) (*Stream, error) {
	if bs := block.BlockSize(); bs != BlockSize {
		return nil, fmt.Errorf("ctr: block size is %d, want %d", bs, BlockSize)
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("ctr: IV length is %d, want %d", len(iv), BlockSize)
	}
	s := &Stream{block: block, outUsed: BlockSize}
	copy(s.counter[:], iv)
	return s, nil
}

// refill produces the key-stream block for the current counter value
// and advances the counter.
func (s *Stream) refill() {
	s.block.Encrypt(s.out[:], s.counter[:])
	incrementCounter(s.counter[:])
	s.outUsed = 0
}

// XORKeyStream XORs each byte of src with the next byte of the
// key-stream and writes the result to dst. Multiple calls behave as if
// the concatenation of the src buffers was passed in a single run.
// Zero-length input leaves the stream state untouched.
//
// Dst must be at least as long as src and must overlap src entirely or
// not at all.
func (s *Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("ctr: output buffer smaller than input")
	}
	for len(src) > 0 {
		if s.outUsed == BlockSize {
			s.refill()
		}
		n := xorBytes(dst, src, s.out[s.outUsed:])
		dst = dst[n:]
		src = src[n:]
		s.outUsed += n
	}
}

// incrementCounter adds 1 to ctr interpreted as a big-endian unsigned
// integer. An all-0xFF counter wraps to all-zero; wraparound is the
// CTR-standard behavior, not an error.
func incrementCounter(ctr []byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			break
		}
	}
}

// xorBytes sets dst[i] = a[i] ^ b[i] for i < min(len(a), len(b)) and
// returns the number of bytes written.
func xorBytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}
