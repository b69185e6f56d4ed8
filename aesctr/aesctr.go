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

// Package aesctr provides a streaming AES-CTR cipher.
//
// A [Cipher] holds one encryption stream and one decryption stream,
// both seeded from the same key and IV but fully independent: each
// direction advances only with the bytes it has processed, and
// chunking never changes the output. Decrypting the bytes produced by
// the encryption stream, in order, reproduces the original plaintext.
//
// AES-CTR provides confidentiality only. It is malleable: without a
// MAC over the ciphertext an attacker can flip plaintext bits
// undetected. It is also the caller's responsibility never to reuse an
// IV with the same key across encryption streams; doing so reuses
// key-stream and breaks confidentiality.
package aesctr

import (
	"crypto/aes"
	"fmt"

	"github.com/ctrkit/ctrkit-go/insecuresecretdataaccess"
	"github.com/ctrkit/ctrkit-go/internal/ctr"
	"github.com/ctrkit/ctrkit-go/streamcipher"
)

// IVSize is the size, in bytes, of the IVs this package accepts. The
// IV seeds a full 16-byte AES-CTR counter block.
const IVSize = ctr.BlockSize

// Cipher is a streaming AES-CTR cipher handle.
//
// A Cipher is not safe for concurrent use: each call mutates the
// counter and residual key-stream of the direction it drives. Distinct
// Cipher values share no state and may be used concurrently.
type Cipher struct {
	parameters *Parameters
	encrypt    *ctr.Stream
	decrypt    *ctr.Stream
}

var _ streamcipher.Cipher = (*Cipher)(nil)

// New returns a streaming AES-CTR cipher for the given key and IV.
//
// The key must be 16 or 32 bytes, selecting AES-128 or AES-256; any
// other length fails with an error wrapping [ErrInvalidKeySize]. The
// IV must be exactly 16 bytes and is validated after the key; a wrong
// length fails with an error wrapping [ErrInvalidIVSize].
func New(key, iv []byte) (*Cipher, error) {
	parameters, err := NewParameters(len(key))
	if err != nil {
		return nil, err
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("aesctr: %w: got %d, want %d", ErrInvalidIVSize, len(iv), IVSize)
	}
	encrypt, err := newStream(key, iv)
	if err != nil {
		return nil, err
	}
	decrypt, err := newStream(key, iv)
	if err != nil {
		return nil, err
	}
	return &Cipher{parameters: parameters, encrypt: encrypt, decrypt: decrypt}, nil
}

// NewFromKey returns a streaming AES-CTR cipher for the given key and
// IV. The IV must be exactly 16 bytes.
func NewFromKey(k *Key, iv []byte) (*Cipher, error) {
	if k == nil {
		return nil, fmt.Errorf("aesctr: key is nil")
	}
	return New(k.KeyBytes().Data(insecuresecretdataaccess.Token{}), iv)
}

// newStream builds one direction's CTR stream with its own AES block
// instance, so the two directions never share state.
func newStream(key, iv []byte) (*ctr.Stream, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aesctr: failed to create block cipher: %v", err)
	}
	return ctr.NewStream(block, iv)
}

// Encrypt encrypts plaintext, continuing this cipher's encryption
// stream where the previous Encrypt call left off. The returned
// ciphertext has the same length as the input; an empty input returns
// an empty slice and leaves the stream untouched.
func (c *Cipher) Encrypt(plaintext []byte) []byte {
	ciphertext := make([]byte, len(plaintext))
	c.encrypt.XORKeyStream(ciphertext, plaintext)
	return ciphertext
}

// Decrypt decrypts ciphertext, continuing this cipher's decryption
// stream where the previous Decrypt call left off. The returned
// plaintext has the same length as the input; an empty input returns
// an empty slice and leaves the stream untouched.
func (c *Cipher) Decrypt(ciphertext []byte) []byte {
	plaintext := make([]byte, len(ciphertext))
	c.decrypt.XORKeyStream(plaintext, ciphertext)
	return plaintext
}

// Parameters returns the parameters of the key this cipher was built
// with.
func (c *Cipher) Parameters() *Parameters { return c.parameters }
