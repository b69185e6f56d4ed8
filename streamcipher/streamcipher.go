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

// Package streamcipher defines the interface implemented by streaming
// cipher primitives.
package streamcipher

// Cipher is a stateful, length-preserving, unauthenticated streaming
// cipher.
//
// Both directions are driven by call history: encrypting (or
// decrypting) a byte sequence in chunks yields the same output as a
// single call over the concatenation. Cipher provides confidentiality
// only; callers needing integrity must layer a MAC on the ciphertext.
//
// Implementations are not required to be safe for concurrent use.
type Cipher interface {
	// Encrypt encrypts plaintext, continuing this cipher's encryption
	// stream. The result has the same length as the input.
	Encrypt(plaintext []byte) []byte
	// Decrypt decrypts ciphertext, continuing this cipher's decryption
	// stream. The result has the same length as the input.
	Decrypt(ciphertext []byte) []byte
}
