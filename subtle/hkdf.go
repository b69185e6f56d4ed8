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

// Package subtle provides low-level cryptographic helpers whose
// correct use requires care.
package subtle

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// GetHashFunc returns the constructor for the named hash function, or
// nil if the name is not supported.
func GetHashFunc(hashAlg string) func() hash.Hash {
	switch hashAlg {
	case "SHA1":
		return sha1.New
	case "SHA224":
		return sha256.New224
	case "SHA256":
		return sha256.New
	case "SHA384":
		return sha512.New384
	case "SHA512":
		return sha512.New
	default:
		return nil
	}
}

// GetHashDigestSize returns the digest size, in bytes, of the named
// hash function.
func GetHashDigestSize(hashAlg string) (uint32, error) {
	switch hashAlg {
	case "SHA1":
		return 20, nil
	case "SHA224":
		return 28, nil
	case "SHA256":
		return 32, nil
	case "SHA384":
		return 48, nil
	case "SHA512":
		return 64, nil
	default:
		return 0, fmt.Errorf("invalid hash algorithm %q", hashAlg)
	}
}

// ComputeHKDF derives length bytes of keying material from ikm using
// the RFC 5869 HKDF construction over the named hash function.
//
// An empty salt is replaced by a zero-filled salt of the digest size,
// as the RFC specifies. The output length must not exceed 255 times
// the digest size.
func ComputeHKDF(hashAlg string, ikm, salt, info []byte, length uint32) ([]byte, error) {
	digestSize, err := GetHashDigestSize(hashAlg)
	if err != nil {
		return nil, fmt.Errorf("hkdf: %s", err)
	}
	if length > 255*digestSize {
		return nil, fmt.Errorf("hkdf: output length %d too large for %s", length, hashAlg)
	}
	if len(salt) == 0 {
		salt = make([]byte, digestSize)
	}

	result := make([]byte, length)
	kdf := hkdf.New(GetHashFunc(hashAlg), ikm, salt, info)
	if _, err := io.ReadFull(kdf, result); err != nil {
		return nil, fmt.Errorf("hkdf: read failed: %v", err)
	}
	return result, nil
}
