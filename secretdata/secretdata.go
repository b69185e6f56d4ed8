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

// Package secretdata provides access-controlled structs to wrap
// sensitive data, such as AES key bytes.
//
// Wrapping key material in [Bytes] keeps it out of casual reach:
// accessing a copy of the raw bytes requires an
// [insecuresecretdataaccess.Token] value.
package secretdata

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/ctrkit/ctrkit-go/insecuresecretdataaccess"
)

// Bytes is a wrapper around []byte that requires a secret data access
// token to obtain a copy of the data.
//
// Bytes values are immutable: both construction and access copy the
// underlying slice, so no caller can mutate wrapped key material.
type Bytes struct {
	data []byte
}

// NewBytesFromRand returns a Bytes value wrapping size bytes of
// cryptographically strong random data.
func NewBytesFromRand(size uint32) (Bytes, error) {
	b := Bytes{data: make([]byte, size)}
	if _, err := rand.Read(b.data); err != nil {
		return Bytes{}, err
	}
	return b, nil
}

// NewBytesFromData creates a new Bytes populated with a copy of data.
//
// It requires an [insecuresecretdataaccess.Token] value, since the
// caller necessarily holds the raw bytes.
func NewBytesFromData(data []byte, token insecuresecretdataaccess.Token) Bytes {
	d := make([]byte, len(data))
	copy(d, data)
	return Bytes{data: d}
}

// Data returns a copy of the wrapped bytes.
//
// It requires an [insecuresecretdataaccess.Token] value to access the
// data.
func (b Bytes) Data(token insecuresecretdataaccess.Token) []byte {
	d := make([]byte, len(b.data))
	copy(d, b.data)
	return d
}

// Len returns the size of the wrapped bytes.
func (b Bytes) Len() int { return len(b.data) }

// Equal returns true if the two Bytes objects hold the same data.
//
// The comparison is done in constant time with respect to the
// contents; it returns immediately if the lengths differ.
func (b Bytes) Equal(other Bytes) bool {
	return subtle.ConstantTimeCompare(b.data, other.data) == 1
}
