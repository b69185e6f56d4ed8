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

// Package keyderivation derives AES-CTR keys from input keying
// material.
//
// Derivation uses the RFC 5869 HKDF construction, so callers that
// share input keying material and derivation context obtain the same
// key deterministically, without this library ever generating or
// transporting key bytes itself.
package keyderivation

import (
	"fmt"

	"github.com/ctrkit/ctrkit-go/aesctr"
	"github.com/ctrkit/ctrkit-go/insecuresecretdataaccess"
	"github.com/ctrkit/ctrkit-go/secretdata"
	"github.com/ctrkit/ctrkit-go/subtle"
)

// DeriveKey derives an AES-CTR key of the size required by parameters
// from ikm via HKDF over the named hash function.
//
// salt and info follow RFC 5869: salt may be empty, and info binds the
// derived key to a context so that distinct contexts yield independent
// keys.
func DeriveKey(hashAlg string, ikm, salt, info []byte, parameters *aesctr.Parameters) (*aesctr.Key, error) {
	if parameters == nil {
		return nil, fmt.Errorf("keyderivation: parameters are nil")
	}
	okm, err := subtle.ComputeHKDF(hashAlg, ikm, salt, info, uint32(parameters.KeySizeInBytes()))
	if err != nil {
		return nil, fmt.Errorf("keyderivation: %v", err)
	}
	keyBytes := secretdata.NewBytesFromData(okm, insecuresecretdataaccess.Token{})
	return aesctr.NewKey(keyBytes, parameters)
}
