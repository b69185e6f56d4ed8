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

package aesctr

import (
	"fmt"

	"github.com/ctrkit/ctrkit-go/key"
	"github.com/ctrkit/ctrkit-go/secretdata"
)

// Key represents an AES-CTR key.
type Key struct {
	keyBytes   secretdata.Bytes
	parameters *Parameters
}

var _ key.Key = (*Key)(nil)

// NewKey creates a new AES-CTR key from key material and parameters.
//
// The key material length must match parameters.KeySizeInBytes().
func NewKey(keyBytes secretdata.Bytes, parameters *Parameters) (*Key, error) {
	if parameters == nil || parameters.KeySizeInBytes() == 0 {
		return nil, fmt.Errorf("aesctr.NewKey: invalid parameters")
	}
	if keyBytes.Len() != parameters.KeySizeInBytes() {
		return nil, fmt.Errorf("aesctr.NewKey: key length = %d, want %d", keyBytes.Len(), parameters.KeySizeInBytes())
	}
	return &Key{keyBytes: keyBytes, parameters: parameters}, nil
}

// KeyBytes returns the key material.
func (k *Key) KeyBytes() secretdata.Bytes { return k.keyBytes }

// Parameters returns the parameters of this key.
func (k *Key) Parameters() key.Parameters { return k.parameters }

// IDRequirement returns required to indicate if this key requires an
// identifier. AES-CTR keys are raw and never do, so id is always 0 and
// required always false.
func (k *Key) IDRequirement() (uint32, bool) { return 0, false }

// Equal compares this key object with other.
//
// The key material comparison is constant time.
func (k *Key) Equal(other key.Key) bool {
	that, ok := other.(*Key)
	return ok && k.parameters.Equal(that.parameters) && k.keyBytes.Equal(that.keyBytes)
}
