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
	"errors"
	"fmt"

	"github.com/ctrkit/ctrkit-go/key"
)

// Errors returned when constructing AES-CTR parameters or ciphers.
var (
	// ErrInvalidKeySize is returned when the key is not 16 or 32 bytes.
	ErrInvalidKeySize = errors.New("invalid AES key size")
	// ErrInvalidIVSize is returned when the IV is not exactly 16 bytes.
	ErrInvalidIVSize = errors.New("invalid IV size")
)

// Variant identifies the AES key schedule an AES-CTR key selects.
//
// The variant is determined entirely by the key length: 16-byte keys
// use AES-128, 32-byte keys use AES-256. There is no other dimension
// of parameterization.
type Variant int

const (
	// VariantUnknown is the default and invalid value of Variant.
	VariantUnknown Variant = iota
	// VariantAES128 selects the AES-128 key schedule (16-byte keys).
	VariantAES128
	// VariantAES256 selects the AES-256 key schedule (32-byte keys).
	VariantAES256
)

func (variant Variant) String() string {
	switch variant {
	case VariantAES128:
		return "AES128"
	case VariantAES256:
		return "AES256"
	default:
		return "UNKNOWN"
	}
}

// KeySizeInBytes returns the key size the variant requires, or 0 for
// VariantUnknown.
func (variant Variant) KeySizeInBytes() int {
	switch variant {
	case VariantAES128:
		return 16
	case VariantAES256:
		return 32
	default:
		return 0
	}
}

// VariantForKeySize maps a key size to the variant it selects.
// Sizes other than 16 and 32 fail with [ErrInvalidKeySize].
func VariantForKeySize(keySizeInBytes int) (Variant, error) {
	switch keySizeInBytes {
	case 16:
		return VariantAES128, nil
	case 32:
		return VariantAES256, nil
	default:
		return VariantUnknown, fmt.Errorf("aesctr: %w: got %d, want 16 or 32", ErrInvalidKeySize, keySizeInBytes)
	}
}

// Parameters specifies an AES-CTR key.
type Parameters struct {
	keySizeInBytes int
	variant        Variant
}

var _ key.Parameters = (*Parameters)(nil)

// NewParameters creates parameters for an AES-CTR key of the given
// size. The key size must be 16 or 32 bytes.
func NewParameters(keySizeInBytes int) (*Parameters, error) {
	variant, err := VariantForKeySize(keySizeInBytes)
	if err != nil {
		return nil, err
	}
	return &Parameters{keySizeInBytes: keySizeInBytes, variant: variant}, nil
}

// KeySizeInBytes returns the size of the key in bytes.
func (p *Parameters) KeySizeInBytes() int { return p.keySizeInBytes }

// IVSizeInBytes returns the size of the IV in bytes. AES-CTR counter
// blocks occupy a full AES block, so this is always 16.
func (p *Parameters) IVSizeInBytes() int { return IVSize }

// Variant returns the AES key schedule variant the parameters select.
func (p *Parameters) Variant() Variant { return p.variant }

// HasIDRequirement tells whether keys with these parameters require an
// identifier. AES-CTR keys are raw: their output carries no key ID
// prefix, so this is always false.
func (p *Parameters) HasIDRequirement() bool { return false }

// Equal compares this parameters object with other.
func (p *Parameters) Equal(other key.Parameters) bool {
	that, ok := other.(*Parameters)
	return ok && p.keySizeInBytes == that.keySizeInBytes && p.variant == that.variant
}
