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

// Package key defines interfaces for Key and Parameters types.
package key

// Parameters represents key parameters: everything about a key except
// its secret material.
type Parameters interface {
	// HasIDRequirement tells whether the key has an ID requirement, that
	// is, if a key generated with these parameters must have a given ID.
	//
	// Keys whose output depends on a key ID (for example by prefixing it
	// to the ciphertext) should require a unique ID and return true.
	HasIDRequirement() bool
	// Equal compares this parameters object with other.
	Equal(other Parameters) bool
}

// Key represents a cryptographic function: it contains all the
// information necessary to perform the cryptographic operation it is
// for, including the secret key material and its parameters.
type Key interface {
	// Parameters returns the parameters of this key.
	Parameters() Parameters
	// IDRequirement returns required to indicate if this key requires an
	// identifier. If it does, id will contain that identifier.
	IDRequirement() (id uint32, required bool)
	// Equal compares this key object with other.
	Equal(other Key) bool
}
