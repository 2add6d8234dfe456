// Copyright 2026 the Veilshare Authors
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

package mac

import (
	"fmt"

	"golang.org/x/crypto/poly1305"
)

// Poly1305Helper computes Poly1305 tags with 256-bit one-time keys.
//
// Poly1305 keys must never authenticate more than one message; the
// information-checking layer satisfies this by drawing a fresh key per
// (holder, peer) pair.
type Poly1305Helper struct{}

// NewPoly1305Helper returns a Poly1305 helper.
func NewPoly1305Helper() *Poly1305Helper {
	return &Poly1305Helper{}
}

var _ Helper = (*Poly1305Helper)(nil)

// ComputeMAC implements Helper.
func (h *Poly1305Helper) ComputeMAC(data, key []byte) ([]byte, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("Poly1305 key must be 32 bytes, got %d", len(key))
	}
	var k [32]byte
	copy(k[:], key)
	var tag [poly1305.TagSize]byte
	poly1305.Sum(&tag, data, &k)
	return tag[:], nil
}

// VerifyMAC implements Helper.
func (h *Poly1305Helper) VerifyMAC(data, key, tag []byte) bool {
	if len(key) != 32 || len(tag) != poly1305.TagSize {
		return false
	}
	var k [32]byte
	copy(k[:], key)
	var t [poly1305.TagSize]byte
	copy(t[:], tag)
	return poly1305.Verify(&t, data, &k)
}

// KeyLength implements Helper.
func (h *Poly1305Helper) KeyLength() int { return 32 }

// TagLength implements Helper.
func (h *Poly1305Helper) TagLength() int { return poly1305.TagSize }
