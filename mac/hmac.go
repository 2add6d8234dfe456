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
	cryptosubtle "crypto/subtle"
	"fmt"

	"github.com/google/tink/go/mac/subtle"
)

const (
	hmacHashAlg   = "SHA256"
	hmacKeyLength = 32
	hmacTagLength = 32
)

// HMACSHA256Helper computes HMAC-SHA256 tags via Tink's subtle MAC.
type HMACSHA256Helper struct{}

// NewHMACSHA256Helper returns an HMAC-SHA256 helper with 256-bit keys and
// full-length 32-byte tags.
func NewHMACSHA256Helper() *HMACSHA256Helper {
	return &HMACSHA256Helper{}
}

var _ Helper = (*HMACSHA256Helper)(nil)

// ComputeMAC implements Helper.
func (h *HMACSHA256Helper) ComputeMAC(data, key []byte) ([]byte, error) {
	if len(key) != hmacKeyLength {
		return nil, fmt.Errorf("HMAC-SHA256 key must be %d bytes, got %d", hmacKeyLength, len(key))
	}
	prim, err := subtle.NewHMAC(hmacHashAlg, key, hmacTagLength)
	if err != nil {
		return nil, err
	}
	return prim.ComputeMAC(data)
}

// VerifyMAC implements Helper.
func (h *HMACSHA256Helper) VerifyMAC(data, key, tag []byte) bool {
	computed, err := h.ComputeMAC(data, key)
	if err != nil {
		return false
	}
	return cryptosubtle.ConstantTimeCompare(computed, tag) == 1
}

// KeyLength implements Helper.
func (h *HMACSHA256Helper) KeyLength() int { return hmacKeyLength }

// TagLength implements Helper.
func (h *HMACSHA256Helper) TagLength() int { return hmacTagLength }
