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
)

// ShortenedHelper truncates another helper's tags to their first t bytes.
// Truncation only ever shortens: a target length at or above the inner tag
// length leaves tags untouched.
type ShortenedHelper struct {
	inner     Helper
	tagLength int
}

// NewShortenedHelper wraps inner so that tags are truncated to length t.
func NewShortenedHelper(inner Helper, t int) (*ShortenedHelper, error) {
	if t < 1 {
		return nil, fmt.Errorf("truncated tag length must be positive, got %d", t)
	}
	if t > inner.TagLength() {
		t = inner.TagLength()
	}
	return &ShortenedHelper{inner: inner, tagLength: t}, nil
}

var _ Helper = (*ShortenedHelper)(nil)

// ComputeMAC implements Helper.
func (h *ShortenedHelper) ComputeMAC(data, key []byte) ([]byte, error) {
	tag, err := h.inner.ComputeMAC(data, key)
	if err != nil {
		return nil, err
	}
	return tag[:h.tagLength], nil
}

// VerifyMAC implements Helper.
func (h *ShortenedHelper) VerifyMAC(data, key, tag []byte) bool {
	computed, err := h.ComputeMAC(data, key)
	if err != nil {
		return false
	}
	return cryptosubtle.ConstantTimeCompare(computed, tag) == 1
}

// KeyLength implements Helper.
func (h *ShortenedHelper) KeyLength() int { return h.inner.KeyLength() }

// TagLength implements Helper.
func (h *ShortenedHelper) TagLength() int { return h.tagLength }
