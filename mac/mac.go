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

// Package mac adapts fixed-length message authentication codes to the
// contract the information-checking layer consumes.
package mac

// Helper computes and verifies fixed-length MAC tags. A given helper
// always produces tags of TagLength bytes and expects keys of KeyLength
// bytes.
type Helper interface {
	// ComputeMAC returns the tag over data under key.
	ComputeMAC(data, key []byte) ([]byte, error)
	// VerifyMAC reports whether tag is valid for data under key. It must
	// compare in constant time.
	VerifyMAC(data, key, tag []byte) bool
	// KeyLength returns the key size in bytes.
	KeyLength() int
	// TagLength returns the tag size in bytes.
	TagLength() int
}
