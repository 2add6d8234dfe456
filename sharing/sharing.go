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

// Package sharing implements t-of-n secret sharing of arbitrary-size
// secrets over a finite field. It is based on the Lagrange interpolation
// theorem: k points uniquely determine a polynomial of degree less than k,
// and fewer than k points determine nothing about its constant term.
//
// This scheme is secure under the following assumptions:
//   - The scheme requires a trusted dealer to generate the shares.
//     Participants must trust the dealer with access to the secret.
//   - A passive adversary may observe up to k - 1 shares without learning
//     anything about the secret. Adversaries who actively contribute
//     corrupted shares to a reconstruction are handled by the
//     information-checking layer, not by this package.
package sharing

import (
	"errors"
	"fmt"

	"github.com/veilshare/veilshare/shares"
)

// ErrWeakSecurity is returned when a parameter combination is
// cryptographically insufficient.
var ErrWeakSecurity = errors.New("weak security parameters")

// ReconstructionError is returned when a secret cannot be recovered from
// the presented shares. It always carries a reason; when the failure is a
// lack of usable shares, ValidShares holds how many were usable.
type ReconstructionError struct {
	Reason      string
	ValidShares int
}

func (e *ReconstructionError) Error() string {
	return "reconstruction failed: " + e.Reason
}

// SecretSharing splits a secret byte-string into shares and reconstructs
// it from a sufficient subset.
type SecretSharing interface {
	// Share splits data into N() shares.
	Share(data []byte) ([]shares.Share, error)
	// Reconstruct recovers the secret from at least K() shares.
	Reconstruct(sh []shares.Share) ([]byte, error)
	// N returns the total number of shares per dealing.
	N() int
	// K returns the reconstruction threshold.
	K() int
}

func validateParameters(n, k int) error {
	if k <= 1 {
		return fmt.Errorf("%w: threshold %d does not hide the secret", ErrWeakSecurity, k)
	}
	if k > n {
		return fmt.Errorf("%w: threshold %d exceeds share count %d", ErrWeakSecurity, k, n)
	}
	if n > 255 {
		return fmt.Errorf("%w: at most 255 shares fit the field, got %d", ErrWeakSecurity, n)
	}
	return nil
}
