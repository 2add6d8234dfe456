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

package sharing

import (
	"fmt"

	"github.com/veilshare/veilshare/internal/decode"
	"github.com/veilshare/veilshare/internal/gf"
	"github.com/veilshare/veilshare/randsource"
	"github.com/veilshare/veilshare/shares"
)

// ShamirPSS is Shamir's perfect secret sharing scheme. Every secret byte
// is shared through its own random polynomial of degree k-1 whose constant
// term is the byte; share j holds the polynomial values at x = j.
type ShamirPSS struct {
	n, k    int
	rng     randsource.RandomSource
	factory decode.Factory
	field   gf.Field
}

// NewShamirPSS creates a scheme with an erasure decoder, which is
// sufficient when every presented share is trustworthy.
func NewShamirPSS(n, k int, rng randsource.RandomSource) (*ShamirPSS, error) {
	return NewShamirPSSWithDecoder(n, k, rng, decode.NewErasureFactory(gf.NewGF256()))
}

// NewShamirPSSWithDecoder creates a scheme reconstructing through the
// given decoder family.
func NewShamirPSSWithDecoder(n, k int, rng randsource.RandomSource, factory decode.Factory) (*ShamirPSS, error) {
	if err := validateParameters(n, k); err != nil {
		return nil, err
	}
	return &ShamirPSS{n: n, k: k, rng: rng, factory: factory, field: gf.NewGF256()}, nil
}

var _ SecretSharing = (*ShamirPSS)(nil)

// N implements SecretSharing.
func (s *ShamirPSS) N() int { return s.n }

// K implements SecretSharing.
func (s *ShamirPSS) K() int { return s.k }

func (s *ShamirPSS) String() string {
	return fmt.Sprintf("ShamirPSS(%d/%d)", s.n, s.k)
}

// Share implements SecretSharing. Share ids are 1..n; zero is excluded
// because the polynomials evaluate to the secret at zero.
func (s *ShamirPSS) Share(data []byte) ([]shares.Share, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: secret must not be empty", shares.ErrInvalidParameters)
	}

	out := make([]shares.Share, s.n)
	yVals := make([][]byte, s.n)
	for i := 0; i < s.n; i++ {
		share, err := shares.NewShamirShare(byte(i+1), make([]byte, len(data)))
		if err != nil {
			// ids 1..n can never trip the constructor
			panic(fmt.Sprintf("share creation failed: %v", err))
		}
		out[i] = share
		yVals[i] = share.Y()
	}

	coeffs := make([]int, s.k)
	for i, secretByte := range data {
		// a fresh polynomial per byte: random non-zero coefficients with
		// the secret byte as constant term
		s.rng.FillBytesAsInts(coeffs[1:])
		coeffs[0] = int(secretByte)

		for j := range out {
			yVals[j][i] = byte(s.field.EvaluateAt(coeffs, j+1))
		}
	}
	return out, nil
}

// Reconstruct implements SecretSharing.
func (s *ShamirPSS) Reconstruct(sh []shares.Share) ([]byte, error) {
	if len(sh) < s.k {
		return nil, &ReconstructionError{
			Reason:      fmt.Sprintf("got %d shares, threshold is %d", len(sh), s.k),
			ValidShares: len(sh),
		}
	}

	xVals := make([]int, len(sh))
	for i, share := range sh {
		xVals[i] = int(share.ID())
	}
	length := len(sh[0].Y())
	for _, share := range sh {
		if len(share.Y()) != length {
			return nil, &ReconstructionError{Reason: "shares have different lengths", ValidShares: len(sh)}
		}
	}

	decoder, err := s.factory.CreateDecoder(xVals, s.k)
	if err != nil {
		return nil, &ReconstructionError{Reason: err.Error(), ValidShares: len(sh)}
	}

	result := make([]byte, length)
	yVals := make([]int, len(sh))
	for i := range result {
		for j, share := range sh {
			yVals[j] = int(share.Y()[i])
		}
		decoded, err := decoder.Decode(yVals, 0)
		if err != nil {
			return nil, &ReconstructionError{Reason: fmt.Sprintf("byte %d: %v", i, err), ValidShares: len(sh)}
		}
		result[i] = byte(decoded[0])
	}
	return result, nil
}
