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

// Package decode implements the decoders used to recover a shared
// polynomial from its evaluation points: plain erasure decoding for
// missing shares and Berlekamp-Welch decoding for corrupted ones.
package decode

import (
	"errors"
	"fmt"

	"github.com/veilshare/veilshare/internal/gf"
)

// ErrUnsolvable is returned when the linear system behind a decode has no
// solution, i.e. the provided points do not lie on a polynomial of the
// expected degree.
var ErrUnsolvable = errors.New("system is unsolvable")

// Decoder recovers a polynomial of degree < k from y-values matching the
// x-coordinates the decoder was created with.
type Decoder interface {
	// Decode interpolates the polynomial through the given y-values and
	// returns its evaluations at offset, offset+1, ..., offset+k-1.
	// Decoding with offset 0 yields the constant term first.
	Decode(y []int, offset int) ([]int, error)
}

// Factory builds decoders sharing one field configuration.
type Factory interface {
	// CreateDecoder binds a decoder to the x-coordinates of the shares
	// taking part in a reconstruction and the threshold k.
	CreateDecoder(x []int, k int) (Decoder, error)
}

func validateXValues(x []int, k int) error {
	if k < 1 {
		return fmt.Errorf("threshold must be positive, got %d", k)
	}
	if len(x) < k {
		return fmt.Errorf("need at least k = %d x-coordinates, got %d", k, len(x))
	}
	for i, xi := range x {
		if xi == 0 {
			return fmt.Errorf("x-coordinate at index %d is zero", i)
		}
	}
	return nil
}

// evaluations returns coeffs evaluated at offset, ..., offset+k-1.
func evaluations(f gf.Field, coeffs []int, offset, k int) []int {
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = f.EvaluateAt(coeffs, offset+i)
	}
	return out
}
