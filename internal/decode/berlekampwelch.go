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

package decode

import (
	"errors"
	"fmt"

	"github.com/veilshare/veilshare/internal/gf"
	"github.com/veilshare/veilshare/internal/gfmatrix"
)

// BerlekampWelchDecoder recovers a polynomial of degree < k from m
// evaluation points of which up to (m-k)/2 may be corrupted. It solves the
// Berlekamp-Welch linear system relating an error-locator polynomial E and
// a masked message polynomial Q through E(x_i) * y_i = Q(x_i), then
// recovers the message as Q / E.
type BerlekampWelchDecoder struct {
	x     []int
	k     int
	field gf.Field
}

// NewBerlekampWelchDecoder creates a decoder over the given x-coordinates.
func NewBerlekampWelchDecoder(x []int, k int, field gf.Field) (*BerlekampWelchDecoder, error) {
	if err := validateXValues(x, k); err != nil {
		return nil, err
	}
	return &BerlekampWelchDecoder{x: append([]int(nil), x...), k: k, field: field}, nil
}

// Decode corrects up to (m-k)/2 corrupted y-values and returns the
// recovered polynomial evaluated at offset, ..., offset+k-1.
func (d *BerlekampWelchDecoder) Decode(y []int, offset int) ([]int, error) {
	if len(y) != len(d.x) {
		return nil, fmt.Errorf("%w: got %d y-values for %d x-coordinates", ErrUnsolvable, len(y), len(d.x))
	}

	// When fewer errors occurred than assumed, the system is rank
	// deficient and the matrix singular; assuming one error less restores
	// a unique solution. With e equal to the actual error count the
	// solution is the exact error locator, so the loop terminates.
	maxErrors := (len(d.x) - d.k) / 2
	for e := maxErrors; e >= 0; e-- {
		coeffs, err := d.solve(y, e)
		if errors.Is(err, gfmatrix.ErrSingular) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return evaluations(d.field, coeffs, offset, d.k), nil
	}
	return nil, fmt.Errorf("%w: no consistent error locator found", ErrUnsolvable)
}

// solve sets up and solves the Berlekamp-Welch system for exactly e
// assumed errors. Unknowns are the k+e coefficients of Q followed by the
// e low-order coefficients of the monic error locator E.
func (d *BerlekampWelchDecoder) solve(y []int, e int) ([]int, error) {
	f := d.field
	dim := d.k + 2*e

	rows := make([][]int, dim)
	rhs := make([]int, dim)
	for i := 0; i < dim; i++ {
		xi, yi := d.x[i], y[i]
		rows[i] = make([]int, dim)
		// Q(x_i) - y_i * (E(x_i) - x_i^e) = y_i * x_i^e; subtraction and
		// addition coincide over GF(2^8), so all unknowns sit on one side.
		for j := 0; j < d.k+e; j++ {
			rows[i][j] = f.Pow(xi, j)
		}
		for j := 0; j < e; j++ {
			rows[i][d.k+e+j] = f.Mult(yi, f.Pow(xi, j))
		}
		rhs[i] = f.Mult(yi, f.Pow(xi, e))
	}

	inverted, err := gfmatrix.New(rows, f).Inverse()
	if err != nil {
		return nil, err
	}
	unknowns, err := inverted.RightMultiply(rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsolvable, err)
	}

	q := unknowns[:d.k+e]
	locator := append(append([]int(nil), unknowns[d.k+e:]...), 1)

	quot, rem, err := gf.PolyDiv(f, q, locator)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsolvable, err)
	}
	if gf.Degree(rem) >= 0 {
		return nil, fmt.Errorf("%w: too many corrupted values", ErrUnsolvable)
	}
	if gf.Degree(quot) >= d.k {
		return nil, fmt.Errorf("%w: recovered polynomial exceeds degree %d", ErrUnsolvable, d.k-1)
	}
	return quot, nil
}

// BerlekampWelchFactory builds BerlekampWelchDecoders over a shared field.
type BerlekampWelchFactory struct {
	field gf.Field
}

// NewBerlekampWelchFactory returns a factory producing error-correcting
// decoders.
func NewBerlekampWelchFactory(field gf.Field) *BerlekampWelchFactory {
	return &BerlekampWelchFactory{field: field}
}

// CreateDecoder implements Factory.
func (f *BerlekampWelchFactory) CreateDecoder(x []int, k int) (Decoder, error) {
	return NewBerlekampWelchDecoder(x, k, f.field)
}
