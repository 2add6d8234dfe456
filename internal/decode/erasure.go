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
	"fmt"

	"github.com/veilshare/veilshare/internal/gf"
	"github.com/veilshare/veilshare/internal/gfmatrix"
)

// ErasureDecoder interpolates a polynomial of degree < k through k known
// good points. It assumes the y-values are correct; corrupted values
// produce a wrong polynomial, not an error.
type ErasureDecoder struct {
	inverted *gfmatrix.Matrix
	field    gf.Field
	k        int
}

// NewErasureDecoder creates a decoder for the first k of the given
// x-coordinates.
func NewErasureDecoder(x []int, k int, field gf.Field) (*ErasureDecoder, error) {
	if err := validateXValues(x, k); err != nil {
		return nil, err
	}

	// Vandermonde-style matrix: row i is [1, x_i, x_i^2, ..., x_i^(k-1)],
	// so that matrix * coefficients = y-values.
	rows := make([][]int, k)
	for i := 0; i < k; i++ {
		rows[i] = make([]int, k)
		for j := 0; j < k; j++ {
			rows[i][j] = field.Pow(x[i], j)
		}
	}

	// dependent rows (duplicated x-values) are eliminated rather than
	// failing construction; Decode surfaces the reduction as unsolvable
	inverted, err := gfmatrix.New(rows, field).InverseElimDepRows()
	if err != nil {
		return nil, err
	}

	return &ErasureDecoder{inverted: inverted, field: field, k: k}, nil
}

// Decode solves for the polynomial coefficients and returns its
// evaluations at offset, ..., offset+k-1.
func (d *ErasureDecoder) Decode(y []int, offset int) ([]int, error) {
	if len(y) < d.k {
		return nil, fmt.Errorf("%w: need %d y-values, got %d", ErrUnsolvable, d.k, len(y))
	}
	if d.inverted.NumRows() != d.k {
		return nil, fmt.Errorf("%w: only %d of %d equations are independent", ErrUnsolvable, d.inverted.NumRows(), d.k)
	}
	coeffs, err := d.inverted.RightMultiply(y[:d.k])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsolvable, err)
	}
	return evaluations(d.field, coeffs, offset, d.k), nil
}

// ErasureFactory builds ErasureDecoders over a shared field.
type ErasureFactory struct {
	field gf.Field
}

// NewErasureFactory returns a factory producing erasure decoders.
func NewErasureFactory(field gf.Field) *ErasureFactory {
	return &ErasureFactory{field: field}
}

// CreateDecoder implements Factory.
func (f *ErasureFactory) CreateDecoder(x []int, k int) (Decoder, error) {
	return NewErasureDecoder(x, k, f.field)
}
