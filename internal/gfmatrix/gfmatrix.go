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

// Package gfmatrix implements matrix operations over a finite field.
package gfmatrix

import (
	"errors"
	"fmt"

	"github.com/veilshare/veilshare/internal/gf"
)

// ErrSingular is returned by Inverse when the matrix has no inverse.
var ErrSingular = errors.New("matrix is singular")

// Matrix is a row-major matrix of field elements bound to a field.
type Matrix struct {
	rows  [][]int
	field gf.Field
}

// New creates a matrix from row-major data. The rows are not copied; the
// caller must not modify them afterwards.
func New(rows [][]int, field gf.Field) *Matrix {
	return &Matrix{rows: rows, field: field}
}

// NumRows returns the number of rows.
func (m *Matrix) NumRows() int {
	return len(m.rows)
}

// RightMultiply computes the matrix-vector product M * vec.
// The vector length must equal the number of columns.
func (m *Matrix) RightMultiply(vec []int) ([]int, error) {
	if len(m.rows) == 0 || len(vec) != len(m.rows[0]) {
		return nil, fmt.Errorf("when matrix is MxN, vector must be Nx1 (N = %d, got %d)", len(m.rows[0]), len(vec))
	}
	f := m.field
	result := make([]int, len(m.rows))
	for i, row := range m.rows {
		tmp := 0
		for j, e := range row {
			tmp = f.Add(tmp, f.Mult(e, vec[j]))
		}
		result[i] = tmp
	}
	return result, nil
}

// Inverse computes the inverse via Gauss-Jordan elimination. A singular
// matrix yields ErrSingular.
func (m *Matrix) Inverse() (*Matrix, error) {
	return m.invert(false)
}

// InverseElimDepRows behaves like Inverse, except that when a pivot column
// holds no usable non-zero element the dependent row (and its column) is
// dropped and elimination continues on the reduced submatrix. The result
// is the inverse of that submatrix; callers detect the reduction through
// NumRows.
func (m *Matrix) InverseElimDepRows() (*Matrix, error) {
	return m.invert(true)
}

func (m *Matrix) invert(elimDepRows bool) (*Matrix, error) {
	f := m.field
	dim := len(m.rows)
	for _, row := range m.rows {
		if len(row) != dim {
			return nil, fmt.Errorf("matrix is %dx%d, must be square", dim, len(row))
		}
	}

	// work on a copy of the matrix next to an identity matrix and apply
	// every reduction step to both
	work := make([][]int, dim)
	inv := make([][]int, dim)
	for i := range m.rows {
		work[i] = append([]int(nil), m.rows[i]...)
		inv[i] = make([]int, dim)
		inv[i][i] = 1
	}

	for i := 0; i < dim; i++ {
		if work[i][i] == 0 {
			// find a non-zero element in the same column and swap rows
			swapped := false
			for j := i + 1; j < dim; j++ {
				if work[j][i] != 0 {
					work[i], work[j] = work[j], work[i]
					inv[i], inv[j] = inv[j], inv[i]
					swapped = true
					break
				}
			}
			if !swapped {
				if !elimDepRows {
					return nil, ErrSingular
				}
				// the row is dependent: eliminate it together with the
				// corresponding column and retry the same pivot index
				work = dropRowCol(work, i)
				inv = dropRowCol(inv, i)
				dim--
				i--
				continue
			}
		}

		// normalize the pivot row
		invCoef, err := f.Inverse(work[i][i])
		if err != nil {
			return nil, err
		}
		scaleRow(f, work[i], invCoef)
		scaleRow(f, inv[i], invCoef)

		// eliminate column i from all other rows
		for j := 0; j < dim; j++ {
			if j == i || work[j][i] == 0 {
				continue
			}
			coef := work[j][i]
			multAndSubtract(f, work[j], work[i], coef)
			multAndSubtract(f, inv[j], inv[i], coef)
		}
	}

	return New(inv, f), nil
}

func scaleRow(f gf.Field, row []int, coef int) {
	for i := range row {
		row[i] = f.Mult(row[i], coef)
	}
}

// multAndSubtract computes row -= normalized * coef element-wise.
func multAndSubtract(f gf.Field, row, normalized []int, coef int) {
	for i := range row {
		row[i] = f.Sub(row[i], f.Mult(normalized[i], coef))
	}
}

func dropRowCol(rows [][]int, i int) [][]int {
	out := make([][]int, 0, len(rows)-1)
	for r, row := range rows {
		if r == i {
			continue
		}
		out = append(out, append(row[:i:i], row[i+1:]...))
	}
	return out
}
