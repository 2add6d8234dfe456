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

package gfmatrix_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/veilshare/veilshare/internal/gf"
	"github.com/veilshare/veilshare/internal/gfmatrix"
)

func field() gf.Field { return gf.NewGF256() }

// vandermonde builds the rows [1, x_i, x_i^2, ...] used by the decoders;
// distinct x-values make it non-singular.
func vandermonde(f gf.Field, x []int) [][]int {
	rows := make([][]int, len(x))
	for i, xi := range x {
		rows[i] = make([]int, len(x))
		for j := range x {
			rows[i][j] = f.Pow(xi, j)
		}
	}
	return rows
}

func multiply(f gf.Field, a, b *gfmatrix.Matrix, dim int, t *testing.T) [][]int {
	t.Helper()
	// compute a*b column by column through RightMultiply
	out := make([][]int, dim)
	for i := range out {
		out[i] = make([]int, dim)
	}
	for col := 0; col < dim; col++ {
		unit := make([]int, dim)
		unit[col] = 1
		bCol, err := b.RightMultiply(unit)
		if err != nil {
			t.Fatalf("RightMultiply() err = %v, want nil", err)
		}
		abCol, err := a.RightMultiply(bCol)
		if err != nil {
			t.Fatalf("RightMultiply() err = %v, want nil", err)
		}
		for row := 0; row < dim; row++ {
			out[row][col] = abCol[row]
		}
	}
	return out
}

func identity(dim int) [][]int {
	id := make([][]int, dim)
	for i := range id {
		id[i] = make([]int, dim)
		id[i][i] = 1
	}
	return id
}

func TestInverseTimesMatrixIsIdentity(t *testing.T) {
	f := field()
	for _, x := range [][]int{
		{1, 2, 3},
		{5, 9, 17, 33},
		{200, 100, 50, 25, 12},
	} {
		m := gfmatrix.New(vandermonde(f, x), f)
		inv, err := m.Inverse()
		if err != nil {
			t.Fatalf("Inverse() err = %v, want nil", err)
		}
		if diff := cmp.Diff(identity(len(x)), multiply(f, inv, m, len(x), t)); diff != "" {
			t.Errorf("inverse * matrix diff for x = %v (-want +got):\n%s", x, diff)
		}
	}
}

func TestInverseNeedsPivotSwap(t *testing.T) {
	f := field()
	// zero in the top-left pivot forces a row swap
	rows := [][]int{
		{0, 1},
		{1, 0},
	}
	m := gfmatrix.New(rows, f)
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() err = %v, want nil", err)
	}
	if diff := cmp.Diff(identity(2), multiply(f, inv, m, 2, t)); diff != "" {
		t.Errorf("inverse * matrix diff (-want +got):\n%s", diff)
	}
}

func TestInverseSingularFails(t *testing.T) {
	f := field()
	rows := [][]int{
		{1, 2},
		{1, 2},
	}
	if _, err := gfmatrix.New(rows, f).Inverse(); !errors.Is(err, gfmatrix.ErrSingular) {
		t.Errorf("Inverse() err = %v, want ErrSingular", err)
	}
}

func TestInverseElimDepRowsReducesSingular(t *testing.T) {
	f := field()
	// third row is the sum of the first two, so one dimension collapses
	rows := [][]int{
		{1, 0, 3},
		{0, 1, 5},
		{1, 1, 6},
	}
	m := gfmatrix.New(rows, f)
	inv, err := m.InverseElimDepRows()
	if err != nil {
		t.Fatalf("InverseElimDepRows() err = %v, want nil", err)
	}
	if got, want := inv.NumRows(), 2; got != want {
		t.Errorf("NumRows() = %d, want %d", got, want)
	}
}

func TestInverseElimDepRowsMatchesInverseWhenRegular(t *testing.T) {
	f := field()
	x := []int{7, 11, 13, 19}
	m := gfmatrix.New(vandermonde(f, x), f)

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() err = %v, want nil", err)
	}
	invElim, err := m.InverseElimDepRows()
	if err != nil {
		t.Fatalf("InverseElimDepRows() err = %v, want nil", err)
	}

	vec := []int{4, 8, 15, 16}
	got, err := invElim.RightMultiply(vec)
	if err != nil {
		t.Fatalf("RightMultiply() err = %v, want nil", err)
	}
	want, err := inv.RightMultiply(vec)
	if err != nil {
		t.Fatalf("RightMultiply() err = %v, want nil", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("elim-dep-rows inverse disagrees with plain inverse (-want +got):\n%s", diff)
	}
}

func TestRightMultiplyDimensionMismatch(t *testing.T) {
	f := field()
	m := gfmatrix.New(vandermonde(f, []int{1, 2, 3}), f)
	if _, err := m.RightMultiply([]int{1, 2}); err == nil {
		t.Error("RightMultiply() with short vector err = nil, want error")
	}
}

func TestRightMultiply(t *testing.T) {
	f := field()
	rows := [][]int{
		{1, 0},
		{0, 2},
	}
	got, err := gfmatrix.New(rows, f).RightMultiply([]int{9, 3})
	if err != nil {
		t.Fatalf("RightMultiply() err = %v, want nil", err)
	}
	if diff := cmp.Diff([]int{9, 6}, got); diff != "" {
		t.Errorf("RightMultiply() diff (-want +got):\n%s", diff)
	}
}
