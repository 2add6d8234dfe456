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

package gf

import "fmt"

// Degree returns the degree of the polynomial, i.e. the index of its
// highest non-zero coefficient. The zero polynomial has degree -1.
func Degree(poly []int) int {
	for i := len(poly) - 1; i >= 0; i-- {
		if poly[i] != 0 {
			return i
		}
	}
	return -1
}

// PolyDiv performs polynomial long division num / den over the field and
// returns quotient and remainder. Division by the zero polynomial fails.
func PolyDiv(f Field, num, den []int) (quot, rem []int, err error) {
	degDen := Degree(den)
	if degDen < 0 {
		return nil, nil, fmt.Errorf("division by zero polynomial")
	}

	rem = make([]int, len(num))
	copy(rem, num)
	quot = make([]int, len(num))

	lcInv, err := f.Inverse(den[degDen])
	if err != nil {
		return nil, nil, err
	}

	for degRem := Degree(rem); degRem >= degDen; degRem = Degree(rem) {
		shift := degRem - degDen
		factor := f.Mult(rem[degRem], lcInv)
		quot[shift] = factor
		for i := 0; i <= degDen; i++ {
			rem[shift+i] = f.Sub(rem[shift+i], f.Mult(den[i], factor))
		}
	}
	return quot, rem, nil
}
