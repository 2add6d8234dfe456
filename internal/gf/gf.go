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

// Package gf implements arithmetic over GF(2^8), the finite field of 256
// elements reduced by the AES polynomial x^8 + x^4 + x^3 + x + 1.
package gf

import "fmt"

// Field is the arithmetic contract the matrix and decoder code is written
// against. Elements are represented as ints in {0, ..., 255}; there is a
// single canonical implementation for GF(2^8).
type Field interface {
	// Add returns a + b.
	Add(a, b int) int
	// Sub returns a - b. In a field of characteristic 2 this equals Add.
	Sub(a, b int) int
	// Mult returns a * b.
	Mult(a, b int) int
	// Pow returns a^p for p >= 0.
	Pow(a, p int) int
	// Inverse returns the multiplicative inverse of a.
	// Zero has no inverse; an error is returned.
	Inverse(a int) (int, error)
	// EvaluateAt evaluates the polynomial coeffs[0] + coeffs[1]*x + ... at x.
	EvaluateAt(coeffs []int, x int) int
}

// irreducible polynomial (x^8 + x^4 + x^3 + x + 1)
const irreduciblePolynomial = 0x1B

// order of the multiplicative group
const groupOrder = 255

// log/antilog tables seeded from generator 0x03. alog[i] = g^i, and
// log[alog[i]] = i for i in {0, ..., 254}; log[0] stays unused.
var (
	logTable  [256]int
	alogTable [256]int
)

func init() {
	x := byte(1)
	for i := 0; i < groupOrder; i++ {
		alogTable[i] = int(x)
		logTable[x] = i
		// next power of the generator: x * 0x03 = x ^ (x * 0x02)
		x ^= mulNoTable(x, 0x02)
	}
	alogTable[groupOrder] = 1
}

// mulNoTable multiplies two field elements without the lookup tables and
// seeds them at init time. The loop turns single bits into all-zero or
// all-one masks instead of branching, so it leaks nothing through timing
// or caches.
func mulNoTable(x, y byte) byte {
	var product byte
	for i := 7; i >= 0; i-- {
		// if the MSB of the running product is set, reduce by the
		// irreducible polynomial, else by 0
		mod := (-(product >> 7)) & irreduciblePolynomial

		// multiply coefficient x[i] with every coefficient in y
		xiTimesY := -((x >> i) & 1) & y

		product = xiTimesY ^ mod ^ (product << 1)
	}
	return product
}

type gf256 struct{}

// NewGF256 returns the canonical GF(2^8) implementation.
func NewGF256() Field { return gf256{} }

var _ Field = gf256{}

func (gf256) Add(a, b int) int { return a ^ b }

func (gf256) Sub(a, b int) int { return a ^ b }

func (gf256) Mult(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return alogTable[(logTable[a]+logTable[b])%groupOrder]
}

func (gf256) Pow(a, p int) int {
	if p == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return alogTable[(logTable[a]*p)%groupOrder]
}

func (gf256) Inverse(a int) (int, error) {
	if a == 0 {
		return 0, fmt.Errorf("inverse of zero is not defined")
	}
	return alogTable[(groupOrder-logTable[a])%groupOrder], nil
}

// EvaluateAt evaluates a polynomial at `x` via Horner's rule, where
// coeffs take the form:
// f(x) = c[n-1] * x^(n-1) + c[n-2] * x^(n-2) + ... + c[1] * x^1 + c[0]
func (f gf256) EvaluateAt(coeffs []int, x int) int {
	sum := 0
	for i := len(coeffs) - 1; i > 0; i-- {
		sum = f.Mult(f.Add(sum, coeffs[i]), x)
	}
	return f.Add(sum, coeffs[0])
}
