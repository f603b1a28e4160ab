// SPDX-License-Identifier: MIT

// Package cnum provides the complex scalar used across qsim.
//
// The scalar is Go's native complex128. This package adds the operations the
// rest of the module relies on and that math/cmplx does not phrase the same
// way: squared modulus, integer powers, polar round-trips and, most
// importantly, epsilon-tolerant ("fuzzy") equality.
//
// Numeric policy:
//   - Every equality check that guards an invariant (normalization, unitarity,
//     identity) goes through FuzzyEqual, never ==.
//   - Epsilon is ten machine epsilons; it is both the absolute and the relative
//     tolerance, so values near zero and values near one behave alike.
package cnum

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// MachineEpsilon is the gap between 1.0 and the next float64.
const MachineEpsilon = 2.220446049250313e-16

// Epsilon is the default tolerance for fuzzy comparisons.
const Epsilon = 10 * MachineEpsilon

// Common constants.
const (
	Zero complex128 = 0
	One  complex128 = 1
	I    complex128 = 1i
)

// Conj returns the complex conjugate of z.
func Conj(z complex128) complex128 { return complex(real(z), -imag(z)) }

// Modulus returns |z|.
func Modulus(z complex128) float64 { return cmplx.Abs(z) }

// ModulusSquared returns |z|², computed without a square root.
func ModulusSquared(z complex128) float64 {
	re, im := real(z), imag(z)

	return re*re + im*im
}

// Pow raises z to a non-negative integer power by repeated squaring.
// Pow(z, 0) is 1 for every z, including 0.
func Pow(z complex128, exp uint) complex128 {
	res := One
	mult := z
	for exp > 0 {
		if exp&1 == 1 {
			res *= mult
		}
		exp >>= 1
		mult *= mult
	}

	return res
}

// Expi returns e^{iθ}.
func Expi(theta float64) complex128 {
	s, c := math.Sincos(theta)

	return complex(c, s)
}

// FuzzyEqual reports whether a and b agree in both components within Epsilon.
func FuzzyEqual(a, b complex128) bool { return FuzzyEqualTol(a, b, Epsilon) }

// FuzzyEqualTol is FuzzyEqual with a caller-chosen tolerance.
// The tolerance is applied as absolute and relative bound on each component.
func FuzzyEqualTol(a, b complex128, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(real(a), real(b), tol, tol) &&
		scalar.EqualWithinAbsOrRel(imag(a), imag(b), tol, tol)
}

// FuzzyEqualReal compares two real values with the default tolerance.
func FuzzyEqualReal(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, Epsilon, Epsilon)
}

// Format renders z as "a + bi" or "a - bi".
func Format(z complex128) string {
	op := '+'
	if imag(z) < 0 {
		op = '-'
	}

	return fmt.Sprintf("%g %c %gi", real(z), op, math.Abs(imag(z)))
}
