// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Host the fuzzy structural predicates (Hermitian, identity, unitary).
//
// Determinism & Performance:
//  - Shape checks are pure, deterministic and allocate nothing.
//  - Hermitian/identity checks run O(n²) and short-circuit on the first violation.
//  - IsUnitary allocates two n×n products.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Predicates never return errors: a nil or non-square operand is simply "false".

package matrix

import (
	"fmt"

	"github.com/katalvlaran/qsim/cnum"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil with exactly n components.
func ValidateVecLen(v *Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(v.data) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// FuzzyEqual reports whether a and b have the same shape and every pair of
// entries is fuzzy-equal under the configured epsilon.
// Complexity: O(r*c).
func FuzzyEqual(a, b *Dense, opts ...Option) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	eps := gatherOptions(opts...).eps
	for k, z := range a.data {
		if !cnum.FuzzyEqualTol(z, b.data[k], eps) {
			return false
		}
	}

	return true
}

// IsHermitian reports whether m is square and m[i][j] ≈ conj(m[j][i]) for all i ≤ j.
// Diagonal entries must therefore be (fuzzy) real.
// Complexity: O(n²), no allocation.
func IsHermitian(m *Dense, opts ...Option) bool {
	if ValidateSquare(m) != nil {
		return false
	}
	eps := gatherOptions(opts...).eps
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if !cnum.FuzzyEqualTol(m.data[i*n+j], cnum.Conj(m.data[j*n+i]), eps) {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether m is square with fuzzy ones on the diagonal and
// fuzzy zeros elsewhere.
// Complexity: O(n²), no allocation.
func IsIdentity(m *Dense, opts ...Option) bool {
	if ValidateSquare(m) != nil {
		return false
	}
	eps := gatherOptions(opts...).eps
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want := cnum.Zero
			if i == j {
				want = cnum.One
			}
			if !cnum.FuzzyEqualTol(m.data[i*n+j], want, eps) {
				return false
			}
		}
	}

	return true
}

// IsUnitary reports whether m is square and both m†m and mm† are fuzzy-identity.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: form A = m† and check Mul(A, m) then Mul(m, A).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func IsUnitary(m *Dense, opts ...Option) bool {
	if ValidateSquare(m) != nil {
		return false
	}
	adj := Adjoint(m)
	left, err := Mul(adj, m)
	if err != nil || !IsIdentity(left, opts...) {
		return false
	}
	right, err := Mul(m, adj)
	if err != nil {
		return false
	}

	return IsIdentity(right, opts...)
}
