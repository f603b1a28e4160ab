// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (nil operands, invalid options).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag (see matrixErrorf); callers still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/index -> dimension mismatch -> structural violations.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix is returned when a required *Dense or *Vector argument is nil.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrOutOfRange indicates that an index (row, column or vector slot) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, Mul where a.Cols != b.Rows, Dot of unequal lengths,
	// or ragged rows passed to FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotPermutation signals a mapping that sends two indices to the same image.
	ErrNotPermutation = errors.New("matrix: mapping is not a permutation")

	// ErrZeroNorm signals an attempt to normalize the zero vector.
	ErrZeroNorm = errors.New("matrix: vector has zero norm")
)
