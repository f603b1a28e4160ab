// SPDX-License-Identifier: MIT

package quantum

import "errors"

// Sentinel errors. Constructors and fallible operations wrap these with an
// operation tag; callers match them with errors.Is.
var (
	// ErrNotPowerOfTwo indicates a state or gate dimension that is not 2^n.
	ErrNotPowerOfTwo = errors.New("quantum: dimension is not a power of two")

	// ErrNotNormalized indicates a candidate state whose squared norm is not fuzzy-equal to 1.
	ErrNotNormalized = errors.New("quantum: state is not normalized")

	// ErrNotUnitary indicates a candidate gate that fails M†M ≈ I or MM† ≈ I.
	ErrNotUnitary = errors.New("quantum: matrix is not unitary")

	// ErrNotHermitian indicates an observable that is not self-adjoint.
	ErrNotHermitian = errors.New("quantum: observable is not hermitian")

	// ErrDimensionMismatch indicates a gate, state or observable of incompatible size.
	ErrDimensionMismatch = errors.New("quantum: dimension mismatch")

	// ErrInvalidRange indicates a qubit range outside 0 ≤ start ≤ end ≤ qubits.
	ErrInvalidRange = errors.New("quantum: invalid qubit range")

	// ErrInvalidQubits indicates a negative qubit count or an out-of-range basis index.
	ErrInvalidQubits = errors.New("quantum: invalid qubit count or index")
)
