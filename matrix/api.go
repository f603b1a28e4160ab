// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common constructions.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// MustIdentity is NewIdentity for sizes already known to be non-negative.
// It panics on a negative n.
func MustIdentity(n int) *Dense {
	id, err := NewIdentity(n)
	if err != nil {
		panic(err)
	}

	return id
}

// Permutation returns the n×n matrix P with P[perm[j]][j] = 1, so that
// P·e_j = e_perm[j]. n is len(perm).
//
// Errors: ErrOutOfRange for an image outside 0..n-1, ErrNotPermutation for a
// repeated image.
func Permutation(perm []int) (*Dense, error) {
	n := len(perm)
	p := newDense(n, n)
	seen := make([]bool, n)
	for j, i := range perm {
		if i < 0 || i >= n {
			return nil, matrixErrorf(opPermute, ErrOutOfRange)
		}
		if seen[i] {
			return nil, matrixErrorf(opPermute, ErrNotPermutation)
		}
		seen[i] = true
		p.data[i*n+j] = 1
	}

	return p, nil
}

// Diagonal returns the square matrix with the given values on its diagonal.
func Diagonal(values ...complex128) *Dense {
	n := len(values)
	d := newDense(n, n)
	for i, z := range values {
		d.data[i*n+i] = z
	}

	return d
}

// Outer returns the outer product |u⟩⟨v| = u·v†, shape Dim(u)×Dim(v).
func Outer(u, v *Vector) *Dense {
	out := newDense(len(u.data), len(v.data))
	for i, a := range u.data {
		base := i * out.c
		for j, b := range v.data {
			out.data[base+j] = a * complex(real(b), -imag(b))
		}
	}

	return out
}

// Trace returns Σ m[i][i] over the leading diagonal.
func Trace(m *Dense) complex128 {
	var sum complex128
	n := m.r
	if m.c < n {
		n = m.c
	}
	for i := 0; i < n; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum
}
