// SPDX-License-Identifier: MIT
// Package matrix provides the complex linear-algebra kernels used by the
// quantum layer: element-wise addition and subtraction, matrix and
// matrix-vector multiplication, transpose, conjugate, adjoint, scalar scaling
// and the Kronecker (tensor) product. All fallible kernels perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - No pivoting or numerical stabilization is performed; accumulated floating
//     error is absorbed downstream by the fuzzy predicates.
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFromRows = "FromRows"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opIdentity = "Identity"
	opPermute  = "Permutation"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over both buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := newDense(a.r, a.c)
	for k := range a.data {
		out.data[k] = a.data[k] + sign*b.data[k]
	}

	return out, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a − b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (a.Cols == b.Rows).
//   - Stage 2: i-k-j loop order; the inner loop walks contiguous rows of b and out.
//
// Behavior highlights:
//   - Zero entries of a skip their k-row entirely (cheap win on sparse gates).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := a.r, a.c, b.c
	out := newDense(r, c)
	var i, k, j int
	for i = 0; i < r; i++ {
		outRow := out.data[i*c : (i+1)*c]
		for k = 0; k < n; k++ {
			aik := a.data[i*n+k]
			if aik == 0 {
				continue
			}
			bRow := b.data[k*c : (k+1)*c]
			for j = 0; j < c; j++ {
				outRow[j] += aik * bRow[j]
			}
		}
	}

	return out, nil
}

// MulVec computes m·v.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when m.Cols != v.Dim (wrapped with "MulVec").
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MulVec(m *Dense, v *Vector) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	out := make([]complex128, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		var sum complex128
		for j = 0; j < m.c; j++ {
			sum += row[j] * v.data[j]
		}
		out[i] = sum
	}

	return &Vector{data: out}, nil
}

// Scale returns α·m as a new matrix.
// Complexity: O(r*c).
func Scale(m *Dense, alpha complex128) *Dense {
	out := m.Clone()
	for k := range out.data {
		out.data[k] *= alpha
	}

	return out
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m *Dense) *Dense {
	out := newDense(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Conjugate returns the entry-wise complex conjugate of m.
// Complexity: O(r*c).
func Conjugate(m *Dense) *Dense {
	out := m.Clone()
	for k, z := range out.data {
		out.data[k] = complex(real(z), -imag(z))
	}

	return out
}

// Adjoint returns the conjugate transpose m†.
//
// Implementation:
//   - Single pass: out[j][i] = conj(m[i][j]); no intermediate transpose.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Adjoint(m *Dense) *Dense {
	out := newDense(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			z := m.data[i*m.c+j]
			out.data[j*m.r+i] = complex(real(z), -imag(z))
		}
	}

	return out
}

// Tensor computes the Kronecker product a⊗b.
//
// Implementation:
//   - Result shape is (a.r·b.r)×(a.c·b.c).
//   - Block (i1,j1) holds a[i1][j1]·b, i.e.
//     out[i1·b.r + i2][j1·b.c + j2] = a[i1][j1]·b[i2][j2].
//
// Behavior highlights:
//   - Always succeeds; a zero-sized operand yields a zero-sized result.
//
// Complexity:
//   - Time O(a.r·a.c·b.r·b.c), Space of the result.
func Tensor(a, b *Dense) *Dense {
	rows, cols := a.r*b.r, a.c*b.c
	out := newDense(rows, cols)
	var i1, j1, i2, j2 int
	for i1 = 0; i1 < a.r; i1++ {
		for j1 = 0; j1 < a.c; j1++ {
			aij := a.data[i1*a.c+j1]
			if aij == 0 {
				continue
			}
			for i2 = 0; i2 < b.r; i2++ {
				dst := (i1*b.r+i2)*cols + j1*b.c
				src := b.data[i2*b.c : (i2+1)*b.c]
				for j2 = 0; j2 < b.c; j2++ {
					out.data[dst+j2] = aij * src[j2]
				}
			}
		}
	}

	return out
}

// DirectSum returns the block-diagonal matrix diag(a, b) of shape
// (a.r+b.r)×(a.c+b.c). Controlled gates are built this way.
func DirectSum(a, b *Dense) *Dense {
	out := newDense(a.r+b.r, a.c+b.c)
	var i int
	for i = 0; i < a.r; i++ {
		copy(out.data[i*out.c:i*out.c+a.c], a.data[i*a.c:(i+1)*a.c])
	}
	for i = 0; i < b.r; i++ {
		dst := (a.r+i)*out.c + a.c
		copy(out.data[dst:dst+b.c], b.data[i*b.c:(i+1)*b.c])
	}

	return out
}
