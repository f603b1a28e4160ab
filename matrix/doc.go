// Package matrix offers the dense complex linear algebra that the quantum
// layer is built on.
//
// The matrix package provides:
//
//   - Vector: a dynamically sized sequence of complex128 with the inner
//     product ⟨a|b⟩ = Σ conj(a_i)·b_i, norms and the Kronecker product.
//   - Dense: a row-major complex matrix with error-returning accessors.
//   - Kernels: Add, Sub, Mul, MulVec, Scale, Transpose, Conjugate, Adjoint,
//     Tensor and DirectSum.
//   - Predicates: IsHermitian, IsIdentity, IsUnitary and FuzzyEqual, all
//     evaluated under an epsilon-tolerant comparison (see WithEpsilon).
//
// Shapes are never fixed at compile time. Fallible kernels return wrapped
// sentinel errors (ErrDimensionMismatch, ErrOutOfRange, ...) that callers
// match with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
