// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/qsim/cnum"
)

const (
	opVecAt     = "Vector.At"
	opVecSet    = "Vector.Set"
	opDot       = "Dot"
	opVecAdd    = "Vector.Add"
	opVecSub    = "Vector.Sub"
	opBasis     = "Basis"
	opNormalize = "Normalize"
	opDistance  = "Distance"
)

// Vector is an ordered sequence of complex amplitudes of length Dim().
// The dimension need not be a power of two at this level.
type Vector struct {
	data []complex128
}

// NewVector returns the zero vector of dimension n.
// Errors: ErrInvalidDimensions for n < 0.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]complex128, n)}, nil
}

// VectorFrom copies values into a new Vector.
func VectorFrom(values ...complex128) *Vector {
	data := make([]complex128, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// Basis returns the canonical basis vector e_k of dimension n.
// Errors: ErrInvalidDimensions for n < 0, ErrOutOfRange unless 0 <= k < n.
func Basis(n, k int) (*Vector, error) {
	if n < 0 {
		return nil, matrixErrorf(opBasis, ErrInvalidDimensions)
	}
	if k < 0 || k >= n {
		return nil, matrixErrorf(opBasis, ErrOutOfRange)
	}
	v := &Vector{data: make([]complex128, n)}
	v.data[k] = cnum.One

	return v, nil
}

// Dim returns the number of components.
func (v *Vector) Dim() int { return len(v.data) }

// At returns component i or ErrOutOfRange.
func (v *Vector) At(i int) (complex128, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%s(%d): %w", opVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set writes component i or returns ErrOutOfRange.
func (v *Vector) Set(i int, z complex128) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("%s(%d): %w", opVecSet, i, ErrOutOfRange)
	}
	v.data[i] = z

	return nil
}

// Values returns a copy of the components.
func (v *Vector) Values() []complex128 {
	out := make([]complex128, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector { return VectorFrom(v.data...) }

// Do calls f for every component in index order until f returns false.
func (v *Vector) Do(f func(i int, z complex128) bool) {
	for i, z := range v.data {
		if !f(i, z) {
			return
		}
	}
}

// Apply replaces each component with f(i, z) in place.
func (v *Vector) Apply(f func(i int, z complex128) complex128) {
	for i, z := range v.data {
		v.data[i] = f(i, z)
	}
}

// Dot computes ⟨a|b⟩ = Σ conj(a_i)·b_i (conjugate-linear in a).
// Errors: ErrDimensionMismatch when dimensions differ.
func (v *Vector) Dot(w *Vector) (complex128, error) {
	if len(v.data) != len(w.data) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	var sum complex128
	for i, a := range v.data {
		sum += cnum.Conj(a) * w.data[i]
	}

	return sum, nil
}

// NormSquared returns Σ|v_i|².
func (v *Vector) NormSquared() float64 {
	var sum float64
	for _, z := range v.data {
		sum += cnum.ModulusSquared(z)
	}

	return sum
}

// Norm returns the Euclidean norm √⟨v|v⟩.
func (v *Vector) Norm() float64 { return math.Sqrt(v.NormSquared()) }

// Distance returns ‖v − w‖.
func (v *Vector) Distance(w *Vector) (float64, error) {
	diff, err := v.Sub(w)
	if err != nil {
		return 0, matrixErrorf(opDistance, err)
	}

	return diff.Norm(), nil
}

// Add returns v + w as a new vector.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if len(v.data) != len(w.data) {
		return nil, matrixErrorf(opVecAdd, ErrDimensionMismatch)
	}
	out := v.Clone()
	for i, z := range w.data {
		out.data[i] += z
	}

	return out, nil
}

// Sub returns v − w as a new vector.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if len(v.data) != len(w.data) {
		return nil, matrixErrorf(opVecSub, ErrDimensionMismatch)
	}
	out := v.Clone()
	for i, z := range w.data {
		out.data[i] -= z
	}

	return out, nil
}

// Scale returns α·v as a new vector.
func (v *Vector) Scale(alpha complex128) *Vector {
	out := v.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out
}

// Neg returns −v.
func (v *Vector) Neg() *Vector { return v.Scale(-1) }

// Tensor returns the Kronecker product v ⊗ w of dimension Dim(v)·Dim(w).
// Component (i·Dim(w) + j) equals v_i·w_j.
func (v *Vector) Tensor(w *Vector) *Vector {
	n := len(w.data)
	out := make([]complex128, len(v.data)*n)
	for i, a := range v.data {
		base := i * n
		for j, b := range w.data {
			out[base+j] = a * b
		}
	}

	return &Vector{data: out}
}

// Probabilities returns the entry-wise squared moduli |v_i|².
func (v *Vector) Probabilities() []float64 {
	out := make([]float64, len(v.data))
	for i, z := range v.data {
		out[i] = cnum.ModulusSquared(z)
	}

	return out
}

// Normalize rescales v in place to unit norm.
// Errors: ErrZeroNorm when v is the zero vector.
func (v *Vector) Normalize() error {
	n := v.Norm()
	if n == 0 {
		return matrixErrorf(opNormalize, ErrZeroNorm)
	}
	inv := complex(1/n, 0)
	for i := range v.data {
		v.data[i] *= inv
	}

	return nil
}

// FuzzyEqual reports whether v and w have equal dimensions and fuzzy-equal components.
func (v *Vector) FuzzyEqual(w *Vector, opts ...Option) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i, z := range v.data {
		if !cnum.FuzzyEqualTol(z, w.data[i], eps) {
			return false
		}
	}

	return true
}

// String renders "[a + bi, ...]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, z := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(cnum.Format(z))
	}
	b.WriteString("]")

	return b.String()
}
