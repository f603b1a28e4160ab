// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"

	"github.com/katalvlaran/qsim/matrix"
)

const (
	opExpected = "ExpectedValue"
	opVariance = "Variance"
)

// ExpectedValue returns ⟨ψ|A|ψ⟩ for a Hermitian observable A. The value is
// real for Hermitian A; the imaginary rounding residue is dropped.
//
// Errors:
//   - ErrNotHermitian when A is not (fuzzy) self-adjoint.
//   - ErrDimensionMismatch when A does not act on the state's space.
func ExpectedValue(obs *matrix.Dense, s *State, opts ...matrix.Option) (float64, error) {
	if !matrix.IsHermitian(obs, opts...) {
		return 0, stateErrorf(opExpected, ErrNotHermitian)
	}
	if obs.Rows() != s.Dim() {
		return 0, fmt.Errorf("%s: observable dim %d, state dim %d: %w", opExpected, obs.Rows(), s.Dim(), ErrDimensionMismatch)
	}

	return expectation(obs, s.vec), nil
}

func expectation(obs *matrix.Dense, v *matrix.Vector) float64 {
	av, _ := matrix.MulVec(obs, v)
	z, _ := v.Dot(av)

	return real(z)
}

// Variance returns ⟨ψ|(A − μI)²|ψ⟩ with μ = ExpectedValue(A, ψ).
func Variance(obs *matrix.Dense, s *State, opts ...matrix.Option) (float64, error) {
	mu, err := ExpectedValue(obs, s, opts...)
	if err != nil {
		return 0, stateErrorf(opVariance, err)
	}
	id := matrix.MustIdentity(obs.Rows())
	demeaned, err := matrix.Sub(obs, matrix.Scale(id, complex(mu, 0)))
	if err != nil {
		return 0, stateErrorf(opVariance, err)
	}
	sq, err := matrix.Mul(demeaned, demeaned)
	if err != nil {
		return 0, stateErrorf(opVariance, err)
	}

	return expectation(sq, s.vec), nil
}
