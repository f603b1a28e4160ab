// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"

	"github.com/katalvlaran/qsim/cnum"
	"github.com/katalvlaran/qsim/matrix"
)

const (
	opTransition = "TransitionProbability"
	opEvolve     = "Evolve"
)

// TransitionProbability returns |⟨b|a⟩|² / (‖a‖²·‖b‖²), the probability that
// a system prepared in a is found in b. Neither vector needs to be normalized.
//
// Errors:
//   - matrix.ErrDimensionMismatch when the dimensions differ.
//   - matrix.ErrZeroNorm when either vector is zero.
func TransitionProbability(a, b *matrix.Vector) (float64, error) {
	amp, err := b.Dot(a)
	if err != nil {
		return 0, stateErrorf(opTransition, err)
	}
	na, nb := a.NormSquared(), b.NormSquared()
	if na == 0 || nb == 0 {
		return 0, stateErrorf(opTransition, matrix.ErrZeroNorm)
	}

	return cnum.ModulusSquared(amp) / (na * nb), nil
}

// ProbabilityAt returns the probability of observing basis state |k⟩ in v.
func ProbabilityAt(v *matrix.Vector, k int) (float64, error) {
	e, err := matrix.Basis(v.Dim(), k)
	if err != nil {
		return 0, fmt.Errorf("ProbabilityAt(%d): %w", k, err)
	}

	return TransitionProbability(v, e)
}

// Evolve returns a copy of s after applying gates in order; s is unchanged.
// Errors: ErrDimensionMismatch at the first gate of the wrong size.
func Evolve(s *State, gates ...*Gate) (*State, error) {
	out := s.Clone()
	for i, g := range gates {
		if err := out.TryApply(g); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", opEvolve, i, err)
		}
	}

	return out, nil
}
