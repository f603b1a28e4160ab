// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qsim/matrix"
	"gonum.org/v1/gonum/floats"
)

const (
	opMarginal     = "MarginalProbabilities"
	opMeasurePart  = "MeasurePartial"
	opMeasureLeave = "MeasurePartialLeaveState"
)

// sampleIndex draws one outcome from the discrete distribution probs.
//
// Implementation:
//   - Stage 1: cumulative sums P_i via floats.CumSum.
//   - Stage 2: one uniform sample u in [0,1), scaled by the total mass so a
//     total slightly below 1 cannot push u past the last bucket.
//   - Stage 3: binary search for the first i with P_i > u.
//
// Zero-probability outcomes are never returned: their P_i equals P_{i-1},
// which is already ≤ u whenever the search reaches them.
func sampleIndex(probs []float64, s Sampler) int {
	cdf := make([]float64, len(probs))
	floats.CumSum(cdf, probs)
	total := cdf[len(cdf)-1]
	u := draw(s) * total

	i := sort.Search(len(cdf), func(i int) bool { return cdf[i] > u })
	if i < len(cdf) {
		return i
	}
	// u rounded up onto the total; take the last outcome with mass.
	for i = len(probs) - 1; i > 0; i-- {
		if probs[i] > 0 {
			break
		}
	}

	return i
}

// Measure performs a projective measurement of every qubit in the
// computational basis, collapses the state to the sampled basis vector and
// returns its index.
func (s *State) Measure() int {
	k := sampleIndex(s.vec.Probabilities(), s.sampler)
	s.vec.Apply(func(i int, _ complex128) complex128 {
		if i == k {
			return 1
		}
		return 0
	})

	return k
}

// rangeLayout describes how a Range splits a basis index k into
// (left, m, right) with k = left<<(n−Start) | m<<(n−End) | right.
type rangeLayout struct {
	low  uint // n − End: bits below the range
	high uint // n − Start: bits below and inside the range
	mask int  // 2^Len − 1
}

func layoutOf(qubits int, r Range) rangeLayout {
	return rangeLayout{
		low:  uint(qubits - r.End),
		high: uint(qubits - r.Start),
		mask: 1<<r.Len() - 1,
	}
}

func (l rangeLayout) outcome(k int) int { return (k >> l.low) & l.mask }

// MarginalProbabilities returns, for every value m of the qubits in r, the
// total probability of basis states whose r-bits equal m. The state is not
// modified.
//
// Errors: ErrInvalidRange when r does not fit the state.
func (s *State) MarginalProbabilities(r Range) ([]float64, error) {
	if err := r.Validate(s.qubits); err != nil {
		return nil, stateErrorf(opMarginal, err)
	}

	return s.marginal(r), nil
}

func (s *State) marginal(r Range) []float64 {
	lay := layoutOf(s.qubits, r)
	out := make([]float64, 1<<r.Len())
	for k, p := range s.vec.Probabilities() {
		out[lay.outcome(k)] += p
	}

	return out
}

// MeasurePartial measures the qubits in r and returns the outcome together
// with the residual state over the remaining n − Len(r) qubits.
//
// The residual amplitude at (left, right) is the sum of the amplitudes of
// all basis states consistent with the outcome, renormalized. The receiver
// is left untouched; the residual replaces it for further use.
//
// Errors: ErrInvalidRange when r does not fit the state.
func (s *State) MeasurePartial(r Range) (int, *State, error) {
	if err := r.Validate(s.qubits); err != nil {
		return 0, nil, stateErrorf(opMeasurePart, err)
	}
	m := sampleIndex(s.marginal(r), s.sampler)

	lay := layoutOf(s.qubits, r)
	rest := s.qubits - r.Len()
	rightMask := 1<<lay.low - 1
	out := make([]complex128, 1<<rest)
	s.vec.Do(func(k int, a complex128) bool {
		if lay.outcome(k) == m {
			left := k >> lay.high
			out[left<<lay.low|k&rightMask] += a
		}
		return true
	})

	v := matrix.VectorFrom(out...)
	if err := v.Normalize(); err != nil {
		return 0, nil, fmt.Errorf("%s: outcome %d: %w", opMeasurePart, m, err)
	}

	return m, newState(v, rest, s.sampler), nil
}

// MeasurePartialLeaveState measures the qubits in r in place: amplitudes
// inconsistent with the outcome are zeroed and the vector is renormalized.
// The qubit count is unchanged, so other qubits keep their indices.
//
// Errors: ErrInvalidRange when r does not fit the state.
func (s *State) MeasurePartialLeaveState(r Range) (int, error) {
	if err := r.Validate(s.qubits); err != nil {
		return 0, stateErrorf(opMeasureLeave, err)
	}
	m := sampleIndex(s.marginal(r), s.sampler)

	lay := layoutOf(s.qubits, r)
	s.vec.Apply(func(k int, a complex128) complex128 {
		if lay.outcome(k) != m {
			return 0
		}
		return a
	})
	if err := s.vec.Normalize(); err != nil {
		return 0, fmt.Errorf("%s: outcome %d: %w", opMeasureLeave, m, err)
	}

	return m, nil
}
