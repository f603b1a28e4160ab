// SPDX-License-Identifier: MIT
package quantum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qsim/quantum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// fixed returns a sampler that always yields u.
func fixed(u float64) quantum.Sampler {
	return quantum.SamplerFunc(func() float64 { return u })
}

// bell builds (|00⟩ + |11⟩)/√2 from H on qubit 0 followed by CNOT.
func bell(t *testing.T, opts ...quantum.Option) *quantum.State {
	t.Helper()
	s, err := quantum.Zero(2, opts...)
	require.NoError(t, err)
	s.ApplyPartial(quantum.Range{Start: 0, End: 1}, quantum.Hadamard())
	s.Apply(quantum.CNOT())

	return s
}

// chiSquarePValue returns the upper-tail p-value of observed counts against
// expected probabilities.
func chiSquarePValue(counts []float64, probs []float64, trials int) float64 {
	expected := make([]float64, len(probs))
	for i, p := range probs {
		expected[i] = p * float64(trials)
	}
	x := stat.ChiSquare(counts, expected)

	return distuv.ChiSquared{K: float64(len(probs) - 1)}.Survival(x)
}

func TestMeasure_SearchBoundary(t *testing.T) {
	// probabilities 0.25, 0.25, 0.5, 0
	amps := []complex128{0.5, 0.5, s2, 0}
	for _, tc := range []struct {
		u    float64
		want int
	}{
		{0, 0},
		{0.2499, 0},
		{0.25, 1},
		{0.3, 1},
		{0.6, 2},
		{0.9999, 2},
		{1, 2}, // clamped below 1; outcome 3 has no mass
	} {
		s := mustState(t, amps...)
		got := withSampler(s, fixed(tc.u)).Measure()
		assert.Equalf(t, tc.want, got, "u=%v", tc.u)
	}
}

func TestMeasure_Collapses(t *testing.T) {
	s := randomState(t, 3, 11)
	s = withSampler(s, quantum.NewSampler(1))

	k := s.Measure()
	want, err := quantum.Basis(3, k)
	require.NoError(t, err)
	assert.True(t, s.FuzzyEqual(want))

	// a collapsed state measures the same outcome forever
	for i := 0; i < 10; i++ {
		assert.Equal(t, k, s.Measure())
	}
}

func TestMeasure_HadamardDistribution(t *testing.T) {
	const trials = 1000
	smp := quantum.NewSampler(42)
	counts := make([]float64, 2)
	for i := 0; i < trials; i++ {
		s := quantum.FromQubit(false, quantum.WithSampler(smp))
		s.Apply(quantum.Hadamard())
		counts[s.Measure()]++
	}

	for k, c := range counts {
		assert.GreaterOrEqualf(t, c, 450.0, "outcome %d", k)
		assert.LessOrEqualf(t, c, 550.0, "outcome %d", k)
	}
	assert.Greater(t, chiSquarePValue(counts, []float64{0.5, 0.5}, trials), 0.001)
}

func TestMeasure_SkewedDistribution(t *testing.T) {
	const trials = 4000
	probs := []float64{0.1, 0.2, 0.3, 0.4}
	smp := quantum.NewSampler(7)
	counts := make([]float64, len(probs))
	for i := 0; i < trials; i++ {
		s := mustState(t, sqrtAmps(probs)...)
		counts[withSampler(s, smp).Measure()]++
	}

	assert.Greater(t, chiSquarePValue(counts, probs, trials), 0.001)
}

func TestSeededSamplersRepeat(t *testing.T) {
	a, b := quantum.NewSampler(99), quantum.NewSampler(99)
	for i := 0; i < 5; i++ {
		u := a.Float64()
		assert.Equal(t, u, b.Float64())
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}
}

func TestMarginalProbabilities(t *testing.T) {
	// |+⟩ ⊗ |1⟩
	plus := mustState(t, s2, s2)
	s := plus.Tensor(quantum.FromQubit(true))

	p0, err := s.MarginalProbabilities(quantum.Range{Start: 0, End: 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, p0, 1e-15)

	p1, err := s.MarginalProbabilities(quantum.Range{Start: 1, End: 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1}, p1, 1e-15)

	all, err := s.MarginalProbabilities(quantum.Range{Start: 0, End: 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, s.Probabilities(), all, 0)

	_, err = s.MarginalProbabilities(quantum.Range{Start: 0, End: 3})
	require.ErrorIs(t, err, quantum.ErrInvalidRange)
}

func TestMeasurePartialLeaveState_Bell(t *testing.T) {
	const trials = 400
	smp := quantum.NewSampler(2024)
	zero, _ := quantum.Basis(2, 0)
	three, _ := quantum.Basis(2, 3)

	counts := make([]int, 2)
	for i := 0; i < trials; i++ {
		s := bell(t, quantum.WithSampler(smp))
		m, err := s.MeasurePartialLeaveState(quantum.Range{Start: 0, End: 1})
		require.NoError(t, err)
		counts[m]++

		assert.Equal(t, 2, s.NumQubits())
		if m == 0 {
			assert.True(t, s.FuzzyEqual(zero), "collapsed to %v", s)
		} else {
			assert.True(t, s.FuzzyEqual(three), "collapsed to %v", s)
		}
		// the partner qubit now agrees with the measured one
		second, err := s.MeasurePartialLeaveState(quantum.Range{Start: 1, End: 2})
		require.NoError(t, err)
		assert.Equal(t, m, second)
	}

	assert.Greater(t, counts[0], trials*35/100)
	assert.Greater(t, counts[1], trials*35/100)
}

func TestMeasurePartial_Bell(t *testing.T) {
	smp := quantum.NewSampler(77)
	for i := 0; i < 50; i++ {
		s := bell(t, quantum.WithSampler(smp))
		m, rest, err := s.MeasurePartial(quantum.Range{Start: 0, End: 1})
		require.NoError(t, err)

		assert.Equal(t, 1, rest.NumQubits())
		assert.True(t, rest.FuzzyEqual(quantum.FromQubit(m == 1)))
		requireNormalized(t, rest)
		// receiver keeps its full width
		assert.Equal(t, 2, s.NumQubits())
	}
}

func TestMeasurePartial_MiddleRange(t *testing.T) {
	// |+⟩ ⊗ |1⟩ ⊗ |0⟩; measuring qubit 1 always yields 1 and leaves |+⟩ ⊗ |0⟩
	plus := mustState(t, s2, s2)
	s := plus.Tensor(quantum.FromQubit(true)).Tensor(quantum.FromQubit(false))

	m, rest, err := s.MeasurePartial(quantum.Range{Start: 1, End: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, m)
	assert.True(t, rest.FuzzyEqual(plus.Tensor(quantum.FromQubit(false))))
}

func TestMeasurePartial_Entangled_SumsAmplitudes(t *testing.T) {
	// (|00⟩ + |01⟩ + |10⟩ − |11⟩)/2 with outcome 1 on qubit 0 leaves (|0⟩ − |1⟩)/√2
	s := mustState(t, 0.5, 0.5, 0.5, -0.5)
	s = withSampler(s, fixed(0.9))

	m, rest, err := s.MeasurePartial(quantum.Range{Start: 0, End: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, m)
	assert.True(t, rest.FuzzyEqual(mustState(t, s2, -s2)))
}

func TestMeasurePartial_WholeRegister(t *testing.T) {
	s := withSampler(quantum.FromBits([]bool{true, true}), fixed(0.5))

	m, rest, err := s.MeasurePartial(quantum.Range{Start: 0, End: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, m)
	assert.Equal(t, 0, rest.NumQubits())
	assert.Equal(t, 1, rest.Dim())

	_, _, err = s.MeasurePartial(quantum.Range{Start: -1, End: 1})
	require.ErrorIs(t, err, quantum.ErrInvalidRange)
	_, err = s.MeasurePartialLeaveState(quantum.Range{Start: 1, End: 3})
	require.ErrorIs(t, err, quantum.ErrInvalidRange)
}

func sqrtAmps(probs []float64) []complex128 {
	out := make([]complex128, len(probs))
	for i, p := range probs {
		out[i] = complex(math.Sqrt(p), 0)
	}

	return out
}

func withSampler(s *quantum.State, smp quantum.Sampler) *quantum.State {
	s.SetSampler(smp)

	return s
}
