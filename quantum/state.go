// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/qsim/cnum"
	"github.com/katalvlaran/qsim/matrix"
)

const (
	opNewState     = "NewState"
	opZero         = "Zero"
	opBasis        = "Basis"
	opApply        = "Apply"
	opApplyPartial = "ApplyPartial"
	opAmplitude    = "Amplitude"
)

// stateErrorf wraps err with an operation tag, keeping the sentinel for errors.Is.
func stateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Range is a half-open interval [Start, End) of qubit indices. Qubit 0 is
// the most significant bit of a basis-state index.
type Range struct {
	Start, End int
}

// Len returns the number of qubits in the range.
func (r Range) Len() int { return r.End - r.Start }

// Validate checks 0 ≤ Start ≤ End ≤ qubits.
func (r Range) Validate(qubits int) error {
	if r.Start < 0 || r.Start > r.End || r.End > qubits {
		return fmt.Errorf("[%d,%d) over %d qubits: %w", r.Start, r.End, qubits, ErrInvalidRange)
	}

	return nil
}

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// State is a normalized state vector of dimension 2^n.
//
// Every State reachable through the constructors satisfies Σ|a_i|² ≈ 1.
// Apply, ApplyPartial and the measurement methods mutate the receiver in
// place. A State is not safe for concurrent use.
type State struct {
	vec     *matrix.Vector
	qubits  int
	sampler Sampler
}

// Option configures a State at construction.
type Option func(*State)

// WithSampler sets the uniform source used by measurement. A nil sampler
// keeps the default.
func WithSampler(s Sampler) Option {
	return func(st *State) {
		if s != nil {
			st.sampler = s
		}
	}
}

func newState(v *matrix.Vector, qubits int, sampler Sampler, opts ...Option) *State {
	s := &State{vec: v, qubits: qubits, sampler: sampler}
	if s.sampler == nil {
		s.sampler = defaultSampler
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// SetSampler replaces the measurement source. A nil sampler is ignored.
func (s *State) SetSampler(smp Sampler) {
	if smp != nil {
		s.sampler = smp
	}
}

// log2Exact returns n with 2^n == dim, or false when dim is not a power of two.
func log2Exact(dim int) (int, bool) {
	if dim <= 0 || dim&(dim-1) != 0 {
		return 0, false
	}

	return bits.TrailingZeros(uint(dim)), true
}

// NewState validates v and wraps a copy of it.
//
// Errors:
//   - ErrNotPowerOfTwo when Dim(v) is not 2^n (including 0).
//   - ErrNotNormalized when Σ|v_i|² is not fuzzy-equal to 1.
func NewState(v *matrix.Vector, opts ...Option) (*State, error) {
	if v == nil {
		return nil, stateErrorf(opNewState, matrix.ErrNilMatrix)
	}
	n, ok := log2Exact(v.Dim())
	if !ok {
		return nil, fmt.Errorf("%s: dim %d: %w", opNewState, v.Dim(), ErrNotPowerOfTwo)
	}
	if norm := v.NormSquared(); !cnum.FuzzyEqualReal(norm, 1) {
		return nil, fmt.Errorf("%s: squared norm %g: %w", opNewState, norm, ErrNotNormalized)
	}

	return newState(v.Clone(), n, nil, opts...), nil
}

// FromQubit returns |1⟩ when enabled and |0⟩ otherwise.
func FromQubit(enabled bool, opts ...Option) *State {
	v := matrix.VectorFrom(1, 0)
	if enabled {
		v = matrix.VectorFrom(0, 1)
	}

	return newState(v, 1, nil, opts...)
}

// FromBits returns the basis state |b_0 b_1 … b_{n-1}⟩; bits[0] is qubit 0.
// An empty slice yields the 0-qubit state [1].
func FromBits(bits []bool, opts ...Option) *State {
	n := len(bits)
	k := 0
	for _, b := range bits {
		k <<= 1
		if b {
			k |= 1
		}
	}
	v, _ := matrix.Basis(1<<n, k)

	return newState(v, n, nil, opts...)
}

// Zero returns |0…0⟩ over n qubits.
func Zero(n int, opts ...Option) (*State, error) {
	if n < 0 {
		return nil, stateErrorf(opZero, ErrInvalidQubits)
	}
	v, _ := matrix.Basis(1<<n, 0)

	return newState(v, n, nil, opts...), nil
}

// Basis returns the computational basis state |k⟩ over n qubits.
func Basis(n, k int, opts ...Option) (*State, error) {
	if n < 0 || k < 0 || k >= 1<<n {
		return nil, stateErrorf(opBasis, ErrInvalidQubits)
	}
	v, _ := matrix.Basis(1<<n, k)

	return newState(v, n, nil, opts...), nil
}

// Vector returns a copy of the amplitudes.
func (s *State) Vector() *matrix.Vector { return s.vec.Clone() }

// Dim returns 2^NumQubits.
func (s *State) Dim() int { return s.vec.Dim() }

// NumQubits returns n.
func (s *State) NumQubits() int { return s.qubits }

// Amplitude returns the coefficient of basis state |i⟩.
func (s *State) Amplitude(i int) (complex128, error) {
	z, err := s.vec.At(i)
	if err != nil {
		return 0, stateErrorf(opAmplitude, err)
	}

	return z, nil
}

// Probabilities returns |a_i|² for every basis state.
func (s *State) Probabilities() []float64 { return s.vec.Probabilities() }

// Clone returns an independent copy sharing the sampler.
func (s *State) Clone() *State {
	return &State{vec: s.vec.Clone(), qubits: s.qubits, sampler: s.sampler}
}

// Tensor returns s ⊗ o over NumQubits(s)+NumQubits(o) qubits. The result
// keeps the receiver's sampler.
func (s *State) Tensor(o *State) *State {
	return newState(s.vec.Tensor(o.vec), s.qubits+o.qubits, s.sampler)
}

// TryApply replaces the amplitudes with g·s.
// Errors: ErrDimensionMismatch when Dim(g) != Dim(s).
func (s *State) TryApply(g *Gate) error {
	if g.Dim() != s.Dim() {
		return fmt.Errorf("%s: gate dim %d, state dim %d: %w", opApply, g.Dim(), s.Dim(), ErrDimensionMismatch)
	}
	out, err := matrix.MulVec(g.m, s.vec)
	if err != nil {
		return stateErrorf(opApply, err)
	}
	s.vec = out

	return nil
}

// Apply is TryApply for callers that guarantee matching dimensions.
// It panics on a mismatch.
func (s *State) Apply(g *Gate) {
	if err := s.TryApply(g); err != nil {
		panic(err)
	}
}

// TryApplyPartial applies g to the qubits in r. The full-space operator is
// I(r.Start) ⊗ g ⊗ I(n − r.End).
//
// Errors:
//   - ErrInvalidRange when r does not fit the state.
//   - ErrDimensionMismatch when 2^Len(r) != Dim(g).
func (s *State) TryApplyPartial(r Range, g *Gate) error {
	full, err := g.Expand(s.qubits, r)
	if err != nil {
		return stateErrorf(opApplyPartial, err)
	}

	return s.TryApply(full)
}

// ApplyPartial is TryApplyPartial for callers that guarantee a valid range
// and matching width. It panics otherwise.
func (s *State) ApplyPartial(r Range, g *Gate) {
	if err := s.TryApplyPartial(r, g); err != nil {
		panic(err)
	}
}

// FuzzyEqual compares amplitudes under the matrix numeric options.
func (s *State) FuzzyEqual(o *State, opts ...matrix.Option) bool {
	return s.qubits == o.qubits && s.vec.FuzzyEqual(o.vec, opts...)
}

func (s *State) String() string { return s.vec.String() }
