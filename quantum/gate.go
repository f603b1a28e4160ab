// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"

	"github.com/katalvlaran/qsim/matrix"
)

const (
	opNewGate = "NewGate"
	opCompose = "Compose"
	opTensor  = "Tensor"
	opExpand  = "Expand"
)

// Gate is an immutable unitary operator on n qubits (a 2^n × 2^n matrix).
//
// NewGate validates unitarity; NewGateUnchecked trusts the caller and is
// meant for matrices known to be unitary (permutations, the
// library gates, tensor products of gates). Composition never mutates its
// operands.
type Gate struct {
	m      *matrix.Dense
	qubits int
}

func newGate(m *matrix.Dense, qubits int) *Gate { return &Gate{m: m, qubits: qubits} }

// NewGate validates m and wraps a copy of it.
//
// Errors:
//   - ErrNotPowerOfTwo when m is square but its dimension is not 2^n.
//   - ErrNotUnitary when m is nil, non-square or fails M†M ≈ I / MM† ≈ I.
func NewGate(m *matrix.Dense, opts ...matrix.Option) (*Gate, error) {
	if matrix.ValidateSquare(m) != nil {
		return nil, stateErrorf(opNewGate, ErrNotUnitary)
	}
	n, ok := log2Exact(m.Rows())
	if !ok {
		return nil, fmt.Errorf("%s: dim %d: %w", opNewGate, m.Rows(), ErrNotPowerOfTwo)
	}
	if !matrix.IsUnitary(m, opts...) {
		return nil, stateErrorf(opNewGate, ErrNotUnitary)
	}

	return newGate(m.Clone(), n), nil
}

// NewGateUnchecked wraps a copy of m without the unitarity check.
// It panics when m is nil, non-square or not of dimension 2^n.
func NewGateUnchecked(m *matrix.Dense) *Gate {
	if err := matrix.ValidateSquare(m); err != nil {
		panic(err)
	}
	n, ok := log2Exact(m.Rows())
	if !ok {
		panic(fmt.Errorf("NewGateUnchecked: dim %d: %w", m.Rows(), ErrNotPowerOfTwo))
	}

	return newGate(m.Clone(), n)
}

// Matrix returns a copy of the underlying matrix.
func (g *Gate) Matrix() *matrix.Dense { return g.m.Clone() }

// Dim returns 2^NumQubits.
func (g *Gate) Dim() int { return g.m.Rows() }

// NumQubits returns the number of qubits the gate acts on.
func (g *Gate) NumQubits() int { return g.qubits }

// Tensor returns g ⊗ h. The product of unitaries is unitary, so no check runs.
func (g *Gate) Tensor(h *Gate) *Gate {
	return newGate(matrix.Tensor(g.m, h.m), g.qubits+h.qubits)
}

// Compose returns the matrix product g·h: applying the result equals
// applying h first, then g.
// Errors: ErrDimensionMismatch when the gates act on different widths.
func (g *Gate) Compose(h *Gate) (*Gate, error) {
	if g.Dim() != h.Dim() {
		return nil, fmt.Errorf("%s: %d×%d by %d×%d: %w", opCompose, g.Dim(), g.Dim(), h.Dim(), h.Dim(), ErrDimensionMismatch)
	}
	m, err := matrix.Mul(g.m, h.m)
	if err != nil {
		return nil, stateErrorf(opCompose, err)
	}

	return newGate(m, g.qubits), nil
}

// Adjoint returns g†.
func (g *Gate) Adjoint() *Gate { return newGate(matrix.Adjoint(g.m), g.qubits) }

// Inverse returns g⁻¹, which for a unitary is g†.
func (g *Gate) Inverse() *Gate { return g.Adjoint() }

// TensorChecked is Tensor followed by a fresh unitarity check.
func (g *Gate) TensorChecked(h *Gate, opts ...matrix.Option) (*Gate, error) {
	out, err := NewGate(matrix.Tensor(g.m, h.m), opts...)
	if err != nil {
		return nil, stateErrorf(opTensor, err)
	}

	return out, nil
}

// ComposeChecked is Compose followed by a fresh unitarity check.
func (g *Gate) ComposeChecked(h *Gate, opts ...matrix.Option) (*Gate, error) {
	c, err := g.Compose(h)
	if err != nil {
		return nil, err
	}
	if !matrix.IsUnitary(c.m, opts...) {
		return nil, stateErrorf(opCompose, ErrNotUnitary)
	}

	return c, nil
}

// Expand lifts g to the full space of a register with the given number of
// qubits, acting on r: I(r.Start) ⊗ g ⊗ I(qubits − r.End).
//
// Errors:
//   - ErrInvalidRange when r does not fit the register.
//   - ErrDimensionMismatch when 2^Len(r) != Dim(g).
func (g *Gate) Expand(qubits int, r Range) (*Gate, error) {
	if err := r.Validate(qubits); err != nil {
		return nil, stateErrorf(opExpand, err)
	}
	if r.Len() != g.qubits {
		return nil, fmt.Errorf("%s: range %v holds %d qubits, gate acts on %d: %w", opExpand, r, r.Len(), g.qubits, ErrDimensionMismatch)
	}
	if r.Start == 0 && r.End == qubits {
		return g, nil
	}

	return Identity(r.Start).Tensor(g).Tensor(Identity(qubits - r.End)), nil
}

// FuzzyEqual compares the underlying matrices.
func (g *Gate) FuzzyEqual(h *Gate, opts ...matrix.Option) bool {
	return matrix.FuzzyEqual(g.m, h.m, opts...)
}

func (g *Gate) String() string { return g.m.String() }
