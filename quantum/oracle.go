// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"

	"github.com/katalvlaran/qsim/matrix"
)

const opOracle = "Oracle"

// Oracle builds the unitary U_f : |x, y⟩ ↦ |x, y ⊕ f(x)⟩ on in+out qubits
// and verifies it is unitary.
//
// x ranges over [0, 2^in) and y over [0, 2^out); f(x) is reduced modulo
// 2^out, so any total function is accepted. Every column holds a single 1,
// and XOR with a fixed value is an involution, so U_f is a self-inverse
// permutation matrix.
//
// Errors:
//   - ErrInvalidQubits for negative in or out.
//   - ErrNotUnitary if the built matrix fails the check.
func Oracle(in, out int, f func(x int) int, opts ...matrix.Option) (*Gate, error) {
	g, err := buildOracle(in, out, f)
	if err != nil {
		return nil, err
	}
	if !matrix.IsUnitary(g.m, opts...) {
		return nil, stateErrorf(opOracle, ErrNotUnitary)
	}

	return g, nil
}

// OracleUnchecked is Oracle without the unitarity check.
// It panics for negative in or out.
func OracleUnchecked(in, out int, f func(x int) int) *Gate {
	g, err := buildOracle(in, out, f)
	if err != nil {
		panic(err)
	}

	return g
}

func buildOracle(in, out int, f func(x int) int) (*Gate, error) {
	if in < 0 || out < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opOracle, in, out, ErrInvalidQubits)
	}
	perm := make([]int, 1<<(in+out))
	mask := 1<<out - 1
	for x := 0; x < 1<<in; x++ {
		fx := f(x) & mask
		base := x << out
		for y := 0; y <= mask; y++ {
			perm[base|y] = base | (y ^ fx)
		}
	}
	m, err := matrix.Permutation(perm)
	if err != nil {
		return nil, stateErrorf(opOracle, err)
	}

	return newGate(m, in+out), nil
}
