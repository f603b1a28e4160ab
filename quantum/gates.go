// SPDX-License-Identifier: MIT

package quantum

import (
	"math"

	"github.com/katalvlaran/qsim/cnum"
	"github.com/katalvlaran/qsim/matrix"
)

// invSqrt2 is the Hadamard entry 1/√2.
var invSqrt2 = complex(1/math.Sqrt2, 0)

// Identity returns the identity on n qubits (dimension 2^n).
// It panics for n < 0.
func Identity(n int) *Gate {
	if n < 0 {
		panic(stateErrorf("Identity", ErrInvalidQubits))
	}

	return newGate(matrix.MustIdentity(1<<n), n)
}

// Hadamard returns H = 1/√2 · [[1, 1], [1, −1]].
func Hadamard() *Gate {
	return newGate(matrix.MustFromRows([][]complex128{
		{invSqrt2, invSqrt2},
		{invSqrt2, -invSqrt2},
	}), 1)
}

// Not returns the bit flip [[0, 1], [1, 0]].
func Not() *Gate {
	return newGate(matrix.MustFromRows([][]complex128{
		{0, 1},
		{1, 0},
	}), 1)
}

// PauliX is Not.
func PauliX() *Gate { return Not() }

// PauliY returns [[0, −i], [i, 0]].
func PauliY() *Gate {
	return newGate(matrix.MustFromRows([][]complex128{
		{0, -cnum.I},
		{cnum.I, 0},
	}), 1)
}

// PauliZ returns diag(1, −1).
func PauliZ() *Gate { return newGate(matrix.Diagonal(1, -1), 1) }

// PhaseShift returns diag(1, e^{iθ}).
func PhaseShift(theta float64) *Gate {
	return newGate(matrix.Diagonal(1, cnum.Expi(theta)), 1)
}

// Swap exchanges two qubits.
func Swap() *Gate {
	return newGate(matrix.MustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}), 2)
}

// Controlled returns the gate that applies g to the trailing qubits when the
// leading (control) qubit is |1⟩: diag(I, g).
func Controlled(g *Gate) *Gate {
	return newGate(matrix.DirectSum(matrix.MustIdentity(g.Dim()), g.m), g.qubits+1)
}

// CNOT is Controlled(Not()).
func CNOT() *Gate { return Controlled(Not()) }

// Fredkin is Controlled(Swap()).
func Fredkin() *Gate { return Controlled(Swap()) }

// Toffoli is Controlled(CNOT()).
func Toffoli() *Gate { return Controlled(CNOT()) }
