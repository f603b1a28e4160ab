// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/qsim/quantum"
)

// Kind classifies a Token.
type Kind int

const (
	KindIdentifier Kind = iota
	KindNumber
	KindBits
	KindGate
	KindInitialize
	KindSelect
	KindApply
	KindMeasure
	KindTensor
	KindConcat
	KindInverse
	KindNewline
)

var kindNames = [...]string{
	KindIdentifier: "IDENTIFIER",
	KindNumber:     "NUMBER",
	KindBits:       "BITS",
	KindGate:       "GATE",
	KindInitialize: "INITIALIZE",
	KindSelect:     "SELECT",
	KindApply:      "APPLY",
	KindMeasure:    "MEASURE",
	KindTensor:     "TENSOR",
	KindConcat:     "CONCAT",
	KindInverse:    "INVERSE",
	KindNewline:    "NEWLINE",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// keywords maps reserved words to their kinds. Matching is case-sensitive.
var keywords = map[string]Kind{
	"INITIALIZE": KindInitialize,
	"SELECT":     KindSelect,
	"APPLY":      KindApply,
	"MEASURE":    KindMeasure,
	"TENSOR":     KindTensor,
	"CONCAT":     KindConcat,
	"INVERSE":    KindInverse,
}

// GateKind names a primitive gate literal.
type GateKind int

const (
	GateH GateKind = iota
	GateCNOT
	GateX
	GateY
	GateZ
	GateSwap
	GateR // R(θ): phase shift, parameter in PrimitiveGate.Theta
	GateI // I(n): identity on n qubits, parameter in PrimitiveGate.Qubits
)

// namedGates are the parameterless gate literals reserved by the lexer.
var namedGates = map[string]GateKind{
	"H":    GateH,
	"CNOT": GateCNOT,
}

// builtinOperators scan as identifiers. They resolve to their gate only where
// an operator is expected and no operator of the same name is bound, so they
// stay usable as register and operator names.
var builtinOperators = map[string]GateKind{
	"X":    GateX,
	"Y":    GateY,
	"Z":    GateZ,
	"SWAP": GateSwap,
}

// PrimitiveGate is a gate literal from program text.
type PrimitiveGate struct {
	Kind   GateKind
	Theta  float64
	Qubits int
}

// NumQubits returns the width of the gate the literal denotes.
func (p PrimitiveGate) NumQubits() int {
	switch p.Kind {
	case GateCNOT, GateSwap:
		return 2
	case GateI:
		return p.Qubits
	default:
		return 1
	}
}

// Gate builds the quantum gate the literal denotes.
func (p PrimitiveGate) Gate() *quantum.Gate {
	switch p.Kind {
	case GateH:
		return quantum.Hadamard()
	case GateCNOT:
		return quantum.CNOT()
	case GateX:
		return quantum.PauliX()
	case GateY:
		return quantum.PauliY()
	case GateZ:
		return quantum.PauliZ()
	case GateSwap:
		return quantum.Swap()
	case GateR:
		return quantum.PhaseShift(p.Theta)
	case GateI:
		return quantum.Identity(p.Qubits)
	default:
		panic(fmt.Sprintf("circuit: unknown gate kind %d", p.Kind))
	}
}

// Token is one lexical unit of a program. Line and Col are 1-based; Col
// counts bytes. Only the payload field matching Kind is set.
type Token struct {
	Kind   Kind
	Text   string
	Number int
	Bits   []bool
	Gate   PrimitiveGate
	Line   int
	Col    int
}

// Pos renders the position as "line:col".
func (t *Token) Pos() string { return fmt.Sprintf("%d:%d", t.Line, t.Col) }

func (t *Token) String() string {
	if t.Kind == KindNewline {
		return t.Kind.String()
	}

	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}
