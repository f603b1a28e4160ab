// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Outcome is the product of one MEASURE statement.
//
// A plain MEASURE sets Value to the sampled outcome of the register's qubits
// (most significant qubit first). MEASURE MEASURE sets Readout and
// Probabilities to the register's marginal distribution without collapsing
// the state; Value is then -1.
type Outcome struct {
	Register      string
	Line          int
	Value         int
	Readout       bool
	Probabilities []float64
}

func (o Outcome) String() string {
	if o.Readout {
		return fmt.Sprintf("%s=%.4f", o.Register, o.Probabilities)
	}

	return fmt.Sprintf("%s=%d", o.Register, o.Value)
}

// Result collects the outcomes of one program run in statement order.
type Result struct {
	ID       uuid.UUID
	Outcomes []Outcome
}

// Values returns the sampled values, skipping readouts.
func (r *Result) Values() []int {
	out := make([]int, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if !o.Readout {
			out = append(out, o.Value)
		}
	}

	return out
}

func (r *Result) String() string {
	parts := make([]string, len(r.Outcomes))
	for i, o := range r.Outcomes {
		parts[i] = o.String()
	}

	return strings.Join(parts, " ")
}
