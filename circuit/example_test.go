// SPDX-License-Identifier: MIT
package circuit_test

import (
	"fmt"

	"github.com/katalvlaran/qsim/circuit"
)

// ExampleInterpreter_Execute prepares a Bell pair, reads its distribution
// without collapsing it, then runs a deterministic CNOT on a basis state.
func ExampleInterpreter_Execute() {
	src := `INITIALIZE R 2
U TENSOR H I(1)
APPLY U R
APPLY CNOT R
MEASURE MEASURE R

INITIALIZE S [10]
APPLY CNOT S
MEASURE S
`
	res, err := circuit.New(circuit.WithSeed(1)).Execute(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res)

	// Output:
	// R=[0.5000 0.0000 0.0000 0.5000] S=3
}

// ExampleRuntimeError shows the position carried by a failed statement.
func ExampleRuntimeError() {
	_, err := circuit.New().Execute("INITIALIZE R 2\nSELECT S R 5 1\n")
	fmt.Println(err)

	// Output:
	// 2:12: offset 5 outside (sub)register bounds 0..1 (at NUMBER "5")
}
