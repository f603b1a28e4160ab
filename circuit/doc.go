// Package circuit implements a small line-oriented language for building and
// running quantum circuits on the quantum package.
//
// A program is one statement per line, words separated by blanks:
//
//	INITIALIZE R 2          // register R of 2 qubits in |00⟩
//	INITIALIZE S [101]      // register S in the basis state |101⟩
//	SELECT Q R 1 1          // Q aliases qubit 1 of R
//	U TENSOR H H            // U = H ⊗ H
//	V CONCAT U U            // V = U·U
//	W INVERSE V             // W = V†
//	APPLY U R               // apply U to the qubits of R
//	MEASURE Q               // sample Q, collapse the shared state
//	MEASURE MEASURE R       // read R's marginal distribution, no collapse
//
// Gate literals are H, CNOT, R(θ) (phase shift; θ may be a float or a pi
// expression such as pi/2 or -3*pi/4) and I(n) (identity on n qubits). The
// names X, Y, Z and SWAP denote the Pauli and swap gates wherever an operator
// is expected, unless an operator of that name has been defined; they remain
// ordinary identifiers for registers and definitions.
//
// Scan turns text into tokens and fails with a *ScanError on malformed
// literals. Interpreter.Run executes tokens and stops at the first
// *RuntimeError, which carries the offending token and its position. Both
// error types wrap package sentinels for errors.Is.
//
// Registers created by SELECT are views onto their parent's state: gates and
// measurements through any alias act on one shared state. Register width is
// bounded by WithMaxQubits (default 8).
package circuit
