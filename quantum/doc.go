// Package quantum implements a state-vector simulator for small registers.
//
// A State is a normalized complex vector of dimension 2^n; a Gate is a
// unitary 2^k × 2^k matrix. Qubit 0 is the most significant bit of a basis
// index, so |q0 q1 … q(n-1)⟩ has index Σ q_i·2^(n-1-i).
//
// The package provides:
//
//   - Validating constructors (NewState, NewGate) next to unchecked paths for
//     values that are correct by construction (NewGateUnchecked, the gate
//     library, OracleUnchecked).
//   - Full and range-scoped application (Apply, ApplyPartial) and the
//     error-returning variants TryApply and TryApplyPartial.
//   - Projective measurement: Measure over all qubits, MeasurePartial that
//     returns a smaller residual state, and MeasurePartialLeaveState that
//     collapses in place and keeps every qubit addressable.
//   - Oracles U_f|x,y⟩ = |x, y⊕f(x)⟩ for any total f.
//   - Observables (ExpectedValue, Variance) and simple dynamics
//     (TransitionProbability, ProbabilityAt, Evolve).
//
// Randomness comes from a Sampler; NewSampler(seed) gives reproducible runs.
// States are single-goroutine values; share them across goroutines only
// behind external locking.
package quantum
