// Package qsim is a small quantum-computing playground: a state-vector
// simulator with a line-oriented circuit language on top.
//
// Everything is organized under these subpackages:
//
//	cnum/     complex128 helpers: conjugate, modulus, polar form, fuzzy equality
//	matrix/   complex Vector and Dense matrix, kernels, unitary/hermitian predicates
//	quantum/  State, Gate, gate library, oracles, measurement, observables
//	circuit/  lexer and interpreter for INITIALIZE/SELECT/APPLY/MEASURE programs
//	config/   environment-driven interpreter defaults
//	cmd/qsim  runs a program file and prints its outcomes
//
// Quick example (Bell pair):
//
//	INITIALIZE R 2
//	U TENSOR H I(1)
//	APPLY U R
//	APPLY CNOT R
//	MEASURE R
//
// prints R=0 or R=3, each about half the time.
//
// Qubit 0 is the most significant bit of a basis index throughout.
//
//	go get github.com/katalvlaran/qsim
package qsim
