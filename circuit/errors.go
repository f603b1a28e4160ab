// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
)

// Lexical sentinels, carried by *ScanError.
var (
	// ErrBadBitLiteral indicates a bracketed literal with a digit other than 0 or 1,
	// or a missing closing bracket.
	ErrBadBitLiteral = errors.New("circuit: malformed bit literal")

	// ErrBadGateParameter indicates an R(θ) or I(n) literal whose parameter does not parse.
	ErrBadGateParameter = errors.New("circuit: unparsable gate parameter")

	// ErrBadNumber indicates a numeric literal that does not fit an int.
	ErrBadNumber = errors.New("circuit: numeric literal out of range")

	// ErrLineTooLong indicates a source line longer than MaxLineBytes.
	ErrLineTooLong = errors.New("circuit: line too long")
)

// Runtime sentinels, carried by *RuntimeError.
var (
	// ErrUndefinedRegister indicates a register name that has not been initialized or selected.
	ErrUndefinedRegister = errors.New("circuit: undefined register")

	// ErrUndefinedOperator indicates an operator name that has not been defined.
	ErrUndefinedOperator = errors.New("circuit: undefined operator")

	// ErrOutOfBounds indicates a qubit count, offset or width outside its allowed interval.
	ErrOutOfBounds = errors.New("circuit: argument out of bounds")

	// ErrDimensionMismatch indicates operands or an operator and register of different widths.
	ErrDimensionMismatch = errors.New("circuit: dimension mismatch")

	// ErrUnexpectedToken indicates a token of the wrong kind, including extra tokens
	// before the end of a line.
	ErrUnexpectedToken = errors.New("circuit: unexpected token")

	// ErrMissingArgument indicates a statement that ends before all its arguments.
	ErrMissingArgument = errors.New("circuit: missing argument")
)

// ScanError reports a lexical error. A failed scan returns no tokens.
type ScanError struct {
	Line int
	Col  int
	Msg  string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %v: %s", e.Line, e.Col, e.Err, e.Msg)
}

func (e *ScanError) Unwrap() error { return e.Err }

// RuntimeError reports a failed statement. Token is the offending token, or
// the statement keyword when an argument is missing; it may be nil when the
// program ends mid-statement.
type RuntimeError struct {
	Token *Token
	Msg   string
	Err   error
}

func (e *RuntimeError) Error() string {
	if e.Token == nil {
		return e.Msg
	}

	return fmt.Sprintf("%s: %s (at %s)", e.Token.Pos(), e.Msg, e.Token)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

func runtimeErrorf(tok *Token, sentinel error, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}
