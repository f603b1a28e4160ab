// SPDX-License-Identifier: MIT

package circuit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxLineBytes bounds the length of a single source line including its
// terminator.
const MaxLineBytes = 1 << 20

// Scan tokenizes a program read from r.
//
// Every line that holds at least one word yields one token per
// whitespace-separated word followed by a NEWLINE token positioned just past
// the last word; blank lines yield nothing. Words are classified in order:
// keyword, named gate (H, CNOT), bit literal ([0101]),
// parameterized gate (R(θ), I(n)), number, identifier.
//
// Scan fails as a whole: on a *ScanError no tokens are returned. Lines are
// limited to MaxLineBytes.
func Scan(r io.Reader) ([]Token, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineBytes)
	var out []Token
	line := 0
	for sc.Scan() {
		line++
		toks, err := scanLine(sc.Text(), line)
		if err != nil {
			return nil, err
		}
		out = append(out, toks...)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, scanErrorf(line+1, 1, ErrLineTooLong, "line exceeds %d bytes", MaxLineBytes)
		}
		return nil, fmt.Errorf("circuit: read program: %w", err)
	}

	return out, nil
}

// ScanString is Scan over an in-memory program.
func ScanString(src string) ([]Token, error) { return Scan(strings.NewReader(src)) }

func scanLine(text string, line int) ([]Token, error) {
	var toks []Token
	end := 0
	for i := 0; i < len(text); {
		if isBlank(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && !isBlank(text[j]) {
			j++
		}
		tok, err := classify(text[i:j], line, i+1)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		end, i = j, j
	}
	if len(toks) == 0 {
		return nil, nil
	}

	return append(toks, Token{Kind: KindNewline, Line: line, Col: end + 1}), nil
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}

func classify(word string, line, col int) (Token, error) {
	tok := Token{Text: word, Line: line, Col: col}
	if k, ok := keywords[word]; ok {
		tok.Kind = k
		return tok, nil
	}
	if g, ok := namedGates[word]; ok {
		tok.Kind, tok.Gate = KindGate, PrimitiveGate{Kind: g}
		return tok, nil
	}

	switch {
	case strings.HasPrefix(word, "["):
		inner, ok := strings.CutSuffix(word[1:], "]")
		if !ok {
			return Token{}, scanErrorf(line, col, ErrBadBitLiteral, "%q has no closing bracket", word)
		}
		bits := make([]bool, len(inner))
		for i := 0; i < len(inner); i++ {
			switch inner[i] {
			case '0':
			case '1':
				bits[i] = true
			default:
				return Token{}, scanErrorf(line, col, ErrBadBitLiteral, "%q has non-binary digit %q", word, inner[i])
			}
		}
		tok.Kind, tok.Bits = KindBits, bits

	case strings.HasPrefix(word, "R("):
		inner, ok := strings.CutSuffix(word[2:], ")")
		theta, valid := parseAngle(inner)
		if !ok || !valid {
			return Token{}, scanErrorf(line, col, ErrBadGateParameter, "cannot parse angle in %q", word)
		}
		tok.Kind, tok.Gate = KindGate, PrimitiveGate{Kind: GateR, Theta: theta}

	case strings.HasPrefix(word, "I("):
		inner, ok := strings.CutSuffix(word[2:], ")")
		n, err := strconv.Atoi(inner)
		if !ok || !isDigits(inner) || err != nil {
			return Token{}, scanErrorf(line, col, ErrBadGateParameter, "cannot parse qubit count in %q", word)
		}
		tok.Kind, tok.Gate = KindGate, PrimitiveGate{Kind: GateI, Qubits: n}

	case isDigits(word):
		n, err := strconv.Atoi(word)
		if err != nil {
			return Token{}, scanErrorf(line, col, ErrBadNumber, "%q", word)
		}
		tok.Kind, tok.Number = KindNumber, n

	default:
		tok.Kind = KindIdentifier
	}

	return tok, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// piExpr matches pi, 2pi, 2*pi, pi/2, 3*pi/4, -pi/2 and similar.
var piExpr = regexp.MustCompile(`^(-?)(\d*\.?\d*)\*?pi(?:/(\d+\.?\d*))?$`)

// parseAngle accepts a plain float or a pi expression.
func parseAngle(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	}

	m := piExpr.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, false
	}
	coeff := 1.0
	if m[2] != "" {
		c, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		coeff = c
	}
	v := coeff * math.Pi
	if m[3] != "" {
		d, err := strconv.ParseFloat(m[3], 64)
		if err != nil || d == 0 {
			return 0, false
		}
		v /= d
	}
	if m[1] == "-" {
		v = -v
	}

	return v, true
}

func scanErrorf(line, col int, sentinel error, format string, args ...any) *ScanError {
	return &ScanError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}
