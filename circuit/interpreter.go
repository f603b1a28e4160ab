// SPDX-License-Identifier: MIT

package circuit

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/qsim/quantum"
	"github.com/rs/zerolog"
)

// Interpreter executes token streams produced by Scan. It keeps no state
// between runs apart from its options; the sampler is shared, so a seeded
// interpreter produces a reproducible sequence of runs.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	opts Options
}

// New returns an Interpreter configured by opts.
func New(opts ...Option) *Interpreter {
	return &Interpreter{opts: gatherOptions(opts...)}
}

// Execute scans src and runs it.
func (in *Interpreter) Execute(src string) (*Result, error) {
	toks, err := ScanString(src)
	if err != nil {
		return nil, err
	}

	return in.Run(toks)
}

// Run executes tokens statement by statement against a fresh set of
// registers and operators. It halts at the first failing statement and
// returns its *RuntimeError with no partial result.
func (in *Interpreter) Run(tokens []Token) (*Result, error) {
	id := uuid.New()
	r := &run{
		opts: &in.opts,
		log:  in.opts.Logger.With().Str("run", id.String()).Logger(),
		toks: tokens,
		mem:  newArena(),
		res:  &Result{ID: id},
	}
	for r.pos < len(r.toks) {
		if err := r.statement(); err != nil {
			r.log.Debug().Err(err).Msg("run aborted")
			return nil, err
		}
	}
	r.log.Debug().Int("outcomes", len(r.res.Outcomes)).Msg("run finished")

	return r.res, nil
}

// run is the state of one Run: a cursor into the immutable token slice plus
// the arena the statements mutate.
type run struct {
	opts *Options
	log  zerolog.Logger
	toks []Token
	pos  int
	mem  *arena
	res  *Result
}

func (r *run) peek() *Token {
	if r.pos >= len(r.toks) {
		return nil
	}

	return &r.toks[r.pos]
}

func (r *run) next() *Token {
	t := r.peek()
	if t != nil {
		r.pos++
	}

	return t
}

// arg consumes the next argument of the current line. At a NEWLINE or the end
// of input it returns nil and consumes nothing.
func (r *run) arg() *Token {
	t := r.peek()
	if t == nil || t.Kind == KindNewline {
		return nil
	}
	r.pos++

	return t
}

func (r *run) statement() error {
	stmt := r.next()
	r.log.Debug().Int("line", stmt.Line).Stringer("stmt", stmt.Kind).Msg("statement")

	var err error
	switch stmt.Kind {
	case KindInitialize:
		err = r.initialize(stmt)
	case KindSelect:
		err = r.selectRegister(stmt)
	case KindApply:
		err = r.apply(stmt)
	case KindMeasure:
		err = r.measure(stmt)
	case KindIdentifier:
		err = r.define(stmt)
	default:
		return runtimeErrorf(stmt, ErrUnexpectedToken, "a statement cannot start with %s", stmt.Kind)
	}
	if err != nil {
		return err
	}

	return r.endOfLine(stmt)
}

func (r *run) endOfLine(stmt *Token) error {
	t := r.next()
	if t == nil {
		return runtimeErrorf(stmt, ErrMissingArgument, "statement is not terminated by a newline")
	}
	if t.Kind != KindNewline {
		return runtimeErrorf(t, ErrUnexpectedToken, "expected end of line")
	}

	return nil
}

// INITIALIZE name n | INITIALIZE name [bits]
func (r *run) initialize(stmt *Token) error {
	name, err := r.identifier(stmt, "register name")
	if err != nil {
		return err
	}
	t := r.arg()
	if t == nil {
		return runtimeErrorf(stmt, ErrMissingArgument, "missing qubit count (NUMBER or BITS)")
	}

	var s *quantum.State
	switch t.Kind {
	case KindNumber:
		if err := r.checkWidth(t, t.Number); err != nil {
			return err
		}
		if s, err = quantum.Zero(t.Number, quantum.WithSampler(r.opts.Sampler)); err != nil {
			return runtimeErrorf(t, ErrOutOfBounds, "%v", err)
		}
	case KindBits:
		if err := r.checkWidth(t, len(t.Bits)); err != nil {
			return err
		}
		s = quantum.FromBits(t.Bits, quantum.WithSampler(r.opts.Sampler))
	default:
		return runtimeErrorf(t, ErrUnexpectedToken, "expected qubit count (NUMBER or BITS)")
	}
	r.mem.alloc(name.Text, s)

	return nil
}

func (r *run) checkWidth(t *Token, n int) error {
	if n < 1 || n > r.opts.MaxQubits {
		return runtimeErrorf(t, ErrOutOfBounds, "register width %d outside 1..%d", n, r.opts.MaxQubits)
	}

	return nil
}

// SELECT alias parent offset count
func (r *run) selectRegister(stmt *Token) error {
	alias, err := r.identifier(stmt, "alias name")
	if err != nil {
		return err
	}
	_, parent, err := r.register(stmt)
	if err != nil {
		return err
	}
	width := parent.rng.Len()

	off, err := r.number(stmt, "offset")
	if err != nil {
		return err
	}
	if off.Number >= width {
		return runtimeErrorf(off, ErrOutOfBounds, "offset %d outside (sub)register bounds 0..%d", off.Number, width-1)
	}
	cnt, err := r.number(stmt, "qubit count")
	if err != nil {
		return err
	}
	if cnt.Number < 1 || cnt.Number > width-off.Number {
		return runtimeErrorf(cnt, ErrOutOfBounds, "qubit count %d outside 1..%d", cnt.Number, width-off.Number)
	}

	reg := r.mem.slice(alias.Text, parent, off.Number, cnt.Number)
	r.log.Debug().Str("alias", alias.Text).Stringer("range", reg.rng).Msg("register selected")

	return nil
}

// name TENSOR a b | name CONCAT a b | name INVERSE a
func (r *run) define(name *Token) error {
	macro := r.arg()
	if macro == nil {
		return runtimeErrorf(name, ErrMissingArgument, "operator definition has no TENSOR, CONCAT or INVERSE")
	}

	var g *quantum.Gate
	switch macro.Kind {
	case KindTensor:
		a, b, err := r.operatorPair(name)
		if err != nil {
			return err
		}
		if w := a.NumQubits() + b.NumQubits(); w > r.opts.MaxQubits {
			return runtimeErrorf(macro, ErrOutOfBounds, "tensor product acts on %d qubits, limit is %d", w, r.opts.MaxQubits)
		}
		g = a.Tensor(b)
	case KindConcat:
		a, b, err := r.operatorPair(name)
		if err != nil {
			return err
		}
		if g, err = a.Compose(b); err != nil {
			return runtimeErrorf(macro, ErrDimensionMismatch, "operands act on %d and %d qubits", a.NumQubits(), b.NumQubits())
		}
	case KindInverse:
		a, err := r.operator(name)
		if err != nil {
			return err
		}
		g = a.Inverse()
	default:
		return runtimeErrorf(macro, ErrUnexpectedToken, "expected TENSOR, CONCAT or INVERSE")
	}

	r.mem.operators[name.Text] = g
	r.log.Debug().Str("operator", name.Text).Int("qubits", g.NumQubits()).Msg("operator defined")

	return nil
}

// APPLY op reg
func (r *run) apply(stmt *Token) error {
	g, err := r.operator(stmt)
	if err != nil {
		return err
	}
	name, reg, err := r.register(stmt)
	if err != nil {
		return err
	}
	if g.NumQubits() != reg.rng.Len() {
		return runtimeErrorf(stmt, ErrDimensionMismatch, "operator acts on %d qubits, register %q holds %d", g.NumQubits(), name, reg.rng.Len())
	}
	if err := r.mem.state(reg).TryApplyPartial(reg.rng, g); err != nil {
		return runtimeErrorf(stmt, ErrDimensionMismatch, "%v", err)
	}

	return nil
}

// MEASURE reg | MEASURE MEASURE reg
func (r *run) measure(stmt *Token) error {
	readout := false
	if t := r.peek(); t != nil && t.Kind == KindMeasure {
		r.pos++
		readout = true
	}
	name, reg, err := r.register(stmt)
	if err != nil {
		return err
	}

	s := r.mem.state(reg)
	out := Outcome{Register: name, Line: stmt.Line}
	if readout {
		p, err := s.MarginalProbabilities(reg.rng)
		if err != nil {
			return runtimeErrorf(stmt, ErrOutOfBounds, "%v", err)
		}
		out.Value, out.Readout, out.Probabilities = -1, true, p
	} else {
		v, err := s.MeasurePartialLeaveState(reg.rng)
		if err != nil {
			return runtimeErrorf(stmt, ErrOutOfBounds, "%v", err)
		}
		out.Value = v
	}
	r.res.Outcomes = append(r.res.Outcomes, out)
	r.log.Debug().Str("register", name).Int("value", out.Value).Bool("readout", readout).Msg("measured")

	return nil
}

func (r *run) identifier(stmt *Token, what string) (*Token, error) {
	t := r.arg()
	if t == nil {
		return nil, runtimeErrorf(stmt, ErrMissingArgument, "missing %s (IDENTIFIER)", what)
	}
	if t.Kind != KindIdentifier {
		return nil, runtimeErrorf(t, ErrUnexpectedToken, "expected IDENTIFIER for %s", what)
	}

	return t, nil
}

func (r *run) number(stmt *Token, what string) (*Token, error) {
	t := r.arg()
	if t == nil {
		return nil, runtimeErrorf(stmt, ErrMissingArgument, "missing %s (NUMBER)", what)
	}
	if t.Kind != KindNumber {
		return nil, runtimeErrorf(t, ErrUnexpectedToken, "expected NUMBER for %s", what)
	}

	return t, nil
}

func (r *run) register(stmt *Token) (string, register, error) {
	t, err := r.identifier(stmt, "register name")
	if err != nil {
		return "", register{}, err
	}
	reg, ok := r.mem.registers[t.Text]
	if !ok {
		return "", register{}, runtimeErrorf(t, ErrUndefinedRegister, "register %q is not defined", t.Text)
	}

	return t.Text, reg, nil
}

// operator resolves a named operator or a gate literal.
func (r *run) operator(stmt *Token) (*quantum.Gate, error) {
	t := r.arg()
	if t == nil {
		return nil, runtimeErrorf(stmt, ErrMissingArgument, "missing operator (IDENTIFIER or GATE)")
	}
	switch t.Kind {
	case KindIdentifier:
		if g, ok := r.mem.operators[t.Text]; ok {
			return g, nil
		}
		if k, ok := builtinOperators[t.Text]; ok {
			return r.literal(t, PrimitiveGate{Kind: k})
		}
		return nil, runtimeErrorf(t, ErrUndefinedOperator, "operator %q is not defined", t.Text)
	case KindGate:
		return r.literal(t, t.Gate)
	default:
		return nil, runtimeErrorf(t, ErrUnexpectedToken, "expected operator (IDENTIFIER or GATE)")
	}
}

func (r *run) literal(t *Token, p PrimitiveGate) (*quantum.Gate, error) {
	if n := p.NumQubits(); n > r.opts.MaxQubits {
		return nil, runtimeErrorf(t, ErrOutOfBounds, "gate acts on %d qubits, limit is %d", n, r.opts.MaxQubits)
	}

	return p.Gate(), nil
}

func (r *run) operatorPair(stmt *Token) (a, b *quantum.Gate, err error) {
	if a, err = r.operator(stmt); err != nil {
		return nil, nil, err
	}
	if b, err = r.operator(stmt); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}
