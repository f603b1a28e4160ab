// SPDX-License-Identifier: MIT

package circuit

import "github.com/katalvlaran/qsim/quantum"

// register is a named view onto one arena state: a handle plus the qubit
// interval it addresses. Aliases made by SELECT share the handle, so gates
// and measurements through any alias act on the same state.
type register struct {
	handle int
	rng    quantum.Range
}

// arena owns every state created during a run.
type arena struct {
	states    []*quantum.State
	registers map[string]register
	operators map[string]*quantum.Gate
}

func newArena() *arena {
	return &arena{
		registers: make(map[string]register),
		operators: make(map[string]*quantum.Gate),
	}
}

// alloc stores s and binds name to the whole of it.
func (a *arena) alloc(name string, s *quantum.State) register {
	r := register{handle: len(a.states), rng: quantum.Range{Start: 0, End: s.NumQubits()}}
	a.states = append(a.states, s)
	a.registers[name] = r

	return r
}

// slice binds alias to count qubits of parent starting at offset. The caller
// has checked the bounds.
func (a *arena) slice(alias string, parent register, offset, count int) register {
	start := parent.rng.Start + offset
	r := register{handle: parent.handle, rng: quantum.Range{Start: start, End: start + count}}
	a.registers[alias] = r

	return r
}

func (a *arena) state(r register) *quantum.State { return a.states[r.handle] }
