/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dfa.go
Description: Deterministic finite automaton for the Akaylee Learner. States
are dense integers, transitions live in a flat table indexed by
state*|Σ|+symbol, and acceptance is a per-state flag. Hypotheses extracted
from the observation table are values of this type, as are the target
automata the oracles simulate.
*/

package automata

import (
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/words"
)

// NoState marks an unset transition table entry.
const NoState = -1

// DFA is a deterministic finite automaton over an ordered alphabet.
// Transitions are stored flat: entry state*|Σ|+symbolIndex holds the
// successor state, or NoState while the automaton is under construction.
type DFA[I comparable] struct {
	alphabet    *words.Alphabet[I]
	accepting   []bool
	transitions []int
	initial     int
}

// NewDFA creates an empty automaton over the given alphabet. States are
// added with AddState; the initial state defaults to the first added state.
func NewDFA[I comparable](alphabet *words.Alphabet[I]) *DFA[I] {
	return &DFA[I]{
		alphabet: alphabet,
		initial:  NoState,
	}
}

// Alphabet returns the automaton's input alphabet.
func (d *DFA[I]) Alphabet() *words.Alphabet[I] {
	return d.alphabet
}

// AddState adds a state with the given acceptance flag and returns its id.
// All outgoing transitions start as NoState.
func (d *DFA[I]) AddState(accepting bool) int {
	id := len(d.accepting)
	d.accepting = append(d.accepting, accepting)
	for i := 0; i < d.alphabet.Size(); i++ {
		d.transitions = append(d.transitions, NoState)
	}
	if d.initial == NoState {
		d.initial = id
	}
	return id
}

// AddInitialState adds a state and marks it as the initial state.
func (d *DFA[I]) AddInitialState(accepting bool) int {
	id := d.AddState(accepting)
	d.initial = id
	return id
}

// NumStates returns the number of states.
func (d *DFA[I]) NumStates() int {
	return len(d.accepting)
}

// InitialState returns the initial state id, or NoState for an empty
// automaton.
func (d *DFA[I]) InitialState() int {
	return d.initial
}

// IsAccepting reports whether state is accepting.
func (d *DFA[I]) IsAccepting(state int) bool {
	return d.accepting[state]
}

func (d *DFA[I]) transitionIndex(state, symbolIndex int) int {
	return state*d.alphabet.Size() + symbolIndex
}

// SetTransition installs the transition state --symbolIndex--> next.
func (d *DFA[I]) SetTransition(state, symbolIndex, next int) {
	d.transitions[d.transitionIndex(state, symbolIndex)] = next
}

// Transition returns the successor of state on the symbol with the given
// index, or NoState if unset.
func (d *DFA[I]) Transition(state, symbolIndex int) int {
	return d.transitions[d.transitionIndex(state, symbolIndex)]
}

// Step returns the successor of state on symbol sym. Returns an error for a
// symbol outside the alphabet or a missing transition.
func (d *DFA[I]) Step(state int, sym I) (int, error) {
	idx, ok := d.alphabet.IndexOf(sym)
	if !ok {
		return NoState, fmt.Errorf("symbol %v is not in the alphabet", sym)
	}
	next := d.Transition(state, idx)
	if next == NoState {
		return NoState, fmt.Errorf("state %d has no transition on %v", state, sym)
	}
	return next, nil
}

// Run returns the state reached from the initial state on input w.
func (d *DFA[I]) Run(w words.Word[I]) (int, error) {
	if d.initial == NoState {
		return NoState, fmt.Errorf("automaton has no initial state")
	}
	state := d.initial
	for i := 0; i < w.Length(); i++ {
		next, err := d.Step(state, w.At(i))
		if err != nil {
			return NoState, err
		}
		state = next
	}
	return state, nil
}

// Accepts reports whether the automaton accepts w. Words leading through a
// missing transition or carrying foreign symbols are rejected.
func (d *DFA[I]) Accepts(w words.Word[I]) bool {
	state, err := d.Run(w)
	if err != nil {
		return false
	}
	return d.accepting[state]
}

// Validate checks that the automaton is total and has an initial state.
func (d *DFA[I]) Validate() error {
	if d.initial == NoState {
		return fmt.Errorf("automaton has no initial state")
	}
	if d.initial < 0 || d.initial >= len(d.accepting) {
		return fmt.Errorf("initial state %d out of range", d.initial)
	}
	for state := 0; state < d.NumStates(); state++ {
		for sym := 0; sym < d.alphabet.Size(); sym++ {
			next := d.Transition(state, sym)
			if next == NoState {
				return fmt.Errorf("state %d has no transition on symbol index %d", state, sym)
			}
			if next < 0 || next >= len(d.accepting) {
				return fmt.Errorf("state %d transitions to invalid state %d on symbol index %d", state, next, sym)
			}
		}
	}
	return nil
}
