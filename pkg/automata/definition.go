/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: definition.go
Description: JSON definition format for target automata. Lets the learner
CLI load a reference DFA to learn against: the simulator membership oracle
and the equivalence oracle both run it. Definitions are validated before use
so a malformed file fails fast with a precise error.
*/

package automata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kleascm/akaylee-learner/pkg/words"
)

// Definition is the on-disk JSON form of a DFA over string symbols.
// Transitions[s][i] is the successor of state s on the symbol with index i.
type Definition struct {
	Symbols     []string `json:"symbols"`     // Alphabet symbols in index order
	Initial     int      `json:"initial"`     // Initial state id
	Accepting   []int    `json:"accepting"`   // Accepting state ids
	Transitions [][]int  `json:"transitions"` // Per-state successor rows
}

// Validate checks the definition for structural problems.
func (def *Definition) Validate() error {
	if len(def.Symbols) == 0 {
		return fmt.Errorf("definition has no symbols")
	}
	numStates := len(def.Transitions)
	if numStates == 0 {
		return fmt.Errorf("definition has no states")
	}
	if def.Initial < 0 || def.Initial >= numStates {
		return fmt.Errorf("initial state %d out of range [0, %d)", def.Initial, numStates)
	}
	for _, state := range def.Accepting {
		if state < 0 || state >= numStates {
			return fmt.Errorf("accepting state %d out of range [0, %d)", state, numStates)
		}
	}
	for state, row := range def.Transitions {
		if len(row) != len(def.Symbols) {
			return fmt.Errorf("state %d has %d transitions, expected %d", state, len(row), len(def.Symbols))
		}
		for symbolIndex, next := range row {
			if next < 0 || next >= numStates {
				return fmt.Errorf("state %d transitions to invalid state %d on %s", state, next, def.Symbols[symbolIndex])
			}
		}
	}
	return nil
}

// Build converts the definition into a DFA and its alphabet.
func (def *Definition) Build() (*DFA[string], *words.Alphabet[string], error) {
	if err := def.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid automaton definition: %w", err)
	}
	alphabet, err := words.NewAlphabet(def.Symbols...)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid automaton alphabet: %w", err)
	}

	accepting := make(map[int]bool, len(def.Accepting))
	for _, state := range def.Accepting {
		accepting[state] = true
	}

	dfa := NewDFA(alphabet)
	for state := range def.Transitions {
		dfa.AddState(accepting[state])
	}
	dfa.initial = def.Initial
	for state, row := range def.Transitions {
		for symbolIndex, next := range row {
			dfa.SetTransition(state, symbolIndex, next)
		}
	}
	return dfa, alphabet, nil
}

// LoadDefinition reads and builds a DFA definition from a JSON file.
func LoadDefinition(path string) (*DFA[string], *words.Alphabet[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read automaton definition: %w", err)
	}
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, nil, fmt.Errorf("failed to parse automaton definition: %w", err)
	}
	return def.Build()
}
