/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: automata_test.go
Description: Tests for the DFA type and the JSON definition format. Covers
state construction, acceptance runs, totality validation, and definition
loading with error cases.
*/

package automata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFAConstructionAndRuns(t *testing.T) {
	alphabet, err := words.NewAlphabet("a", "b")
	require.NoError(t, err)

	dfa := automata.NewDFA(alphabet)
	q0 := dfa.AddInitialState(false)
	q1 := dfa.AddState(true)
	a, _ := alphabet.IndexOf("a")
	b, _ := alphabet.IndexOf("b")
	dfa.SetTransition(q0, a, q1)
	dfa.SetTransition(q0, b, q0)
	dfa.SetTransition(q1, a, q1)
	dfa.SetTransition(q1, b, q0)
	require.NoError(t, dfa.Validate())

	assert.Equal(t, 2, dfa.NumStates())
	assert.Equal(t, q0, dfa.InitialState())

	// L = words ending in a
	assert.False(t, dfa.Accepts(words.Empty[string]()))
	assert.True(t, dfa.Accepts(words.FromSymbol("a")))
	assert.False(t, dfa.Accepts(words.FromSymbols("a", "b")))
	assert.True(t, dfa.Accepts(words.FromSymbols("b", "a")))

	// Foreign symbols are rejected
	assert.False(t, dfa.Accepts(words.FromSymbol("z")))
}

func TestDFAValidateDetectsMissingTransitions(t *testing.T) {
	alphabet, err := words.NewAlphabet("a")
	require.NoError(t, err)

	dfa := automata.NewDFA(alphabet)
	assert.Error(t, dfa.Validate()) // no initial state

	dfa.AddInitialState(true)
	assert.Error(t, dfa.Validate()) // transition missing

	dfa.SetTransition(0, 0, 0)
	assert.NoError(t, dfa.Validate())
}

func TestDefinitionValidation(t *testing.T) {
	valid := automata.Definition{
		Symbols:     []string{"a", "b"},
		Initial:     0,
		Accepting:   []int{1},
		Transitions: [][]int{{1, 0}, {1, 1}},
	}
	require.NoError(t, valid.Validate())

	noSymbols := valid
	noSymbols.Symbols = nil
	assert.Error(t, noSymbols.Validate())

	badInitial := valid
	badInitial.Initial = 5
	assert.Error(t, badInitial.Validate())

	badAccepting := valid
	badAccepting.Accepting = []int{7}
	assert.Error(t, badAccepting.Validate())

	badRow := valid
	badRow.Transitions = [][]int{{1}, {1, 1}}
	assert.Error(t, badRow.Validate())

	badTarget := valid
	badTarget.Transitions = [][]int{{1, 9}, {1, 1}}
	assert.Error(t, badTarget.Validate())
}

func TestDefinitionBuild(t *testing.T) {
	def := automata.Definition{
		Symbols:     []string{"0", "1"},
		Initial:     0,
		Accepting:   []int{1},
		Transitions: [][]int{{0, 1}, {0, 1}},
	}

	dfa, alphabet, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, alphabet.Size())
	assert.Equal(t, 2, dfa.NumStates())

	// L = words ending in 1
	assert.True(t, dfa.Accepts(words.FromSymbols("0", "1")))
	assert.False(t, dfa.Accepts(words.FromSymbols("1", "0")))
}

func TestLoadDefinition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.json")
	payload := `{
		"symbols": ["a"],
		"initial": 0,
		"accepting": [0],
		"transitions": [[0]]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	dfa, alphabet, err := automata.LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, 1, alphabet.Size())
	assert.True(t, dfa.Accepts(words.FromSymbols("a", "a", "a")))
}

func TestLoadDefinitionErrors(t *testing.T) {
	_, _, err := automata.LoadDefinition("/nonexistent/target.json")
	assert.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, _, err = automata.LoadDefinition(path)
	assert.Error(t, err)
}
