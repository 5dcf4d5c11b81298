/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: oracle_test.go
Description: Tests for the simulated oracles. Covers membership simulation
against a reference DFA, query counting, and equivalence checking with
shortest-counterexample extraction.
*/

package oracle_test

import (
	"context"
	"testing"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
	"github.com/kleascm/akaylee-learner/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildEndsInOneTarget builds the 2-state DFA for words over {0,1} ending in 1
func buildEndsInOneTarget(t *testing.T) (*automata.DFA[string], *words.Alphabet[string]) {
	alphabet, err := words.NewAlphabet("0", "1")
	require.NoError(t, err)

	target := automata.NewDFA(alphabet)
	q0 := target.AddInitialState(false)
	q1 := target.AddState(true)
	zero, _ := alphabet.IndexOf("0")
	one, _ := alphabet.IndexOf("1")
	target.SetTransition(q0, zero, q0)
	target.SetTransition(q0, one, q1)
	target.SetTransition(q1, zero, q0)
	target.SetTransition(q1, one, q1)
	require.NoError(t, target.Validate())
	return target, alphabet
}

func TestSimulatorOracle(t *testing.T) {
	target, _ := buildEndsInOneTarget(t)
	sim, err := oracle.NewSimulatorOracle(target)
	require.NoError(t, err)

	queries := []*interfaces.MembershipQuery[string, bool]{
		{Prefix: words.Empty[string](), Suffix: words.Empty[string]()},
		{Prefix: words.FromSymbol("1"), Suffix: words.Empty[string]()},
		{Prefix: words.FromSymbol("1"), Suffix: words.FromSymbol("0")},
		{Prefix: words.FromSymbols("0", "1"), Suffix: words.FromSymbol("1")},
	}
	require.NoError(t, sim.Process(context.Background(), queries))

	assert.False(t, queries[0].Output) // ε
	assert.True(t, queries[1].Output)  // 1
	assert.False(t, queries[2].Output) // 10
	assert.True(t, queries[3].Output)  // 011
}

func TestSimulatorOracleRejectsPartialTarget(t *testing.T) {
	alphabet, err := words.NewAlphabet("a")
	require.NoError(t, err)
	partial := automata.NewDFA(alphabet)
	partial.AddInitialState(true) // no transitions installed

	_, err = oracle.NewSimulatorOracle(partial)
	assert.Error(t, err)
}

func TestSimulatorOracleHonorsContext(t *testing.T) {
	target, _ := buildEndsInOneTarget(t)
	sim, err := oracle.NewSimulatorOracle(target)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	queries := []*interfaces.MembershipQuery[string, bool]{
		{Prefix: words.Empty[string](), Suffix: words.Empty[string]()},
	}
	assert.Error(t, sim.Process(ctx, queries))
}

func TestCountingOracle(t *testing.T) {
	target, _ := buildEndsInOneTarget(t)
	sim, err := oracle.NewSimulatorOracle(target)
	require.NoError(t, err)
	counting := oracle.NewCountingOracle[string, bool](sim, nil)

	batch := []*interfaces.MembershipQuery[string, bool]{
		{Prefix: words.Empty[string](), Suffix: words.Empty[string]()},
		{Prefix: words.FromSymbol("1"), Suffix: words.Empty[string]()},
	}
	require.NoError(t, counting.Process(context.Background(), batch))
	require.NoError(t, counting.Process(context.Background(), batch[:1]))

	assert.Equal(t, int64(2), counting.Batches())
	assert.Equal(t, int64(3), counting.Queries())
}

func TestEquivalenceOracleConfirmsEqualAutomaton(t *testing.T) {
	target, _ := buildEndsInOneTarget(t)
	eq, err := oracle.NewProductEquivalenceOracle(target)
	require.NoError(t, err)

	// The target is trivially equivalent to itself
	counterexample, err := eq.FindCounterexample(context.Background(), target)
	require.NoError(t, err)
	assert.Nil(t, counterexample)
}

func TestEquivalenceOracleFindsShortestCounterexample(t *testing.T) {
	target, alphabet := buildEndsInOneTarget(t)
	eq, err := oracle.NewProductEquivalenceOracle(target)
	require.NoError(t, err)

	// A one-state automaton rejecting everything disagrees first on "1"
	wrong := automata.NewDFA(alphabet)
	q0 := wrong.AddInitialState(false)
	wrong.SetTransition(q0, 0, q0)
	wrong.SetTransition(q0, 1, q0)

	counterexample, err := eq.FindCounterexample(context.Background(), wrong)
	require.NoError(t, err)
	require.NotNil(t, counterexample)
	assert.Equal(t, "1", counterexample.Word.String())
	assert.True(t, counterexample.ExpectedOutput)
}

func TestEquivalenceOracleDepthBound(t *testing.T) {
	alphabet, err := words.NewAlphabet("a", "b")
	require.NoError(t, err)

	// Target: words containing "ab"; shortest disagreement with a one-state
	// rejector is "ab", two symbols long
	target := automata.NewDFA(alphabet)
	q0 := target.AddInitialState(false)
	q1 := target.AddState(false)
	q2 := target.AddState(true)
	a, _ := alphabet.IndexOf("a")
	b, _ := alphabet.IndexOf("b")
	target.SetTransition(q0, a, q1)
	target.SetTransition(q0, b, q0)
	target.SetTransition(q1, a, q1)
	target.SetTransition(q1, b, q2)
	target.SetTransition(q2, a, q2)
	target.SetTransition(q2, b, q2)

	eq, err := oracle.NewProductEquivalenceOracle(target)
	require.NoError(t, err)

	wrong := automata.NewDFA(alphabet)
	w0 := wrong.AddInitialState(false)
	wrong.SetTransition(w0, a, w0)
	wrong.SetTransition(w0, b, w0)

	// A bound below the shortest disagreement finds nothing
	eq.SetMaxDepth(1)
	counterexample, err := eq.FindCounterexample(context.Background(), wrong)
	require.NoError(t, err)
	assert.Nil(t, counterexample)

	// Raising the bound to the disagreement length finds it
	eq.SetMaxDepth(2)
	counterexample, err = eq.FindCounterexample(context.Background(), wrong)
	require.NoError(t, err)
	require.NotNil(t, counterexample)
	assert.Equal(t, "ab", counterexample.Word.String())

	// Resetting to 0 removes the bound
	eq.SetMaxDepth(0)
	counterexample, err = eq.FindCounterexample(context.Background(), wrong)
	require.NoError(t, err)
	require.NotNil(t, counterexample)
	assert.Equal(t, "ab", counterexample.Word.String())
}

func TestEquivalenceOracleRejectsPartialHypothesis(t *testing.T) {
	target, alphabet := buildEndsInOneTarget(t)
	eq, err := oracle.NewProductEquivalenceOracle(target)
	require.NoError(t, err)

	partial := automata.NewDFA(alphabet)
	partial.AddInitialState(false) // transitions missing

	_, err = eq.FindCounterexample(context.Background(), partial)
	assert.Error(t, err)
}
