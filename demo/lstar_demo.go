/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: lstar_demo.go
Description: Beautiful demo showcasing the Akaylee Learner. Learns the
language of words containing the substring "ab" over {a, b} from simulated
oracles and prints the state count of every intermediate hypothesis, each
counterexample, the final observation table, and the query statistics.
*/

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/learner"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
	"github.com/kleascm/akaylee-learner/pkg/words"
)

// buildTarget constructs the minimal DFA for "words containing ab":
// q0 (nothing seen), q1 (trailing a), q2 (ab seen, accepting sink).
func buildTarget(alphabet *words.Alphabet[string]) *automata.DFA[string] {
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
	return target
}

func main() {
	fmt.Println("🧠 Akaylee Learner Demo - learning L = { w | w contains \"ab\" }")
	fmt.Println()

	alphabet, err := words.NewAlphabet("a", "b")
	if err != nil {
		log.Fatalf("alphabet: %v", err)
	}
	target := buildTarget(alphabet)

	membership, err := oracle.NewSimulatorOracle(target)
	if err != nil {
		log.Fatalf("membership oracle: %v", err)
	}
	equivalence, err := oracle.NewProductEquivalenceOracle(target)
	if err != nil {
		log.Fatalf("equivalence oracle: %v", err)
	}

	lstar, err := learner.New(alphabet, membership)
	if err != nil {
		log.Fatalf("learner: %v", err)
	}

	ctx := context.Background()
	if err := lstar.StartLearning(ctx); err != nil {
		log.Fatalf("start learning: %v", err)
	}

	round := 0
	for {
		hypothesis, err := lstar.Hypothesis()
		if err != nil {
			log.Fatalf("hypothesis: %v", err)
		}
		fmt.Printf("Round %d: hypothesis has %d state(s)\n", round, hypothesis.NumStates())

		counterexample, err := equivalence.FindCounterexample(ctx, hypothesis)
		if err != nil {
			log.Fatalf("equivalence check: %v", err)
		}
		if counterexample == nil {
			fmt.Println()
			fmt.Println("✅ Converged!")
			break
		}

		fmt.Printf("         counterexample: %s (target says %v)\n", counterexample.Word, counterexample.ExpectedOutput)
		if _, err := lstar.RefineHypothesis(ctx, *counterexample); err != nil {
			log.Fatalf("refine: %v", err)
		}
		round++
	}

	fmt.Println()
	fmt.Println("Final observation table:")
	fmt.Println(lstar.ObservationTable().Render(func(d bool) string {
		if d {
			return "1"
		}
		return "0"
	}))

	stats := lstar.Stats()
	fmt.Printf("Refinements: %d, batches: %d, membership queries: %d\n",
		stats.Refinements, stats.Batches, stats.Queries)
}
