/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: run.go
Description: Outer learning loop. Alternates hypothesis extraction and
counterexample refinement against an equivalence oracle until the hypothesis
is confirmed or the round budget runs out.
*/

package learner

import (
	"context"
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
)

// Run drives the learner to convergence: StartLearning, then alternate
// Hypothesis and RefineHypothesis with counterexamples from the equivalence
// oracle. maxRounds bounds the number of refinements (0 = unbounded).
// Returns the confirmed hypothesis and the number of refinement rounds used.
func Run[I comparable](ctx context.Context, l *BaselineLStar[I], eq interfaces.EquivalenceOracle[I], maxRounds int) (*automata.DFA[I], int, error) {
	if eq == nil {
		return nil, 0, fmt.Errorf("learning loop requires an equivalence oracle")
	}
	if err := l.StartLearning(ctx); err != nil {
		return nil, 0, err
	}

	rounds := 0
	for {
		hypothesis, err := l.Hypothesis()
		if err != nil {
			return nil, rounds, err
		}

		counterexample, err := eq.FindCounterexample(ctx, hypothesis)
		if err != nil {
			return nil, rounds, fmt.Errorf("equivalence oracle failed: %w", err)
		}
		if counterexample == nil {
			return hypothesis, rounds, nil
		}

		if maxRounds > 0 && rounds >= maxRounds {
			return hypothesis, rounds, fmt.Errorf("no convergence after %d refinement rounds", maxRounds)
		}
		rounds++

		if _, err := l.RefineHypothesis(ctx, *counterexample); err != nil {
			return nil, rounds, err
		}
	}
}
