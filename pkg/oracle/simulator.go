/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: simulator.go
Description: Membership oracle backed by a reference DFA. Answers every
query by running prefix·suffix through the target automaton. Used by the CLI
and the test suites to stand in for a real system under learning.
*/

package oracle

import (
	"context"
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
)

// SimulatorOracle answers membership queries from a target DFA.
type SimulatorOracle[I comparable] struct {
	target *automata.DFA[I]
}

// NewSimulatorOracle creates a membership oracle simulating the given
// automaton. The automaton must be total.
func NewSimulatorOracle[I comparable](target *automata.DFA[I]) (*SimulatorOracle[I], error) {
	if target == nil {
		return nil, fmt.Errorf("simulator oracle requires a target automaton")
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("simulator target is not a valid automaton: %w", err)
	}
	return &SimulatorOracle[I]{target: target}, nil
}

// Process answers each query with the target's classification of
// prefix·suffix. Honors context cancellation between queries.
func (o *SimulatorOracle[I]) Process(ctx context.Context, queries []*interfaces.MembershipQuery[I, bool]) error {
	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			return err
		}
		query.Output = o.target.Accepts(query.Word())
	}
	return nil
}
