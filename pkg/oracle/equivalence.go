/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: equivalence.go
Description: Equivalence oracle comparing a hypothesis against a reference
DFA. Walks the product of the two automata breadth-first in alphabet order,
so the first acceptance mismatch found is a shortest counterexample and runs
are deterministic.
*/

package oracle

import (
	"context"
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/words"
)

// ProductEquivalenceOracle decides hypothesis equivalence against a known
// target automaton by exploring the reachable product state space. The walk
// may be bounded to words of a maximum length; unbounded walks still
// terminate because the product state space is finite.
type ProductEquivalenceOracle[I comparable] struct {
	target   *automata.DFA[I]
	maxDepth int
}

// NewProductEquivalenceOracle creates an equivalence oracle for the given
// target. The target must be total.
func NewProductEquivalenceOracle[I comparable](target *automata.DFA[I]) (*ProductEquivalenceOracle[I], error) {
	if target == nil {
		return nil, fmt.Errorf("equivalence oracle requires a target automaton")
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("equivalence target is not a valid automaton: %w", err)
	}
	return &ProductEquivalenceOracle[I]{target: target}, nil
}

// SetMaxDepth bounds the product walk to counterexample candidates of at
// most depth symbols. A depth of 0 removes the bound. A bound shorter than
// every disagreement makes FindCounterexample report equivalence, so bounded
// checks trade completeness for a capped search.
func (o *ProductEquivalenceOracle[I]) SetMaxDepth(depth int) {
	o.maxDepth = depth
}

type productState[I comparable] struct {
	hypothesis int
	target     int
	word       words.Word[I]
}

// FindCounterexample returns a shortest word on which hypothesis and target
// disagree, or nil if no disagreement is reachable within the configured
// depth bound. Without a bound, nil means the two automata accept the same
// language. The product walk is BFS in alphabet index order, so the result
// is deterministic.
func (o *ProductEquivalenceOracle[I]) FindCounterexample(ctx context.Context, hypothesis *automata.DFA[I]) (*interfaces.Counterexample[I, bool], error) {
	if hypothesis == nil {
		return nil, fmt.Errorf("equivalence check requires a hypothesis")
	}
	if err := hypothesis.Validate(); err != nil {
		return nil, fmt.Errorf("hypothesis is not a valid automaton: %w", err)
	}
	alphabet := o.target.Alphabet()
	if hypothesis.Alphabet().Size() != alphabet.Size() {
		return nil, fmt.Errorf("hypothesis alphabet size %d does not match target alphabet size %d", hypothesis.Alphabet().Size(), alphabet.Size())
	}

	start := productState[I]{
		hypothesis: hypothesis.InitialState(),
		target:     o.target.InitialState(),
		word:       words.Empty[I](),
	}
	visited := map[[2]int]struct{}{{start.hypothesis, start.target}: {}}
	queue := []productState[I]{start}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current := queue[0]
		queue = queue[1:]

		if hypothesis.IsAccepting(current.hypothesis) != o.target.IsAccepting(current.target) {
			return &interfaces.Counterexample[I, bool]{
				Word:           current.word,
				ExpectedOutput: o.target.IsAccepting(current.target),
			}, nil
		}

		if o.maxDepth > 0 && current.word.Length() >= o.maxDepth {
			continue
		}

		for symbolIndex := 0; symbolIndex < alphabet.Size(); symbolIndex++ {
			next := productState[I]{
				hypothesis: hypothesis.Transition(current.hypothesis, symbolIndex),
				target:     o.target.Transition(current.target, symbolIndex),
				word:       current.word.Append(alphabet.SymbolAt(symbolIndex)),
			}
			pair := [2]int{next.hypothesis, next.target}
			if _, seen := visited[pair]; seen {
				continue
			}
			visited[pair] = struct{}{}
			queue = append(queue, next)
		}
	}

	return nil, nil
}
