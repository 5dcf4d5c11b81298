/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hypothesis.go
Description: Hypothesis extraction from a closed, consistent observation
table. Builds a DFA with one state per distinct short prefix row signature:
the first short prefix carrying a signature is its representative, the
ε-column value decides acceptance, and transitions follow the rows of the
one-symbol extensions.
*/

package learner

import (
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/table"
)

// buildHypothesis converts the current table into a DFA. Well-definedness
// relies on closedness (every extension row has a short row signature) and
// consistency (the representative choice does not matter).
func (l *BaselineLStar[I]) buildHypothesis() (*automata.DFA[I], error) {
	shortRows, err := l.obs.ShortRows()
	if err != nil {
		return nil, err
	}

	epsilonColumn := -1
	for i, suffix := range l.obs.Suffixes() {
		if suffix.IsEmpty() {
			epsilonColumn = i
			break
		}
	}
	if epsilonColumn < 0 {
		return nil, fmt.Errorf("%w: suffix set lost the empty word", table.ErrInvariantViolation)
	}

	dfa := automata.NewDFA(l.alphabet)
	states := make(map[string]int, len(shortRows))

	for _, row := range shortRows {
		signature := row.SignatureKey()
		if _, present := states[signature]; present {
			continue
		}
		accepting := row.ValueAt(epsilonColumn)
		if row.Label().IsEmpty() {
			states[signature] = dfa.AddInitialState(accepting)
		} else {
			states[signature] = dfa.AddState(accepting)
		}
	}

	for _, row := range shortRows {
		from := states[row.SignatureKey()]
		for symbolIndex, sym := range l.alphabet.Symbols() {
			extensionRow, err := l.obs.RowOf(row.Label().Append(sym))
			if err != nil {
				return nil, err
			}
			to, present := states[extensionRow.SignatureKey()]
			if !present {
				return nil, fmt.Errorf("%w: row %s has no matching candidate state, table is not closed", table.ErrInvariantViolation, extensionRow.Label())
			}
			dfa.SetTransition(from, symbolIndex, to)
		}
	}

	return dfa, nil
}
