/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: lstar.go
Description: Baseline L* learner implementation. Drives the observation
table through populate, close, and consistency phases against a batched
membership oracle, processes counterexamples by promoting all their prefixes
to candidate states, and keeps the table closed and consistent after
StartLearning and every RefineHypothesis (AddGlobalSuffixes only re-closes
it). This is Angluin's original scheme: no binary search or
suffix-based counterexample splitting.
*/

package learner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/table"
	"github.com/kleascm/akaylee-learner/pkg/words"
	"github.com/sirupsen/logrus"
)

// Stats tracks learner progress counters for reporting.
type Stats struct {
	Batches     int64 `json:"batches"`     // Oracle batches dispatched
	Queries     int64 `json:"queries"`     // Membership queries asked
	Refinements int64 `json:"refinements"` // Counterexamples processed
}

// BaselineLStar learns a DFA over a fixed alphabet from a membership oracle.
// A learner exclusively owns its observation table and is not safe for
// concurrent use; independent learners with independent oracles may run in
// parallel.
type BaselineLStar[I comparable] struct {
	id       string
	alphabet *words.Alphabet[I]
	oracle   interfaces.MembershipOracle[I, bool]
	obs      *table.Table[I, bool]
	logger   *logrus.Logger

	started bool
	stats   Stats
}

// New creates a learner over the given alphabet and membership oracle. The
// observation table is seeded (ε short, every symbol long, ε suffix) but the
// oracle is not yet consulted; call StartLearning for that.
func New[I comparable](alphabet *words.Alphabet[I], oracle interfaces.MembershipOracle[I, bool]) (*BaselineLStar[I], error) {
	if alphabet == nil {
		return nil, fmt.Errorf("learner requires an alphabet")
	}
	if oracle == nil {
		return nil, fmt.Errorf("learner requires a membership oracle - pass one to New()")
	}
	obs, err := table.New[I, bool](alphabet)
	if err != nil {
		return nil, fmt.Errorf("failed to seed observation table: %w", err)
	}
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return &BaselineLStar[I]{
		id:       uuid.New().String(),
		alphabet: alphabet,
		oracle:   oracle,
		obs:      obs,
		logger:   logger,
	}, nil
}

// SetLogger replaces the learner's logger. Useful for wiring the engine into
// an application-wide logging setup.
func (l *BaselineLStar[I]) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// ID returns the unique id of this learner instance.
func (l *BaselineLStar[I]) ID() string {
	return l.id
}

// Stats returns the learner's progress counters.
func (l *BaselineLStar[I]) Stats() Stats {
	return l.stats
}

// Alphabet returns the input alphabet being learned.
func (l *BaselineLStar[I]) Alphabet() *words.Alphabet[I] {
	return l.alphabet
}

// ObservationTable returns a read-only view of the observation table for
// inspection and printing.
func (l *BaselineLStar[I]) ObservationTable() table.View[I, bool] {
	return l.obs
}

// StartLearning performs the first learn iteration: it populates every cell
// of the seeded table with one batched oracle call and makes the table
// closed and consistent. May be called at most once.
func (l *BaselineLStar[I]) StartLearning(ctx context.Context) error {
	if l.started {
		return fmt.Errorf("%w: StartLearning may only be called once", ErrInvalidLifecycle)
	}

	if err := l.processMembershipQueries(ctx, l.allPrefixes(), l.obs.Suffixes()); err != nil {
		return err
	}
	if err := l.makeClosedAndConsistent(ctx); err != nil {
		return err
	}

	l.started = true
	l.logger.WithFields(logrus.Fields{
		"learner_id": l.id,
		"states":     len(l.obs.ShortPrefixes()),
		"queries":    l.stats.Queries,
	}).Info("Initial hypothesis table ready")
	return nil
}

// RefineHypothesis processes a counterexample: every prefix of the word
// becomes a short prefix, the long region is swept, the new one-symbol
// extensions are added, the fresh cells are populated in one batch, and the
// table is made closed and consistent again. Returns true on success (the
// baseline scheme always strictly refines the table).
//
// A counterexample whose declared output matches the current hypothesis is
// rejected with ErrInvalidCounterexample and leaves the table unchanged.
func (l *BaselineLStar[I]) RefineHypothesis(ctx context.Context, ce interfaces.Counterexample[I, bool]) (bool, error) {
	if !l.started {
		return false, fmt.Errorf("%w: unable to refine hypothesis before first learn iteration", ErrInvalidLifecycle)
	}

	hypothesis, err := l.buildHypothesis()
	if err != nil {
		return false, err
	}
	if hypothesis.Accepts(ce.Word) == ce.ExpectedOutput {
		return false, fmt.Errorf("%w: hypothesis already classifies %s as %v", ErrInvalidCounterexample, ce.Word, ce.ExpectedOutput)
	}

	newPrefixes := l.prefixesOfWordNotInStates(ce.Word)
	for _, prefix := range newPrefixes {
		if err := l.obs.PromoteToShort(prefix); err != nil {
			return false, err
		}
	}
	l.obs.RemoveShortPrefixesFromLong()

	if err := l.addCandidatesFromPrefixes(newPrefixes); err != nil {
		return false, err
	}

	if err := l.processMembershipQueries(ctx, l.allPrefixes(), l.obs.Suffixes()); err != nil {
		return false, err
	}
	if err := l.makeClosedAndConsistent(ctx); err != nil {
		return false, err
	}

	l.stats.Refinements++
	l.logger.WithFields(logrus.Fields{
		"learner_id":     l.id,
		"counterexample": ce.Word.String(),
		"states":         len(l.obs.ShortPrefixes()),
		"suffixes":       len(l.obs.Suffixes()),
	}).Info("Hypothesis refined")
	return true, nil
}

// Hypothesis extracts a DFA from the closed, consistent table.
func (l *BaselineLStar[I]) Hypothesis() (*automata.DFA[I], error) {
	if !l.started {
		return nil, fmt.Errorf("%w: unable to get hypothesis model before first learn iteration", ErrInvalidLifecycle)
	}
	return l.buildHypothesis()
}

// GlobalSuffixes returns the current suffix columns in order.
func (l *BaselineLStar[I]) GlobalSuffixes() []words.Word[I] {
	return l.obs.Suffixes()
}

// AddGlobalSuffixes appends the given suffixes as new columns, populates
// them, and re-closes the table. Consistency is NOT re-checked here; the
// next RefineHypothesis pass repairs any inconsistency a new column exposes.
// Returns true if closing grew the set of candidate states.
func (l *BaselineLStar[I]) AddGlobalSuffixes(ctx context.Context, suffixes ...words.Word[I]) (bool, error) {
	for _, suffix := range suffixes {
		if err := l.obs.AddSuffix(suffix); err != nil {
			return false, err
		}
	}

	statesBefore := len(l.obs.ShortPrefixes())

	if err := l.processMembershipQueries(ctx, l.allPrefixes(), suffixes); err != nil {
		return false, err
	}
	if err := l.closeTable(ctx); err != nil {
		return false, err
	}

	return len(l.obs.ShortPrefixes()) != statesBefore, nil
}

// prefixesOfWordNotInStates returns the prefixes of word (ε excluded, word
// included) that are not currently short prefixes, in increasing length.
func (l *BaselineLStar[I]) prefixesOfWordNotInStates(word words.Word[I]) []words.Word[I] {
	out := make([]words.Word[I], 0, word.Length())
	for _, prefix := range word.Prefixes(false) {
		if region, ok := l.obs.Region(prefix); ok && region == table.RegionShort {
			continue
		}
		out = append(out, prefix)
	}
	return out
}

// addCandidatesFromPrefixes adds the one-symbol extensions of the newly
// promoted prefixes to the long region, skipping extensions that are already
// candidate states.
func (l *BaselineLStar[I]) addCandidatesFromPrefixes(prefixes []words.Word[I]) error {
	for _, prefix := range prefixes {
		for _, candidate := range l.alphabet.Extensions(prefix) {
			if region, ok := l.obs.Region(candidate); ok && region == table.RegionShort {
				continue
			}
			if err := l.obs.AddLongPrefix(candidate); err != nil {
				return err
			}
		}
	}
	return nil
}

// makeClosedAndConsistent alternates the close and consistency phases until
// both properties hold. Terminates: closing strictly grows the short region,
// which is bounded by the number of distinct signatures, and every new
// suffix strictly separates two previously equal rows.
func (l *BaselineLStar[I]) makeClosedAndConsistent(ctx context.Context) error {
	for {
		closedAndConsistent := true

		if !l.obs.IsClosed() {
			closedAndConsistent = false
			if err := l.closeTable(ctx); err != nil {
				return err
			}
		}

		if !l.obs.IsConsistentWith(l.alphabet) {
			closedAndConsistent = false
			if err := l.ensureConsistency(ctx); err != nil {
				return err
			}
		}

		if closedAndConsistent {
			return nil
		}
	}
}

// closeTable moves unclosed long prefixes into the short region until every
// long row has a matching candidate state, populating the new extensions as
// it goes.
func (l *BaselineLStar[I]) closeTable(ctx context.Context) error {
	for {
		candidate, found := l.obs.FindUnclosed()
		if !found {
			return nil
		}
		if err := l.obs.MoveLongToShort(candidate); err != nil {
			return err
		}

		extensions := l.alphabet.Extensions(candidate)
		for _, extension := range extensions {
			if l.obs.Contains(extension) {
				continue
			}
			if err := l.obs.AddLongPrefix(extension); err != nil {
				return err
			}
		}

		if err := l.processMembershipQueries(ctx, extensions, l.obs.Suffixes()); err != nil {
			return err
		}
	}
}

// ensureConsistency resolves one inconsistency by appending its witness
// suffix and populating the new column for every prefix.
func (l *BaselineLStar[I]) ensureConsistency(ctx context.Context) error {
	inconsistency, err := l.obs.FindInconsistency(l.alphabet)
	if err != nil {
		return err
	}
	if inconsistency == nil {
		return nil
	}

	newSuffix := inconsistency.NewSuffix()
	if err := l.obs.AddSuffix(newSuffix); err != nil {
		return err
	}
	l.logger.WithFields(logrus.Fields{
		"learner_id": l.id,
		"first":      inconsistency.First.String(),
		"second":     inconsistency.Second.String(),
		"suffix":     newSuffix.String(),
	}).Debug("Inconsistency witnessed, suffix added")

	return l.processMembershipQueries(ctx, l.allPrefixes(), []words.Word[I]{newSuffix})
}

// allPrefixes returns every prefix of the table, short region first, both in
// insertion order.
func (l *BaselineLStar[I]) allPrefixes() []words.Word[I] {
	short := l.obs.ShortPrefixes()
	long := l.obs.LongPrefixes()
	return append(short, long...)
}
