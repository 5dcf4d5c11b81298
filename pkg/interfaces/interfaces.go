/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for the Akaylee Learner. Defines the core
contracts between the learner engine and its collaborators (membership and
equivalence oracles) to break import cycles and enable proper modular design.
*/

package interfaces

import (
	"context"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/words"
)

// MembershipQuery carries a single membership question to the oracle. The
// question is whether the word Prefix·Suffix belongs to the target language.
// The oracle answers by setting Output; the learner installs the answer into
// the observation table cell (Prefix, Suffix).
type MembershipQuery[I comparable, D comparable] struct {
	Prefix words.Word[I]
	Suffix words.Word[I]
	Output D
}

// Word returns the full queried word Prefix·Suffix.
func (q *MembershipQuery[I, D]) Word() words.Word[I] {
	return q.Prefix.Concat(q.Suffix)
}

// MembershipOracle answers batches of membership queries. Process must set
// Output on every query before returning nil. On error no Output value may
// be relied upon; the learner discards the whole batch.
type MembershipOracle[I comparable, D comparable] interface {
	Process(ctx context.Context, queries []*MembershipQuery[I, D]) error
}

// Counterexample is a word on which the current hypothesis and the target
// language disagree, together with the target's true classification.
type Counterexample[I comparable, D comparable] struct {
	Word           words.Word[I]
	ExpectedOutput D
}

// EquivalenceOracle checks a hypothesis against the target language. It
// returns a counterexample if the hypothesis is wrong, or nil if no
// disagreement could be found.
type EquivalenceOracle[I comparable] interface {
	FindCounterexample(ctx context.Context, hypothesis *automata.DFA[I]) (*Counterexample[I, bool], error)
}

// LearnerConfig contains configuration parameters for a learning run.
// Supports both command-line flags and configuration files.
type LearnerConfig struct {
	// Target configuration
	TargetPath string `json:"target_path"` // Path to the target DFA definition

	// Learning configuration
	MaxRounds int `json:"max_rounds"` // Maximum refinement rounds (0 = unbounded)
	MaxDepth  int `json:"max_depth"`  // Maximum equivalence-check depth in symbols (0 = unbounded)

	// Output configuration
	PrintTable bool   `json:"print_table"` // Print the final observation table
	ReportPath string `json:"report_path"` // HTML report output path (empty = none)

	// Logging configuration
	LogLevel string `json:"log_level"` // Logging level (debug, info, warn, error)
	LogFile  string `json:"log_file"`  // Log file path
	JSONLogs bool   `json:"json_logs"` // Use JSON log format
}
