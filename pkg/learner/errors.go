/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for the learner engine. Lifecycle misuse and
rejected counterexamples are sentinel errors callers can test with
errors.Is; oracle errors propagate unchanged and table invariant violations
surface as table.ErrInvariantViolation.
*/

package learner

import "errors"

// ErrInvalidLifecycle marks a learner call made out of order: StartLearning
// invoked twice, or RefineHypothesis / Hypothesis invoked before the first
// learn iteration. The learner state is unchanged by the offending call.
var ErrInvalidLifecycle = errors.New("invalid learner lifecycle")

// ErrInvalidCounterexample marks a counterexample whose declared output does
// not differ from the current hypothesis's classification.
var ErrInvalidCounterexample = errors.New("invalid counterexample")
