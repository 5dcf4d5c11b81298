/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inconsistency.go
Description: Inconsistency witness for the observation table. Identifies two
short prefixes with equal rows whose one-symbol extensions disagree, and
derives the new suffix column that separates them.
*/

package table

import (
	"github.com/kleascm/akaylee-learner/pkg/words"
)

// Inconsistency identifies a consistency defect: First and Second are short
// prefixes with equal row signatures, yet their extensions by Symbol differ
// on Suffix.
type Inconsistency[I comparable] struct {
	First  words.Word[I]
	Second words.Word[I]
	Symbol I
	Suffix words.Word[I]
}

// NewSuffix returns the witness column Symbol·Suffix. Appending it to the
// suffix set separates the rows of First and Second.
func (inc *Inconsistency[I]) NewSuffix() words.Word[I] {
	return words.FromSymbol(inc.Symbol).Concat(inc.Suffix)
}
