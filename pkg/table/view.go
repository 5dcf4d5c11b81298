/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: view.go
Description: Read-only view of the observation table. The learner hands this
out for inspection and printing so callers cannot mutate the table behind the
engine's back.
*/

package table

import (
	"github.com/kleascm/akaylee-learner/pkg/words"
)

// View is the read-only surface of an observation table: the three ordered
// regions, row signatures, and rendering. *Table satisfies View.
type View[I comparable, D comparable] interface {
	ShortPrefixes() []words.Word[I]
	LongPrefixes() []words.Word[I]
	Suffixes() []words.Word[I]
	RowOf(u words.Word[I]) (*Row[I, D], error)
	ShortRows() ([]*Row[I, D], error)
	Render(format func(D) string) string
}

var _ View[string, bool] = (*Table[string, bool])(nil)
