/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: row.go
Description: Row signature view for the observation table. A Row is the
immutable vector of cell values of one prefix across all suffix columns; two
prefixes with equal rows are apparently equivalent and collapse to the same
hypothesis state.
*/

package table

import (
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/words"
)

// Row is a fully populated row signature: the prefix label and its cell
// values in suffix column order.
type Row[I comparable, D comparable] struct {
	label  words.Word[I]
	values []D
}

// Label returns the prefix this row belongs to.
func (r *Row[I, D]) Label() words.Word[I] {
	return r.label
}

// Values returns a copy of the cell values in suffix column order.
func (r *Row[I, D]) Values() []D {
	out := make([]D, len(r.values))
	copy(out, r.values)
	return out
}

// ValueAt returns the cell value in column i.
func (r *Row[I, D]) ValueAt(i int) D {
	return r.values[i]
}

// Equal reports whether both rows carry the same signature.
func (r *Row[I, D]) Equal(other *Row[I, D]) bool {
	if len(r.values) != len(other.values) {
		return false
	}
	for i, v := range r.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

// SignatureKey renders the signature as a deterministic string, usable as a
// map key when hash-consing rows into hypothesis states.
func (r *Row[I, D]) SignatureKey() string {
	return fmt.Sprintf("%v", r.values)
}
