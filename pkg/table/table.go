/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: table.go
Description: Observation table for the Akaylee Learner. Maintains the short
prefix region (candidate states), the long prefix region (one-step
extensions), the suffix columns, and the cell map of oracle answers. Owns the
closedness and consistency queries and all structural mutations the learner
drives during refinement. Iteration over every region is insertion-ordered
so learning runs are fully deterministic.
*/

package table

import (
	"errors"
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/words"
)

// ErrInvariantViolation marks a table operation that a correct learner never
// performs: recording against an unknown prefix, checking a region that was
// never populated, and similar internal assertion failures.
var ErrInvariantViolation = errors.New("observation table invariant violation")

// Region identifies which part of the table a prefix belongs to.
type Region int

const (
	// RegionShort holds the representative row labels (candidate states).
	RegionShort Region = iota
	// RegionLong holds the one-step extensions of short prefixes.
	RegionLong
)

// cell is a single table entry. A cell is undefined until Record installs an
// oracle answer for it.
type cell[D comparable] struct {
	value   D
	defined bool
}

func (c cell[D]) equal(other cell[D]) bool {
	return c.defined && other.defined && c.value == other.value
}

// tableRow is the owning storage for one prefix: its label, current region,
// and one cell per suffix column.
type tableRow[I comparable, D comparable] struct {
	label  words.Word[I]
	region Region
	cells  []cell[D]
}

func (r *tableRow[I, D]) signatureEqual(other *tableRow[I, D]) bool {
	if len(r.cells) != len(other.cells) {
		return false
	}
	for i, c := range r.cells {
		if !c.equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// Table is the observation table of the L* algorithm, generic over the input
// symbol type I and the oracle output type D. Prefixes are owned by a single
// map so a word can never live in both regions at once; auxiliary key slices
// preserve insertion order for deterministic iteration.
type Table[I comparable, D comparable] struct {
	alphabet *words.Alphabet[I]

	rows      map[string]*tableRow[I, D]
	shortKeys []string
	longKeys  []string

	suffixes    []words.Word[I]
	suffixIndex map[string]int
}

// New creates a table seeded for learning: ε as the only short prefix, every
// alphabet symbol as a long prefix, and ε as the only suffix column.
func New[I comparable, D comparable](alphabet *words.Alphabet[I]) (*Table[I, D], error) {
	if alphabet == nil {
		return nil, fmt.Errorf("observation table requires an alphabet")
	}
	t := &Table[I, D]{
		alphabet:    alphabet,
		rows:        make(map[string]*tableRow[I, D]),
		suffixIndex: make(map[string]int),
	}
	if err := t.AddSuffix(words.Empty[I]()); err != nil {
		return nil, err
	}
	if err := t.AddShortPrefix(words.Empty[I]()); err != nil {
		return nil, err
	}
	for _, sym := range alphabet.Symbols() {
		if err := t.AddLongPrefix(words.FromSymbol(sym)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Alphabet returns the alphabet the table was created over.
func (t *Table[I, D]) Alphabet() *words.Alphabet[I] {
	return t.alphabet
}

func (t *Table[I, D]) keyOf(w words.Word[I]) (string, error) {
	key, ok := t.alphabet.KeyOf(w)
	if !ok {
		return "", fmt.Errorf("%w: word %s contains symbols outside the alphabet", ErrInvariantViolation, w)
	}
	return key, nil
}

// ShortPrefixes returns the short prefix labels in insertion order.
func (t *Table[I, D]) ShortPrefixes() []words.Word[I] {
	out := make([]words.Word[I], 0, len(t.shortKeys))
	for _, key := range t.shortKeys {
		out = append(out, t.rows[key].label)
	}
	return out
}

// LongPrefixes returns the long prefix labels in insertion order.
func (t *Table[I, D]) LongPrefixes() []words.Word[I] {
	out := make([]words.Word[I], 0, len(t.longKeys))
	for _, key := range t.longKeys {
		out = append(out, t.rows[key].label)
	}
	return out
}

// Suffixes returns the suffix column labels in insertion order.
func (t *Table[I, D]) Suffixes() []words.Word[I] {
	out := make([]words.Word[I], len(t.suffixes))
	copy(out, t.suffixes)
	return out
}

// Region returns the region the prefix u currently belongs to.
func (t *Table[I, D]) Region(u words.Word[I]) (Region, bool) {
	key, ok := t.alphabet.KeyOf(u)
	if !ok {
		return 0, false
	}
	r, present := t.rows[key]
	if !present {
		return 0, false
	}
	return r.region, true
}

// Contains reports whether u is a prefix of either region.
func (t *Table[I, D]) Contains(u words.Word[I]) bool {
	_, ok := t.Region(u)
	return ok
}

// Defined reports whether the cell (u, e) already holds an oracle answer.
// Unknown prefixes and suffixes count as undefined.
func (t *Table[I, D]) Defined(u, e words.Word[I]) bool {
	key, ok := t.alphabet.KeyOf(u)
	if !ok {
		return false
	}
	r, present := t.rows[key]
	if !present {
		return false
	}
	suffixKey, ok := t.alphabet.KeyOf(e)
	if !ok {
		return false
	}
	col, present := t.suffixIndex[suffixKey]
	if !present {
		return false
	}
	return r.cells[col].defined
}

func (t *Table[I, D]) addRow(u words.Word[I], region Region) error {
	key, err := t.keyOf(u)
	if err != nil {
		return err
	}
	if existing, present := t.rows[key]; present {
		if existing.region == region {
			return nil
		}
		return fmt.Errorf("prefix %s is already present in the opposite region", u)
	}
	r := &tableRow[I, D]{
		label:  u,
		region: region,
		cells:  make([]cell[D], len(t.suffixes)),
	}
	t.rows[key] = r
	if region == RegionShort {
		t.shortKeys = append(t.shortKeys, key)
	} else {
		t.longKeys = append(t.longKeys, key)
	}
	return nil
}

// AddShortPrefix inserts u into the short prefix region. Idempotent if u is
// already a short prefix; fails if u is currently a long prefix.
func (t *Table[I, D]) AddShortPrefix(u words.Word[I]) error {
	return t.addRow(u, RegionShort)
}

// AddLongPrefix inserts u into the long prefix region. Idempotent if u is
// already a long prefix; fails if u is currently a short prefix.
func (t *Table[I, D]) AddLongPrefix(u words.Word[I]) error {
	return t.addRow(u, RegionLong)
}

// PromoteToShort forces u into the short prefix region regardless of where
// it currently lives. A long prefix is re-tagged in place and its stale long
// region entry remains until RemoveShortPrefixesFromLong runs; this mirrors
// the counterexample injection flow, which promotes all prefixes first and
// sweeps the long region afterwards.
func (t *Table[I, D]) PromoteToShort(u words.Word[I]) error {
	key, err := t.keyOf(u)
	if err != nil {
		return err
	}
	existing, present := t.rows[key]
	if !present {
		return t.addRow(u, RegionShort)
	}
	if existing.region == RegionShort {
		return nil
	}
	existing.region = RegionShort
	t.shortKeys = append(t.shortKeys, key)
	return nil
}

// RemoveShortPrefixesFromLong drops every long region entry whose prefix has
// been promoted to the short region.
func (t *Table[I, D]) RemoveShortPrefixesFromLong() {
	remaining := t.longKeys[:0]
	for _, key := range t.longKeys {
		if t.rows[key].region == RegionLong {
			remaining = append(remaining, key)
		}
	}
	t.longKeys = remaining
}

// MoveLongToShort moves v from the long region to the short region,
// preserving the relative order of the remaining long prefixes. Fails if v
// is not currently a long prefix.
func (t *Table[I, D]) MoveLongToShort(v words.Word[I]) error {
	key, err := t.keyOf(v)
	if err != nil {
		return err
	}
	r, present := t.rows[key]
	if !present || r.region != RegionLong {
		return fmt.Errorf("prefix %s is not a long prefix", v)
	}
	r.region = RegionShort
	t.shortKeys = append(t.shortKeys, key)
	for i, longKey := range t.longKeys {
		if longKey == key {
			t.longKeys = append(t.longKeys[:i], t.longKeys[i+1:]...)
			break
		}
	}
	return nil
}

// AddSuffix appends e to the suffix columns. Idempotent: a suffix already
// present keeps its column and the table is unchanged.
func (t *Table[I, D]) AddSuffix(e words.Word[I]) error {
	key, err := t.keyOf(e)
	if err != nil {
		return err
	}
	if _, present := t.suffixIndex[key]; present {
		return nil
	}
	t.suffixIndex[key] = len(t.suffixes)
	t.suffixes = append(t.suffixes, e)
	for _, r := range t.rows {
		r.cells = append(r.cells, cell[D]{})
	}
	return nil
}

// Record installs the oracle answer d into the cell (u, e). The prefix and
// the suffix must already be part of the table.
func (t *Table[I, D]) Record(u, e words.Word[I], d D) error {
	key, err := t.keyOf(u)
	if err != nil {
		return err
	}
	r, present := t.rows[key]
	if !present {
		return fmt.Errorf("%w: record against unknown prefix %s", ErrInvariantViolation, u)
	}
	suffixKey, err := t.keyOf(e)
	if err != nil {
		return err
	}
	col, present := t.suffixIndex[suffixKey]
	if !present {
		return fmt.Errorf("%w: record against unknown suffix %s", ErrInvariantViolation, e)
	}
	r.cells[col] = cell[D]{value: d, defined: true}
	return nil
}

func (t *Table[I, D]) rowView(r *tableRow[I, D]) (*Row[I, D], error) {
	values := make([]D, len(r.cells))
	for i, c := range r.cells {
		if !c.defined {
			return nil, fmt.Errorf("%w: cell (%s, %s) has no recorded value", ErrInvariantViolation, r.label, t.suffixes[i])
		}
		values[i] = c.value
	}
	return &Row[I, D]{label: r.label, values: values}, nil
}

// RowOf returns the row signature for prefix u. Fails if u is in neither
// region or any of its cells is still undefined.
func (t *Table[I, D]) RowOf(u words.Word[I]) (*Row[I, D], error) {
	key, err := t.keyOf(u)
	if err != nil {
		return nil, err
	}
	r, present := t.rows[key]
	if !present {
		return nil, fmt.Errorf("%w: prefix %s is not part of the table", ErrInvariantViolation, u)
	}
	return t.rowView(r)
}

// ShortRows returns the short prefix rows in insertion order.
func (t *Table[I, D]) ShortRows() ([]*Row[I, D], error) {
	out := make([]*Row[I, D], 0, len(t.shortKeys))
	for _, key := range t.shortKeys {
		row, err := t.rowView(t.rows[key])
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// IsClosed reports whether every long prefix row signature equals some short
// prefix row signature.
func (t *Table[I, D]) IsClosed() bool {
	_, found := t.FindUnclosed()
	return !found
}

// FindUnclosed returns the first long prefix (in insertion order) whose row
// signature is absent from the short prefix rows.
func (t *Table[I, D]) FindUnclosed() (words.Word[I], bool) {
	for _, longKey := range t.longKeys {
		longRow := t.rows[longKey]
		matched := false
		for _, shortKey := range t.shortKeys {
			if t.rows[shortKey].signatureEqual(longRow) {
				matched = true
				break
			}
		}
		if !matched {
			return longRow.label, true
		}
	}
	return words.Empty[I](), false
}

// IsConsistentWith reports whether every pair of short prefixes with equal
// row signatures stays equal under every one-symbol extension. A table whose
// extension rows are missing or unpopulated is reported inconsistent.
func (t *Table[I, D]) IsConsistentWith(alphabet *words.Alphabet[I]) bool {
	inc, err := t.FindInconsistency(alphabet)
	return inc == nil && err == nil
}

// FindInconsistency searches the short prefix region for two prefixes with
// equal row signatures whose one-symbol extensions disagree on some suffix.
// Returns nil if the table is consistent. The search order is deterministic:
// short prefixes in insertion order, symbols in alphabet order, suffixes in
// column order.
func (t *Table[I, D]) FindInconsistency(alphabet *words.Alphabet[I]) (*Inconsistency[I], error) {
	for i, firstKey := range t.shortKeys {
		first := t.rows[firstKey]
		for _, secondKey := range t.shortKeys[i+1:] {
			second := t.rows[secondKey]
			if !first.signatureEqual(second) {
				continue
			}
			for _, sym := range alphabet.Symbols() {
				inc, err := t.findDifferingSuffix(first.label, second.label, sym)
				if err != nil {
					return nil, err
				}
				if inc != nil {
					return inc, nil
				}
			}
		}
	}
	return nil, nil
}

func (t *Table[I, D]) findDifferingSuffix(first, second words.Word[I], sym I) (*Inconsistency[I], error) {
	firstExt, err := t.lookupRow(first.Append(sym))
	if err != nil {
		return nil, err
	}
	secondExt, err := t.lookupRow(second.Append(sym))
	if err != nil {
		return nil, err
	}
	for col := range t.suffixes {
		a, b := firstExt.cells[col], secondExt.cells[col]
		if !a.defined || !b.defined {
			return nil, fmt.Errorf("%w: cell (%s, %s) compared before being recorded", ErrInvariantViolation, firstExt.label, t.suffixes[col])
		}
		if a.value != b.value {
			return &Inconsistency[I]{
				First:  first,
				Second: second,
				Symbol: sym,
				Suffix: t.suffixes[col],
			}, nil
		}
	}
	return nil, nil
}

func (t *Table[I, D]) lookupRow(u words.Word[I]) (*tableRow[I, D], error) {
	key, err := t.keyOf(u)
	if err != nil {
		return nil, err
	}
	r, present := t.rows[key]
	if !present {
		return nil, fmt.Errorf("%w: extension %s is missing from the table", ErrInvariantViolation, u)
	}
	return r, nil
}
