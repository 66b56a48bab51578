// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mapping

import (
	"iter"
	"maps"
	"slices"
)

// Mapping is an immutable relation from read bit positions to write bit
// positions.
type Mapping struct {
	table map[uint]uint // Read position to write position.
	runs  Runs          // Maximal runs, descending read order.
}

// newMapping takes ownership of table.
func newMapping(table map[uint]uint) (m *Mapping, err error) {
	if len(table) == 0 {
		err = ErrEmpty
		return
	}

	m = &Mapping{
		table: table,
		runs:  compress(table),
	}

	return
}

// FromTable creates a mapping from an explicit read to write table.
// The table is copied. Tables where two keys share a value are accepted,
// but cannot be inverted. Positions must be below BIT_LIMIT.
func FromTable(table map[uint]uint) (m *Mapping, err error) {
	for read, write := range table {
		if read >= BIT_LIMIT || write >= BIT_LIMIT {
			err = ErrBitRange
			return
		}
	}

	return newMapping(maps.Clone(table))
}

// FromRuns creates a mapping from a list of runs, in any order.
func FromRuns(runs ...Run) (m *Mapping, err error) {
	table := make(map[uint]uint)
	used := make(map[uint]bool)
	for _, run := range runs {
		if run.Length == 0 || run.Length > BIT_LIMIT ||
			run.Read > BIT_LIMIT-run.Length || run.Write > BIT_LIMIT-run.Length {
			err = ErrRunInvalid
			return
		}
		for read, write := range run.Pairs() {
			_, dup := table[read]
			if dup || used[write] {
				err = ErrRunInvalid
				return
			}
			table[read] = write
			used[write] = true
		}
	}

	return newMapping(table)
}

// MustParse is like Parse, but panics on error.
func MustParse(text string) *Mapping {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of related bit pairs.
func (m *Mapping) Len() int {
	return len(m.table)
}

// Lookup returns the write position for a read position.
func (m *Mapping) Lookup(read uint) (write uint, ok bool) {
	write, ok = m.table[read]
	return
}

// Table returns a copy of the read to write table.
func (m *Mapping) Table() map[uint]uint {
	return maps.Clone(m.table)
}

// Runs returns the maximal runs of the mapping, in descending read order.
func (m *Mapping) Runs() Runs {
	return slices.Clone(m.runs)
}

// Pairs iterates over the related pairs, in descending read order.
func (m *Mapping) Pairs() iter.Seq2[uint, uint] {
	return m.runs.Pairs()
}

// Equal reports whether both mappings relate the same pairs.
func (m *Mapping) Equal(other *Mapping) bool {
	if m == nil || other == nil {
		return m == other
	}
	return maps.Equal(m.table, other.table)
}

// Invert swaps the read and write sides.
func (m *Mapping) Invert() (inv *Mapping, err error) {
	table := make(map[uint]uint, len(m.table))
	for _, read := range slices.Sorted(maps.Keys(m.table)) {
		write := m.table[read]
		if prior, dup := table[write]; dup {
			err = &AmbiguousMappingError{Value: write, Keys: [2]uint{prior, read}}
			return
		}
		table[write] = read
	}

	return newMapping(table)
}
