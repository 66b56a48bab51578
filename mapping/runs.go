// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mapping

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/bitrange/internal"
)

// Run is a contiguous stretch of a mapping: for every offset k below
// Length, read bit Read+k maps to write bit Write+k.
type Run struct {
	Read   uint // Lowest read bit.
	Write  uint // Lowest write bit.
	Length uint // Number of bits.
}

// span formats a bit range as "high:low", or "bit" when one bit wide.
func span(low, length uint) string {
	if length == 1 {
		return fmt.Sprintf("%d", low)
	}
	return fmt.Sprintf("%d:%d", low+length-1, low)
}

// ReadSpan returns the read range, as "high:low" or "bit".
func (r Run) ReadSpan() string {
	return span(r.Read, r.Length)
}

// WriteSpan returns the write range, as "high:low" or "bit".
func (r Run) WriteSpan() string {
	return span(r.Write, r.Length)
}

// String returns the run as an absolute spec clause.
func (r Run) String() string {
	return r.ReadSpan() + " -> " + r.WriteSpan()
}

// Pairs iterates over the run's bit pairs, highest first.
func (r Run) Pairs() iter.Seq2[uint, uint] {
	return func(yield func(read, write uint) bool) {
		for k := r.Length; k > 0; k-- {
			if !yield(r.Read+k-1, r.Write+k-1) {
				return
			}
		}
	}
}

// Runs is a list of disjoint runs in descending read order.
type Runs []Run

// Pairs iterates over every bit pair of every run, in list order.
func (rs Runs) Pairs() iter.Seq2[uint, uint] {
	seqs := make([]iter.Seq2[uint, uint], len(rs))
	for n, run := range rs {
		seqs[n] = run.Pairs()
	}
	return internal.IterSeq2Concat(seqs...)
}

// Extent returns one past the highest write bit.
func (rs Runs) Extent() (extent uint) {
	for _, run := range rs {
		extent = max(extent, run.Write+run.Length)
	}
	return
}

// String returns the runs as an absolute spec.
func (rs Runs) String() string {
	clauses := make([]string, len(rs))
	for n, run := range rs {
		clauses[n] = run.String()
	}
	return strings.Join(clauses, ", ")
}

// compress collapses a table into maximal runs. Keys are scanned upwards;
// a run stays open while both sides advance by one, and closes at a gap
// or a break in either progression.
func compress(table map[uint]uint) (runs Runs) {
	var open bool
	var cur Run

	for _, read := range slices.Sorted(maps.Keys(table)) {
		write := table[read]
		if open && read == cur.Read+cur.Length && write == cur.Write+cur.Length {
			cur.Length++
			continue
		}
		if open {
			runs = append(runs, cur)
		}
		cur = Run{Read: read, Write: write, Length: 1}
		open = true
	}

	if open {
		runs = append(runs, cur)
	}

	slices.Reverse(runs)

	return
}
