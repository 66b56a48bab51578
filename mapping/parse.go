// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mapping

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	BIT_LIMIT = 1 << 16 // Exclusive upper bound on a bit position.
)

var (
	// 7:4,2|0 - relative, first token lands on the highest destination bit.
	relativeToken = regexp.MustCompile(`(\d+)(?::(\d+))?`)
	relativeSpec  = regexp.MustCompile(`^\d+(?::\d+)?(?:\s*[,|]\s*\d+(?::\d+)?)*$`)

	// 7:4 -> 3:0, 3:0 to 7:4 - absolute, explicit source and destination.
	absoluteClause = regexp.MustCompile(`(\d+)(?::(\d+))?\s*(?:->|to)\s*(\d+)(?::(\d+))?`)
	absoluteSpec   = regexp.MustCompile(`^` + absoluteClause.String() +
		`(?:\s*[,|]\s*` + absoluteClause.String() + `)*$`)
)

// Parse parses a mapping in either the relative or the absolute form.
// A leading '~' stores the parsed mapping inverted.
func Parse(text string) (m *Mapping, err error) {
	raw := strings.TrimSpace(text)

	invert := strings.HasPrefix(raw, "~")
	if invert {
		raw = strings.TrimSpace(raw[1:])
	}

	var table map[uint]uint
	switch {
	case relativeSpec.MatchString(raw):
		table, err = parseRelative(raw)
	case absoluteSpec.MatchString(raw):
		table, err = parseAbsolute(raw)
	default:
		err = ErrSyntax
	}
	if err != nil {
		err = &FormatError{Text: text, Err: err}
		return
	}

	m, err = newMapping(table)
	if err != nil {
		return
	}

	if invert {
		m, err = m.Invert()
	}

	return
}

// parseBit parses a single decimal bit position.
func parseBit(word string) (bit uint, err error) {
	v64, err := strconv.ParseUint(word, 10, 32)
	if err != nil || v64 >= BIT_LIMIT {
		err = ErrBitRange
		return
	}

	bit = uint(v64)
	return
}

// parseRange parses "high:low", or a lone "bit" when low is empty.
func parseRange(high, low string) (hi, lo uint, err error) {
	hi, err = parseBit(high)
	if err != nil {
		return
	}

	lo = hi
	if len(low) != 0 {
		lo, err = parseBit(low)
		if err != nil {
			return
		}
	}

	if lo > hi {
		err = ErrRangeReversed
		return
	}

	return
}

// parseRelative lists source bits in destination order, highest first.
func parseRelative(raw string) (table map[uint]uint, err error) {
	var reads []uint
	seen := make(map[uint]bool)
	for _, token := range relativeToken.FindAllStringSubmatch(raw, -1) {
		var hi, lo uint
		hi, lo, err = parseRange(token[1], token[2])
		if err != nil {
			return
		}
		for bit := hi; ; bit-- {
			if seen[bit] {
				err = ErrCollision
				return
			}
			seen[bit] = true
			reads = append(reads, bit)
			if bit == lo {
				break
			}
		}
	}

	table = make(map[uint]uint, len(reads))
	for n, read := range reads {
		table[read] = uint(len(reads) - 1 - n)
	}

	return
}

// parseAbsolute unions explicit 'source -> destination' clauses.
func parseAbsolute(raw string) (table map[uint]uint, err error) {
	table = make(map[uint]uint)
	used := make(map[uint]bool)

	for _, clause := range absoluteClause.FindAllStringSubmatch(raw, -1) {
		var sh, sl, dh, dl uint
		sh, sl, err = parseRange(clause[1], clause[2])
		if err != nil {
			return
		}
		dh, dl, err = parseRange(clause[3], clause[4])
		if err != nil {
			return
		}
		if sh-sl != dh-dl {
			err = ErrWidthMismatch
			return
		}

		for k := range sh - sl + 1 {
			read, write := sl+k, dl+k
			if _, dup := table[read]; dup || used[write] {
				err = ErrCollision
				return
			}
			table[read] = write
			used[write] = true
		}
	}

	return
}
