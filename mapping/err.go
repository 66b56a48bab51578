// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mapping

import (
	"errors"

	"github.com/ezrec/bitrange/translate"
)

var f = translate.From

var (
	// Spec format errors
	ErrSyntax        = errors.New(f("syntax"))
	ErrRangeReversed = errors.New(f("range low bit above high bit"))
	ErrWidthMismatch = errors.New(f("range widths differ"))
	ErrCollision     = errors.New(f("bit mapped twice"))
	ErrBitRange      = errors.New(f("bit position out of range"))

	// Relation errors
	ErrEmpty        = errors.New(f("mapping is empty"))
	ErrRunInvalid   = errors.New(f("run invalid"))
	ErrWordOverflow = errors.New(f("bit does not fit in a 64-bit word"))
	ErrNegative     = errors.New(f("negative value"))
)

// FormatError reports spec text that matches neither grammar, or matches
// with an internal inconsistency.
type FormatError struct {
	Text string // Spec text as given.
	Err  error  // Cause, such as ErrSyntax or ErrCollision.
}

func (err *FormatError) Error() string {
	return f("'%v' %v", err.Text, err.Err)
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

// AmbiguousMappingError reports two distinct keys that would collapse onto
// one value during an inversion or composition.
type AmbiguousMappingError struct {
	Value uint    // Shared value.
	Keys  [2]uint // Colliding keys, ascending.
}

func (err *AmbiguousMappingError) Error() string {
	return f("bits %v and %v both map to bit %v", err.Keys[0], err.Keys[1], err.Value)
}

// UnsupportedOperandError reports an Apply on an operand kind with no
// defined meaning.
type UnsupportedOperandError struct {
	Kind OperandKind
}

func (err *UnsupportedOperandError) Error() string {
	return f("cannot apply mapping to %v", err.Kind.String())
}
