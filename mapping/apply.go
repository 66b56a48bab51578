// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mapping

import (
	"maps"
	"math/big"
	"slices"
)

// OperandKind tags the value held by an Operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE    = OperandKind(0) // none
	OPERAND_WORD    = OperandKind(1) // word
	OPERAND_WIDE    = OperandKind(2) // wide
	OPERAND_MAPPING = OperandKind(3) // mapping
)

// Operand is something a Mapping can be applied to: a 64-bit word, an
// arbitrary width integer, or another Mapping.
type Operand struct {
	Kind    OperandKind
	Word    uint64   // Set when Kind is OPERAND_WORD.
	Wide    *big.Int // Set when Kind is OPERAND_WIDE.
	Mapping *Mapping // Set when Kind is OPERAND_MAPPING.
}

// Word wraps a 64-bit value as an Operand.
func Word(value uint64) Operand {
	return Operand{Kind: OPERAND_WORD, Word: value}
}

// Wide wraps an arbitrary width value as an Operand.
func Wide(value *big.Int) Operand {
	return Operand{Kind: OPERAND_WIDE, Wide: value}
}

// Relation wraps a Mapping as an Operand.
func Relation(m *Mapping) Operand {
	return Operand{Kind: OPERAND_MAPPING, Mapping: m}
}

// Apply applies the mapping to an operand, returning an operand of the
// same kind.
//
// For integers, bit 'read' of the input is copied to bit 'write' of a zeroed
// result for every pair. For mappings, the argument is the inner stage and
// the receiver the outer stage.
func (m *Mapping) Apply(op Operand) (result Operand, err error) {
	result.Kind = op.Kind

	switch op.Kind {
	case OPERAND_WORD:
		result.Word, err = m.applyWord(op.Word)
	case OPERAND_WIDE:
		result.Wide, err = m.applyWide(op.Wide)
	case OPERAND_MAPPING:
		result.Mapping, err = m.compose(op.Mapping)
	default:
		err = &UnsupportedOperandError{Kind: op.Kind}
	}

	if err != nil {
		result = Operand{}
	}

	return
}

// ApplyWord applies the mapping to a 64-bit value.
func (m *Mapping) ApplyWord(value uint64) (uint64, error) {
	return m.applyWord(value)
}

// ApplyWide applies the mapping to a non-negative value of any width.
func (m *Mapping) ApplyWide(value *big.Int) (*big.Int, error) {
	return m.applyWide(value)
}

// Compose returns the mapping that applies inner, then the receiver.
// Bits of inner that the receiver does not read are dropped.
func (m *Mapping) Compose(inner *Mapping) (*Mapping, error) {
	return m.compose(inner)
}

func (m *Mapping) applyWord(value uint64) (result uint64, err error) {
	for read, write := range m.table {
		if read >= 64 || (value>>read)&1 == 0 {
			continue
		}
		if write >= 64 {
			return 0, ErrWordOverflow
		}
		result |= 1 << write
	}

	return
}

func (m *Mapping) applyWide(value *big.Int) (result *big.Int, err error) {
	if value == nil {
		err = &UnsupportedOperandError{Kind: OPERAND_NONE}
		return
	}
	if value.Sign() < 0 {
		err = ErrNegative
		return
	}

	result = new(big.Int)
	for read, write := range m.table {
		if value.Bit(int(read)) != 0 {
			result.SetBit(result, int(write), 1)
		}
	}

	return
}

func (m *Mapping) compose(inner *Mapping) (outer *Mapping, err error) {
	if inner == nil {
		err = &UnsupportedOperandError{Kind: OPERAND_NONE}
		return
	}

	table := make(map[uint]uint)
	from := make(map[uint]uint)
	for _, read := range slices.Sorted(maps.Keys(inner.table)) {
		write, ok := m.table[inner.table[read]]
		if !ok {
			continue
		}
		if prior, dup := from[write]; dup {
			err = &AmbiguousMappingError{Value: write, Keys: [2]uint{prior, read}}
			return
		}
		table[read] = write
		from[write] = read
	}

	return newMapping(table)
}
