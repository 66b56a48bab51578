// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eval

import (
	"fmt"
	"math/big"
	"regexp"
)

// literalMap matches integer literals, by radix.
var literalMap = []struct {
	base    int
	pattern *regexp.Regexp
	prefix  string
}{
	{16, regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`), "0x"},
	{2, regexp.MustCompile(`^0[bB][01]+$`), "0b"},
	{8, regexp.MustCompile(`^0[oO][0-7]+$`), "0o"},
	{10, regexp.MustCompile(`^[0-9]+$`), ""},
}

// Literal is an integer value that remembers the radix it was written in.
type Literal struct {
	Value *big.Int
	Base  int // 2, 8, 10 or 16.
}

// ParseLiteral parses a hex, binary, octal or decimal literal.
func ParseLiteral(word string) (lit Literal, ok bool) {
	for _, entry := range literalMap {
		if !entry.pattern.MatchString(word) {
			continue
		}
		value, valid := new(big.Int).SetString(word[len(entry.prefix):], entry.base)
		if !valid {
			return
		}
		lit = Literal{Value: value, Base: entry.base}
		ok = true
		return
	}

	return
}

// String renders the literal in its own radix.
func (lit Literal) String() string {
	switch lit.Base {
	case 16:
		return fmt.Sprintf("0x%x", lit.Value)
	case 2:
		return fmt.Sprintf("0b%b", lit.Value)
	case 8:
		return fmt.Sprintf("0o%o", lit.Value)
	default:
		return lit.Value.String()
	}
}
