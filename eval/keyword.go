// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eval

// Keyword is a command consumed in place of a mapping spec.
type Keyword int

//go:generate go tool stringer -linecomment -type=Keyword
const (
	KEYWORD_NONE   = Keyword(0) // none
	KEYWORD_INVERT = Keyword(1) // invert
	KEYWORD_SHOW   = Keyword(2) // show
	KEYWORD_CONCAT = Keyword(3) // concat
	KEYWORD_ASSIGN = Keyword(4) // assign
)

// keywordMap maps command words to keywords.
var keywordMap = map[string]Keyword{
	"inv":    KEYWORD_INVERT,
	"invert": KEYWORD_INVERT,
	"show":   KEYWORD_SHOW,
	"concat": KEYWORD_CONCAT,
	"assign": KEYWORD_ASSIGN,
}

// LookupKeyword returns the keyword for a command word, or KEYWORD_NONE.
func LookupKeyword(word string) Keyword {
	return keywordMap[word]
}

// Renders reports whether the keyword prints output.
func (kw Keyword) Renders() bool {
	return kw == KEYWORD_SHOW || kw == KEYWORD_CONCAT || kw == KEYWORD_ASSIGN
}
