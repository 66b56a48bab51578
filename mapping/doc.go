// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package mapping implements bit-position mappings between two bit-vectors.
//
// A Mapping relates read (source) bit positions to write (destination) bit
// positions. It is parsed from one of two textual forms:
//
//	7,6,5,4          relative: the first token lands on the highest destination bit
//	7:4 -> 3:0       absolute: explicit source and destination ranges
//	~7:4 -> 3:0      either form, stored inverted
//
// Mappings are immutable. Invert, Compose and Apply always build a new
// relation, so a Mapping may be shared freely between goroutines.
//
// The relation is kept both as a per-bit table and as a list of maximal
// runs, which drive the pairs, concatenation and assignment renderings.
package mapping
