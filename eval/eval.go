// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package eval folds a list of command words into a net mapping.
//
// Each word is a spec, a library reference (@name), a keyword or an integer
// literal. Specs are applied as a new outer stage on top of the current
// mapping, keywords invert or render it, and literals are evaluated through
// it:
//
//	bitrange 31:20 '11:0 -> 31:20' show 0xfff
package eval

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ezrec/bitrange/expr"
	"github.com/ezrec/bitrange/library"
	"github.com/ezrec/bitrange/mapping"
)

// Evaluator state. Not safe for concurrent use.
type Evaluator struct {
	Verbose  bool             // If set, logs every stage.
	In       string           // Input vector name for concat and assign.
	Out      string           // Output vector name for assign.
	Library  *library.Library // Named mappings, may be nil.
	Expander *expr.Expander   // Equates for $(...) expressions.
	Current  *mapping.Mapping // Net mapping so far, may be preloaded.
}

// NewEvaluator creates a new evaluator with default vector names.
func NewEvaluator() (ev *Evaluator) {
	ev = &Evaluator{
		In:       "in",
		Out:      "out",
		Expander: &expr.Expander{},
	}

	return
}

// UseLibrary attaches a library, taking its vector names.
func (ev *Evaluator) UseLibrary(lib *library.Library) {
	ev.Library = lib
	if lib == nil {
		return
	}
	if len(lib.Vector.In) != 0 {
		ev.In = lib.Vector.In
	}
	if len(lib.Vector.Out) != 0 {
		ev.Out = lib.Vector.Out
	}
}

// Resolve builds the mapping named by a spec or an @name library reference.
func (ev *Evaluator) Resolve(word string) (m *mapping.Mapping, err error) {
	if name, ok := strings.CutPrefix(word, "@"); ok {
		if ev.Library == nil {
			err = ErrNoLibrary
			return
		}
		return ev.Library.Lookup(name, ev.Expander)
	}

	spec := word
	if ev.Expander != nil {
		spec, err = ev.Expander.Expand(word)
		if err != nil {
			return
		}
	}

	return mapping.Parse(spec)
}

// Eval folds the words into the current mapping, writing any requested
// renderings to w. If nothing was rendered, the pairs view of the final
// mapping is written.
func (ev *Evaluator) Eval(w io.Writer, words ...string) (err error) {
	rendered := false

	for n, word := range words {
		var did bool
		did, err = ev.Step(w, word)
		if err != nil {
			err = &ArgumentError{Index: n, Arg: word, Err: err}
			return
		}
		rendered = rendered || did
	}

	if ev.Current == nil {
		err = ErrNoMapping
		return
	}

	if !rendered {
		err = ev.Show(w)
	}

	return
}

// Step evaluates a single word, reporting whether it rendered output.
func (ev *Evaluator) Step(w io.Writer, word string) (rendered bool, err error) {
	if ev.Current == nil {
		ev.Current, err = ev.Resolve(word)
		if err == nil && ev.Verbose {
			log.Printf("bitrange: %v: %v", word, ev.Current)
		}
		return
	}

	kw := LookupKeyword(word)
	switch kw {
	case KEYWORD_INVERT:
		var inv *mapping.Mapping
		inv, err = ev.Current.Invert()
		if err != nil {
			return
		}
		ev.Current = inv
	case KEYWORD_SHOW:
		err = ev.Show(w)
	case KEYWORD_CONCAT:
		err = ev.Concat(w)
	case KEYWORD_ASSIGN:
		err = ev.Assign(w)
	default:
		if lit, ok := ParseLiteral(word); ok {
			err = ev.Evaluate(w, lit)
			rendered = err == nil
			return
		}

		var stage *mapping.Mapping
		stage, err = ev.Resolve(word)
		if err != nil {
			return
		}
		var net *mapping.Mapping
		net, err = stage.Compose(ev.Current)
		if err != nil {
			return
		}
		ev.Current = net
	}

	if err != nil {
		return
	}

	if ev.Verbose {
		log.Printf("bitrange: %v: %v", word, ev.Current)
	}

	rendered = kw.Renders()
	return
}

// Show writes the pairs view of the current mapping.
func (ev *Evaluator) Show(w io.Writer) (err error) {
	_, err = fmt.Fprintln(w, ev.Current)
	return
}

// Concat writes the concatenation view of the current mapping.
func (ev *Evaluator) Concat(w io.Writer) (err error) {
	concat, err := ev.Current.Concat(ev.In)
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(w, concat)
	return
}

// Assign writes the assignment view of the current mapping.
func (ev *Evaluator) Assign(w io.Writer) (err error) {
	lines, err := ev.Current.Assign(ev.Out, ev.In)
	if err != nil {
		return
	}

	for _, line := range lines {
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}

	return
}

// Evaluate applies the current mapping to a literal, writing the result
// in the literal's radix.
func (ev *Evaluator) Evaluate(w io.Writer, lit Literal) (err error) {
	result, err := ev.Current.Apply(mapping.Wide(lit.Value))
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(w, Literal{Value: result.Wide, Base: lit.Base})
	return
}
