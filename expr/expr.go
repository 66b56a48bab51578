// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package expr expands $(...) expressions embedded in mapping specs.
//
// Expressions are evaluated as starlark, with every integer-valued equate
// predeclared, so that a spec can be written once for several bus widths:
//
//	$(XLEN-1):$(XLEN-8) -> 7:0
package expr

import (
	"fmt"
	"iter"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bitrange/internal"
)

var (
	parenExpr  = regexp.MustCompile(`\$\([^\$]*\)`)
	equateName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Expander holds the equates visible to expressions.
type Expander struct {
	Equates map[string]string // Map of equate names to values.
}

// Define defines a new equate or redefines an existing equate.
func (ex *Expander) Define(equ string, value string) (err error) {
	if !equateName.MatchString(equ) {
		err = ErrEquateName
		return
	}

	if ex.Equates == nil {
		ex.Equates = map[string]string{equ: value}
	} else {
		ex.Equates[equ] = value
	}

	return
}

// DefineAll defines every equate from an iterator.
func (ex *Expander) DefineAll(equates iter.Seq2[string, string]) (err error) {
	for equ, value := range equates {
		err = ex.Define(equ, value)
		if err != nil {
			return
		}
	}

	return
}

// ParseDefine splits a NAME=VALUE command line definition.
func ParseDefine(arg string) (equ string, value string, err error) {
	equ, value, ok := strings.Cut(arg, "=")
	if !ok || len(equ) == 0 {
		err = ErrEquateSyntax
		return
	}

	if !equateName.MatchString(equ) {
		err = ErrEquateName
		return
	}

	return
}

// Defines iterates over the equates in name order.
func (ex *Expander) Defines() iter.Seq2[string, string] {
	return internal.IterSorted(ex.Equates)
}

// Clone returns an independent copy of the expander.
func (ex *Expander) Clone() *Expander {
	return &Expander{Equates: maps.Clone(ex.Equates)}
}

// Eval evaluates a single expression to an integer.
func (ex *Expander) Eval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ex.Equates {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// Expand replaces every $(...) in text with its decimal value.
func (ex *Expander) Expand(text string) (out string, err error) {
	out = parenExpr.ReplaceAllStringFunc(text, func(str string) string {
		if err != nil {
			return str
		}
		value, _err := ex.Eval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
			return str
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		out = ""
	}

	return
}
