// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package expr

import (
	"errors"

	"github.com/ezrec/bitrange/translate"
)

var f = translate.From

var (
	ErrEquateSyntax = errors.New(f("equate must be NAME=VALUE"))
	ErrEquateName   = errors.New(f("equate name invalid"))
)

// ErrParseExpression is an expression that did not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrExpression wraps an evaluation failure of an expression.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
