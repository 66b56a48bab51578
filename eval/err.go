// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eval

import (
	"errors"

	"github.com/ezrec/bitrange/translate"
)

var f = translate.From

var (
	ErrNoMapping = errors.New(f("no mapping given"))
	ErrNoLibrary = errors.New(f("no library loaded"))
)

// ArgumentError locates the command argument that failed.
type ArgumentError struct {
	Index int    // Zero-based argument index.
	Arg   string // Argument text.
	Err   error
}

func (err *ArgumentError) Error() string {
	return f("argument %d '%v' %v", err.Index+1, err.Arg, err.Err)
}

func (err *ArgumentError) Unwrap() error {
	return err.Err
}
