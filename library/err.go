// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package library

import (
	"github.com/ezrec/bitrange/translate"
)

var f = translate.From

// ErrUnknownMapping names a mapping the library does not define.
type ErrUnknownMapping string

func (err ErrUnknownMapping) Error() string {
	return f("mapping %v not in library", string(err))
}

// ErrEntry wraps a failure to build a named library mapping.
type ErrEntry struct {
	Name string
	Err  error
}

func (err *ErrEntry) Error() string {
	return f("mapping %v: %v", err.Name, err.Err)
}

func (err *ErrEntry) Unwrap() error {
	return err.Err
}
