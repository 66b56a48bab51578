// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package library handles bitrange.toml files of named mappings.
package library

import (
	"fmt"
	"iter"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/bitrange/expr"
	"github.com/ezrec/bitrange/internal"
	"github.com/ezrec/bitrange/mapping"
)

// FILENAME is the library file searched for by FindAndLoad.
const FILENAME = "bitrange.toml"

// Library is a set of named mappings and the equates their specs use.
type Library struct {
	Vector   Vector           `toml:"vector"`
	Equates  map[string]any   `toml:"equates"`
	Mappings map[string]Entry `toml:"mapping"`

	// Path is the file the library was loaded from (set at load time).
	Path string `toml:"-"`
}

// Vector names the vectors used by the concatenation and assignment views.
type Vector struct {
	In  string `toml:"in"`
	Out string `toml:"out"`
}

// Entry is a single named mapping.
type Entry struct {
	Spec   string `toml:"spec"`
	Invert bool   `toml:"invert"`
	Doc    string `toml:"doc"`
}

// Decode parses a library from TOML text.
func Decode(text string) (*Library, error) {
	var lib Library
	if _, err := toml.Decode(text, &lib); err != nil {
		return nil, err
	}

	// Defaults
	if len(lib.Vector.In) == 0 {
		lib.Vector.In = "in"
	}
	if len(lib.Vector.Out) == 0 {
		lib.Vector.Out = "out"
	}

	return &lib, nil
}

// Load parses a library file.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	lib, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	lib.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	return lib, nil
}

// FindAndLoad walks up from startDir to find a bitrange.toml file,
// then loads and returns the library. Returns nil if no library is found.
func FindAndLoad(startDir string) (*Library, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FILENAME)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Names returns the mapping names in sorted order.
func (lib *Library) Names() []string {
	return slices.Sorted(maps.Keys(lib.Mappings))
}

// Defines iterates over the library equates in name order. TOML integers
// and strings are both accepted as values.
func (lib *Library) Defines() iter.Seq2[string, string] {
	return func(yield func(equ, value string) bool) {
		for equ, value := range internal.IterSorted(lib.Equates) {
			if !yield(equ, fmt.Sprint(value)) {
				return
			}
		}
	}
}

// Lookup builds the named mapping, expanding $(...) expressions with the
// library equates layered under those already in ex. A nil ex uses the
// library equates alone.
func (lib *Library) Lookup(name string, ex *expr.Expander) (m *mapping.Mapping, err error) {
	entry, ok := lib.Mappings[name]
	if !ok {
		err = ErrUnknownMapping(name)
		return
	}

	defer func() {
		if err != nil {
			m = nil
			err = &ErrEntry{Name: name, Err: err}
		}
	}()

	scope := &expr.Expander{}
	err = scope.DefineAll(lib.Defines())
	if err != nil {
		return
	}
	if ex != nil {
		err = scope.DefineAll(ex.Defines())
		if err != nil {
			return
		}
	}

	spec, err := scope.Expand(entry.Spec)
	if err != nil {
		return
	}

	m, err = mapping.Parse(spec)
	if err != nil {
		return
	}

	if entry.Invert {
		m, err = m.Invert()
	}

	return
}
