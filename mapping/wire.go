// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mapping

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode is canonical, so equal mappings encode to equal bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("mapping: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// wireRun is a run encoded as a [read, write, length] array.
type wireRun struct {
	_      struct{} `cbor:",toarray"`
	Read   uint
	Write  uint
	Length uint
}

// Marshal serializes a mapping's runs to CBOR bytes.
func Marshal(m *Mapping) ([]byte, error) {
	runs := make([]wireRun, len(m.runs))
	for n, run := range m.runs {
		runs[n] = wireRun{Read: run.Read, Write: run.Write, Length: run.Length}
	}
	return cborEncMode.Marshal(runs)
}

// Unmarshal deserializes a mapping from CBOR bytes.
func Unmarshal(data []byte) (*Mapping, error) {
	var runs []wireRun
	if err := cbor.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("mapping: unmarshal: %w", err)
	}

	list := make(Runs, len(runs))
	for n, run := range runs {
		list[n] = Run{Read: run.Read, Write: run.Write, Length: run.Length}
	}

	m, err := FromRuns(list...)
	if err != nil {
		return nil, fmt.Errorf("mapping: unmarshal: %w", err)
	}
	return m, nil
}
