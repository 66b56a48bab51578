// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mapping

import (
	"fmt"
	"strings"
)

// String returns the mapping as pairs, highest read bits first, in a form
// Parse accepts.
func (m *Mapping) String() string {
	return m.runs.String()
}

// Concat renders the mapping as a concatenation over the input vector
// 'in', from the highest destination bit down to bit 0. Destination bits
// without a source are filled with high-impedance constants.
func (m *Mapping) Concat(in string) (expr string, err error) {
	inv, err := m.Invert()
	if err != nil {
		return
	}

	var parts []string
	next := m.runs.Extent()
	for _, run := range inv.runs {
		top := run.Read + run.Length
		if next > top {
			parts = append(parts, fmt.Sprintf("%d'bz", next-top))
		}
		parts = append(parts, fmt.Sprintf("%s[%s]", in, run.WriteSpan()))
		next = run.Read
	}
	if next > 0 {
		parts = append(parts, fmt.Sprintf("%d'bz", next))
	}

	expr = "{" + strings.Join(parts, ", ") + "}"
	return
}

// Assign renders the mapping as one assignment per run, from the input
// vector 'in' to the output vector 'out'. Unmapped destination bits are
// not assigned.
func (m *Mapping) Assign(out, in string) (lines []string, err error) {
	inv, err := m.Invert()
	if err != nil {
		return
	}

	for _, run := range inv.runs {
		lines = append(lines, fmt.Sprintf("%s[%s] = %s[%s];", out, run.ReadSpan(), in, run.WriteSpan()))
	}

	return
}
