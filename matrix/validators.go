// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ValidateNonNegative ensures every entry of m is ≥ 0.
// The first offending cell in row-major order is reported.
//
// Returns ErrNilMatrix for a nil receiver, ErrNegative (wrapped with the
// coordinates and value) otherwise.
// Complexity: O(r*c), no allocations on success.
func ValidateNonNegative(m *Dense) error {
	if m == nil {
		return fmt.Errorf("ValidateNonNegative: %w", ErrNilMatrix)
	}
	for off, v := range m.data {
		if v < 0 {
			return fmt.Errorf("ValidateNonNegative: cell (%d,%d)=%d: %w", off/m.c, off%m.c, v, ErrNegative)
		}
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols.
// Complexity: O(1).
func ValidateShape(m *Dense, rows, cols int) error {
	if m == nil {
		return fmt.Errorf("ValidateShape: %w", ErrNilMatrix)
	}
	if m.r != rows || m.c != cols {
		return fmt.Errorf("ValidateShape: have %dx%d, want %dx%d: %w", m.r, m.c, rows, cols, ErrInvalidDimensions)
	}

	return nil
}
