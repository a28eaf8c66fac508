// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Call sites add coordinates with fmt.Errorf("...: %w", ErrX); callers match
// with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrEmpty indicates an input grid with no rows or no columns.
	ErrEmpty = errors.New("matrix: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegative indicates a negative entry where non-negative values are required.
	ErrNegative = errors.New("matrix: negative value")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
