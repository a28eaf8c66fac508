// SPDX-License-Identifier: MIT

// Package matrix provides the integer grids used by the transportation solver:
// a row-major int64 Dense for shipping costs, ingestion from [][]int64 with
// shape checks, value validators and a bridge to gonum's *mat.Dense.
//
// What:
//
//   - Dense stores r×c int64 values in one flat row-major buffer (offset i*c + j).
//   - At/Set never panic on bad indices; they return ErrOutOfRange.
//   - AppendZeroRow/AppendZeroCol grow a copy by one zero-filled line, which is
//     how a balancing dummy supply or demand node gets its zero costs.
//   - ToGonum exports the grid as a float64 *mat.Dense for linear-programming
//     routines.
//
// Why:
//
//   - Costs and quantities in the transportation problem are integers; keeping
//     them integral end-to-end keeps every tie-break exact and every solve
//     bit-for-bit reproducible.
//
// Complexity:
//
//   - NewDense, NewDenseFrom, Clone, Append*, ToGonum: O(r·c) time and memory.
//   - At, Set, RawRowView: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive side.
//   - ErrEmpty: ingestion from a grid with no rows or no columns.
//   - ErrNonRectangular: ingestion from a ragged grid.
//   - ErrOutOfRange: At/Set outside the grid.
//   - ErrNegative: ValidateNonNegative found a value below zero.
//   - ErrNilMatrix: a nil *Dense was passed to a validator.
package matrix
