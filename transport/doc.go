// SPDX-License-Identifier: MIT

// Package transport solves the balanced transportation problem: ship integer
// quantities from m supply nodes to n demand nodes at minimum total cost.
//
// Pipeline:
//
//   - Balance: a zero-cost dummy row or column absorbs any difference between
//     total supply and total demand.
//   - NorthWestCorner: initial basis of exactly m'+n'−1 cells forming a
//     spanning tree over rows and columns (degenerate zeros included).
//   - Optimality loop (method of potentials):
//     Potentials → SelectEntering → FindCycle → Pivot, until every empty
//     cell has a non-negative reduced cost.
//   - TotalCost: Σ quantity × cost over basic cells.
//
// Options.Algo = LinearProgram replaces the north-west start with the
// optimal vertex found by gonum's simplex; the same loop then certifies it.
//
// Determinism: every scan is row-major and every tie is broken by position,
// so repeated calls on the same input return identical results.
//
// Complexity: O(m·n) per pivot plus O(B·(m+n)) for potentials and the cycle
// search, where B = m'+n'−1.
//
// Errors are package-prefixed sentinels; internal defects are reported as
// *SolveError values that satisfy errors.Is(err, ErrInternal).
package transport
