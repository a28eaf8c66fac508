// Package gridgraph treats the occupied cells of a 2D grid as the edges of a
// bipartite graph whose vertices are the grid's rows and columns.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool occupancy mask (true = occupied).
//   - Two occupied cells are adjacent when they share a row or a column
//     ("rook" connectivity), so a connected component of cells is exactly a
//     connected component of the row/column graph.
//   - CheckSpanningTree verifies that the occupied cells form a spanning tree
//     over all Height+Width row/column vertices.
//   - CompleteSpanningTree adds unoccupied cells (row-major, Kruskal-style
//     union-find) until an acyclic occupancy spans every row and column.
//
// Why:
//
//   - A basic feasible solution of the transportation problem is such a tree:
//     Height supply rows, Width demand columns, Height+Width−1 basic cells.
//   - Verifying the tree after every pivot catches basis-maintenance defects
//     right where they happen.
//
// Coordinates follow the grid convention: (x, y) is column x of row y, and
// the row-major index of (x, y) is y*Width + x.
//
// Complexity:
//
//   - ConnectedComponents:  O(W·H·(W+H)), Memory: O(W·H).
//   - CheckSpanningTree:    O(W·H·(W+H)), Memory: O(W·H).
//   - CompleteSpanningTree: O(W·H·α(W+H)), Memory: O(W+H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBasisSize: occupied count differs from Width+Height−1.
//   - ErrBasisDisconnected: some row or column is not reachable.
//   - ErrBasisCycle: occupied cells close a cycle.
package gridgraph
