// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvtransport.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBasisSize indicates the occupied count is not Width+Height-1.
	ErrBasisSize = errors.New("gridgraph: occupied cell count is not rows+cols-1")
	// ErrBasisDisconnected indicates that the occupied cells do not reach every row and column.
	ErrBasisDisconnected = errors.New("gridgraph: occupied cells do not connect all rows and columns")
	// ErrBasisCycle indicates occupied cells forming a closed row/column cycle.
	ErrBasisCycle = errors.New("gridgraph: occupied cells contain a cycle")
)

// Cell identifies one grid position: column X of row Y.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GridGraph treats a 2D occupancy mask as a row/column graph.
// Width and Height define dimensions; Occupied[y][x] reports whether the cell
// is an edge between row y and column x.
// The mask is a private deep copy; CompleteSpanningTree is the only mutator.
type GridGraph struct {
	Width, Height int
	Occupied      [][]bool
}
