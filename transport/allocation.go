// SPDX-License-Identifier: MIT

// Package transport - Allocation table.
//
// An Allocation is the m'×n' working table of the solver. Every cell is
// either Empty (non-basic) or basic with a quantity ≥ 0; a basic cell holding
// 0 is a degenerate basic variable and is distinct from Empty.
//
// Storage is row-major, offset = i*cols + j, the same layout as matrix.Dense.
package transport

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtransport/gridgraph"
)

// Empty is reported by Quantity and Grid for non-basic cells.
const Empty int64 = -1

// Allocation is a mutable table of basic cells and their quantities.
type Allocation struct {
	rows, cols int
	qty        []int64
	basic      []bool
}

// newAllocation returns an r×c table with every cell Empty.
func newAllocation(r, c int) *Allocation {
	return &Allocation{
		rows:  r,
		cols:  c,
		qty:   make([]int64, r*c),
		basic: make([]bool, r*c),
	}
}

// NewAllocationFrom builds an Allocation from a grid in which Empty marks
// non-basic cells and any value ≥ 0 marks a basic cell.
// Returns ErrEmptyProblem for an empty grid, ErrDimensionMismatch for a
// ragged one and ErrNonPositiveQuantity for values below Empty.
func NewAllocationFrom(grid [][]int64) (*Allocation, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyProblem
	}
	a := newAllocation(len(grid), len(grid[0]))
	for i, row := range grid {
		if len(row) != a.cols {
			return nil, fmt.Errorf("%w: allocation row %d has %d cells, want %d", ErrDimensionMismatch, i, len(row), a.cols)
		}
		for j, v := range row {
			switch {
			case v == Empty:
			case v >= 0:
				a.set(i, j, v)
			default:
				return nil, fmt.Errorf("%w: allocation cell %s=%d", ErrNonPositiveQuantity, Cell{i, j}, v)
			}
		}
	}

	return a, nil
}

// Rows returns m'.
func (a *Allocation) Rows() int { return a.rows }

// Cols returns n'.
func (a *Allocation) Cols() int { return a.cols }

func (a *Allocation) inBounds(i, j int) bool {
	return i >= 0 && i < a.rows && j >= 0 && j < a.cols
}

// IsBasic reports whether (i,j) is in the basis. Out-of-range cells are not.
func (a *Allocation) IsBasic(i, j int) bool {
	return a.inBounds(i, j) && a.basic[i*a.cols+j]
}

// Quantity returns the shipped amount at (i,j), or Empty when the cell is
// non-basic or out of range.
func (a *Allocation) Quantity(i, j int) int64 {
	if !a.IsBasic(i, j) {
		return Empty
	}

	return a.qty[i*a.cols+j]
}

// set marks (i,j) basic with quantity q.
func (a *Allocation) set(i, j int, q int64) {
	k := i*a.cols + j
	a.basic[k] = true
	a.qty[k] = q
}

// clear marks (i,j) Empty.
func (a *Allocation) clear(i, j int) {
	k := i*a.cols + j
	a.basic[k] = false
	a.qty[k] = 0
}

// BasicCount returns the number of basic cells.
func (a *Allocation) BasicCount() int {
	n := 0
	for _, b := range a.basic {
		if b {
			n++
		}
	}

	return n
}

// BasicCells lists basic cells in row-major order.
func (a *Allocation) BasicCells() []Cell {
	out := make([]Cell, 0, a.rows+a.cols-1)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if a.basic[i*a.cols+j] {
				out = append(out, Cell{Row: i, Col: j})
			}
		}
	}

	return out
}

// Grid returns a fresh [][]int64 copy with Empty for non-basic cells.
func (a *Allocation) Grid() [][]int64 {
	out := make([][]int64, a.rows)
	for i := range out {
		out[i] = make([]int64, a.cols)
		for j := range out[i] {
			out[i][j] = a.Quantity(i, j)
		}
	}

	return out
}

// Clone returns a deep copy.
func (a *Allocation) Clone() *Allocation {
	b := &Allocation{
		rows:  a.rows,
		cols:  a.cols,
		qty:   make([]int64, len(a.qty)),
		basic: make([]bool, len(a.basic)),
	}
	copy(b.qty, a.qty)
	copy(b.basic, a.basic)

	return b
}

// RowSums returns Σ_j quantity(i,j) for every row, counting Empty as 0.
func (a *Allocation) RowSums() []int64 {
	out := make([]int64, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out[i] += a.qty[i*a.cols+j]
		}
	}

	return out
}

// ColSums returns Σ_i quantity(i,j) for every column, counting Empty as 0.
func (a *Allocation) ColSums() []int64 {
	out := make([]int64, a.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out[j] += a.qty[i*a.cols+j]
		}
	}

	return out
}

// Occupancy exposes the basis as a row/column graph.
func (a *Allocation) Occupancy() *gridgraph.GridGraph {
	mask := make([][]bool, a.rows)
	for i := range mask {
		mask[i] = a.basic[i*a.cols : (i+1)*a.cols]
	}
	// NewGridGraph deep-copies, so sharing the backing array here is fine.
	gg, _ := gridgraph.NewGridGraph(mask)

	return gg
}

// String renders one line per row; Empty cells print as "-".
func (a *Allocation) String() string {
	var sb strings.Builder
	for i := 0; i < a.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < a.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if q := a.Quantity(i, j); q == Empty {
				sb.WriteByte('-')
			} else {
				fmt.Fprintf(&sb, "%d", q)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
