// SPDX-License-Identifier: MIT

// Package transport - dual potentials.
//
// For a spanning-tree basis the equations u[i] + v[j] = cost(i,j), one per
// basic cell, have a unique solution once one value is fixed. The root is the
// last basic cell in row-major order with u[root.row] = 0.
//
// The traversal alternates axes: a cell reached along its row only looks up
// and down its column next, and vice versa. Moves never stop at empty cells;
// they skip over them to the next basic one.
package transport

import (
	"fmt"

	"github.com/katalvlaran/lvtransport/matrix"
)

// direction is the axis of the move that reached a cell.
type direction int

const (
	dirStart direction = iota
	dirHorizontal
	dirVertical
)

// potentialWalker holds the traversal state of one Potentials call.
type potentialWalker struct {
	a      *Allocation
	cost   *matrix.Dense
	u, v   []int64
	uKnown []bool
	vKnown []bool
	seen   []bool
}

// Potentials computes the dual values u (rows) and v (columns) of the basis.
//
// Returns ErrDimensionMismatch if cost is not a.Rows()×a.Cols() and
// ErrBasisDisconnected if some row or column is not reachable from the root.
// Complexity: O(B·(m+n)) for B basic cells.
func Potentials(a *Allocation, cost *matrix.Dense) (u, v []int64, err error) {
	if a == nil {
		return nil, nil, ErrEmptyProblem
	}
	if err = matrix.ValidateShape(cost, a.rows, a.cols); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}

	return potentials(a, cost)
}

func potentials(a *Allocation, cost *matrix.Dense) ([]int64, []int64, error) {
	root, ok := lastBasic(a)
	if !ok {
		return nil, nil, fmt.Errorf("%w: no basic cells", ErrBasisDisconnected)
	}

	w := &potentialWalker{
		a:      a,
		cost:   cost,
		u:      make([]int64, a.rows),
		v:      make([]int64, a.cols),
		uKnown: make([]bool, a.rows),
		vKnown: make([]bool, a.cols),
		seen:   make([]bool, a.rows*a.cols),
	}
	w.uKnown[root.Row] = true
	w.v[root.Col] = w.costAt(root.Row, root.Col)
	w.vKnown[root.Col] = true
	w.seen[root.Row*a.cols+root.Col] = true
	w.next(root.Row, root.Col, dirStart)

	for i, ok := range w.uKnown {
		if !ok {
			return nil, nil, fmt.Errorf("%w: row %d unreached", ErrBasisDisconnected, i)
		}
	}
	for j, ok := range w.vKnown {
		if !ok {
			return nil, nil, fmt.Errorf("%w: column %d unreached", ErrBasisDisconnected, j)
		}
	}

	return w.u, w.v, nil
}

// lastBasic returns the last basic cell in row-major order.
func lastBasic(a *Allocation) (Cell, bool) {
	for k := len(a.basic) - 1; k >= 0; k-- {
		if a.basic[k] {
			return Cell{Row: k / a.cols, Col: k % a.cols}, true
		}
	}

	return Cell{}, false
}

func (w *potentialWalker) costAt(i, j int) int64 {
	return w.cost.RawRowView(i)[j]
}

// next explores from (i,j) along the axes allowed after arriving via dir.
func (w *potentialWalker) next(i, j int, dir direction) {
	switch dir {
	case dirStart:
		w.right(i, j)
		w.left(i, j)
	case dirVertical:
		w.left(i, j)
		w.right(i, j)
	}
	if dir != dirVertical {
		// up, then down
		for p := 0; p < i; p++ {
			w.visit(p, j, dirVertical)
		}
		for p := i + 1; p < w.a.rows; p++ {
			w.visit(p, j, dirVertical)
		}
	}
}

func (w *potentialWalker) right(i, j int) {
	for q := j + 1; q < w.a.cols; q++ {
		w.visit(i, q, dirHorizontal)
	}
}

func (w *potentialWalker) left(i, j int) {
	for q := 0; q < j; q++ {
		w.visit(i, q, dirHorizontal)
	}
}

// visit consumes a basic, unseen cell, derives its missing potential and
// recurses.
func (w *potentialWalker) visit(i, j int, dir direction) {
	k := i*w.a.cols + j
	if !w.a.basic[k] || w.seen[k] {
		return
	}
	w.seen[k] = true

	c := w.costAt(i, j)
	switch {
	case w.uKnown[i]:
		w.v[j] = c - w.u[i]
		w.vKnown[j] = true
	case w.vKnown[j]:
		w.u[i] = c - w.v[j]
		w.uKnown[i] = true
	}
	w.next(i, j, dir)
}

// ReducedCosts returns cost(i,j) − (u[i] + v[j]) for every cell.
// Basic cells of a consistent basis come out as 0.
// The caller guarantees matching shapes.
func ReducedCosts(a *Allocation, cost *matrix.Dense, u, v []int64) [][]int64 {
	out := make([][]int64, a.rows)
	for i := range out {
		row := cost.RawRowView(i)
		out[i] = make([]int64, a.cols)
		for j := range out[i] {
			out[i][j] = row[j] - (u[i] + v[j])
		}
	}

	return out
}
