// SPDX-License-Identifier: MIT

// Package transport - pivot cycle search.
//
// Adding an empty cell to a spanning-tree basis closes exactly one cycle of
// alternating row and column moves. cycleFinder locates it with a
// backtracking DFS over basic cells:
//   - from the entering cell: right, left, up, down;
//   - after a horizontal move: up, down;
//   - after a vertical move: left, right;
//   - within one direction, cells in increasing index order.
//
// The path is a push/pop stack scoped to the current branch.
package transport

import "fmt"

type cycleFinder struct {
	a      *Allocation
	origin Cell
	path   []Cell
	onPath []bool
}

// FindCycle returns the closed alternating path through the empty cell enter.
// path[0] is enter and path[1] shares its row. ErrBadPath is returned when
// enter is out of range or already basic; ErrCycleNotFound when no cycle
// closes, which means the basis is not a spanning tree.
// Complexity: O(B·(m+n)) per explored branch, B basic cells.
func FindCycle(a *Allocation, enter Cell) ([]Cell, error) {
	if a == nil || !a.inBounds(enter.Row, enter.Col) {
		return nil, fmt.Errorf("%w: entering cell %s out of range", ErrBadPath, enter)
	}
	if a.IsBasic(enter.Row, enter.Col) {
		return nil, fmt.Errorf("%w: entering cell %s is basic", ErrBadPath, enter)
	}

	return findCycle(a, enter)
}

func findCycle(a *Allocation, enter Cell) ([]Cell, error) {
	cf := &cycleFinder{
		a:      a,
		origin: enter,
		path:   make([]Cell, 0, a.rows+a.cols),
		onPath: make([]bool, a.rows*a.cols),
	}
	cf.push(enter)
	if !cf.next(enter.Row, enter.Col, dirStart) {
		return nil, fmt.Errorf("%w: entering %s", ErrCycleNotFound, enter)
	}

	out := make([]Cell, len(cf.path))
	copy(out, cf.path)

	return out, nil
}

func (cf *cycleFinder) push(c Cell) {
	cf.path = append(cf.path, c)
	cf.onPath[c.Row*cf.a.cols+c.Col] = true
}

func (cf *cycleFinder) pop() {
	c := cf.path[len(cf.path)-1]
	cf.path = cf.path[:len(cf.path)-1]
	cf.onPath[c.Row*cf.a.cols+c.Col] = false
}

// next tries every move permitted after arriving at (i,j) via dir.
func (cf *cycleFinder) next(i, j int, dir direction) bool {
	switch dir {
	case dirStart:
		return cf.right(i, j) || cf.left(i, j) || cf.up(i, j) || cf.down(i, j)
	case dirHorizontal:
		return cf.up(i, j) || cf.down(i, j)
	default:
		return cf.left(i, j) || cf.right(i, j)
	}
}

func (cf *cycleFinder) right(i, j int) bool {
	for q := j + 1; q < cf.a.cols; q++ {
		if cf.step(i, q, dirHorizontal) {
			return true
		}
	}
	return false
}

func (cf *cycleFinder) left(i, j int) bool {
	for q := 0; q < j; q++ {
		if cf.step(i, q, dirHorizontal) {
			return true
		}
	}
	return false
}

func (cf *cycleFinder) up(i, j int) bool {
	for p := 0; p < i; p++ {
		if cf.step(p, j, dirVertical) {
			return true
		}
	}
	return false
}

func (cf *cycleFinder) down(i, j int) bool {
	for p := i + 1; p < cf.a.rows; p++ {
		if cf.step(p, j, dirVertical) {
			return true
		}
	}
	return false
}

// step enters (i,j). Reaching the origin closes the cycle.
func (cf *cycleFinder) step(i, j int, dir direction) bool {
	if i == cf.origin.Row && j == cf.origin.Col {
		return true
	}
	k := i*cf.a.cols + j
	if !cf.a.basic[k] || cf.onPath[k] {
		return false
	}

	cf.push(Cell{Row: i, Col: j})
	if cf.next(i, j, dir) {
		return true
	}
	cf.pop()

	return false
}
