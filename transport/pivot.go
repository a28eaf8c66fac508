// SPDX-License-Identifier: MIT

package transport

import "fmt"

// Pivot moves theta units around path, a cycle returned by FindCycle.
//
// Even positions (0,2,…) are plus cells, odd positions are minus cells and
// theta is the smallest minus quantity. The entering cell path[0] becomes
// basic with theta, plus cells gain theta, minus cells lose it. The first
// minus cell in path order that drops to 0 leaves the basis; later ones stay
// basic with 0.
//
// Returns ErrBadPath if path is not an alternating cycle of even length ≥ 4
// that starts at an empty cell.
// Complexity: O(len(path)).
func Pivot(a *Allocation, path []Cell) (theta int64, leaving Cell, err error) {
	if err = checkPath(a, path); err != nil {
		return 0, Cell{}, err
	}
	theta, leaving = pivot(a, path)

	return theta, leaving, nil
}

func pivot(a *Allocation, path []Cell) (int64, Cell) {
	theta := a.Quantity(path[1].Row, path[1].Col)
	for k := 3; k < len(path); k += 2 {
		if q := a.Quantity(path[k].Row, path[k].Col); q < theta {
			theta = q
		}
	}

	a.set(path[0].Row, path[0].Col, theta)
	var (
		leaving Cell
		left    bool
	)
	for k := 1; k < len(path); k++ {
		c := path[k]
		idx := c.Row*a.cols + c.Col
		if k%2 == 0 {
			a.qty[idx] += theta
			continue
		}
		a.qty[idx] -= theta
		if !left && a.qty[idx] == 0 {
			a.clear(c.Row, c.Col)
			leaving, left = c, true
		}
	}

	return theta, leaving
}

// checkPath validates the shape of a pivot path against a.
func checkPath(a *Allocation, path []Cell) error {
	if a == nil {
		return fmt.Errorf("%w: nil allocation", ErrBadPath)
	}
	if len(path) < 4 || len(path)%2 != 0 {
		return fmt.Errorf("%w: length %d", ErrBadPath, len(path))
	}
	for k, c := range path {
		if !a.inBounds(c.Row, c.Col) {
			return fmt.Errorf("%w: %s out of range", ErrBadPath, c)
		}
		if basic := a.IsBasic(c.Row, c.Col); basic == (k == 0) {
			return fmt.Errorf("%w: position %d %s basic=%t", ErrBadPath, k, c, basic)
		}
		prev := path[(k+len(path)-1)%len(path)]
		// Moves alternate: into odd positions along a row, into even ones along a column.
		if k%2 == 1 && (prev.Row != c.Row || prev.Col == c.Col) {
			return fmt.Errorf("%w: %s→%s is not a row move", ErrBadPath, prev, c)
		}
		if k%2 == 0 && (prev.Col != c.Col || prev.Row == c.Row) {
			return fmt.Errorf("%w: %s→%s is not a column move", ErrBadPath, prev, c)
		}
	}

	return nil
}
