// SPDX-License-Identifier: MIT

// Package transport - linear-programming start.
//
// The balanced problem is written in standard form
//
//	minimize  Σ cost(i,j)·x(i,j)
//	s.t.      Σ_j x(i,j) = supply[i]   for every row i
//	          Σ_i x(i,j) = demand[j]   for every column j < n'−1
//	          x ≥ 0
//
// The last column equation is implied by the others under balance and is
// dropped so that A has full row rank. gonum's simplex is seeded with the
// north-west corner basis, whose m'+n'−1 columns of A are independent.
//
// The vertex is rounded and checked, its positive cells become basic and
// the basis is completed to a spanning tree with zero cells. The optimality
// loop then certifies the result with potentials.
package transport

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvtransport/gridgraph"
)

// lpTolerance is the reduced-cost tolerance passed to lp.Simplex.
const lpTolerance = 1e-10

// lpProgram is the standard-form data of a balanced problem.
type lpProgram struct {
	m, n int
	c    []float64
	A    *mat.Dense
	b    []float64
}

// newLPProgram assembles c, A and b. Variable (i,j) has column i*n+j.
func newLPProgram(bal Balanced) lpProgram {
	m, n := len(bal.Supply), len(bal.Demand)
	g := bal.Cost.ToGonum()
	c := make([]float64, 0, m*n)
	for i := 0; i < m; i++ {
		c = append(c, g.RawRowView(i)...)
	}

	rows := m + n - 1
	A := mat.NewDense(rows, m*n, nil)
	b := make([]float64, rows)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, i*n+j, 1)
			if j < n-1 {
				A.Set(m+j, i*n+j, 1)
			}
		}
		b[i] = float64(bal.Supply[i])
	}
	for j := 0; j < n-1; j++ {
		b[m+j] = float64(bal.Demand[j])
	}

	return lpProgram{m: m, n: n, c: c, A: A, b: b}
}

// simplex runs lp.Simplex, turning its panics on a rejected initial basis
// into errors.
func (p lpProgram) simplex(initial []int) (x []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			x, err = nil, fmt.Errorf("%w: simplex: %v", ErrLinearProgram, r)
		}
	}()

	_, x, err = lp.Simplex(p.c, p.A, p.b, lpTolerance, initial)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLinearProgram, err)
	}

	return x, nil
}

// lpBasis solves bal as an LP and returns a spanning-tree basis at the
// optimal vertex.
func lpBasis(bal Balanced, log logrus.FieldLogger) (*Allocation, error) {
	p := newLPProgram(bal)

	nw := northWest(bal.Supply, bal.Demand)
	initial := make([]int, 0, p.m+p.n-1)
	for _, c := range nw.BasicCells() {
		initial = append(initial, c.Row*p.n+c.Col)
	}

	x, err := p.simplex(initial)
	if err != nil {
		log.WithError(err).Debug("seeded simplex failed, retrying with phase I")
		if x, err = p.simplex(nil); err != nil {
			return nil, err
		}
	}

	grid, err := roundVertex(x, bal)
	if err != nil {
		return nil, err
	}

	mask := make([][]bool, p.m)
	for i := range mask {
		mask[i] = make([]bool, p.n)
		for j := range mask[i] {
			mask[i][j] = grid[i][j] > 0
		}
	}
	gg, err := gridgraph.NewGridGraph(mask)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLinearProgram, err)
	}
	added, err := gg.CompleteSpanningTree()
	if err != nil {
		return nil, fmt.Errorf("%w: vertex support: %v", ErrLinearProgram, err)
	}

	a := newAllocation(p.m, p.n)
	for i := 0; i < p.m; i++ {
		for j := 0; j < p.n; j++ {
			if gg.Occupied[i][j] {
				a.set(i, j, grid[i][j])
			}
		}
	}
	log.WithFields(logrus.Fields{
		"support": gg.OccupiedCount() - len(added),
		"added":   len(added),
		"cost":    totalCost(a, bal.Cost),
	}).Debug("lp vertex")

	return a, nil
}

// roundVertex rounds x to integers and checks it against the balanced
// row and column totals.
func roundVertex(x []float64, bal Balanced) ([][]int64, error) {
	m, n := len(bal.Supply), len(bal.Demand)
	if len(x) != m*n {
		return nil, fmt.Errorf("%w: %d variables, want %d", ErrLinearProgram, len(x), m*n)
	}

	grid := make([][]int64, m)
	rowSum := make([]int64, m)
	colSum := make([]int64, n)
	for i := 0; i < m; i++ {
		grid[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			q := int64(math.Round(x[i*n+j]))
			if q < 0 {
				return nil, fmt.Errorf("%w: x%s=%g", ErrLinearProgram, Cell{i, j}, x[i*n+j])
			}
			grid[i][j] = q
			rowSum[i] += q
			colSum[j] += q
		}
	}
	for i, s := range rowSum {
		if s != bal.Supply[i] {
			return nil, fmt.Errorf("%w: row %d ships %d, supply %d", ErrLinearProgram, i, s, bal.Supply[i])
		}
	}
	for j, s := range colSum {
		if s != bal.Demand[j] {
			return nil, fmt.Errorf("%w: column %d receives %d, demand %d", ErrLinearProgram, j, s, bal.Demand[j])
		}
	}

	return grid, nil
}
