// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"

	"github.com/katalvlaran/lvtransport/matrix"
)

// Balanced is a problem whose total supply equals its total demand.
type Balanced struct {
	// Supply and Demand are fresh copies, extended by at most one dummy node.
	Supply, Demand []int64
	// Cost is m'×n'; a dummy row or column is all zeros.
	Cost *matrix.Dense
	// Kind tells which dummy node was added.
	Kind BalanceKind
	// Dummy is the quantity of the dummy node, 0 for BalanceNone.
	Dummy int64
}

// Balance validates p and equalizes its totals with a zero-cost dummy node.
//   - Σsupply > Σdemand: a demand column of quantity Σsupply−Σdemand.
//   - Σdemand > Σsupply: a supply row of quantity Σdemand−Σsupply.
//   - Equal totals: copies only.
//
// p is never mutated.
// Complexity: O(m·n).
func Balance(p Problem) (Balanced, error) {
	if err := validateQuantities(p.Supply, p.Demand); err != nil {
		return Balanced{}, err
	}
	cost, err := costMatrix(p.Cost)
	if err != nil {
		return Balanced{}, err
	}
	if err = validateCost(cost, len(p.Supply), len(p.Demand)); err != nil {
		return Balanced{}, err
	}

	return balance(cost, p.Supply, p.Demand), nil
}

// balance assumes validated input. cost is not mutated; the result owns
// either a clone or an extended copy.
func balance(cost *matrix.Dense, supply, demand []int64) Balanced {
	b := Balanced{
		Supply: append([]int64(nil), supply...),
		Demand: append([]int64(nil), demand...),
		Kind:   BalanceNone,
	}
	s, d := sum(supply), sum(demand)
	switch {
	case s > d:
		b.Kind, b.Dummy = BalanceDummyDemand, s-d
		b.Demand = append(b.Demand, b.Dummy)
		b.Cost = cost.AppendZeroCol()
	case d > s:
		b.Kind, b.Dummy = BalanceDummySupply, d-s
		b.Supply = append(b.Supply, b.Dummy)
		b.Cost = cost.AppendZeroRow()
	default:
		b.Cost = cost.Clone()
	}

	return b
}

func sum(xs []int64) int64 {
	var t int64
	for _, x := range xs {
		t += x
	}

	return t
}

// NorthWestCorner builds the initial basis of a balanced problem.
//
// Two cursors sweep from (0,0). On each step the smaller of the remaining
// supply and demand is shipped and that side's cursor advances. On a tie
// only the row cursor advances, so the following step records a Basic(0)
// cell in the same column and the basis keeps exactly m+n−1 cells.
//
// Returns ErrEmptyProblem, ErrNonPositiveQuantity or ErrUnbalanced for bad input.
// Complexity: O(m+n) steps, O(m·n) memory for the table.
func NorthWestCorner(supply, demand []int64) (*Allocation, error) {
	if err := validateQuantities(supply, demand); err != nil {
		return nil, err
	}
	if s, d := sum(supply), sum(demand); s != d {
		return nil, fmt.Errorf("%w: supply %d, demand %d", ErrUnbalanced, s, d)
	}

	return northWest(supply, demand), nil
}

func northWest(supply, demand []int64) *Allocation {
	m, n := len(supply), len(demand)
	s := append([]int64(nil), supply...)
	d := append([]int64(nil), demand...)
	a := newAllocation(m, n)

	i, j := 0, 0
	for i < m && j < n {
		switch {
		case s[i] < d[j]:
			a.set(i, j, s[i])
			d[j] -= s[i]
			s[i] = 0
			i++
		case s[i] > d[j]:
			a.set(i, j, d[j])
			s[i] -= d[j]
			d[j] = 0
			j++
		default:
			a.set(i, j, s[i])
			s[i], d[j] = 0, 0
			i++
		}
	}

	return a
}
