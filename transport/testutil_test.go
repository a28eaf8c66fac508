package transport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransport/matrix"
	"github.com/katalvlaran/lvtransport/transport"
)

// E is shorthand for an empty cell in expected grids.
const E = transport.Empty

// demoProblem has surplus supply (150 vs 120) and a known optimum of 250.
func demoProblem() transport.Problem {
	return transport.Problem{
		Supply: []int64{30, 80, 40},
		Demand: []int64{50, 60, 10},
		Cost: [][]int64{
			{8, 6, 5},
			{1, 4, 4},
			{8, 2, 3},
		},
	}
}

func mustDense(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

func mustAllocation(t testing.TB, grid [][]int64) *transport.Allocation {
	t.Helper()
	a, err := transport.NewAllocationFrom(grid)
	require.NoError(t, err)

	return a
}

// requireFeasible checks row and column sums against the balanced quantities.
func requireFeasible(t testing.TB, res transport.Result) {
	t.Helper()
	require.Equal(t, res.Supply, res.Allocation.RowSums(), "row sums")
	require.Equal(t, res.Demand, res.Allocation.ColSums(), "column sums")
	require.Equal(t, len(res.Supply)+len(res.Demand)-1, res.Allocation.BasicCount(), "basis size")
	require.True(t, res.Allocation.Occupancy().IsSpanningTree(), "basis shape")
}

// requireOptimal checks the dual certificate: u+v=cost on basic cells and
// non-negative reduced costs everywhere.
func requireOptimal(t testing.TB, res transport.Result, cost *matrix.Dense) {
	t.Helper()
	red := transport.ReducedCosts(res.Allocation, cost, res.SupplyPotentials, res.DemandPotentials)
	for i := range red {
		for j, r := range red[i] {
			if res.Allocation.IsBasic(i, j) {
				require.Zerof(t, r, "basic cell (%d,%d)", i, j)
			} else {
				require.GreaterOrEqualf(t, r, int64(0), "empty cell (%d,%d)", i, j)
			}
		}
	}
}

// balancedCost returns the cost matrix the solver worked on.
func balancedCost(t testing.TB, p transport.Problem) *matrix.Dense {
	t.Helper()
	b, err := transport.Balance(p)
	require.NoError(t, err)

	return b.Cost
}
