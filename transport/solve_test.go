package transport_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtransport/transport"
)

// SolveSuite exercises Solve end to end on fixed instances.
type SolveSuite struct {
	suite.Suite
}

// TestScenarioOne: the north-west basis is already optimal.
func (s *SolveSuite) TestScenarioOne() {
	p := transport.Problem{
		Supply: []int64{10, 20},
		Demand: []int64{15, 15},
		Cost:   [][]int64{{1, 2}, {3, 4}},
	}
	res, err := transport.Solve(p, transport.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), [][]int64{{10, E}, {5, 15}}, res.Allocation.Grid())
	require.Equal(s.T(), int64(85), res.Cost)
	require.Zero(s.T(), res.Pivots)
	require.Equal(s.T(), []int64{85}, res.History)
	require.Equal(s.T(), transport.BalanceNone, res.Balance)
	require.Equal(s.T(), []int64{-2, 0}, res.SupplyPotentials)
	require.Equal(s.T(), []int64{3, 4}, res.DemandPotentials)
}

// TestScenarioTwo: surplus supply goes to a dummy column.
func (s *SolveSuite) TestScenarioTwo() {
	p := transport.Problem{
		Supply: []int64{5, 5},
		Demand: []int64{3, 4},
		Cost:   [][]int64{{1, 2}, {3, 4}},
	}
	res, err := transport.Solve(p, transport.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), transport.BalanceDummyDemand, res.Balance)
	require.Equal(s.T(), []int64{3, 4, 3}, res.Demand)
	require.Equal(s.T(), [][]int64{{3, 2, E}, {E, 2, 3}}, res.Allocation.Grid())
	require.Equal(s.T(), int64(15), res.Cost)
	requireFeasible(s.T(), res)
	requireOptimal(s.T(), res, balancedCost(s.T(), p))
}

// TestDemo walks through three pivots, one of them degenerate.
func (s *SolveSuite) TestDemo() {
	res, err := transport.Solve(demoProblem(), transport.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), [][]int64{
		{E, E, E, 30},
		{50, 20, 10, 0},
		{E, 40, E, E},
	}, res.Allocation.Grid())
	require.Equal(s.T(), int64(250), res.Cost)
	require.Equal(s.T(), 3, res.Pivots)
	require.Equal(s.T(), []int64{530, 260, 260, 250}, res.History)
	require.Equal(s.T(), []int64{2, 2, 0}, res.SupplyPotentials)
	require.Equal(s.T(), []int64{-1, 2, 2, -2}, res.DemandPotentials)
	requireFeasible(s.T(), res)
	requireOptimal(s.T(), res, balancedCost(s.T(), demoProblem()))
}

// TestIdempotent: two solves of the same input agree exactly.
func (s *SolveSuite) TestIdempotent() {
	p := demoProblem()
	a, err := transport.Solve(p, transport.DefaultOptions())
	require.NoError(s.T(), err)
	b, err := transport.Solve(p, transport.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.Allocation.Grid(), b.Allocation.Grid())
	require.Equal(s.T(), a.Cost, b.Cost)
	require.Equal(s.T(), a.History, b.History)
	require.Equal(s.T(), demoProblem(), p, "input untouched")
}

// TestSurplusDemand adds a dummy supply row that ships nothing real.
func (s *SolveSuite) TestSurplusDemand() {
	p := transport.Problem{
		Supply: []int64{20, 10},
		Demand: []int64{15, 10, 15},
		Cost:   [][]int64{{2, 4, 1}, {5, 1, 3}},
	}
	res, err := transport.Solve(p, transport.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), transport.BalanceDummySupply, res.Balance)
	require.Equal(s.T(), []int64{20, 10, 10}, res.Supply)
	requireFeasible(s.T(), res)
	requireOptimal(s.T(), res, balancedCost(s.T(), p))
}

// TestSingleCell is the smallest valid instance.
func (s *SolveSuite) TestSingleCell() {
	res, err := transport.Solve(transport.Problem{
		Supply: []int64{7},
		Demand: []int64{7},
		Cost:   [][]int64{{3}},
	}, transport.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(21), res.Cost)
	require.Equal(s.T(), [][]int64{{7}}, res.Allocation.Grid())
}

// TestValidation maps every bad input to its sentinel.
func (s *SolveSuite) TestValidation() {
	ok := demoProblem()
	tests := []struct {
		name string
		p    transport.Problem
		opts transport.Options
		want error
	}{
		{"no supply", transport.Problem{Demand: ok.Demand, Cost: ok.Cost}, transport.DefaultOptions(), transport.ErrEmptyProblem},
		{"no cost", transport.Problem{Supply: ok.Supply, Demand: ok.Demand}, transport.DefaultOptions(), transport.ErrEmptyProblem},
		{"ragged", transport.Problem{Supply: ok.Supply, Demand: ok.Demand, Cost: [][]int64{{1, 2, 3}, {1, 2}, {1, 2, 3}}}, transport.DefaultOptions(), transport.ErrDimensionMismatch},
		{"wrong shape", transport.Problem{Supply: ok.Supply, Demand: ok.Demand, Cost: [][]int64{{1, 2, 3}}}, transport.DefaultOptions(), transport.ErrDimensionMismatch},
		{"zero supply", transport.Problem{Supply: []int64{30, 0, 40}, Demand: ok.Demand, Cost: ok.Cost}, transport.DefaultOptions(), transport.ErrNonPositiveQuantity},
		{"negative demand", transport.Problem{Supply: ok.Supply, Demand: []int64{50, -60, 10}, Cost: ok.Cost}, transport.DefaultOptions(), transport.ErrNonPositiveQuantity},
		{"negative cost", transport.Problem{Supply: ok.Supply, Demand: ok.Demand, Cost: [][]int64{{8, 6, 5}, {1, -4, 4}, {8, 2, 3}}}, transport.DefaultOptions(), transport.ErrNegativeCost},
		{"unknown algo", ok, transport.Options{Algo: transport.Algorithm(9)}, transport.ErrUnsupportedAlgorithm},
		{"negative cap", ok, transport.Options{MaxIterations: -1}, transport.ErrBadOptions},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := transport.Solve(tc.p, tc.opts)
			require.ErrorIs(s.T(), err, tc.want)
		})
	}
}

// TestIterationLimit: a cap below the pivots needed is a fatal error.
func (s *SolveSuite) TestIterationLimit() {
	opts := transport.DefaultOptions()
	opts.MaxIterations = 1
	_, err := transport.Solve(demoProblem(), opts)

	require.ErrorIs(s.T(), err, transport.ErrIterationLimit)
	require.ErrorIs(s.T(), err, transport.ErrInternal)
	var se *transport.SolveError
	require.True(s.T(), errors.As(err, &se))
	require.Equal(s.T(), transport.StageLoop, se.Stage)
	require.Equal(s.T(), 1, se.Iteration)
}

// TestPivotTrace: the logger receives one debug entry per pivot.
func (s *SolveSuite) TestPivotTrace() {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	opts := transport.DefaultOptions()
	opts.Logger = logger
	_, err := transport.Solve(demoProblem(), opts)
	require.NoError(s.T(), err)

	var pivots []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "pivot" {
			pivots = append(pivots, e)
		}
	}
	require.Len(s.T(), pivots, 3)
	first := pivots[0].Data
	require.Equal(s.T(), 1, first["iteration"])
	require.Equal(s.T(), "(0,3)", first["enter"])
	require.Equal(s.T(), "(0,0)", first["leave"])
	require.Equal(s.T(), int64(30), first["theta"])
	require.Equal(s.T(), int64(260), first["cost"])
	require.Equal(s.T(), int64(0), pivots[1].Data["theta"])
	require.Equal(s.T(), "optimal basis reached", hook.LastEntry().Message)
}

// TestLinearProgramDemo: the LP start lands on the same optimum.
func (s *SolveSuite) TestLinearProgramDemo() {
	opts := transport.DefaultOptions()
	opts.Algo = transport.LinearProgram
	res, err := transport.Solve(demoProblem(), opts)
	require.NoError(s.T(), err)

	require.Equal(s.T(), int64(250), res.Cost)
	require.Equal(s.T(), transport.LinearProgram, res.Algo)
	requireFeasible(s.T(), res)
	requireOptimal(s.T(), res, balancedCost(s.T(), demoProblem()))
}

// TestSolveWithMatrix leaves the caller's matrix untouched.
func (s *SolveSuite) TestSolveWithMatrix() {
	cost := mustDense(s.T(), [][]int64{{1, 2}, {3, 4}})
	res, err := transport.SolveWithMatrix(cost, []int64{5, 5}, []int64{3, 4}, transport.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(15), res.Cost)
	require.Equal(s.T(), 2, cost.Cols())

	_, err = transport.SolveWithMatrix(nil, []int64{1}, []int64{1}, transport.DefaultOptions())
	require.ErrorIs(s.T(), err, transport.ErrEmptyProblem)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]transport.Algorithm{
		"potentials": transport.MethodOfPotentials,
		"MODI":       transport.MethodOfPotentials,
		"lp":         transport.LinearProgram,
		" simplex ":  transport.LinearProgram,
	} {
		got, err := transport.ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := transport.ParseAlgorithm("vogel")
	require.ErrorIs(t, err, transport.ErrUnsupportedAlgorithm)
	require.Equal(t, "lp", transport.LinearProgram.String())
}
