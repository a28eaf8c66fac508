// SPDX-License-Identifier: MIT

// Package transport - dispatcher.
//
// Entry points:
//   - Solve: accept a Problem with a [][]int64 cost grid, convert it and
//     delegate to SolveWithMatrix.
//   - SolveWithMatrix: validate, balance, build the initial basis with the
//     requested algorithm and run the optimality loop.
//
// Both are pure functions of their inputs. The caller's slices and matrix are
// copied before anything is mutated.
package transport

import (
	"github.com/katalvlaran/lvtransport/matrix"
)

// Solve computes a minimum-cost allocation for p.
//
// Errors:
//   - input: ErrEmptyProblem, ErrDimensionMismatch, ErrNonPositiveQuantity,
//     ErrNegativeCost, ErrUnsupportedAlgorithm, ErrBadOptions;
//   - LP path: ErrLinearProgram;
//   - defects: *SolveError wrapping an ErrInternal sentinel.
func Solve(p Problem, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateQuantities(p.Supply, p.Demand); err != nil {
		return Result{}, err
	}
	cost, err := costMatrix(p.Cost)
	if err != nil {
		return Result{}, err
	}

	return SolveWithMatrix(cost, p.Supply, p.Demand, opts)
}

// SolveWithMatrix is Solve for a cost matrix that is already a *matrix.Dense.
// cost is read, never mutated.
func SolveWithMatrix(cost *matrix.Dense, supply, demand []int64, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateQuantities(supply, demand); err != nil {
		return Result{}, err
	}
	if err := validateCost(cost, len(supply), len(demand)); err != nil {
		return Result{}, err
	}

	b := balance(cost, supply, demand)

	var (
		a   *Allocation
		err error
	)
	switch opts.Algo {
	case LinearProgram:
		a, err = lpBasis(b, loggerOf(opts))
		if err != nil {
			return Result{}, err
		}
	default:
		a = northWest(b.Supply, b.Demand)
	}

	o := newOptimizer(a, b.Cost, opts)
	if err = o.run(); err != nil {
		return Result{}, err
	}

	return Result{
		Allocation:       a,
		Cost:             o.history[len(o.history)-1],
		Balance:          b.Kind,
		Supply:           b.Supply,
		Demand:           b.Demand,
		SupplyPotentials: o.u,
		DemandPotentials: o.v,
		Pivots:           o.pivots,
		History:          o.history,
		Algo:             opts.Algo,
	}, nil
}
