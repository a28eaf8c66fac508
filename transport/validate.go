// SPDX-License-Identifier: MIT

// Package transport - boundary validation.
//
// Everything the solver trusts is checked here, once, before any stage runs:
//  1. Options (algorithm, iteration cap).
//  2. Supply/demand vectors (non-empty, every quantity ≥ 1).
//  3. Cost grid (shape m×n, every cost ≥ 0).
//
// Internal stages never re-validate; they rely on these guarantees.
package transport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtransport/matrix"
)

// validateOptions checks Options in isolation.
func validateOptions(opts Options) error {
	switch opts.Algo {
	case MethodOfPotentials, LinearProgram:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, opts.Algo)
	}
	if opts.MaxIterations < 0 {
		return fmt.Errorf("%w: MaxIterations=%d", ErrBadOptions, opts.MaxIterations)
	}

	return nil
}

// validateQuantities rejects empty vectors and quantities below 1.
func validateQuantities(supply, demand []int64) error {
	if len(supply) == 0 || len(demand) == 0 {
		return ErrEmptyProblem
	}
	for i, s := range supply {
		if s <= 0 {
			return fmt.Errorf("%w: supply[%d]=%d", ErrNonPositiveQuantity, i, s)
		}
	}
	for j, d := range demand {
		if d <= 0 {
			return fmt.Errorf("%w: demand[%d]=%d", ErrNonPositiveQuantity, j, d)
		}
	}

	return nil
}

// validateCost maps matrix-level failures onto transport sentinels.
func validateCost(cost *matrix.Dense, m, n int) error {
	if cost == nil {
		return ErrEmptyProblem
	}
	if err := matrix.ValidateShape(cost, m, n); err != nil {
		return fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateNonNegative(cost); err != nil {
		return fmt.Errorf("%w: %v", ErrNegativeCost, err)
	}

	return nil
}

// costMatrix converts the caller's [][]int64 into a private Dense copy.
func costMatrix(cost [][]int64) (*matrix.Dense, error) {
	d, err := matrix.NewDenseFrom(cost)
	switch {
	case err == nil:
		return d, nil
	case errors.Is(err, matrix.ErrEmpty):
		return nil, ErrEmptyProblem
	default:
		return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
}
