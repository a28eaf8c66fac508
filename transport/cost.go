// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"

	"github.com/katalvlaran/lvtransport/matrix"
)

// TotalCost returns Σ quantity × cost over basic cells. Zero-quantity cells
// and dummy cells contribute nothing.
// Returns ErrDimensionMismatch if the shapes differ.
// Complexity: O(m·n).
func TotalCost(a *Allocation, cost *matrix.Dense) (int64, error) {
	if a == nil {
		return 0, ErrEmptyProblem
	}
	if err := matrix.ValidateShape(cost, a.rows, a.cols); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}

	return totalCost(a, cost), nil
}

func totalCost(a *Allocation, cost *matrix.Dense) int64 {
	var total int64
	for i := 0; i < a.rows; i++ {
		row := cost.RawRowView(i)
		for j := 0; j < a.cols; j++ {
			k := i*a.cols + j
			if a.basic[k] && a.qty[k] > 0 {
				total += a.qty[k] * row[j]
			}
		}
	}

	return total
}
