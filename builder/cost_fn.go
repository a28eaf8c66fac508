// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// CostFn produces the unit cost of cell (i,j). It must be deterministic for a
// given RNG state.
type CostFn func(rng *rand.Rand, i, j int) int64

// ConstantCostFn always yields value. Panics if value < 0.
func ConstantCostFn(value int64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %d", value))
	}

	return func(*rand.Rand, int, int) int64 { return value }
}

// UniformCostFn samples uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// Complexity: O(1).
func UniformCostFn(min, max int64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand, _, _ int) int64 {
		return uniform(rng, min, max)
	}
}

// NormalCostFn samples N(mean, stddev), rounds to the nearest integer and
// clips at 0. Panics if stddev < 0.
func NormalCostFn(mean, stddev float64) CostFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalCostFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand, _, _ int) int64 {
		v := math.Round(rng.NormFloat64()*stddev + mean)
		if v < 0 {
			return 0
		}

		return int64(v)
	}
}

// uniform draws from [min, max] inclusive.
func uniform(rng *rand.Rand, min, max int64) int64 {
	if max == min {
		return min
	}

	return min + rng.Int63n(max-min+1)
}
