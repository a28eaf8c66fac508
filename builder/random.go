// SPDX-License-Identifier: MIT

// random.go - RandomProblem.
//
// Draw order is fixed: supplies 0..m-1, demands 0..n-1, then costs row by row.
// With WithBalanced the totals are equalized afterwards:
//  1. if Σsupply < n, the last supply grows so every demand can keep ≥ 1;
//  2. if Σdemand < Σsupply, the last demand grows by the difference;
//  3. if Σdemand > Σsupply, demands shrink from the last one backwards,
//     never below 1.
//
// Adjusted nodes may leave the configured quantity range.

package builder

import (
	"github.com/katalvlaran/lvtransport/transport"
)

const methodRandomProblem = "RandomProblem"

// RandomProblem returns a random m×n instance.
//
// Errors: ErrTooFewNodes, ErrNeedRandSource.
// Complexity: O(m·n).
func RandomProblem(m, n int, opts ...BuilderOption) (transport.Problem, error) {
	cfg := newBuilderConfig(opts...)
	if m < 1 || n < 1 {
		return transport.Problem{}, builderErrorf(methodRandomProblem, "m=%d n=%d", ErrTooFewNodes, m, n)
	}
	if cfg.rng == nil {
		return transport.Problem{}, builderErrorf(methodRandomProblem, "no rng", ErrNeedRandSource)
	}
	if cfg.qtyMin < 1 || cfg.qtyMax < cfg.qtyMin {
		return transport.Problem{}, builderErrorf(methodRandomProblem, "quantity %d..%d", ErrInvalidRange, cfg.qtyMin, cfg.qtyMax)
	}

	p := transport.Problem{
		Supply: make([]int64, m),
		Demand: make([]int64, n),
		Cost:   make([][]int64, m),
	}
	for i := range p.Supply {
		p.Supply[i] = uniform(cfg.rng, cfg.qtyMin, cfg.qtyMax)
	}
	for j := range p.Demand {
		p.Demand[j] = uniform(cfg.rng, cfg.qtyMin, cfg.qtyMax)
	}
	for i := range p.Cost {
		p.Cost[i] = make([]int64, n)
		for j := range p.Cost[i] {
			c := cfg.costFn(cfg.rng, i, j)
			if c < 0 {
				return transport.Problem{}, builderErrorf(methodRandomProblem, "cost(%d,%d)=%d", ErrInvalidRange, i, j, c)
			}
			p.Cost[i][j] = c
		}
	}

	if cfg.balanced {
		equalize(p.Supply, p.Demand)
	}

	return p, nil
}

// equalize adjusts supply and demand in place until their totals match.
func equalize(supply, demand []int64) {
	s := total(supply)
	if n := int64(len(demand)); s < n {
		supply[len(supply)-1] += n - s
		s = n
	}

	d := total(demand)
	if d < s {
		demand[len(demand)-1] += s - d
		return
	}
	for j := len(demand) - 1; j >= 0 && d > s; j-- {
		cut := demand[j] - 1
		if excess := d - s; cut > excess {
			cut = excess
		}
		demand[j] -= cut
		d -= cut
	}
}

func total(xs []int64) int64 {
	var t int64
	for _, x := range xs {
		t += x
	}

	return t
}
