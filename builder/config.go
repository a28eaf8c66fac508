// SPDX-License-Identifier: MIT

// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng      = nil        (RandomProblem returns ErrNeedRandSource)
//   • quantity = 1..100
//   • cost     = UniformCostFn(0, 20)
//   • balanced = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by RandomProblem.
type builderConfig struct {
	rng            *rand.Rand
	qtyMin, qtyMax int64
	costFn         CostFn
	balanced       bool
}

const (
	defaultQuantityMin = int64(1)
	defaultQuantityMax = int64(100)
	defaultCostMin     = int64(0)
	defaultCostMax     = int64(20)
)

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		qtyMin: defaultQuantityMin,
		qtyMax: defaultQuantityMax,
		costFn: UniformCostFn(defaultCostMin, defaultCostMax),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
