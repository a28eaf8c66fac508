// SPDX-License-Identifier: MIT

// options.go - functional options for RandomProblem.
//
// Option constructors validate and panic on meaningless inputs; RandomProblem
// itself only returns errors.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes RandomProblem by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithQuantityRange sets the inclusive bounds for supply and demand draws.
// Panics unless 1 ≤ min ≤ max.
func WithQuantityRange(min, max int64) BuilderOption {
	if min < 1 || max < min {
		panic(fmt.Sprintf("builder: WithQuantityRange requires 1 ≤ min ≤ max, got %d..%d", min, max))
	}
	return func(c *builderConfig) {
		c.qtyMin, c.qtyMax = min, max
	}
}

// WithCostRange draws costs uniformly from [min, max]. Panics unless 0 ≤ min ≤ max.
func WithCostRange(min, max int64) BuilderOption {
	fn := UniformCostFn(min, max)
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithCostFn overrides the cost distribution. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithBalanced forces Σsupply == Σdemand by adjusting the last nodes.
func WithBalanced() BuilderOption {
	return func(c *builderConfig) {
		c.balanced = true
	}
}
