// SPDX-License-Identifier: MIT

// Package builder generates transportation problem instances for tests,
// benchmarks and the CLI "generate" command.
//
// The package offers:
//
//   - RandomProblem(m, n, opts...): m supplies, n demands and an m×n cost grid.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the RNG (required; there is no global source).
//     – WithQuantityRange: bounds for supply and demand draws.
//     – WithCostRange / WithCostFn: the cost distribution.
//     – WithBalanced: force Σsupply == Σdemand.
//   - Cost distributions (CostFn implementations):
//     – UniformCostFn:  uniform over an integer range.
//     – ConstantCostFn: one fixed value.
//     – NormalCostFn:   rounded Gaussian, clipped at 0.
//
// Guarantees:
//
//   - Determinism: a fixed seed and option list always yields the same instance.
//   - Fast-fail on meaningless option arguments via panics in option constructors.
//   - RandomProblem itself never panics; it returns sentinel errors.
package builder
