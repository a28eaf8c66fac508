package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransport/builder"
)

func sum(xs []int64) int64 {
	var t int64
	for _, x := range xs {
		t += x
	}
	return t
}

func TestRandomProblem_Deterministic(t *testing.T) {
	a, err := builder.RandomProblem(4, 5, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomProblem(4, 5, builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.RandomProblem(4, 5, builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a, c, "WithSeed and WithRand share the same draw order")
}

func TestRandomProblem_ShapeAndRanges(t *testing.T) {
	p, err := builder.RandomProblem(3, 6,
		builder.WithSeed(7),
		builder.WithQuantityRange(5, 9),
		builder.WithCostRange(2, 4),
	)
	require.NoError(t, err)
	require.Len(t, p.Supply, 3)
	require.Len(t, p.Demand, 6)
	require.Len(t, p.Cost, 3)

	for _, q := range append(append([]int64(nil), p.Supply...), p.Demand...) {
		assert.GreaterOrEqual(t, q, int64(5))
		assert.LessOrEqual(t, q, int64(9))
	}
	for _, row := range p.Cost {
		require.Len(t, row, 6)
		for _, c := range row {
			assert.GreaterOrEqual(t, c, int64(2))
			assert.LessOrEqual(t, c, int64(4))
		}
	}
}

func TestRandomProblem_Balanced(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		m, n := 1+int(seed%4), 1+int(seed%7)
		p, err := builder.RandomProblem(m, n,
			builder.WithSeed(seed),
			builder.WithQuantityRange(1, 10),
			builder.WithBalanced(),
		)
		require.NoError(t, err)
		require.Equal(t, sum(p.Supply), sum(p.Demand), "seed %d", seed)
		for _, q := range append(append([]int64(nil), p.Supply...), p.Demand...) {
			require.Positive(t, q, "seed %d", seed)
		}
	}
}

// One unit of supply cannot cover five demands of at least 1.
func TestRandomProblem_BalancedGrowsSupply(t *testing.T) {
	p, err := builder.RandomProblem(1, 5,
		builder.WithSeed(1),
		builder.WithQuantityRange(1, 1),
		builder.WithBalanced(),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, p.Supply)
	assert.Equal(t, []int64{1, 1, 1, 1, 1}, p.Demand)
}

func TestRandomProblem_CostFns(t *testing.T) {
	p, err := builder.RandomProblem(2, 2, builder.WithSeed(3), builder.WithCostFn(builder.ConstantCostFn(7)))
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{7, 7}, {7, 7}}, p.Cost)

	p, err = builder.RandomProblem(5, 5, builder.WithSeed(3), builder.WithCostFn(builder.NormalCostFn(0, 3)))
	require.NoError(t, err)
	for _, row := range p.Cost {
		for _, c := range row {
			assert.GreaterOrEqual(t, c, int64(0), "clipped at zero")
		}
	}

	_, err = builder.RandomProblem(1, 1, builder.WithSeed(3), builder.WithCostFn(func(*rand.Rand, int, int) int64 { return -1 }))
	require.ErrorIs(t, err, builder.ErrInvalidRange)
}

func TestRandomProblem_Errors(t *testing.T) {
	_, err := builder.RandomProblem(0, 3, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.RandomProblem(2, 3)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithQuantityRange(0, 5) })
	assert.Panics(t, func() { builder.WithQuantityRange(5, 4) })
	assert.Panics(t, func() { builder.WithCostRange(-1, 4) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.ConstantCostFn(-2) })
	assert.Panics(t, func() { builder.NormalCostFn(1, -1) })
}
