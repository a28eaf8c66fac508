// SPDX-License-Identifier: MIT

// Package transport - optimality loop.
//
// Each iteration recomputes potentials from scratch, selects the entering
// cell, finds its cycle and pivots. The loop ends when no reduced cost is
// negative. Degenerate pivots (theta = 0) change the basis without changing
// the cost, so the loop is capped; hitting the cap is an internal error, not
// an "optimal" answer.
package transport

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvtransport/matrix"
)

const (
	minIterationCap     = 64
	iterationCapPerCell = 16
)

// iterationCap returns opts.MaxIterations or max(64, 16·m·n) when it is 0.
func iterationCap(maxIter, m, n int) int {
	if maxIter > 0 {
		return maxIter
	}
	if c := iterationCapPerCell * m * n; c > minIterationCap {
		return c
	}

	return minIterationCap
}

// optimizer drives one optimality loop over a private allocation.
type optimizer struct {
	a       *Allocation
	cost    *matrix.Dense
	maxIter int
	check   bool
	log     logrus.FieldLogger

	u, v    []int64
	pivots  int
	history []int64
}

func newOptimizer(a *Allocation, cost *matrix.Dense, opts Options) *optimizer {
	return &optimizer{
		a:       a,
		cost:    cost,
		maxIter: iterationCap(opts.MaxIterations, a.rows, a.cols),
		check:   opts.CheckInvariants,
		log:     loggerOf(opts),
		history: []int64{totalCost(a, cost)},
	}
}

func (o *optimizer) fail(stage string, err error) error {
	return &SolveError{Stage: stage, Iteration: o.pivots, Err: err}
}

// checkBasis verifies size and tree shape of the basis when enabled.
func (o *optimizer) checkBasis(stage string) error {
	if !o.check {
		return nil
	}
	if err := o.a.Occupancy().CheckSpanningTree(); err != nil {
		return o.fail(stage, fmt.Errorf("%w: %v", ErrBasisInvariant, err))
	}

	return nil
}

// run iterates until optimal. On success o.u and o.v certify optimality.
func (o *optimizer) run() error {
	if err := o.checkBasis(StageInitial); err != nil {
		return err
	}

	for {
		u, v, err := potentials(o.a, o.cost)
		if err != nil {
			return o.fail(StagePotential, err)
		}
		o.u, o.v = u, v

		enter, reduced, ok := SelectEntering(o.a, o.cost, u, v)
		if !ok {
			o.log.WithFields(logrus.Fields{
				"pivots": o.pivots,
				"cost":   o.history[len(o.history)-1],
			}).Debug("optimal basis reached")
			return nil
		}
		if o.pivots >= o.maxIter {
			return o.fail(StageLoop, fmt.Errorf("%w: %d pivots", ErrIterationLimit, o.maxIter))
		}

		path, err := findCycle(o.a, enter)
		if err != nil {
			return o.fail(StageCycle, err)
		}
		theta, leaving := pivot(o.a, path)
		o.pivots++
		c := totalCost(o.a, o.cost)
		o.history = append(o.history, c)

		o.log.WithFields(logrus.Fields{
			"iteration": o.pivots,
			"enter":     enter.String(),
			"leave":     leaving.String(),
			"reduced":   reduced,
			"theta":     theta,
			"cost":      c,
		}).Debug("pivot")

		if err = o.checkBasis(StagePivot); err != nil {
			return err
		}
	}
}
