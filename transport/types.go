// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Problem is one input snapshot: m supply quantities, n demand quantities and
// an m×n grid of per-unit shipping costs. Solve never mutates it.
type Problem struct {
	// Supply holds the output quantity of each supply node (row), all ≥ 1.
	Supply []int64 `yaml:"supply" json:"supply"`
	// Demand holds the required quantity of each demand node (column), all ≥ 1.
	Demand []int64 `yaml:"demand" json:"demand"`
	// Cost[i][j] is the non-negative unit cost from supply i to demand j.
	Cost [][]int64 `yaml:"cost" json:"cost"`
}

// Algorithm selects how the first optimal basis is reached.
type Algorithm int

const (
	// MethodOfPotentials starts from the north-west corner basis and pivots
	// on reduced costs computed from dual potentials until none is negative.
	MethodOfPotentials Algorithm = iota

	// LinearProgram solves the balanced problem with gonum's simplex,
	// rebuilds a spanning-tree basis from the LP vertex and certifies it with
	// the potentials loop.
	LinearProgram
)

// String returns the canonical flag spelling of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case MethodOfPotentials:
		return "potentials"
	case LinearProgram:
		return "lp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: "potentials", "modi", "lp", "simplex".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "potentials", "modi":
		return MethodOfPotentials, nil
	case "lp", "simplex":
		return LinearProgram, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Options configures Solve.
//   - Algo: MethodOfPotentials (default) or LinearProgram.
//   - MaxIterations: pivot cap; 0 selects max(64, 16·m'·n').
//   - CheckInvariants: verify basis size and tree shape after the initial
//     allocation and after every pivot.
//   - Logger: receives one debug record per pivot; nil means silent.
type Options struct {
	Algo            Algorithm
	MaxIterations   int
	CheckInvariants bool
	Logger          logrus.FieldLogger
}

// DefaultOptions returns production defaults: method of potentials,
// automatic iteration cap, invariant checks on, no logging.
func DefaultOptions() Options {
	return Options{
		Algo:            MethodOfPotentials,
		MaxIterations:   0,
		CheckInvariants: true,
	}
}

// BalanceKind tells which dummy node, if any, the Balancer introduced.
type BalanceKind int

const (
	// BalanceNone means total supply already equalled total demand.
	BalanceNone BalanceKind = iota
	// BalanceDummyDemand means a zero-cost demand column absorbs surplus supply.
	BalanceDummyDemand
	// BalanceDummySupply means a zero-cost supply row covers surplus demand.
	BalanceDummySupply
)

// String names the balance kind.
func (k BalanceKind) String() string {
	switch k {
	case BalanceNone:
		return "none"
	case BalanceDummyDemand:
		return "dummy-demand"
	case BalanceDummySupply:
		return "dummy-supply"
	default:
		return fmt.Sprintf("BalanceKind(%d)", int(k))
	}
}

// Cell addresses one allocation cell: supply Row, demand Col.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Result is the immutable outcome of one solve.
type Result struct {
	// Allocation is the final m'×n' table; it is owned by the Result.
	Allocation *Allocation

	// Cost is Σ quantity × cost over basic cells (dummy cells add 0).
	Cost int64

	// Balance reports the dummy node added by the Balancer.
	Balance BalanceKind

	// Supply and Demand are the quantities after balancing (length m', n').
	Supply, Demand []int64

	// SupplyPotentials and DemandPotentials are the final dual values;
	// every empty cell has cost − (u[i] + v[j]) ≥ 0.
	SupplyPotentials, DemandPotentials []int64

	// Pivots is the number of basis changes performed by the optimality loop.
	Pivots int

	// History holds the total cost after the initial basis and after each pivot.
	History []int64

	// Algo is the algorithm that produced the initial basis.
	Algo Algorithm
}
