// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"fmt"
)

// Input sentinels. Solve wraps them with the offending index/value.
var (
	// ErrEmptyProblem indicates no supply nodes, no demand nodes or an empty cost grid.
	ErrEmptyProblem = errors.New("transport: empty problem")

	// ErrDimensionMismatch indicates a ragged cost grid or one whose shape
	// disagrees with len(Supply)×len(Demand).
	ErrDimensionMismatch = errors.New("transport: dimension mismatch")

	// ErrNonPositiveQuantity indicates a supply or demand quantity below 1.
	ErrNonPositiveQuantity = errors.New("transport: quantities must be positive")

	// ErrNegativeCost indicates a cost below 0.
	ErrNegativeCost = errors.New("transport: costs must be non-negative")

	// ErrUnbalanced indicates total supply ≠ total demand where balance is required.
	ErrUnbalanced = errors.New("transport: total supply and demand differ")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("transport: unsupported algorithm")

	// ErrBadOptions indicates an invalid option value (e.g. MaxIterations < 0).
	ErrBadOptions = errors.New("transport: invalid options")

	// ErrBadPath indicates a pivot path that is not an even cycle of length ≥ 4
	// starting at an empty cell.
	ErrBadPath = errors.New("transport: invalid pivot path")

	// ErrLinearProgram wraps failures of the gonum LP path.
	ErrLinearProgram = errors.New("transport: linear program failed")
)

// ErrInternal marks a broken basis-maintenance invariant. Such errors are
// defects, never a normal "optimal" termination; match with errors.Is.
var ErrInternal = errors.New("transport: internal invariant violated")

// Fatal sentinels, all wrapping ErrInternal.
var (
	// ErrBasisDisconnected is returned when potentials cannot reach every row and column.
	ErrBasisDisconnected = fmt.Errorf("%w: basis does not connect all rows and columns", ErrInternal)

	// ErrCycleNotFound is returned when the entering cell closes no alternating cycle.
	ErrCycleNotFound = fmt.Errorf("%w: no alternating cycle through entering cell", ErrInternal)

	// ErrBasisInvariant is returned when the basis is not a spanning tree of m'+n'-1 cells.
	ErrBasisInvariant = fmt.Errorf("%w: basis is not a spanning tree", ErrInternal)

	// ErrIterationLimit is returned when the optimality loop exceeds its cap.
	ErrIterationLimit = fmt.Errorf("%w: iteration limit exceeded", ErrInternal)
)

// Stage names used in SolveError.
const (
	StageInitial   = "initial"
	StagePotential = "potentials"
	StageCycle     = "cycle"
	StagePivot     = "pivot"
	StageLoop      = "loop"
)

// SolveError reports a fatal condition inside the optimality loop together
// with where it happened.
type SolveError struct {
	Stage     string
	Iteration int
	Err       error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("transport: %s stage, iteration %d: %v", e.Stage, e.Iteration, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is / errors.As.
func (e *SolveError) Unwrap() error { return e.Err }
