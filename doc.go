// Package lvtransport is a small toolkit for the balanced transportation
// problem: ship integer quantities from supply nodes to demand nodes at the
// lowest total cost.
//
// What is inside?
//
//	A deterministic, single-threaded solver built on the method of potentials:
//		• Balancing with a zero-cost dummy node
//		• North-west corner start with explicit degenerate zeros
//		• Potentials, entering-cell selection, cycle search and pivots
//		• An LP cross-check backed by gonum's simplex
//		• A random instance builder and a CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	transport/        Problem, Allocation, Solve and every solver stage
//	matrix/           int64 dense cost matrix with validators and a gonum bridge
//	gridgraph/        basis cells viewed as a row/column graph (tree checks, completion)
//	builder/          seeded random problems via functional options
//	cmd/lvtransport   "solve" and "generate" commands
//
// Quick ASCII example:
//
//	        D1  D2  D3  D4*  Supply
//	    S1   -   -   -   30      30
//	    S2  50  20  10    0      80
//	    S3   -  40   -    -      40
//
//	is the optimal plan for the demo instance; D4* is the dummy column
//	absorbing 30 units of surplus supply, total cost 250.
//
//	go install github.com/katalvlaran/lvtransport/cmd/lvtransport@latest
package lvtransport
