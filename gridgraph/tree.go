package gridgraph

import "fmt"

// CheckSpanningTree verifies that the occupied cells form a spanning tree
// over the Height row vertices and Width column vertices:
//
//  1. exactly Width+Height−1 occupied cells (ErrBasisSize);
//  2. every row and column touched and all cells in one component
//     (ErrBasisDisconnected).
//
// A connected graph on V vertices with V−1 edges is acyclic, so the two
// checks together are sufficient.
func (gg *GridGraph) CheckSpanningTree() error {
	want := gg.Width + gg.Height - 1
	if got := gg.OccupiedCount(); got != want {
		return fmt.Errorf("%w: have %d, want %d", ErrBasisSize, got, want)
	}
	if !gg.coversAllLines() {
		return ErrBasisDisconnected
	}
	if comps := gg.ConnectedComponents(); len(comps) != 1 {
		return fmt.Errorf("%w: %d components", ErrBasisDisconnected, len(comps))
	}

	return nil
}

// IsSpanningTree is the boolean form of CheckSpanningTree.
func (gg *GridGraph) IsSpanningTree() bool {
	return gg.CheckSpanningTree() == nil
}

// lineForest is a disjoint-set over row vertices [0,Height) and column
// vertices [Height,Height+Width), with path compression and union by rank.
type lineForest struct {
	parent []int
	rank   []int
}

func newLineForest(n int) *lineForest {
	lf := &lineForest{parent: make([]int, n), rank: make([]int, n)}
	for i := range lf.parent {
		lf.parent[i] = i
	}

	return lf
}

// find walks to the root, pointing each visited node at its grandparent.
func (lf *lineForest) find(u int) int {
	for lf.parent[u] != u {
		lf.parent[u] = lf.parent[lf.parent[u]]
		u = lf.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports false if they already shared one.
func (lf *lineForest) union(u, v int) bool {
	ru, rv := lf.find(u), lf.find(v)
	if ru == rv {
		return false
	}
	switch {
	case lf.rank[ru] < lf.rank[rv]:
		lf.parent[ru] = rv
	case lf.rank[ru] > lf.rank[rv]:
		lf.parent[rv] = ru
	default:
		lf.parent[rv] = ru
		lf.rank[ru]++
	}

	return true
}

// CompleteSpanningTree extends the occupied cells to a spanning tree.
//
// Steps:
//  1. Union every occupied cell's row and column in row-major order; an
//     occupied cell joining an already-connected pair is ErrBasisCycle.
//  2. Scan unoccupied cells in row-major order and occupy each one whose row
//     and column are still in different sets.
//
// The added cells are returned in the order they were occupied and gg is
// updated in place. On error gg is left unchanged.
//
// Complexity: O(W·H·α(W+H)) time, O(W+H) memory.
func (gg *GridGraph) CompleteSpanningTree() ([]Cell, error) {
	lf := newLineForest(gg.Height + gg.Width)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Occupied[y][x] && !lf.union(y, gg.Height+x) {
				return nil, fmt.Errorf("%w: closed at %s", ErrBasisCycle, Cell{X: x, Y: y})
			}
		}
	}

	var added []Cell
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Occupied[y][x] {
				continue
			}
			if lf.union(y, gg.Height+x) {
				added = append(added, Cell{X: x, Y: y})
			}
		}
	}
	for _, c := range added {
		gg.Occupied[c.Y][c.X] = true
	}

	return added, nil
}
