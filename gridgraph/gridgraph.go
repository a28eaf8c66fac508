// Package gridgraph provides utilities to treat the occupied cells of a grid
// as a graph over its rows and columns.
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular occupancy mask.
// It deep-copies the input to keep the caller's mask untouched.
// Returns ErrEmptyGrid if the mask has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(occupied [][]bool) (*GridGraph, error) {
	if len(occupied) == 0 || len(occupied[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(occupied), len(occupied[0])
	for _, row := range occupied {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], occupied[y])
	}

	return &GridGraph{Width: w, Height: h, Occupied: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// OccupiedCount returns the number of occupied cells.
// Complexity: O(W×H).
func (gg *GridGraph) OccupiedCount() int {
	n := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Occupied[y][x] {
				n++
			}
		}
	}

	return n
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
