package gridgraph

// ConnectedComponents groups occupied cells that are linked through shared
// rows or columns. Components are seeded in row-major order and each
// component lists its cell indices in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·(W+H)); every dequeued cell scans its row and its column.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Occupied[y][x] {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := gg.Coordinate(u)
				// same row
				for vx := 0; vx < gg.Width; vx++ {
					if vi := gg.index(vx, uy); gg.Occupied[uy][vx] && !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
				// same column
				for vy := 0; vy < gg.Height; vy++ {
					if vi := gg.index(ux, vy); gg.Occupied[vy][ux] && !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// coversAllLines reports whether every row and every column holds at least
// one occupied cell.
func (gg *GridGraph) coversAllLines() bool {
	cols := make([]bool, gg.Width)
	for y := 0; y < gg.Height; y++ {
		rowHit := false
		for x := 0; x < gg.Width; x++ {
			if gg.Occupied[y][x] {
				rowHit = true
				cols[x] = true
			}
		}
		if !rowHit {
			return false
		}
	}
	for _, hit := range cols {
		if !hit {
			return false
		}
	}

	return true
}
