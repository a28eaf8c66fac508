// SPDX-License-Identifier: MIT

package transport

import "github.com/katalvlaran/lvtransport/matrix"

// SelectEntering scans empty cells in row-major order and returns the one with
// the most negative reduced cost cost(i,j) − (u[i] + v[j]). The running
// minimum starts at 0 and only a strictly smaller value replaces it, so on
// ties the first cell wins. ok is false when no reduced cost is negative,
// i.e. the basis is optimal.
// Complexity: O(m·n).
func SelectEntering(a *Allocation, cost *matrix.Dense, u, v []int64) (cell Cell, reduced int64, ok bool) {
	var best int64
	for i := 0; i < a.rows; i++ {
		row := cost.RawRowView(i)
		for j := 0; j < a.cols; j++ {
			if a.basic[i*a.cols+j] {
				continue
			}
			if r := row[j] - (u[i] + v[j]); r < best {
				best, cell, ok = r, Cell{Row: i, Col: j}, true
			}
		}
	}

	return cell, best, ok
}
