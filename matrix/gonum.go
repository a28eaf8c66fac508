// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new float64 *mat.Dense of the same shape.
// The result's raw data is row-major with stride Cols(), so
// ToGonum().RawMatrix().Data[i*Cols()+j] is the (i,j) entry.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	for k, v := range m.data {
		data[k] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data)
}
