// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvtransport/matrix"
)

// ExampleDense_AppendZeroCol shows how a dummy demand column is attached to a
// cost grid without touching the original.
func ExampleDense_AppendZeroCol() {
	cost, err := matrix.NewDenseFrom([][]int64{
		{8, 6, 5},
		{1, 4, 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(cost.AppendZeroCol())
	// Output:
	// [8, 6, 5, 0]
	// [1, 4, 4, 0]
}
