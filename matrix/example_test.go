// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/fracmat/matrix"
)

func ExampleInverse() {
	a, _ := matrix.NewFromInts([][]int64{{1, 2}, {3, 4}})
	d, _ := matrix.Determinant(a)
	inv, ok, _ := matrix.Inverse(a)
	fmt.Println(d)
	fmt.Println(ok)
	fmt.Println(inv)
	// Output:
	// -2
	// true
	// -2 1
	// 3/2 -1/2
}

func ExampleRank() {
	a, _ := matrix.NewFromInts([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	r, _ := matrix.Rank(a)
	fmt.Println(r)
	// Output: 2
}
