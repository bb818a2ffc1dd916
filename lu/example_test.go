// SPDX-License-Identifier: MIT

package lu_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/doolittle/lu"
	"github.com/katalvlaran/doolittle/matrix"
)

func ExampleSolve() {
	a, _ := matrix.NewFromRows([][]float64{
		{2, 3},
		{4, 7},
	})
	x, err := lu.Solve(a, []float64{5, 13})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x)
	// Output: [-2 3]
}

func ExampleFactorize() {
	a, _ := matrix.NewFromRows([][]float64{
		{1, 2, 4},
		{3, 8, 14},
		{2, 6, 13},
	})
	l, u, err := lu.Factorize(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print("L =\n", l)
	fmt.Print("U =\n", u)
	// Output:
	// L =
	// [1, 0, 0]
	// [3, 1, 0]
	// [2, 1, 1]
	// U =
	// [1, 2, 4]
	// [0, 2, 2]
	// [0, 0, 3]
}

func ExampleFactorize_singular() {
	a, _ := matrix.NewFromRows([][]float64{
		{0, 1},
		{1, 0},
	})
	_, _, err := lu.Factorize(a)
	fmt.Println(errors.Is(err, lu.ErrSingular))
	// Output: true
}

func ExampleDecompose() {
	a, _ := matrix.NewFromRows([][]float64{
		{4, 3},
		{6, 3},
	})
	f, err := lu.Decompose(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range [][]float64{{10, 12}, {7, 9}} {
		x, _ := f.Solve(b)
		fmt.Println(x)
	}
	fmt.Println(f.Det())
	// Output:
	// [1 2]
	// [1 1]
	// -6
}
