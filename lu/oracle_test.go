// SPDX-License-Identifier: MIT

package lu_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/doolittle/lu"
	"github.com/katalvlaran/doolittle/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// toGonum copies a row-major *matrix.Dense into a gonum Dense.
func toGonum(t *testing.T, a *matrix.Dense) *mat.Dense {
	t.Helper()
	r, c := a.Shape()
	data := make([]float64, 0, r*c)
	for _, row := range a.ToRows() {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

// TestSolve_AgreesWithGonum cross-checks against gonum's partially pivoted
// LU. Diagonally dominant inputs never need a row exchange, so both
// factorizations are stable and must agree to rounding.
func TestSolve_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 7, 16, 40} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			a := diagDominant(t, n, int64(100+n))
			b := randVec(n, int64(200+n))

			got, err := lu.Solve(a, b)
			require.NoError(t, err)

			var ref mat.LU
			ref.Factorize(toGonum(t, a))
			var xv mat.VecDense
			require.NoError(t, ref.SolveVecTo(&xv, false, mat.NewVecDense(n, append([]float64(nil), b...))))
			want := mat.Col(nil, 0, &xv)

			require.True(t, floats.EqualApprox(want, got, 1e-10), "x: want %v, got %v", want, got)
		})
	}
}

func TestDet_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	a := diagDominant(t, 9, 77)
	got, err := lu.Det(a)
	require.NoError(t, err)

	want := mat.Det(toGonum(t, a))
	require.InDelta(t, want, got, 1e-9*math.Abs(want))
}

func TestInverse_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	a := diagDominant(t, 6, 5)
	got, err := lu.Inverse(a)
	require.NoError(t, err)

	var want mat.Dense
	require.NoError(t, want.Inverse(toGonum(t, a)))

	g := got.(*matrix.Dense)
	for i := 0; i < 6; i++ {
		row, err := g.RawRow(i)
		require.NoError(t, err)
		require.True(t, floats.EqualApprox(mat.Row(nil, i, &want), row, 1e-12), "row %d", i)
	}
}
