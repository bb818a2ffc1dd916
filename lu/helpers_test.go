// SPDX-License-Identifier: MIT

package lu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/doolittle/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks the concrete *Dense type to force the generic input path.
type hide struct{ matrix.Matrix }

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func rowsOf(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// diagDominant returns a random n×n matrix with |a_ii| > Σ_{j≠i} |a_ij|.
// Such matrices always admit a no-pivot LU with nonzero pivots.
func diagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		var off float64
		for j := range rows[i] {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			rows[i][j] = v
			if v < 0 {
				off -= v
			} else {
				off += v
			}
		}
		rows[i][i] = off + 1 + rng.Float64()
	}

	return mustRows(t, rows)
}

func randVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*20 - 10
	}

	return v
}

// propUnitLowerTriangular: diag exactly 1, strict upper exactly 0.
func propUnitLowerTriangular(t *testing.T, l matrix.Matrix) {
	t.Helper()
	require.NoError(t, matrix.ValidateLowerTriangular(l, true))
}

// propUpperTriangular: strict lower exactly 0.
func propUpperTriangular(t *testing.T, u matrix.Matrix) {
	t.Helper()
	require.NoError(t, matrix.ValidateUpperTriangular(u))
}

// propReconstructionLU: ‖A − L·U‖_F ≤ tol·max(1, ‖A‖_F).
func propReconstructionLU(t *testing.T, a, l, u matrix.Matrix, tol float64) {
	t.Helper()
	lu, err := matrix.Mul(l, u)
	require.NoError(t, err)
	diff, err := matrix.Sub(a, lu)
	require.NoError(t, err)
	dn, err := matrix.FrobeniusNorm(diff)
	require.NoError(t, err)
	an, err := matrix.FrobeniusNorm(a)
	require.NoError(t, err)
	if an < 1 {
		an = 1
	}
	require.LessOrEqual(t, dn, tol*an, "‖A − L·U‖_F")
}
