// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/doolittle/matrix"
)

// Factorize computes the Doolittle factorization A = L·U with unit diagonal
// on L and no pivoting.
//
// Implementation:
//   - Stage 1: validate A (not nil, square, non-empty, finite unless disabled).
//   - Stage 2: for i = 0..n-1:
//     U[i,j] = A[i,j] − Σ_{k<i} L[i,k]·U[k,j]            for j = i..n-1,
//     reject U[i,i] when it is negligible,
//     L[i,i] = 1,
//     L[j,i] = (A[j,i] − Σ_{k<i} L[j,k]·U[k,i]) / U[i,i]  for j = i+1..n-1.
//
// Row i of U is complete before any entry of column i of L is computed,
// and step i reads only rows/columns < i. Parallel variants must keep
// that wavefront order.
//
// Returns:
//   - L: *matrix.Dense, unit lower triangular (strict upper part exactly 0).
//   - U: *matrix.Dense, upper triangular (strict lower part exactly 0).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNaNInf (input or overflow),
//     ErrSingular (pivot |U[i,i]| ≤ tol or non-finite).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i} for L; every sum is accumulated k↑.
//     Non-*Dense inputs are copied first and run the same kernel, so they
//     produce bit-identical factors.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Factorize(a matrix.Matrix, opts ...Option) (matrix.Matrix, matrix.Matrix, error) {
	o := gatherOptions(opts...)

	ad, err := prepareSquare(a, o)
	if err != nil {
		return nil, nil, luErrorf(opFactorize, err)
	}

	l, u, err := factorizeDense(ad, o)
	if err != nil {
		return nil, nil, luErrorf(opFactorize, err)
	}

	return l, u, nil
}

// prepareSquare validates a and returns a *Dense view of it.
func prepareSquare(a matrix.Matrix, o Options) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, err
	}
	ad, _, err := matrix.AsDense(a)
	if err != nil {
		return nil, err
	}
	if o.checkFinite {
		if err = matrix.ValidateFinite(ad); err != nil {
			return nil, err
		}
	}

	return ad, nil
}

// factorizeDense runs the elimination on flat rows. ad is read-only.
func factorizeDense(ad *matrix.Dense, o Options) (*matrix.Dense, *matrix.Dense, error) {
	n := ad.Rows()
	l, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	u, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	aRows, lRows, uRows := rowsOf(ad), rowsOf(l), rowsOf(u)
	colU := make([]float64, n) // scratch: U[0..i)[j]

	var i, j int
	var pivot, v float64
	for i = 0; i < n; i++ {
		li, ui, ai := lRows[i], uRows[i], aRows[i]

		// U row i.
		for j = i; j < n; j++ {
			v = ai[j] - dotPrefix(li, gatherColumn(colU, uRows, j, i), i)
			if o.checkFinite && j > i && !finite(v) {
				return nil, nil, fmt.Errorf("U(%d,%d): %w", i, j, ErrNaNInf)
			}
			ui[j] = v
		}

		pivot = ui[i]
		if negligible(pivot, o.pivotTol) {
			return nil, nil, pivotError(i, pivot)
		}

		li[i] = 1.0

		// L column i; U[0..i)[i] is shared by every j.
		gatherColumn(colU, uRows, i, i)
		for j = i + 1; j < n; j++ {
			v = (aRows[j][i] - dotPrefix(lRows[j], colU, i)) / pivot
			if o.checkFinite && !finite(v) {
				return nil, nil, fmt.Errorf("L(%d,%d): %w", j, i, ErrNaNInf)
			}
			lRows[j][i] = v
		}
	}

	return l, u, nil
}
