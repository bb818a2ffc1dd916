// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/doolittle/matrix"
)

// SolveLower solves L·y = b by forward substitution (i = 0..n-1):
//
//	y[i] = (b[i] − Σ_{k<i} L[i,k]·y[k]) / L[i,i]
//
// L may be any lower-triangular matrix. For the unit diagonal produced by
// Factorize the division is by exactly 1.0 and leaves y unchanged. Entries
// above the diagonal are never read.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (L not square, len(b) ≠ n),
//     ErrNaNInf (non-finite b or overflow), ErrSingular (|L[i,i]| ≤ tol).
//
// Complexity:
//   - Time O(n^2), Space O(n) for y.
func SolveLower(l matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	ld, err := prepareSystem(l, b, o)
	if err != nil {
		return nil, luErrorf(opSolveLower, err)
	}

	y, err := forward(rowsOf(ld), b, o)
	if err != nil {
		return nil, luErrorf(opSolveLower, err)
	}

	return y, nil
}

// SolveUpper solves U·x = y by backward substitution (i = n-1..0):
//
//	x[i] = (y[i] − Σ_{k>i} U[i,k]·x[k]) / U[i,i]
//
// Entries below the diagonal are never read.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (U not square, len(y) ≠ n),
//     ErrNaNInf (non-finite y or overflow), ErrSingular (|U[i,i]| ≤ tol).
//
// Complexity:
//   - Time O(n^2), Space O(n) for x.
func SolveUpper(u matrix.Matrix, y []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	ud, err := prepareSystem(u, y, o)
	if err != nil {
		return nil, luErrorf(opSolveUpper, err)
	}

	x, err := backward(rowsOf(ud), y, o)
	if err != nil {
		return nil, luErrorf(opSolveUpper, err)
	}

	return x, nil
}

// prepareSystem validates a square coefficient matrix and its right-hand side.
// Priority: nil → shape → vector length → NaN/Inf.
func prepareSystem(m matrix.Matrix, rhs []float64, o Options) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(rhs, m.Rows()); err != nil {
		return nil, err
	}
	if o.checkFinite {
		if err := matrix.ValidateFiniteVec(rhs); err != nil {
			return nil, err
		}
	}
	d, _, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// forward is the substitution kernel behind SolveLower. rows must be n×n
// and len(b) == n; b is read-only.
func forward(rows [][]float64, b []float64, o Options) ([]float64, error) {
	n := len(b)
	y := make([]float64, n)

	var diag, v float64
	for i := 0; i < n; i++ {
		diag = rows[i][i]
		if negligible(diag, o.pivotTol) {
			return nil, pivotError(i, diag)
		}
		v = (b[i] - dotPrefix(rows[i], y, i)) / diag
		if o.checkFinite && !finite(v) {
			return nil, fmt.Errorf("y[%d]: %w", i, ErrNaNInf)
		}
		y[i] = v
	}

	return y, nil
}

// backward is the substitution kernel behind SolveUpper. rows must be n×n
// and len(y) == n; y is read-only.
func backward(rows [][]float64, y []float64, o Options) ([]float64, error) {
	n := len(y)
	x := make([]float64, n)

	var pivot, v float64
	for i := n - 1; i >= 0; i-- {
		pivot = rows[i][i]
		if negligible(pivot, o.pivotTol) {
			return nil, pivotError(i, pivot)
		}
		v = (y[i] - dotSuffix(rows[i], x, i+1)) / pivot
		if o.checkFinite && !finite(v) {
			return nil, fmt.Errorf("x[%d]: %w", i, ErrNaNInf)
		}
		x[i] = v
	}

	return x, nil
}
