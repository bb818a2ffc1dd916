// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/doolittle/matrix"
	"gonum.org/v1/gonum/floats"
)

// Solve returns x with A·x = b, chaining Factorize → SolveLower → SolveUpper.
//
// The length of b is checked before factorizing, so a shape error never
// costs O(n^3). Otherwise the first failing stage's error is returned,
// wrapped with both the stage and "Solve".
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, luErrorf(opSolve, err)
	}

	l, u, err := Factorize(a, opts...)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	y, err := SolveLower(l, b, opts...)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	x, err := SolveUpper(u, y, opts...)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}

	return x, nil
}

// Factors is an immutable LU factorization that can be reused for many
// right-hand sides. Safe for concurrent use: methods only read l and u.
type Factors struct {
	l, u *matrix.Dense
	opts Options
}

// Decompose factorizes a once and keeps L and U for repeated solves.
// Options are remembered and applied to every later Solve.
//
// Errors: as Factorize.
func Decompose(a matrix.Matrix, opts ...Option) (*Factors, error) {
	o := gatherOptions(opts...)

	ad, err := prepareSquare(a, o)
	if err != nil {
		return nil, luErrorf(opDecompose, err)
	}
	l, u, err := factorizeDense(ad, o)
	if err != nil {
		return nil, luErrorf(opDecompose, err)
	}

	return &Factors{l: l, u: u, opts: o}, nil
}

// FromFactors wraps caller-supplied factors after checking that L is unit
// lower triangular, U is upper triangular with usable pivots, and both have
// the same size. Both inputs are copied.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (shape or triangularity), ErrSingular.
func FromFactors(l, u matrix.Matrix, opts ...Option) (*Factors, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateLowerTriangular(l, true); err != nil {
		return nil, luErrorf(opFromFactor, err)
	}
	if err := matrix.ValidateUpperTriangular(u); err != nil {
		return nil, luErrorf(opFromFactor, err)
	}
	if l.Rows() != u.Rows() {
		return nil, luErrorf(opFromFactor, fmt.Errorf("L is %d×%d, U is %d×%d: %w",
			l.Rows(), l.Cols(), u.Rows(), u.Cols(), ErrShapeMismatch))
	}

	ld, copied, err := matrix.AsDense(l)
	if err != nil {
		return nil, luErrorf(opFromFactor, err)
	}
	if !copied {
		ld = ld.Clone().(*matrix.Dense)
	}
	ud, copied, err := matrix.AsDense(u)
	if err != nil {
		return nil, luErrorf(opFromFactor, err)
	}
	if !copied {
		ud = ud.Clone().(*matrix.Dense)
	}

	uRows := rowsOf(ud)
	for i := range uRows {
		if negligible(uRows[i][i], o.pivotTol) {
			return nil, luErrorf(opFromFactor, pivotError(i, uRows[i][i]))
		}
	}

	return &Factors{l: ld, u: ud, opts: o}, nil
}

// Size returns n, the dimension of the factored matrix.
func (f *Factors) Size() int { return f.l.Rows() }

// L returns a copy of the unit lower triangular factor.
func (f *Factors) L() matrix.Matrix { return f.l.Clone() }

// U returns a copy of the upper triangular factor.
func (f *Factors) U() matrix.Matrix { return f.u.Clone() }

// Pivots returns a copy of diag(U) in step order.
func (f *Factors) Pivots() []float64 {
	out := make([]float64, f.Size())
	for i, row := range rowsOf(f.u) {
		out[i] = row[i]
	}

	return out
}

// Solve returns x with L·U·x = b.
// Errors: ErrShapeMismatch (len(b) ≠ n), ErrNaNInf, ErrSingular.
// Complexity: Time O(n^2), Space O(n).
func (f *Factors) Solve(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.Size()); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	if f.opts.checkFinite {
		if err := matrix.ValidateFiniteVec(b); err != nil {
			return nil, luErrorf(opSolve, err)
		}
	}

	y, err := forward(rowsOf(f.l), b, f.opts)
	if err != nil {
		return nil, luErrorf(opSolve, luErrorf(opSolveLower, err))
	}
	x, err := backward(rowsOf(f.u), y, f.opts)
	if err != nil {
		return nil, luErrorf(opSolve, luErrorf(opSolveUpper, err))
	}

	return x, nil
}

// Det returns det(A) = Π U[i,i] (det(L) = 1).
func (f *Factors) Det() float64 {
	return floats.Prod(f.Pivots())
}

// Inverse returns A^{-1}, solving L·U·x = e_j for every column j.
// Errors: ErrSingular, ErrNaNInf (overflow).
// Complexity: Time O(n^3), Space O(n^2).
func (f *Factors) Inverse() (matrix.Matrix, error) {
	n := f.Size()
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, luErrorf(opInverse, err)
	}
	invRows := rowsOf(inv)
	lRows, uRows := rowsOf(f.l), rowsOf(f.u)

	e := make([]float64, n)
	var x, y []float64
	for j := 0; j < n; j++ {
		e[j] = 1.0
		if y, err = forward(lRows, e, f.opts); err != nil {
			return nil, luErrorf(opInverse, err)
		}
		if x, err = backward(uRows, y, f.opts); err != nil {
			return nil, luErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			invRows[i][j] = x[i]
		}
		e[j] = 0.0
	}

	return inv, nil
}

// Det returns det(A) via a no-pivot factorization.
// A matrix that needs pivoting returns ErrSingular even when its true
// determinant is nonzero (e.g. [[0,1],[1,0]]).
func Det(a matrix.Matrix, opts ...Option) (float64, error) {
	f, err := Decompose(a, opts...)
	if err != nil {
		return 0, luErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Inverse returns A^{-1} via a no-pivot factorization.
// Errors: as Decompose, plus ErrNaNInf on overflow.
func Inverse(a matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	f, err := Decompose(a, opts...)
	if err != nil {
		return nil, luErrorf(opInverse, err)
	}

	return f.Inverse()
}

// Residual returns ‖A·x − b‖₂.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, luErrorf(opResidual, err)
	}
	if err = matrix.ValidateVecLen(b, len(ax)); err != nil {
		return 0, luErrorf(opResidual, err)
	}

	return floats.Distance(ax, b, 2), nil
}
