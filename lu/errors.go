// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/doolittle/matrix"
)

// The lu package reports the matrix package sentinels so a caller can match
// either name with errors.Is.
var (
	// ErrShapeMismatch reports inconsistent input dimensions: a non-square or
	// empty matrix, or a vector whose length differs from the matrix dimension.
	ErrShapeMismatch = matrix.ErrDimensionMismatch

	// ErrSingular reports a pivot that is zero (or within the configured
	// tolerance of zero) or not finite. No pivoting is attempted.
	ErrSingular = matrix.ErrSingular

	// ErrNaNInf reports a non-finite input entry or an intermediate overflow.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrNilMatrix reports a nil matrix argument.
	ErrNilMatrix = matrix.ErrNilMatrix
)

// Operation tags used in error wrapping.
const (
	opFactorize  = "Factorize"
	opSolveLower = "SolveLower"
	opSolveUpper = "SolveUpper"
	opSolve      = "Solve"
	opDecompose  = "Decompose"
	opFromFactor = "FromFactors"
	opDet        = "Det"
	opInverse    = "Inverse"
	opResidual   = "Residual"
)

// luErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Output shape is "lu.<Op>: <underlying>".
func luErrorf(tag string, err error) error {
	return fmt.Errorf("lu.%s: %w", tag, err)
}

// pivotError reports a negligible pivot at elimination step i.
func pivotError(i int, pivot float64) error {
	return fmt.Errorf("pivot %d = %g: %w", i, pivot, ErrSingular)
}
