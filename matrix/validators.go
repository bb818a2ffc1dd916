// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finiteness/triangularity checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and tests can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
	"runtime"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected, as is any
// implementation whose Rows or Cols dereferences a nil value.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if !answersShape(m) {
		return validatorErrorf("ValidateNotNil: Rows/Cols panicked", ErrNilMatrix)
	}

	return nil
}

// answersShape reports whether m.Rows and m.Cols return normally. A wrapper
// around a nil Matrix fails here with a runtime error; any other panic is
// re-raised.
func answersShape(m Matrix) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isRuntime := r.(runtime.Error); !isRuntime {
				panic(r)
			}
			ok = false
		}
	}()
	_, _ = m.Rows(), m.Cols()

	return true
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols) and non-empty.
// A 0×0 implementation of Matrix is reported as ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}
	if m.Rows() == 0 {
		return validatorErrorf("ValidateSquare: empty", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector has length zero and therefore mismatches any n ≥ 1.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len=%d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m in i→j order and reports the first NaN/±Inf entry.
// Complexity: O(r*c). Space: O(1).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteVec reports the first NaN/±Inf entry of x.
// Complexity: O(n). Space: O(1).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateLowerTriangular checks that every entry strictly above the diagonal
// is within eps of zero. With unit=true it also requires |L[i,i]-1| ≤ eps.
// eps comes from WithEpsilon (default 0: exact comparison).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrDimensionMismatch
// tagged with the offending cell on a structural violation.
// Complexity: O(n^2). Space: O(1).
func ValidateLowerTriangular(m Matrix, unit bool, opts ...Option) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateLowerTriangular", err)
	}
	eps := gatherOptions(opts...).eps
	n := m.Rows()

	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		if unit {
			if v, err = m.At(i, i); err != nil {
				return validatorErrorf("ValidateLowerTriangular", err)
			}
			if !(math.Abs(v-1) <= eps) {
				return validatorErrorf(fmt.Sprintf("ValidateLowerTriangular: diag(%d)=%g", i, v), ErrDimensionMismatch)
			}
		}
		for j = i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateLowerTriangular", err)
			}
			if !(math.Abs(v) <= eps) {
				return validatorErrorf(fmt.Sprintf("ValidateLowerTriangular(%d,%d)=%g", i, j, v), ErrDimensionMismatch)
			}
		}
	}

	return nil
}

// ValidateUpperTriangular checks that every entry strictly below the diagonal
// is within eps of zero. eps comes from WithEpsilon (default 0).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square or violation).
// Complexity: O(n^2). Space: O(1).
func ValidateUpperTriangular(m Matrix, opts ...Option) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateUpperTriangular", err)
	}
	eps := gatherOptions(opts...).eps
	n := m.Rows()

	var i, j int
	var v float64
	var err error
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateUpperTriangular", err)
			}
			if !(math.Abs(v) <= eps) {
				return validatorErrorf(fmt.Sprintf("ValidateUpperTriangular(%d,%d)=%g", i, j, v), ErrDimensionMismatch)
			}
		}
	}

	return nil
}
