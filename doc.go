// Package doolittle is a small dense linear-system solver built around the
// Doolittle LU factorization without pivoting.
//
// What is inside?
//
//	matrix/ — the Matrix interface, the row-major Dense type, validators and
//	          the few kernels (Mul, Sub, MatVec, Transpose, norms) that the
//	          solver and its tests need
//	lu/     — Factorize, SolveLower, SolveUpper and Solve, plus reusable
//	          Factors with Det and Inverse
//	cmd/lusolve — a command that reads an HCL system file and prints x
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 3}, {4, 7}})
//	x, err := lu.Solve(a, []float64{5, 13}) // x = [-2 3]
//
// No row exchanges are ever made. A zero (or, with lu.WithPivotTolerance,
// tiny) pivot is reported as lu.ErrSingular even when the matrix is
// invertible, e.g. [[0,1],[1,0]]. Inputs that are strictly diagonally
// dominant or symmetric positive definite always factor.
//
// Every routine is synchronous, allocates its outputs and never mutates its
// inputs, so concurrent calls on shared matrices are safe.
package doolittle
