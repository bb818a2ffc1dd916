// SPDX-License-Identifier: MIT

// Package lu factors a square matrix as A = L·U without pivoting (Doolittle
// form: L unit lower triangular, U upper triangular) and solves A·x = b by
// forward and backward substitution.
//
// What & Why:
//
//	No row or column is ever exchanged. Loop orders are fixed, so
//	identical inputs give bit-identical factors and solutions on the same
//	platform. The cost is numerical robustness. Inputs that need pivoting
//	(for example [[0,1],[1,0]]) are rejected with ErrSingular, never
//	silently turned into NaN or Inf.
//
// Surface:
//
//	Factorize(A)      → L, U           Doolittle elimination, row by row.
//	SolveLower(L, b)  → y              L·y = b, first-to-last.
//	SolveUpper(U, y)  → x              U·x = y, last-to-first.
//	Solve(A, b)       → x              Factorize → SolveLower → SolveUpper.
//	Decompose(A)      → *Factors       reusable L, U for many right-hand sides.
//	Det, Inverse, Residual             derived from the factors.
//
// Errors:
//
//	ErrShapeMismatch  non-square matrix, empty matrix, or len(b) ≠ n.
//	ErrSingular       pivot (U[i,i], or L[i,i] in SolveLower) within the
//	                  configured tolerance of zero, or not finite.
//	ErrNaNInf         non-finite input, or overflow in an intermediate value
//	                  (disable with WithoutFiniteCheck).
//	ErrNilMatrix      nil matrix argument.
//
// All errors are wrapped with the failing operation and match via errors.Is.
//
// Concurrency:
//
//	Every function is pure: inputs are read-only, outputs are freshly
//	allocated, and no state is shared between calls. Concurrent calls need
//	no locking.
//
// Complexity:
//
//	Factorize O(n³) time, O(n²) space; SolveLower/SolveUpper O(n²) time,
//	O(n) space.
package lu
