// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-shape dense storage and the small set of
// linear-algebra kernels consumed by the lu package.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone) with
//     bounds-checked access that returns errors instead of panicking.
//   - Dense, a row-major implementation whose shape is fixed at construction
//     and whose Set enforces a finite-only numeric policy by default.
//   - Canonical validators (ValidateSquare, ValidateVecLen, ...) returning
//     sentinel errors that callers match with errors.Is.
//   - Kernels used for verification and composition: Mul, Sub, Transpose,
//     MatVec, FrobeniusNorm and AllClose.
//
// Every kernel allocates a fresh result and never mutates its operands.
// *Dense operands are read in place; any other Matrix is first copied into a
// *Dense through At (see AsDense), so both kinds of input run the same loop.
package matrix
