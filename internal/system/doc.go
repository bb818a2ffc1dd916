// SPDX-License-Identifier: MIT

// Package system decodes linear-system description files.
//
// A file holds one or more labelled blocks written in HCL:
//
//	system "example" {
//	  matrix          = [[2, 3], [4, 7]]
//	  rhs             = [5, 13]
//	  pivot_tolerance = 0 # optional
//	}
//
// Numbers are converted through go-cty, so a non-numeric cell is reported
// with the source range of the offending expression. Shape problems
// (ragged rows, rhs length) are reported with the matrix package's
// sentinels so callers can match them with errors.Is.
package system
