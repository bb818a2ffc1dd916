// SPDX-License-Identifier: MIT

package lu

import (
	"math"

	"github.com/katalvlaran/doolittle/matrix"
	"gonum.org/v1/gonum/floats"
)

// rowsOf returns the row slices of d, each aliasing d's storage.
func rowsOf(d *matrix.Dense) [][]float64 {
	n := d.Rows()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i], _ = d.RawRow(i) // i is always in range
	}

	return out
}

// dotPrefix returns Σ_{k<end} row[k]·v[k] with k ascending.
func dotPrefix(row, v []float64, end int) float64 {
	if end == 0 {
		return matrix.ZeroSum
	}

	return floats.Dot(row[:end], v[:end])
}

// dotSuffix returns Σ_{k≥start} row[k]·v[k] with k ascending.
func dotSuffix(row, v []float64, start int) float64 {
	if start >= len(row) {
		return matrix.ZeroSum
	}

	return floats.Dot(row[start:], v[start:])
}

// gatherColumn copies rows[0..end)[col] into dst[0..end).
// Column access on row-major storage is strided; gathering first lets the
// dot product run on contiguous memory.
func gatherColumn(dst []float64, rows [][]float64, col, end int) []float64 {
	for k := 0; k < end; k++ {
		dst[k] = rows[k][col]
	}

	return dst[:end]
}

// negligible reports whether p cannot be used as a divisor.
func negligible(p, tol float64) bool {
	return math.IsNaN(p) || math.IsInf(p, 0) || math.Abs(p) <= tol
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
