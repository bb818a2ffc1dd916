// SPDX-License-Identifier: MIT

package system_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/doolittle/internal/system"
	"github.com/katalvlaran/doolittle/lu"
	"github.com/katalvlaran/doolittle/matrix"
	"github.com/stretchr/testify/require"
)

const twoSystems = `
system "small" {
  matrix = [[2, 3], [4, 7]]
  rhs    = [5, 13]
}

system "three" {
  matrix = [
    [1, 2, 4],
    [3, 8, 14],
    [2, 6, 13],
  ]
  rhs             = [3, 13, 4]
  pivot_tolerance = 1e-12
}
`

func TestLoad_DecodesEverySystem(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "systems.hcl")
	require.NoError(t, os.WriteFile(path, []byte(twoSystems), 0600))

	// --- Act ---
	systems, err := system.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, systems, 2)

	small := systems[0]
	require.Equal(t, "small", small.Name)
	require.Equal(t, [][]float64{{2, 3}, {4, 7}}, small.A.ToRows())
	require.Equal(t, []float64{5, 13}, small.B)
	require.Nil(t, small.PivotTolerance)
	require.Empty(t, small.Options())

	three := systems[1]
	require.Equal(t, 3, three.A.Rows())
	require.NotNil(t, three.PivotTolerance)
	require.Equal(t, 1e-12, *three.PivotTolerance)
	require.Len(t, three.Options(), 1)

	x, err := lu.Solve(small.A, small.B, small.Options()...)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 3}, x)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := system.Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse system file")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		target  error
		contain string
	}{
		{
			name:    "syntax error",
			src:     `system "a" {`,
			contain: "failed to parse",
		},
		{
			name:   "no system block",
			src:    ``,
			target: system.ErrNoSystem,
		},
		{
			name: "missing rhs",
			src: `
system "a" {
  matrix = [[1]]
}
`,
			contain: `The argument "rhs" is required`,
		},
		{
			name: "missing matrix",
			src: `
system "a" {
  rhs = [1]
}
`,
			contain: `The argument "matrix" is required`,
		},
		{
			name: "null matrix",
			src: `
system "a" {
  matrix = null
  rhs    = [1]
}
`,
			contain: "Missing required argument",
		},
		{
			name: "unsupported argument",
			src: `
system "a" {
  matrix = [[1]]
  rhs    = [1]
  pivot  = 2
}
`,
			contain: "failed to decode",
		},
		{
			name: "non-numeric cell",
			src: `
system "a" {
  matrix = [[1, "x"], [0, 1]]
  rhs    = [1, 1]
}
`,
			contain: "Invalid matrix",
		},
		{
			name: "scalar rhs",
			src: `
system "a" {
  matrix = [[1]]
  rhs    = 1
}
`,
			contain: "Invalid rhs",
		},
		{
			name: "ragged rows",
			src: `
system "a" {
  matrix = [[1, 2], [3]]
  rhs    = [1, 1]
}
`,
			target: matrix.ErrDimensionMismatch,
		},
		{
			name: "empty matrix",
			src: `
system "a" {
  matrix = []
  rhs    = []
}
`,
			target: matrix.ErrInvalidDimensions,
		},
		{
			name: "rhs length",
			src: `
system "a" {
  matrix = [[1, 0], [0, 1]]
  rhs    = [1]
}
`,
			target: lu.ErrShapeMismatch,
		},
		{
			name: "negative tolerance",
			src: `
system "a" {
  matrix          = [[1]]
  rhs             = [1]
  pivot_tolerance = -1
}
`,
			contain: "pivot_tolerance",
		},
		{
			name: "duplicate name",
			src: `
system "a" {
  matrix = [[1]]
  rhs    = [1]
}

system "a" {
  matrix = [[2]]
  rhs    = [2]
}
`,
			contain: "Duplicate system block",
		},
		{
			name: "variable reference",
			src: `
system "a" {
  matrix = var.m
  rhs    = [1]
}
`,
			contain: "Variables not allowed",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := system.Parse(context.Background(), []byte(tc.src), "test.hcl")
			require.Error(t, err)
			if tc.target != nil {
				require.ErrorIs(t, err, tc.target)
			}
			if tc.contain != "" {
				require.Contains(t, err.Error(), tc.contain)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	systems, err := system.Parse(context.Background(), []byte(twoSystems), "two.hcl")
	require.NoError(t, err)

	s, err := system.Select(systems, "three")
	require.NoError(t, err)
	require.Equal(t, "three", s.Name)

	_, err = system.Select(systems, "")
	require.ErrorIs(t, err, system.ErrUnknownSystem)

	_, err = system.Select(systems, "four")
	require.ErrorIs(t, err, system.ErrUnknownSystem)

	s, err = system.Select(systems[:1], "")
	require.NoError(t, err)
	require.Equal(t, "small", s.Name)
}
