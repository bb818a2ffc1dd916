// SPDX-License-Identifier: MIT

package lu

import "math"

const (
	// DefaultPivotTolerance is the largest |pivot| still treated as zero.
	// Zero means only an exact 0.0 pivot is rejected.
	DefaultPivotTolerance = 0.0

	// DefaultCheckFinite enables NaN/Inf scanning of inputs and of every
	// computed entry.
	DefaultCheckFinite = true
)

const panicPivotToleranceInvalid = "lu: WithPivotTolerance: tol must be finite, non-negative"

// Option configures a factorization or solve.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; build it
// with NewOptions or pass ...Option to the entry points.
type Options struct {
	pivotTol    float64
	checkFinite bool
}

// WithPivotTolerance treats any pivot with |p| ≤ tol as zero.
// Panics when tol is negative, NaN or Inf (programmer error).
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithoutFiniteCheck skips NaN/Inf scanning of inputs and intermediates.
// Non-finite pivots are still rejected with ErrSingular.
func WithoutFiniteCheck() Option {
	return func(o *Options) { o.checkFinite = false }
}

// NewOptions resolves opts over the defaults; last-writer-wins.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance reports the resolved pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// CheckFinite reports whether NaN/Inf scanning is enabled.
func (o Options) CheckFinite() bool { return o.checkFinite }

func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:    DefaultPivotTolerance,
		checkFinite: DefaultCheckFinite,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
