// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for approximate comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts AllClose and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is the relative tolerance used by AllClose.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute tolerance used by AllClose.
	DefaultAbsTol = 1e-12
)

const (
	panicRelTol = "matrix: WithRelTol(%v): tolerance must be finite and >= 0"
	panicAbsTol = "matrix: WithAbsTol(%v): tolerance must be finite and >= 0"
)

// Options holds comparison settings. Fields are unexported; use Option values.
type Options struct {
	relTol float64 // |a-b| <= absTol + relTol*|b|
	absTol float64
}

// Option mutates Options.
type Option func(*Options)

// defaultOptions returns Options populated from the documented defaults.
func defaultOptions() Options {
	return Options{
		relTol: DefaultRelTol,
		absTol: DefaultAbsTol,
	}
}

// WithRelTol sets the relative tolerance of AllClose.
// Panics on NaN, ±Inf or negative values.
func WithRelTol(tol float64) Option {
	if !validTol(tol) {
		panic(fmt.Sprintf(panicRelTol, tol))
	}

	return func(o *Options) { o.relTol = tol }
}

// WithAbsTol sets the absolute tolerance of AllClose.
// Panics on NaN, ±Inf or negative values.
func WithAbsTol(tol float64) Option {
	if !validTol(tol) {
		panic(fmt.Sprintf(panicAbsTol, tol))
	}

	return func(o *Options) { o.absTol = tol }
}

// validTol reports whether tol is finite and non-negative.
func validTol(tol float64) bool {
	return !math.IsNaN(tol) && !math.IsInf(tol, 0) && tol >= 0
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
