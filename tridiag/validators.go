// SPDX-License-Identifier: MIT
// Package: tridiag
//
// Purpose:
//  - Single source of truth for the guard checks shared by the kernels.
//  - Return *fault.FieldError values so facades only add their op tag.

package tridiag

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sgl1d/fault"
)

// validateFinite rejects NaN and ±Inf entries, naming the first offender.
func validateFinite(field string, xs []float64) error {
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fault.Validation(fmt.Sprintf("%s[%d]", field, i), v, ErrNaNInf)
		}
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(t *SymTridiagonal) error {
	if t == nil {
		return fault.Validation("matrix", nil, ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n and x is non-nil.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return fault.Validation("x", nil, ErrNilMatrix)
	}
	if len(x) != n {
		return fault.Validation("x", len(x), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBand ensures 0 ≤ lo ≤ hi < n.
//
// The reported field is "lo" when lo is negative or past hi, otherwise "hi".
func ValidateBand(lo, hi, n int) error {
	if lo < 0 || lo > hi {
		return fault.Validation("lo", lo, ErrBadBand)
	}
	if hi >= n {
		return fault.Validation("hi", hi, ErrBadBand)
	}

	return nil
}

// ValidateOptions checks the numeric policy of opts.
func ValidateOptions(opts Options) error {
	if opts.Method != Bisection && opts.Method != QL {
		return fault.Validation("method", int(opts.Method), ErrBadOption)
	}
	if !(opts.Tol > 0) || math.IsInf(opts.Tol, 0) {
		return fault.Validation("tol", opts.Tol, ErrBadOption)
	}
	if opts.MaxIter < 1 {
		return fault.Validation("maxIter", opts.MaxIter, ErrBadOption)
	}

	return nil
}
