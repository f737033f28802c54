// SPDX-License-Identifier: MIT
// Package tridiag: sentinel error set.
// All kernels return these sentinels wrapped in a *fault.FieldError (kind
// validation or numerical) and prefixed with the operation tag; tests match
// them via errors.Is.

package tridiag

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *SymTridiagonal was used.
	ErrNilMatrix = errors.New("tridiag: nil matrix")

	// ErrEmpty indicates a zero-length main diagonal.
	ErrEmpty = errors.New("tridiag: empty matrix")

	// ErrDimensionMismatch indicates len(off) != len(diag)-1 or a vector of the
	// wrong length.
	ErrDimensionMismatch = errors.New("tridiag: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("tridiag: NaN or Inf encountered")

	// ErrOutOfRange indicates an index outside [0, n).
	ErrOutOfRange = errors.New("tridiag: index out of range")

	// ErrBadBand indicates an eigen band with lo < 0, hi ≥ n or lo > hi.
	ErrBadBand = errors.New("tridiag: invalid eigen band")

	// ErrBadOption indicates a non-positive tolerance or iteration cap, or an
	// unknown Method.
	ErrBadOption = errors.New("tridiag: invalid option")

	// ErrNonConvergence indicates that bisection, inverse iteration or QL did
	// not converge. It is fatal for the call and never retried internally.
	ErrNonConvergence = errors.New("tridiag: eigen decomposition did not converge")
)

// Operation tags for uniform error prefixes.
const (
	opNew        = "New"
	opMulVec     = "MulVec"
	opEigenRange = "EigenRange"
	opValues     = "Values"
)

// tridiagErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call with err != nil.
func tridiagErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
