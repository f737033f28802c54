// SPDX-License-Identifier: MIT

package potential

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sgl1d/fault"
	"gonum.org/v1/gonum/interp"
)

// Func is a potential V(x) built from support points.
type Func interface {
	// At evaluates V(x). Outside Domain the result is method-defined and
	// callers must not rely on it.
	At(x float64) float64

	// Domain returns the closed interval on which At is defined.
	// Methods defined on the whole real line return (-Inf, +Inf).
	Domain() (lo, hi float64)

	// Method reports which scheme produced the function.
	Method() Method
}

// Interpolate validates the support points and builds V(x) with method m.
// xs must be strictly increasing and finite; ys must be finite and have the
// same length. The inputs are copied.
//
// Errors (all fault.ErrValidation):
//   - ErrInvalidMethod      — m is not Linear, Polynomial or CSpline.
//   - ErrMismatchedLength   — len(xs) != len(ys).
//   - ErrInsufficientPoints — fewer than m.MinPoints() points.
//   - ErrNaNInf             — a non-finite support value.
//   - ErrNotIncreasing      — xs[i] ≤ xs[i-1] for some i.
func Interpolate(xs, ys []float64, m Method) (Func, error) {
	if !m.Valid() {
		return nil, fault.Validation("interpol_method", uint8(m), ErrInvalidMethod)
	}
	if err := validateSupport(xs, ys, m.MinPoints()); err != nil {
		return nil, err
	}

	// Copy so later mutation of the caller's slices cannot leak in.
	x := append([]float64(nil), xs...)
	y := append([]float64(nil), ys...)

	switch m {
	case Linear:
		return newLinear(x, y)
	case Polynomial:
		return newLagrange(x, y), nil
	default:
		return newSpline(x, y)
	}
}

// Sample evaluates f at every x and returns the values in a fresh slice.
func Sample(f Func, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f.At(x)
	}

	return out
}

// InDomain reports whether [lo, hi] lies inside f.Domain().
func InDomain(f Func, lo, hi float64) bool {
	dlo, dhi := f.Domain()

	return dlo <= lo && hi <= dhi
}

func validateSupport(xs, ys []float64, minPoints int) error {
	if len(xs) != len(ys) {
		return fault.Validation("y_decl", len(ys), ErrMismatchedLength)
	}
	if len(xs) < minPoints {
		return fault.Validation("x_decl", len(xs),
			fmt.Errorf("need at least %d: %w", minPoints, ErrInsufficientPoints))
	}
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			return fault.Validation(fmt.Sprintf("x_decl[%d]", i), xs[i], ErrNaNInf)
		}
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fault.Validation(fmt.Sprintf("y_decl[%d]", i), ys[i], ErrNaNInf)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return fault.Validation(fmt.Sprintf("x_decl[%d]", i), xs[i], ErrNotIncreasing)
		}
	}

	return nil
}

// linear wraps gonum's piecewise-linear interpolant.
type linear struct {
	pl     *interp.PiecewiseLinear
	lo, hi float64
}

func newLinear(xs, ys []float64) (*linear, error) {
	pl := &interp.PiecewiseLinear{}
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fault.Validation("x_decl", len(xs), fmt.Errorf("%w: %v", ErrInsufficientPoints, err))
	}

	return &linear{pl: pl, lo: xs[0], hi: xs[len(xs)-1]}, nil
}

func (l *linear) At(x float64) float64       { return l.pl.Predict(x) }
func (l *linear) Domain() (float64, float64) { return l.lo, l.hi }
func (l *linear) Method() Method             { return Linear }

// spline wraps gonum's natural cubic spline.
type spline struct {
	nc *interp.NaturalCubic
}

func newSpline(xs, ys []float64) (*spline, error) {
	nc := &interp.NaturalCubic{}
	if err := nc.Fit(xs, ys); err != nil {
		return nil, fault.Validation("x_decl", len(xs), fmt.Errorf("%w: %v", ErrInsufficientPoints, err))
	}

	return &spline{nc: nc}, nil
}

func (s *spline) At(x float64) float64 { return s.nc.Predict(x) }

// Domain is the whole line: outside the support the spline holds its end values.
func (s *spline) Domain() (float64, float64) { return math.Inf(-1), math.Inf(1) }
func (s *spline) Method() Method             { return CSpline }
