// SPDX-License-Identifier: MIT

package analytic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sgl1d/fault"
)

var (
	// ErrInvalidParameter is returned for non-positive mass, width, depth or
	// stiffness, and for malformed level ranges.
	ErrInvalidParameter = errors.New("analytic: invalid parameter")

	// ErrNoBoundState is returned when a finite well holds fewer levels
	// than requested.
	ErrNoBoundState = errors.New("analytic: level is not bound")
)

// InfiniteWell returns E_first..E_last for a box of the given width.
func InfiniteWell(mass, width float64, first, last int) ([]float64, error) {
	if err := positive("mass", mass); err != nil {
		return nil, err
	}
	if err := positive("width", width); err != nil {
		return nil, err
	}
	if err := levels(first, last); err != nil {
		return nil, err
	}

	out := make([]float64, 0, last-first+1)
	for n := first; n <= last; n++ {
		fn := float64(n)
		out = append(out, fn*fn*math.Pi*math.Pi/(2*mass*width*width))
	}

	return out, nil
}

// Harmonic returns E_first..E_last for V = ½·k·x².
func Harmonic(mass, k float64, first, last int) ([]float64, error) {
	if err := positive("mass", mass); err != nil {
		return nil, err
	}
	if err := positive("k", k); err != nil {
		return nil, err
	}
	if err := levels(first, last); err != nil {
		return nil, err
	}

	omega := math.Sqrt(k / mass)
	out := make([]float64, 0, last-first+1)
	for n := first; n <= last; n++ {
		out = append(out, omega*(float64(n-1)+0.5))
	}

	return out, nil
}

// FiniteWellBound returns the number of bound states of a well of the
// given depth and width.
func FiniteWellBound(mass, depth, width float64) int {
	z0 := 0.5 * width * math.Sqrt(2*mass*depth)

	return int(math.Ceil(z0 / (math.Pi / 2)))
}

// FiniteWell returns E_first..E_last (all in (−depth, 0)) for a square well
// of the given depth and width centred at the origin.
//
// Level n (0-based) has exactly one root z in (nπ/2, min((n+1)π/2, z0)).
// The matching conditions are multiplied through by cos z (even) or sin z
// (odd) so no pole lies inside the bracket.
func FiniteWell(mass, depth, width float64, first, last int) ([]float64, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{{"mass", mass}, {"depth", depth}, {"width", width}} {
		if err := positive(p.name, p.v); err != nil {
			return nil, err
		}
	}
	if err := levels(first, last); err != nil {
		return nil, err
	}
	if bound := FiniteWellBound(mass, depth, width); last > bound {
		return nil, fault.Validation("last", last, fmt.Errorf("well holds %d levels: %w", bound, ErrNoBoundState))
	}

	z0 := 0.5 * width * math.Sqrt(2*mass*depth)
	out := make([]float64, 0, last-first+1)
	for lvl := first; lvl <= last; lvl++ {
		n := lvl - 1
		lo := float64(n) * math.Pi / 2
		hi := math.Min(float64(n+1)*math.Pi/2, z0)
		f := func(z float64) float64 {
			r := math.Sqrt(math.Max(0, z0*z0-z*z))
			if n%2 == 0 {
				return z*math.Sin(z) - r*math.Cos(z)
			}

			return -z*math.Cos(z) - r*math.Sin(z)
		}
		z := bisect(f, lo, hi)
		out = append(out, 2*z*z/(mass*width*width)-depth)
	}

	return out, nil
}

// bisect finds the sign change of f on [lo, hi].
func bisect(f func(float64) float64, lo, hi float64) float64 {
	negLo := f(lo) < 0
	for i := 0; i < 200 && hi-lo > 1e-15*math.Max(1, hi); i++ {
		mid := 0.5 * (lo + hi)
		if (f(mid) < 0) == negLo {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0.5 * (lo + hi)
}

// Support tabulates f at n equally spaced points on [xMin, xMax].
func Support(f func(float64) float64, xMin, xMax float64, n int) (xs, ys []float64, err error) {
	if n < 2 || !(xMin < xMax) {
		return nil, nil, fault.Validation("n", n, ErrInvalidParameter)
	}
	xs = floats.Span(make([]float64, n), xMin, xMax)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = f(x)
	}

	return xs, ys, nil
}

// HarmonicPotential returns V(x) = ½·k·x².
func HarmonicPotential(k float64) func(float64) float64 {
	return func(x float64) float64 { return 0.5 * k * x * x }
}

// FiniteWellPotential returns −depth on |x| < width/2 and 0 elsewhere.
func FiniteWellPotential(depth, width float64) func(float64) float64 {
	return func(x float64) float64 {
		if math.Abs(x) < width/2 {
			return -depth
		}

		return 0
	}
}

// FiniteWellSupport returns the six support points of a finite well for
// linear interpolation on [xMin, xMax]. The walls have width edge.
func FiniteWellSupport(depth, width, edge, xMin, xMax float64) (xs, ys []float64, err error) {
	h := width / 2
	if !(edge > 0) || !(xMin < -h-edge) || !(xMax > h+edge) {
		return nil, nil, fault.Validation("edge", edge, ErrInvalidParameter)
	}

	return []float64{xMin, -h - edge, -h, h, h + edge, xMax},
		[]float64{0, 0, -depth, -depth, 0, 0}, nil
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fault.Validation(name, v, ErrInvalidParameter)
	}

	return nil
}

func levels(first, last int) error {
	if first < 1 {
		return fault.Validation("first", first, ErrInvalidParameter)
	}
	if last < first {
		return fault.Validation("last", last, ErrInvalidParameter)
	}

	return nil
}
