// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"math"

	"github.com/katalvlaran/sgl1d/fault"
	"gonum.org/v1/gonum/floats"
)

// MinPoints is the smallest admissible number of grid points.
const MinPoints = 2

// ErrInvalidGrid is returned when N < 2, the bounds are not finite, or
// XMin ≥ XMax.
var ErrInvalidGrid = errors.New("grid: invalid grid")

// Grid is an immutable uniform mesh.
type Grid struct {
	xMin, xMax float64
	n          int
	delta      float64
}

// New validates the bounds and point count and returns the grid.
// Errors carry the offending field ("nPoint", "xMin", "xMax").
func New(xMin, xMax float64, n int) (Grid, error) {
	if n < MinPoints {
		return Grid{}, fault.Validation("nPoint", n, ErrInvalidGrid)
	}
	if math.IsNaN(xMin) || math.IsInf(xMin, 0) {
		return Grid{}, fault.Validation("xMin", xMin, ErrInvalidGrid)
	}
	if math.IsNaN(xMax) || math.IsInf(xMax, 0) {
		return Grid{}, fault.Validation("xMax", xMax, ErrInvalidGrid)
	}
	if xMin >= xMax {
		return Grid{}, fault.Validation("xMax", xMax, ErrInvalidGrid)
	}

	return Grid{
		xMin:  xMin,
		xMax:  xMax,
		n:     n,
		delta: (xMax - xMin) / float64(n-1),
	}, nil
}

// N returns the number of points.
func (g Grid) N() int { return g.n }

// XMin returns the left bound.
func (g Grid) XMin() float64 { return g.xMin }

// XMax returns the right bound.
func (g Grid) XMax() float64 { return g.xMax }

// Delta returns the uniform spacing.
func (g Grid) Delta() float64 { return g.delta }

// Length returns XMax − XMin.
func (g Grid) Length() float64 { return g.xMax - g.xMin }

// Points returns a fresh ascending slice x_i = XMin + i·Delta with the last
// point pinned to XMax.
func (g Grid) Points() []float64 {
	if g.n < MinPoints {
		return nil
	}
	xs := make([]float64, g.n)
	floats.Span(xs, g.xMin, g.xMax)
	xs[g.n-1] = g.xMax

	return xs
}

// At returns x_i without allocating. i must be in [0, N).
func (g Grid) At(i int) float64 {
	if i == g.n-1 {
		return g.xMax
	}

	return g.xMin + float64(i)*g.delta
}

// Contains reports whether [lo, hi] covers the whole grid.
func (g Grid) Contains(lo, hi float64) bool {
	return lo <= g.xMin && g.xMax <= hi
}
