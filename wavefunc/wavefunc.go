// SPDX-License-Identifier: MIT

package wavefunc

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sgl1d/fault"
	"github.com/katalvlaran/sgl1d/grid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDegenerateVector is returned when a column has zero sum of squares.
	ErrDegenerateVector = errors.New("wavefunc: cannot normalize a zero vector")

	// ErrDimensionMismatch is returned when the row count differs from the grid size.
	ErrDimensionMismatch = errors.New("wavefunc: rows do not match grid points")

	// ErrNilMatrix is returned for a nil matrix argument.
	ErrNilMatrix = errors.New("wavefunc: nil matrix")

	// ErrNaNInf is returned when a column contains NaN or ±Inf.
	ErrNaNInf = errors.New("wavefunc: NaN or Inf in vector")
)

const (
	opNormalize   = "Normalize"
	opExpectation = "Expectation"
	opOverlap     = "Overlap"
	opNorms       = "Norms"
)

// Moments holds ⟨x⟩ and σ_x per state, in column order.
type Moments struct {
	X     []float64
	Sigma []float64
}

// Normalize scales every column of vecs by 1/sqrt(δ·Σψ²).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (fault.ErrValidation).
//   - ErrDegenerateVector, ErrNaNInf (fault.ErrNumerical) naming the column.
//
// Normalizing an already normalized set returns the same values within
// floating-point tolerance.
func Normalize(vecs mat.Matrix, g grid.Grid) (*mat.Dense, error) {
	if err := validateShape(vecs, g); err != nil {
		return nil, fmt.Errorf("%s: %w", opNormalize, err)
	}

	r, c := vecs.Dims()
	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	delta := g.Delta()
	for j := 0; j < c; j++ {
		mat.Col(col, j, vecs)
		if err := validateColumn(col, j); err != nil {
			return nil, fmt.Errorf("%s: %w", opNormalize, err)
		}
		sum := floats.Dot(col, col)
		if sum == 0 {
			return nil, fmt.Errorf("%s: %w", opNormalize, fault.Numerical("column", j, ErrDegenerateVector))
		}
		floats.Scale(1/math.Sqrt(delta*sum), col)
		out.SetCol(j, col)
	}

	return out, nil
}

// Expectation returns ⟨x⟩ and σ_x for every column of the normalized set psi.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (fault.ErrValidation);
// ErrNaNInf (fault.ErrNumerical).
func Expectation(psi mat.Matrix, g grid.Grid) (Moments, error) {
	if err := validateShape(psi, g); err != nil {
		return Moments{}, fmt.Errorf("%s: %w", opExpectation, err)
	}

	r, c := psi.Dims()
	xs := g.Points()
	x2 := make([]float64, r)
	for i, x := range xs {
		x2[i] = x * x
	}

	m := Moments{X: make([]float64, c), Sigma: make([]float64, c)}
	col := make([]float64, r)
	delta := g.Delta()
	for j := 0; j < c; j++ {
		mat.Col(col, j, psi)
		if err := validateColumn(col, j); err != nil {
			return Moments{}, fmt.Errorf("%s: %w", opExpectation, err)
		}
		for i := range col {
			col[i] *= col[i]
		}
		ex := delta * floats.Dot(xs, col)
		ex2 := delta * floats.Dot(x2, col)
		m.X[j] = ex
		// Cancellation can push the variance a few ulps below zero.
		m.Sigma[j] = math.Sqrt(math.Max(0, ex2-ex*ex))
	}

	return m, nil
}

// Overlap returns the quadrature Gram matrix S = δ·ΨᵀΨ. For a normalized
// eigenstate set S is the identity within tolerance.
func Overlap(psi mat.Matrix, g grid.Grid) (*mat.Dense, error) {
	if err := validateShape(psi, g); err != nil {
		return nil, fmt.Errorf("%s: %w", opOverlap, err)
	}
	var s mat.Dense
	s.Mul(psi.T(), psi)
	s.Scale(g.Delta(), &s)

	return &s, nil
}

// Norms returns δ·Σψ² per column.
func Norms(psi mat.Matrix, g grid.Grid) ([]float64, error) {
	if err := validateShape(psi, g); err != nil {
		return nil, fmt.Errorf("%s: %w", opNorms, err)
	}
	r, c := psi.Dims()
	out := make([]float64, c)
	col := make([]float64, r)
	for j := range out {
		mat.Col(col, j, psi)
		out[j] = g.Delta() * floats.Dot(col, col)
	}

	return out, nil
}

func validateShape(m mat.Matrix, g grid.Grid) error {
	if m == nil {
		return fault.Validation("wavefunctions", nil, ErrNilMatrix)
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return fault.Validation("wavefunctions", nil, ErrNilMatrix)
	}
	if r, _ := m.Dims(); r != g.N() {
		return fault.Validation("wavefunctions", r, fmt.Errorf("want %d rows: %w", g.N(), ErrDimensionMismatch))
	}

	return nil
}

func validateColumn(col []float64, j int) error {
	for _, v := range col {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fault.Numerical("column", j, ErrNaNInf)
		}
	}

	return nil
}
