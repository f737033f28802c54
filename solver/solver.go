// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sgl1d/fault"
	"github.com/katalvlaran/sgl1d/grid"
	"github.com/katalvlaran/sgl1d/potential"
	"github.com/katalvlaran/sgl1d/tridiag"
	"gonum.org/v1/gonum/mat"
)

// Operation tags for error prefixes.
const (
	opSolve       = "Solve"
	opHamiltonian = "Hamiltonian"
)

// Result is the raw output of a solve.
type Result struct {
	// Grid the problem was discretized on.
	Grid grid.Grid
	// X are the grid points (ascending).
	X []float64
	// Potential holds V(x_i).
	Potential []float64
	// Energies are the eigenvalues first..last in non-decreasing order.
	Energies []float64
	// Vectors is nPoint × (last−first+1); column j has unit Euclidean norm
	// and belongs to Energies[j]. Signs are unspecified.
	Vectors *mat.Dense
	// First and Last echo the 1-indexed band.
	First, Last int
}

// Hamiltonian builds the finite-difference Hamiltonian for mass on grid g
// with the potential sampled at the grid points.
//
// Errors: ErrInvalidMass, ErrDimensionMismatch, ErrPotentialNaNInf
// (fault.ErrValidation).
//
// Complexity: O(n) time and memory.
func Hamiltonian(g grid.Grid, mass float64, vs []float64) (*tridiag.SymTridiagonal, error) {
	if err := validateMass(mass); err != nil {
		return nil, fmt.Errorf("%s: %w", opHamiltonian, err)
	}
	n := g.N()
	if len(vs) != n {
		return nil, fmt.Errorf("%s: %w", opHamiltonian, fault.Validation("potential", len(vs), ErrDimensionMismatch))
	}

	delta := g.Delta()
	kinetic := 1 / (mass * delta * delta)
	diag := make([]float64, n)
	off := make([]float64, n-1)
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: %w", opHamiltonian,
				fault.Validation(fmt.Sprintf("potential[%d]", i), v, ErrPotentialNaNInf))
		}
		diag[i] = kinetic + v
	}
	for i := range off {
		off[i] = -kinetic / 2
	}

	h, err := tridiag.New(diag, off)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opHamiltonian, err)
	}

	return h, nil
}

// Solve computes eigenpairs first..last (1-indexed, inclusive) of the
// Hamiltonian on the grid [xMin, xMax] with nPoint points.
//
// Implementation:
//   - Stage 1: Validate grid, mass, band and potential (including that the
//     grid lies inside v.Domain()). No matrix exists before this passes.
//   - Stage 2: Sample V on the grid and build the tridiagonal Hamiltonian.
//   - Stage 3: tridiag.EigenRange on the 0-indexed band [first−1, last−1].
//
// Errors:
//   - grid.ErrInvalidGrid, ErrInvalidMass, ErrInvalidRange, ErrNilPotential,
//     potential.ErrOutOfDomain, ErrPotentialNaNInf (fault.ErrValidation).
//   - tridiag.ErrNonConvergence (fault.ErrNumerical); never retried.
func Solve(xMin, xMax float64, nPoint int, mass float64, v potential.Func, first, last int, opts ...Option) (*Result, error) {
	g, err := grid.New(xMin, xMax, nPoint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return SolveGrid(g, mass, v, first, last, opts...)
}

// SolveGrid is Solve on an already validated grid.
func SolveGrid(g grid.Grid, mass float64, v potential.Func, first, last int, opts ...Option) (*Result, error) {
	if err := validateMass(mass); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err := ValidateBand(first, last, g.N()); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if v == nil {
		return nil, fmt.Errorf("%s: %w", opSolve, fault.Validation("potential", nil, ErrNilPotential))
	}
	if !potential.InDomain(v, g.XMin(), g.XMax()) {
		lo, hi := v.Domain()
		return nil, fmt.Errorf("%s: %w", opSolve, fault.Validation("xMin/xMax",
			fmt.Sprintf("[%g, %g] outside [%g, %g]", g.XMin(), g.XMax(), lo, hi), potential.ErrOutOfDomain))
	}
	eopts := gatherOptions(opts)
	if err := tridiag.ValidateOptions(eopts); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	xs := g.Points()
	vs := potential.Sample(v, xs)
	h, err := Hamiltonian(g, mass, vs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	eig, err := tridiag.EigenRange(h, first-1, last-1, eopts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return &Result{
		Grid:      g,
		X:         xs,
		Potential: vs,
		Energies:  eig.Values,
		Vectors:   eig.Vectors,
		First:     first,
		Last:      last,
	}, nil
}

// ValidateBand checks 1 ≤ first ≤ last ≤ nPoint and names the offending field.
func ValidateBand(first, last, nPoint int) error {
	if first < 1 {
		return fault.Validation("first", first, ErrInvalidRange)
	}
	if last < first {
		return fault.Validation("last", last, fmt.Errorf("last < first (%d): %w", first, ErrInvalidRange))
	}
	if last > nPoint {
		return fault.Validation("last", last, fmt.Errorf("last > nPoint (%d): %w", nPoint, ErrInvalidRange))
	}

	return nil
}

func validateMass(mass float64) error {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return fault.Validation("mass", mass, ErrInvalidMass)
	}

	return nil
}
