package solver

import "errors"

var (
	// ErrInvalidRange is returned when the band violates 1 ≤ first ≤ last ≤ nPoint.
	ErrInvalidRange = errors.New("solver: invalid eigenvalue range")

	// ErrInvalidMass is returned for a non-positive or non-finite mass.
	ErrInvalidMass = errors.New("solver: mass must be finite and > 0")

	// ErrNilPotential is returned when no potential function is supplied.
	ErrNilPotential = errors.New("solver: nil potential")

	// ErrPotentialNaNInf is returned when V(x_i) is not finite on the grid.
	ErrPotentialNaNInf = errors.New("solver: potential not finite on grid")

	// ErrDimensionMismatch is returned when sampled potential and grid differ in length.
	ErrDimensionMismatch = errors.New("solver: potential length does not match grid")
)
