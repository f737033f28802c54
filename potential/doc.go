// Package potential turns discrete support points into a continuous
// potential V(x) for the solver.
//
// Three interpolation methods form a closed set:
//
//   - Linear     — piecewise-linear between neighbours; undefined outside
//     the support range (Domain reports it, the solver enforces it).
//   - Polynomial — one global Lagrange polynomial of degree n−1 in
//     barycentric form. Defined everywhere; oscillates for many points
//     (Runge phenomenon), which is accepted behaviour.
//   - CSpline    — natural cubic spline (V″ = 0 at both ends), C².
//
// Usage:
//
//	v, err := potential.Interpolate(
//		[]float64{-2, 0, 2},
//		[]float64{0, -10, 0},
//		potential.CSpline,
//	)
//	if err != nil {
//		// ErrInvalidMethod, ErrInsufficientPoints, ErrNotIncreasing, ...
//	}
//	y := v.At(0.5)
//
// Every returned Func is pure: At has no side effects and is safe for
// concurrent use.
package potential
