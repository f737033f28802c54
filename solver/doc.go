// Package solver discretizes the 1D stationary Schrödinger equation
// (ħ = 1) on a uniform grid and returns a band of eigenpairs.
//
// With the three-point stencil for −(1/2m)·d²/dx² the Hamiltonian is the
// symmetric tridiagonal matrix
//
//	H[i,i]   = 1/(m·δ²) + V(x_i)
//	H[i,i±1] = −1/(2·m·δ²)
//
// stored as two arrays (tridiag.SymTridiagonal). Wavefunctions vanish one
// step outside the grid, i.e. the domain edges act as infinite walls.
//
// Solve validates every parameter before building the matrix, then asks
// tridiag.EigenRange for the 1-indexed inclusive band [first, last]:
//
//	res, err := solver.Solve(-5, 5, 1999, 4, v, 1, 5)
//	if err != nil {
//		// errors.Is(err, fault.ErrValidation) or fault.ErrNumerical
//	}
//	res.Energies   // ascending, len 5
//	res.Vectors    // 1999×5, unit Euclidean columns (not yet normalized)
//
// Use package wavefunc to apply the quadrature normalization and derive
// expectation values. Each call is independent; concurrent calls share no
// state.
package solver
