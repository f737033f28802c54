// Package sgl1d solves the one-dimensional stationary Schrödinger equation
// (ħ = 1) for a particle of mass m in a potential V(x) given only by a
// handful of support points.
//
// Pipeline:
//
//	support points ──potential──▶ V(x) ──solver──▶ Hψ = Eψ on a uniform grid
//	             ──wavefunc──▶ normalized ψ_n, ⟨x⟩_n, σ_n
//
// Packages:
//
//	grid/      — uniform grid x_i = xMin + i·δ
//	potential/ — linear, polynomial (Lagrange) and natural cubic spline V(x)
//	tridiag/   — symmetric tridiagonal matrix, Sturm bisection + inverse
//	             iteration and a LAPACK QL backend
//	solver/    — finite-difference Hamiltonian and band eigenpairs
//	wavefunc/  — quadrature normalization, overlaps, ⟨x⟩ and σ_x
//	fault/     — error taxonomy shared by every package
//	analytic/  — closed-form reference spectra
//	config/    — problem record, validation, viper-backed settings
//	inout/     — schrodinger.inp reader, .dat tables, summary.yaml
//	pipeline/  — end-to-end and concurrent batch solving with logrus logging
//	cmd/sgl1d  — the command-line tool
//
// Quick start:
//
//	v, _ := potential.Interpolate([]float64{0, 4}, []float64{0, 0}, potential.Linear)
//	res, _ := solver.Solve(0, 4, 2000, 1, v, 1, 5)
//	psi, _ := wavefunc.Normalize(res.Vectors, res.Grid)
//	m, _ := wavefunc.Expectation(psi, res.Grid)
//
// Ready-to-run inputs live under examples/.
package sgl1d
