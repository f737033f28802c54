// Package analytic provides closed-form reference spectra and potentials
// for the three textbook systems the solver is checked against:
//
//   - infinite square well of width L:   E_n = n²π²/(2mL²), n = 1, 2, ...
//   - harmonic oscillator V = ½kx²:      E_n = ω(n+½), ω = sqrt(k/m), n = 0, 1, ...
//   - finite square well of depth V0 and width a, centred at 0: bound
//     energies from the even/odd matching conditions
//     z·tan z = sqrt(z0²−z²) and −z·cot z = sqrt(z0²−z²),
//     z0 = (a/2)·sqrt(2m·V0), E = 2z²/(m·a²) − V0.
//
// Levels are addressed with the solver's 1-indexed band (first..last), so
// level 1 is always the ground state regardless of the physics convention.
//
// The Support helpers tabulate a reference potential as interpolation
// support points so that bundled examples and tests can feed it through
// the ordinary input path.
package analytic
