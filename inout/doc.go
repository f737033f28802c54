// Package inout reads solver input and writes solver output in the file
// formats used by the sgl1d tool chain.
//
// Input: the legacy schrodinger.inp record (ReadInp, ParseInp, WriteInp).
//
//	2.0                 # mass
//	-2.0 2.0 1999       # xMin xMax nPoint
//	1 5                 # first last
//	linear              # interpolation method
//	2                   # number of support points
//	-2.0 0.0            # x y, one line per support point
//	2.0 0.0
//
// Text after '#' is a comment; blank lines are skipped. Any deviation from
// the layout is a fault.ErrConfiguration naming the line.
//
// Output (WriteSolution): four whitespace-separated tables formatted with
// %.10e plus a YAML summary, all in one directory:
//
//	potential.dat   x  V(x)
//	energies.dat    E_j
//	wavefuncs.dat   x  ψ_first(x) ... ψ_last(x)
//	expvalues.dat   ⟨x⟩_j  σ_j
//	summary.yaml    problem name, band, energies and moments
//
// ReadTable reads any of the tables back into a gonum matrix.
package inout
