package tridiag

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/sgl1d/fault"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// clusterTol scales ‖T‖ into the gap below which neighbouring eigenvalues are
// treated as one cluster and their vectors re-orthogonalized (as in LAPACK dstein).
const clusterTol = 1e-3

// shiftedLU is the LU factorization with partial pivoting of T − σI.
// After factorization U has diagonal d, first superdiagonal du and second
// superdiagonal du2; l holds the multipliers and swap[i] records a row
// interchange between rows i and i+1.
type shiftedLU struct {
	l, d, du, du2 []float64
	swap          []bool
}

// factorShifted computes the pivoted LU of T − σI. Pivots smaller than tiny
// in magnitude are replaced by ±tiny so the solve never divides by zero,
// which is exactly the near-singular system inverse iteration wants.
func factorShifted(t *SymTridiagonal, sigma, tiny float64) shiftedLU {
	n := len(t.diag)
	f := shiftedLU{
		l:    make([]float64, max(n-1, 0)),
		d:    make([]float64, n),
		du:   make([]float64, max(n-1, 0)),
		du2:  make([]float64, max(n-2, 0)),
		swap: make([]bool, max(n-1, 0)),
	}
	for i := 0; i < n; i++ {
		f.d[i] = t.diag[i] - sigma
	}
	copy(f.l, t.off)
	copy(f.du, t.off)

	for i := 0; i < n-1; i++ {
		if math.Abs(f.d[i]) >= math.Abs(f.l[i]) {
			// No interchange: eliminate l[i] with pivot d[i].
			if f.d[i] != 0 {
				fact := f.l[i] / f.d[i]
				f.l[i] = fact
				f.d[i+1] -= fact * f.du[i]
			}
			continue
		}
		// Interchange rows i and i+1.
		fact := f.d[i] / f.l[i]
		f.d[i] = f.l[i]
		f.l[i] = fact
		tmp := f.du[i]
		f.du[i] = f.d[i+1]
		f.d[i+1] = tmp - fact*f.d[i+1]
		if i < n-2 {
			f.du2[i] = f.du[i+1]
			f.du[i+1] = -fact * f.du[i+1]
		}
		f.swap[i] = true
	}

	for i := range f.d {
		if math.Abs(f.d[i]) < tiny {
			f.d[i] = math.Copysign(tiny, f.d[i])
		}
	}

	return f
}

// solve overwrites b with (T − σI)⁻¹ b.
func (f shiftedLU) solve(b []float64) {
	n := len(f.d)
	// Forward: apply row interchanges and L⁻¹.
	for i := 0; i < n-1; i++ {
		if f.swap[i] {
			b[i], b[i+1] = b[i+1], b[i]-f.l[i]*b[i+1]
		} else {
			b[i+1] -= f.l[i] * b[i]
		}
	}
	// Backward: U x = b.
	b[n-1] /= f.d[n-1]
	if n > 1 {
		b[n-2] = (b[n-2] - f.du[n-2]*b[n-1]) / f.d[n-2]
	}
	for i := n - 3; i >= 0; i-- {
		b[i] = (b[i] - f.du[i]*b[i+1] - f.du2[i]*b[i+2]) / f.d[i]
	}
}

// inverseIteration computes unit eigenvectors for the ascending eigenvalues
// `values`, which are eigenvalues first..first+len(values)-1 of t.
//
// Implementation:
//   - Stage 1: Split the values into clusters whose neighbours lie within
//     clusterTol·‖T‖; shifts inside a cluster are pushed apart by 10·eps·‖T‖
//     so each factorization is distinct.
//   - Stage 2: For every value: factor T − σI once, start from a seeded
//     random vector, then repeat solve → orthogonalize against earlier
//     cluster members (modified Gram–Schmidt) → normalize until the residual
//     ‖Tv − λv‖₂ drops below tol·‖T‖ or maxIter solves have been spent.
//
// Errors: ErrNonConvergence (fault.ErrNumerical) naming the eigen index.
//
// Complexity: O(n·k·maxIter + n·c²) for k values and cluster size c.
func inverseIteration(t *SymTridiagonal, values []float64, first int, opts Options) (*mat.Dense, error) {
	n, k := len(t.diag), len(values)
	vecs := mat.NewDense(n, k, nil)
	if n == 1 {
		vecs.Set(0, 0, 1)

		return vecs, nil
	}

	tnorm := math.Max(t.Norm1(), safeMin)
	ortol := clusterTol * tnorm
	pertol := 10 * eps * tnorm
	tiny := eps * tnorm
	resTol := opts.Tol * tnorm

	var (
		x         = make([]float64, n)
		tx        = make([]float64, n)
		col       = make([]float64, n)
		cluster   = 0 // first column of the current cluster
		prevShift float64
	)
	for j := 0; j < k; j++ {
		shift := values[j]
		if j > 0 {
			if values[j]-values[j-1] > ortol {
				cluster = j
			} else if shift-prevShift < pertol {
				shift = prevShift + pertol
			}
		}
		prevShift = shift

		lu := factorShifted(t, shift, tiny)
		rng := rand.New(rand.NewPCG(opts.Seed, uint64(first+j)))
		for i := range x {
			x[i] = 2*rng.Float64() - 1
		}

		converged := false
		for iter := 0; iter < opts.MaxIter; iter++ {
			lu.solve(x)
			for c := cluster; c < j; c++ {
				mat.Col(col, c, vecs)
				floats.AddScaled(x, -floats.Dot(x, col), col)
			}
			norm := floats.Norm(x, 2)
			if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
				break
			}
			floats.Scale(1/norm, x)

			t.mulVec(tx, x)
			floats.AddScaled(tx, -values[j], x)
			if floats.Norm(tx, 2) <= resTol {
				converged = true
				break
			}
		}
		if !converged {
			return nil, fault.Numerical("eigenvector", first+j, ErrNonConvergence)
		}
		vecs.SetCol(j, x)
	}

	return vecs, nil
}
