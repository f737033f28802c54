package tridiag

import (
	"math"

	"github.com/katalvlaran/sgl1d/fault"
)

const (
	// safeMin is the smallest normalized float64; it bounds Sturm pivots away from zero.
	safeMin = 0x1p-1022

	// maxBisect caps bisection steps. Halving a Gershgorin interval down to
	// eps·‖T‖ takes about 55 steps; the cap only trips on NaN poisoning.
	maxBisect = 256
)

// eps is the float64 unit roundoff (2⁻⁵²).
var eps = math.Nextafter(1, 2) - 1

// sturm holds the precomputed data for Sturm-sequence counts.
type sturm struct {
	diag   []float64
	off2   []float64 // squared off-diagonal
	pivmin float64
}

func newSturm(t *SymTridiagonal) sturm {
	off2 := make([]float64, len(t.off))
	maxE2 := 1.0
	for i, e := range t.off {
		off2[i] = e * e
		maxE2 = math.Max(maxE2, off2[i])
	}

	return sturm{diag: t.diag, off2: off2, pivmin: safeMin * maxE2}
}

// count returns the number of eigenvalues strictly less than x, read off as
// the number of negative pivots of the LDLᵀ factorization of T − xI.
func (s sturm) count(x float64) int {
	q := s.diag[0] - x
	if math.Abs(q) < s.pivmin {
		q = -s.pivmin
	}
	c := 0
	if q < 0 {
		c++
	}
	for i := 1; i < len(s.diag); i++ {
		q = s.diag[i] - x - s.off2[i-1]/q
		if math.Abs(q) < s.pivmin {
			q = -s.pivmin
		}
		if q < 0 {
			c++
		}
	}

	return c
}

// Count returns the number of eigenvalues of t strictly less than x.
// Complexity: O(n).
func (t *SymTridiagonal) Count(x float64) int {
	return newSturm(t).count(x)
}

// bisect returns eigenvalues lo..hi (0-indexed, inclusive) in ascending order.
//
// Implementation:
//   - Stage 1: Widen the Gershgorin interval so that count(gl) = 0 and
//     count(gu) = n hold strictly.
//   - Stage 2: For each index k keep the invariant count(a) ≤ k < count(b)
//     and halve [a, b) until its width is below eps·‖T‖ plus a relative
//     term. The left end of index k seeds the search for k+1.
//
// Complexity: O(n·k·log(‖T‖/eps)).
func bisect(t *SymTridiagonal, lo, hi int) ([]float64, error) {
	s := newSturm(t)
	n := len(t.diag)
	tnorm := math.Max(t.Norm1(), safeMin)
	gl, gu := t.Gershgorin()
	fudge := 2.1 * (eps*tnorm*float64(n) + s.pivmin)
	gl -= fudge
	gu += fudge
	atol := eps * tnorm

	values := make([]float64, 0, hi-lo+1)
	left := gl
	for k := lo; k <= hi; k++ {
		a, b := left, gu
		converged := false
		for iter := 0; iter < maxBisect; iter++ {
			width := b - a
			if width <= atol+2*eps*math.Max(math.Abs(a), math.Abs(b)) {
				converged = true
				break
			}
			mid := a + width/2
			if s.count(mid) > k {
				b = mid
			} else {
				a = mid
			}
		}
		if !converged {
			return nil, fault.Numerical("eigenvalue", k, ErrNonConvergence)
		}
		values = append(values, a+(b-a)/2)
		left = a
	}

	// Midpoints of adjacent, nearly equal eigenvalues may cross by one ulp.
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			values[i] = values[i-1]
		}
	}

	return values, nil
}
