// SPDX-License-Identifier: MIT

package tridiag

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sgl1d/fault"
	"gonum.org/v1/gonum/mat"
)

// SymTridiagonal is an immutable real symmetric tridiagonal matrix.
//
//	| d0 e0             |
//	| e0 d1 e1          |
//	|    e1 d2 ...      |
//	|          ...  en-2|
//	|          en-2 dn-1|
type SymTridiagonal struct {
	diag []float64 // main diagonal, length n
	off  []float64 // sub/super diagonal, length n-1
}

// New copies diag and off into a SymTridiagonal.
//
// Errors (fault.ErrValidation):
//   - ErrEmpty             — len(diag) == 0.
//   - ErrDimensionMismatch — len(off) != len(diag)-1.
//   - ErrNaNInf            — any entry is NaN or ±Inf.
//
// Complexity: O(n) time and memory.
func New(diag, off []float64) (*SymTridiagonal, error) {
	n := len(diag)
	if n == 0 {
		return nil, tridiagErrorf(opNew, fault.Validation("diag", 0, ErrEmpty))
	}
	if len(off) != n-1 {
		return nil, tridiagErrorf(opNew, fault.Validation("off", len(off), ErrDimensionMismatch))
	}
	if err := validateFinite("diag", diag); err != nil {
		return nil, tridiagErrorf(opNew, err)
	}
	if err := validateFinite("off", off); err != nil {
		return nil, tridiagErrorf(opNew, err)
	}

	t := &SymTridiagonal{
		diag: make([]float64, n),
		off:  make([]float64, n-1),
	}
	copy(t.diag, diag)
	copy(t.off, off)

	return t, nil
}

// N returns the order of the matrix.
func (t *SymTridiagonal) N() int { return len(t.diag) }

// Diag returns a copy of the main diagonal.
func (t *SymTridiagonal) Diag() []float64 { return append([]float64(nil), t.diag...) }

// Off returns a copy of the off-diagonal.
func (t *SymTridiagonal) Off() []float64 { return append([]float64(nil), t.off...) }

// At returns T[i,j]. Entries outside the three diagonals are zero.
func (t *SymTridiagonal) At(i, j int) (float64, error) {
	n := len(t.diag)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	switch {
	case i == j:
		return t.diag[i], nil
	case j == i+1:
		return t.off[i], nil
	case i == j+1:
		return t.off[j], nil
	}

	return 0, nil
}

// MulVec returns y = T·x in a fresh slice.
// Complexity: O(n).
func (t *SymTridiagonal) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, len(t.diag)); err != nil {
		return nil, tridiagErrorf(opMulVec, err)
	}

	return t.mulVec(make([]float64, len(x)), x), nil
}

// mulVec writes T·x into y without validation.
func (t *SymTridiagonal) mulVec(y, x []float64) []float64 {
	n := len(t.diag)
	for i := 0; i < n; i++ {
		acc := t.diag[i] * x[i]
		if i > 0 {
			acc += t.off[i-1] * x[i-1]
		}
		if i < n-1 {
			acc += t.off[i] * x[i+1]
		}
		y[i] = acc
	}

	return y
}

// Norm1 returns the maximum absolute row sum (equal to the ∞-norm by symmetry).
func (t *SymTridiagonal) Norm1() float64 {
	n := len(t.diag)
	var best float64
	for i := 0; i < n; i++ {
		s := math.Abs(t.diag[i])
		if i > 0 {
			s += math.Abs(t.off[i-1])
		}
		if i < n-1 {
			s += math.Abs(t.off[i])
		}
		if s > best {
			best = s
		}
	}

	return best
}

// Gershgorin returns an interval [lo, hi] containing every eigenvalue.
func (t *SymTridiagonal) Gershgorin() (lo, hi float64) {
	n := len(t.diag)
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		var r float64
		if i > 0 {
			r += math.Abs(t.off[i-1])
		}
		if i < n-1 {
			r += math.Abs(t.off[i])
		}
		lo = math.Min(lo, t.diag[i]-r)
		hi = math.Max(hi, t.diag[i]+r)
	}

	return lo, hi
}

// Dense expands T into a gonum symmetric dense matrix. Intended for
// interoperability and cross-checks on small n; memory is O(n²).
func (t *SymTridiagonal) Dense() *mat.SymDense {
	n := len(t.diag)
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, t.diag[i])
		if i < n-1 {
			s.SetSym(i, i+1, t.off[i])
		}
	}

	return s
}
