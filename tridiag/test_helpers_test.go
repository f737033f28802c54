package tridiag_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sgl1d/tridiag"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// laplacian returns tridiag(-1, 2, -1) of order n.
func laplacian(t *testing.T, n int) *tridiag.SymTridiagonal {
	t.Helper()
	d := make([]float64, n)
	e := make([]float64, n-1)
	for i := range d {
		d[i] = 2
	}
	for i := range e {
		e[i] = -1
	}
	m, err := tridiag.New(d, e)
	require.NoError(t, err)

	return m
}

// laplacianValue is the k-th (0-indexed) eigenvalue of laplacian(n).
func laplacianValue(k, n int) float64 {
	return 2 - 2*math.Cos(float64(k+1)*math.Pi/float64(n+1))
}

// requireOrthonormal asserts VᵀV = I within tol.
func requireOrthonormal(t *testing.T, v *mat.Dense, tol float64) {
	t.Helper()
	_, c := v.Dims()
	var g mat.Dense
	g.Mul(v.T(), v)
	for i := 0; i < c; i++ {
		for j := 0; j < c; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, g.At(i, j), tol, "gram(%d,%d)", i, j)
		}
	}
}

// residual returns max_j ‖T v_j − λ_j v_j‖₂.
func residual(t *testing.T, m *tridiag.SymTridiagonal, eig *tridiag.Eigen) float64 {
	t.Helper()
	n, c := eig.Vectors.Dims()
	var worst float64
	for j := 0; j < c; j++ {
		v := mat.Col(nil, j, eig.Vectors)
		tv, err := m.MulVec(v)
		require.NoError(t, err)
		require.Len(t, tv, n)
		floats.AddScaled(tv, -eig.Values[j], v)
		worst = math.Max(worst, floats.Norm(tv, 2))
	}

	return worst
}

// sameUpToSign reports whether a == ±b within tol.
func sameUpToSign(a, b []float64, tol float64) bool {
	if floats.Dot(a, b) < 0 {
		b = append([]float64(nil), b...)
		floats.Scale(-1, b)
	}

	return floats.EqualApprox(a, b, tol)
}
