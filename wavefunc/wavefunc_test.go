package wavefunc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sgl1d/fault"
	"github.com/katalvlaran/sgl1d/grid"
	"github.com/katalvlaran/sgl1d/potential"
	"github.com/katalvlaran/sgl1d/solver"
	"github.com/katalvlaran/sgl1d/wavefunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// gaussians returns a grid on [-8, 8] and two unnormalized Gaussian columns
// centred at mu with standard deviation of |ψ|² equal to sigma.
func gaussians(t *testing.T, n int, mu, sigma []float64) (grid.Grid, *mat.Dense) {
	t.Helper()
	g, err := grid.New(-8, 8, n)
	require.NoError(t, err)
	m := mat.NewDense(n, len(mu), nil)
	for j := range mu {
		for i, x := range g.Points() {
			// |ψ|² ∝ exp(-(x-μ)²/(2σ²))  ⇒  ψ ∝ exp(-(x-μ)²/(4σ²))
			m.Set(i, j, 3*math.Exp(-(x-mu[j])*(x-mu[j])/(4*sigma[j]*sigma[j])))
		}
	}

	return g, m
}

// TestNormalize_Quadrature checks δ·Σψ² = 1 for every column.
func TestNormalize_Quadrature(t *testing.T) {
	g, raw := gaussians(t, 801, []float64{0, 1.5}, []float64{0.7, 1.1})
	psi, err := wavefunc.Normalize(raw, g)
	require.NoError(t, err)

	norms, err := wavefunc.Norms(psi, g)
	require.NoError(t, err)
	for j, v := range norms {
		assert.InEpsilon(t, 1.0, v, 1e-9, "column %d", j)
	}
	// Input untouched.
	assert.Equal(t, 3.0, raw.At(400, 0))
}

// TestNormalize_Idempotent: normalizing twice changes nothing.
func TestNormalize_Idempotent(t *testing.T) {
	g, raw := gaussians(t, 401, []float64{-1, 2}, []float64{0.5, 0.9})
	once, err := wavefunc.Normalize(raw, g)
	require.NoError(t, err)
	twice, err := wavefunc.Normalize(once, g)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(once, twice, 1e-12))
}

// TestNormalize_ZeroColumn raises ErrDegenerateVector naming the column.
func TestNormalize_ZeroColumn(t *testing.T) {
	g, err := grid.New(0, 1, 4)
	require.NoError(t, err)
	m := mat.NewDense(4, 2, []float64{
		1, 0,
		2, 0,
		3, 0,
		4, 0,
	})
	_, err = wavefunc.Normalize(m, g)
	assert.ErrorIs(t, err, wavefunc.ErrDegenerateVector)
	assert.ErrorIs(t, err, fault.ErrNumerical)
	var fe *fault.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Value)
}

// TestShapeErrors covers nil and row-count mismatches.
func TestShapeErrors(t *testing.T) {
	g, err := grid.New(0, 1, 5)
	require.NoError(t, err)

	_, err = wavefunc.Normalize(nil, g)
	assert.ErrorIs(t, err, wavefunc.ErrNilMatrix)
	var nilDense *mat.Dense
	_, err = wavefunc.Expectation(nilDense, g)
	assert.ErrorIs(t, err, wavefunc.ErrNilMatrix)

	_, err = wavefunc.Normalize(mat.NewDense(4, 1, nil), g)
	assert.ErrorIs(t, err, wavefunc.ErrDimensionMismatch)
	assert.ErrorIs(t, err, fault.ErrValidation)
	_, err = wavefunc.Overlap(mat.NewDense(6, 1, nil), g)
	assert.ErrorIs(t, err, wavefunc.ErrDimensionMismatch)

	bad := mat.NewDense(5, 1, []float64{1, math.NaN(), 0, 0, 0})
	_, err = wavefunc.Normalize(bad, g)
	assert.ErrorIs(t, err, wavefunc.ErrNaNInf)
}

// TestExpectation_Gaussian recovers the mean and width of Gaussian densities.
func TestExpectation_Gaussian(t *testing.T) {
	mu := []float64{0, 1.5}
	sigma := []float64{0.7, 1.1}
	g, raw := gaussians(t, 1601, mu, sigma)
	psi, err := wavefunc.Normalize(raw, g)
	require.NoError(t, err)

	m, err := wavefunc.Expectation(psi, g)
	require.NoError(t, err)
	require.Len(t, m.X, 2)
	require.Len(t, m.Sigma, 2)
	for j := range mu {
		assert.InDelta(t, mu[j], m.X[j], 1e-6, "⟨x⟩ column %d", j)
		assert.InDelta(t, sigma[j], m.Sigma[j], 1e-6, "σ column %d", j)
	}
}

// TestExpectation_PointMass clamps the variance of a single-point density to 0.
func TestExpectation_PointMass(t *testing.T) {
	g, err := grid.New(0, 1, 11)
	require.NoError(t, err)
	m := mat.NewDense(11, 1, nil)
	m.Set(7, 0, 1)
	psi, err := wavefunc.Normalize(m, g)
	require.NoError(t, err)

	mom, err := wavefunc.Expectation(psi, g)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, mom.X[0], 1e-12)
	assert.GreaterOrEqual(t, mom.Sigma[0], 0.0)
	assert.InDelta(t, 0.0, mom.Sigma[0], 1e-7)
	assert.False(t, math.IsNaN(mom.Sigma[0]))
}

// TestSolvedStates_Orthonormal normalizes solver output for a finite well and
// checks the quadrature Gram matrix is the identity.
func TestSolvedStates_Orthonormal(t *testing.T) {
	v, err := potential.Interpolate(
		[]float64{-2, -0.51, -0.5, 0.5, 0.51, 2},
		[]float64{0, 0, -10, -10, 0, 0},
		potential.Linear,
	)
	require.NoError(t, err)
	res, err := solver.Solve(-2, 2, 1999, 2, v, 1, 6)
	require.NoError(t, err)

	psi, err := wavefunc.Normalize(res.Vectors, res.Grid)
	require.NoError(t, err)
	s, err := wavefunc.Overlap(psi, res.Grid)
	require.NoError(t, err)
	r, c := s.Dims()
	require.Equal(t, 6, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, s.At(i, j), 1e-8, "S(%d,%d)", i, j)
		}
	}

	// Symmetric potential: every state is centred.
	mom, err := wavefunc.Expectation(psi, res.Grid)
	require.NoError(t, err)
	for j, x := range mom.X {
		assert.InDelta(t, 0.0, x, 1e-6, "⟨x⟩ state %d", j)
	}
}
