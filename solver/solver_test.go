package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sgl1d/fault"
	"github.com/katalvlaran/sgl1d/grid"
	"github.com/katalvlaran/sgl1d/potential"
	"github.com/katalvlaran/sgl1d/solver"
	"github.com/katalvlaran/sgl1d/tridiag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// quadratic is V(x) = ½x² on the whole line.
type quadratic struct{}

func (quadratic) At(x float64) float64       { return 0.5 * x * x }
func (quadratic) Domain() (float64, float64) { return math.Inf(-1), math.Inf(1) }
func (quadratic) Method() potential.Method   { return potential.Polynomial }

func flat(t *testing.T, lo, hi float64) potential.Func {
	t.Helper()
	v, err := potential.Interpolate([]float64{lo, hi}, []float64{0, 0}, potential.Linear)
	require.NoError(t, err)

	return v
}

// TestSolve_InfiniteWell compares the five lowest levels of a box of width 4
// with E_n = n²π²/(2mL²).
func TestSolve_InfiniteWell(t *testing.T) {
	const (
		mass = 1.0
		l    = 4.0
	)
	for _, m := range []tridiag.Method{tridiag.Bisection, tridiag.QL} {
		t.Run(m.String(), func(t *testing.T) {
			res, err := solver.Solve(0, l, 2000, mass, flat(t, 0, l), 1, 5, solver.WithMethod(m))
			require.NoError(t, err)
			require.Len(t, res.Energies, 5)
			for i, e := range res.Energies {
				n := float64(i + 1)
				want := n * n * math.Pi * math.Pi / (2 * mass * l * l)
				assert.InEpsilon(t, want, e, 0.02, "level %d", i+1)
			}
		})
	}
}

// TestSolve_Harmonic: V = ½x², m = 4 gives ω = ½ and E_n = ½(n+½).
func TestSolve_Harmonic(t *testing.T) {
	res, err := solver.Solve(-5, 5, 1999, 4, quadratic{}, 1, 5)
	require.NoError(t, err)
	require.Len(t, res.Energies, 5)
	for n, e := range res.Energies {
		want := 0.5 * (float64(n) + 0.5)
		assert.InEpsilon(t, want, e, 0.003, "n=%d", n)
	}
}

// TestSolve_ResultShape checks grid, potential samples and the vector block.
func TestSolve_ResultShape(t *testing.T) {
	res, err := solver.Solve(-5, 5, 101, 1, quadratic{}, 3, 7)
	require.NoError(t, err)

	assert.Equal(t, 3, res.First)
	assert.Equal(t, 7, res.Last)
	assert.Equal(t, 101, res.Grid.N())
	require.Len(t, res.X, 101)
	assert.Equal(t, -5.0, res.X[0])
	assert.Equal(t, 5.0, res.X[100])
	require.Len(t, res.Potential, 101)
	assert.InDelta(t, 12.5, res.Potential[0], 1e-12)
	assert.True(t, sortedAscending(res.Energies))

	r, c := res.Vectors.Dims()
	assert.Equal(t, 101, r)
	assert.Equal(t, 5, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, res.Vectors)
		assert.InDelta(t, 1.0, floats.Norm(col, 2), 1e-10, "column %d", j)
	}
}

// TestSolve_BackendsAgree compares the two eigen backends on a small
// asymmetric potential.
func TestSolve_BackendsAgree(t *testing.T) {
	v, err := potential.Interpolate(
		[]float64{-3, -1, 0, 1.5, 3},
		[]float64{4, -2, 1, -6, 5},
		potential.CSpline,
	)
	require.NoError(t, err)

	a, err := solver.Solve(-3, 3, 301, 1.5, v, 2, 9, solver.WithMethod(tridiag.Bisection))
	require.NoError(t, err)
	b, err := solver.Solve(-3, 3, 301, 1.5, v, 2, 9, solver.WithMethod(tridiag.QL))
	require.NoError(t, err)

	require.Len(t, a.Energies, 8)
	require.Len(t, b.Energies, 8)
	for i := range a.Energies {
		assert.InDelta(t, b.Energies[i], a.Energies[i], 1e-8*math.Max(1, math.Abs(b.Energies[i])))
	}

	col1 := make([]float64, 301)
	col2 := make([]float64, 301)
	for j := 0; j < 8; j++ {
		mat.Col(col1, j, a.Vectors)
		mat.Col(col2, j, b.Vectors)
		assert.InDelta(t, 1.0, math.Abs(floats.Dot(col1, col2)), 1e-7, "vector %d", j)
	}
}

// TestSolve_Deterministic: repeated solves return identical output.
func TestSolve_Deterministic(t *testing.T) {
	a, err := solver.Solve(-5, 5, 201, 1, quadratic{}, 1, 4)
	require.NoError(t, err)
	b, err := solver.Solve(-5, 5, 201, 1, quadratic{}, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, a.Energies, b.Energies)
	assert.True(t, mat.Equal(a.Vectors, b.Vectors))
}

// TestSolve_SingleLevel handles first == last and last == nPoint.
func TestSolve_SingleLevel(t *testing.T) {
	res, err := solver.Solve(0, 1, 10, 1, flat(t, 0, 1), 10, 10)
	require.NoError(t, err)
	require.Len(t, res.Energies, 1)
	_, c := res.Vectors.Dims()
	assert.Equal(t, 1, c)

	// Highest level of the discrete Laplacian: (1/(mδ²))(1 − cos(nπ/(n+1))).
	delta := 1.0 / 9
	want := (1 / (delta * delta)) * (1 - math.Cos(10*math.Pi/11))
	assert.InEpsilon(t, want, res.Energies[0], 1e-10)
}

// TestSolve_Errors checks validation order and taxonomy.
func TestSolve_Errors(t *testing.T) {
	v := flat(t, 0, 4)
	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"first>last", func() error { _, err := solver.Solve(0, 4, 100, 1, v, 5, 3); return err }, solver.ErrInvalidRange},
		{"first<1", func() error { _, err := solver.Solve(0, 4, 100, 1, v, 0, 3); return err }, solver.ErrInvalidRange},
		{"last>nPoint", func() error { _, err := solver.Solve(0, 4, 100, 1, v, 1, 101); return err }, solver.ErrInvalidRange},
		{"zero mass", func() error { _, err := solver.Solve(0, 4, 100, 0, v, 1, 3); return err }, solver.ErrInvalidMass},
		{"negative mass", func() error { _, err := solver.Solve(0, 4, 100, -1, v, 1, 3); return err }, solver.ErrInvalidMass},
		{"NaN mass", func() error { _, err := solver.Solve(0, 4, 100, math.NaN(), v, 1, 3); return err }, solver.ErrInvalidMass},
		{"inverted grid", func() error { _, err := solver.Solve(4, 0, 100, 1, v, 1, 3); return err }, grid.ErrInvalidGrid},
		{"one point", func() error { _, err := solver.Solve(0, 4, 1, 1, v, 1, 1); return err }, grid.ErrInvalidGrid},
		{"nil potential", func() error { _, err := solver.Solve(0, 4, 100, 1, nil, 1, 3); return err }, solver.ErrNilPotential},
		{"outside support", func() error { _, err := solver.Solve(-1, 4, 100, 1, v, 1, 3); return err }, potential.ErrOutOfDomain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, fault.ErrValidation)
		})
	}
}

// TestSolve_BandField reports the offending field name.
func TestSolve_BandField(t *testing.T) {
	_, err := solver.Solve(0, 4, 100, 1, flat(t, 0, 4), 5, 3)
	var fe *fault.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "last", fe.Field)
	assert.Equal(t, 3, fe.Value)
}

// mustAt reads h[i,j] and fails the test on an index error.
func mustAt(t *testing.T, h *tridiag.SymTridiagonal, i, j int) float64 {
	t.Helper()
	v, err := h.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// TestHamiltonian_Entries checks the three-point stencil.
func TestHamiltonian_Entries(t *testing.T) {
	g, err := grid.New(0, 1, 5)
	require.NoError(t, err)
	vs := []float64{1, 2, 3, 4, 5}
	h, err := solver.Hamiltonian(g, 2, vs)
	require.NoError(t, err)

	delta := 0.25
	k := 1 / (2 * delta * delta)
	for i := 0; i < 5; i++ {
		assert.InDelta(t, k+vs[i], mustAt(t, h, i, i), 1e-12)
	}
	for i := 0; i < 4; i++ {
		assert.InDelta(t, -k/2, mustAt(t, h, i, i+1), 1e-12)
		assert.InDelta(t, -k/2, mustAt(t, h, i+1, i), 1e-12)
	}
	assert.Equal(t, 0.0, mustAt(t, h, 0, 2))

	_, err = h.At(5, 0)
	assert.ErrorIs(t, err, tridiag.ErrOutOfRange)
}

func TestHamiltonian_Errors(t *testing.T) {
	g, err := grid.New(0, 1, 3)
	require.NoError(t, err)

	_, err = solver.Hamiltonian(g, 1, []float64{1, 2})
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)

	_, err = solver.Hamiltonian(g, 1, []float64{1, math.Inf(1), 2})
	assert.ErrorIs(t, err, solver.ErrPotentialNaNInf)
	assert.ErrorIs(t, err, fault.ErrValidation)

	_, err = solver.Hamiltonian(g, -2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, solver.ErrInvalidMass)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { solver.WithTolerance(0) })
	assert.Panics(t, func() { solver.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { solver.WithMaxIter(0) })
	assert.NotPanics(t, func() { solver.WithSeed(7) })
}

func sortedAscending(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}

	return true
}
