package potential_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/sgl1d/fault"
	"github.com/katalvlaran/sgl1d/potential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allMethods = []potential.Method{potential.Linear, potential.Polynomial, potential.CSpline}

// doubleWell is a small asymmetric support set shared by several tests.
var (
	wellX = []float64{-2, -1.2, -0.5, 0, 0.7, 1.5, 2}
	wellY = []float64{3, -1, -0.2, 0.4, -1.5, -0.3, 2.5}
)

// TestInterpolate_RoundTrip evaluates every method exactly at its support
// points and expects the support y values back.
func TestInterpolate_RoundTrip(t *testing.T) {
	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			f, err := potential.Interpolate(wellX, wellY, m)
			require.NoError(t, err)
			assert.Equal(t, m, f.Method())
			for i, x := range wellX {
				assert.InDelta(t, wellY[i], f.At(x), 1e-12, "support point %d", i)
			}
		})
	}
}

// TestLinear_Midpoints checks the straight-line segments and the domain.
func TestLinear_Midpoints(t *testing.T) {
	f, err := potential.Interpolate([]float64{0, 1, 3}, []float64{0, 2, -2}, potential.Linear)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, f.At(0.5), 1e-15)
	assert.InDelta(t, 0.0, f.At(2), 1e-15)
	lo, hi := f.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 3.0, hi)
	assert.True(t, potential.InDomain(f, 0, 3))
	assert.False(t, potential.InDomain(f, -0.1, 3))
}

// TestPolynomial_ReproducesQuadratic: three points fix a parabola, so the
// interpolant must match x² everywhere, including outside the support.
func TestPolynomial_ReproducesQuadratic(t *testing.T) {
	xs := []float64{-1, 0.5, 2}
	ys := []float64{1, 0.25, 4}
	f, err := potential.Interpolate(xs, ys, potential.Polynomial)
	require.NoError(t, err)

	for _, x := range []float64{-3, -0.7, 0, 1.1, 1.9, 5} {
		assert.InDelta(t, x*x, f.At(x), 1e-10, "x=%g", x)
	}
	lo, hi := f.Domain()
	assert.True(t, math.IsInf(lo, -1))
	assert.True(t, math.IsInf(hi, 1))
}

// TestPolynomial_ManyPoints stays finite for a 40-point harmonic support.
func TestPolynomial_ManyPoints(t *testing.T) {
	n := 40
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = -5 + 10*float64(i)/float64(n-1)
		ys[i] = 0.5 * xs[i] * xs[i]
	}
	f, err := potential.Interpolate(xs, ys, potential.Polynomial)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*0.3*0.3, f.At(0.3), 1e-4)
}

// TestCSpline_LinearData: a natural spline through collinear points is the line.
func TestCSpline_LinearData(t *testing.T) {
	xs := []float64{0, 1, 2.5, 4}
	ys := []float64{1, 3, 6, 9}
	f, err := potential.Interpolate(xs, ys, potential.CSpline)
	require.NoError(t, err)

	for _, x := range []float64{0.25, 1.7, 3.3} {
		assert.InDelta(t, 1+2*x, f.At(x), 1e-12, "x=%g", x)
	}
}

// TestInterpolate_Errors covers the validation taxonomy.
func TestInterpolate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		xs, ys []float64
		m      potential.Method
		want   error
		field  string
	}{
		{"zero method", []float64{0, 1}, []float64{0, 1}, 0, potential.ErrInvalidMethod, "interpol_method"},
		{"unknown method", []float64{0, 1}, []float64{0, 1}, potential.Method(9), potential.ErrInvalidMethod, "interpol_method"},
		{"one point", []float64{0}, []float64{0}, potential.Linear, potential.ErrInsufficientPoints, "x_decl"},
		{"spline two points", []float64{0, 1}, []float64{0, 1}, potential.CSpline, potential.ErrInsufficientPoints, "x_decl"},
		{"length mismatch", []float64{0, 1}, []float64{0}, potential.Linear, potential.ErrMismatchedLength, "y_decl"},
		{"not increasing", []float64{0, 1, 1}, []float64{0, 1, 2}, potential.Polynomial, potential.ErrNotIncreasing, "x_decl[2]"},
		{"descending", []float64{2, 1}, []float64{0, 1}, potential.Linear, potential.ErrNotIncreasing, "x_decl[1]"},
		{"nan y", []float64{0, 1}, []float64{math.NaN(), 1}, potential.Linear, potential.ErrNaNInf, "y_decl[0]"},
		{"inf x", []float64{0, math.Inf(1)}, []float64{0, 1}, potential.Linear, potential.ErrNaNInf, "x_decl[1]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := potential.Interpolate(tc.xs, tc.ys, tc.m)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, fault.ErrValidation)
			assert.Equal(t, tc.field, fault.Field(err))
		})
	}
}

// TestInterpolate_CopiesInput guards against aliasing the caller's slices.
func TestInterpolate_CopiesInput(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 4}
	f, err := potential.Interpolate(xs, ys, potential.Polynomial)
	require.NoError(t, err)
	ys[1] = 100
	assert.InDelta(t, 1.0, f.At(1), 1e-15)
}

// TestParseMethod covers names, case folding and rejection.
func TestParseMethod(t *testing.T) {
	for _, m := range allMethods {
		got, err := potential.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := potential.ParseMethod("  CSpline ")
	require.NoError(t, err)
	assert.Equal(t, potential.CSpline, got)

	_, err = potential.ParseMethod("akima")
	assert.ErrorIs(t, err, potential.ErrInvalidMethod)
	assert.Equal(t, "invalid", potential.Method(0).String())
}

// TestMethod_Text round-trips through the text marshaler interfaces.
func TestMethod_Text(t *testing.T) {
	b, err := potential.Polynomial.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "polynomial", string(b))

	var m potential.Method
	require.NoError(t, m.UnmarshalText([]byte("linear")))
	assert.Equal(t, potential.Linear, m)
	assert.Error(t, m.UnmarshalText([]byte("quadratic")))

	_, err = potential.Method(0).MarshalText()
	assert.ErrorIs(t, err, potential.ErrInvalidMethod)
}

// TestSample tabulates a spline and is safe under concurrent evaluation.
func TestSample(t *testing.T) {
	f, err := potential.Interpolate(wellX, wellY, potential.CSpline)
	require.NoError(t, err)
	want := potential.Sample(f, wellX)
	assert.InDeltaSlice(t, wellY, want, 1e-12)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := potential.Sample(f, wellX)
			assert.InDeltaSlice(t, want, got, 0)
		}()
	}
	wg.Wait()
}
