// SPDX-License-Identifier: MIT

package tridiag

import (
	lapackimpl "gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sgl1d/fault"
)

// Method selects the eigen backend.
type Method int

const (
	// Bisection computes only the requested band: Sturm bisection plus
	// inverse iteration. Default.
	Bisection Method = iota
	// QL runs gonum's Dsterf on the full spectrum, slices the band and
	// shares the inverse-iteration vector stage with Bisection.
	QL
)

// String returns the lowercase backend name.
func (m Method) String() string {
	switch m {
	case Bisection:
		return "bisection"
	case QL:
		return "ql"
	}

	return "invalid"
}

// ParseMethod maps "bisection" or "ql" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "bisection", "":
		return Bisection, nil
	case "ql":
		return QL, nil
	}

	return 0, fault.Validation("eigen_method", s, ErrBadOption)
}

// Defaults.
const (
	// DefaultTol is the relative residual ‖Tv − λv‖₂/‖T‖ accepted by inverse iteration.
	DefaultTol = 1e-10
	// DefaultMaxIter caps inverse-iteration solves per vector (LAPACK dstein uses 5).
	DefaultMaxIter = 5
	// DefaultSeed seeds the inverse-iteration start vectors.
	DefaultSeed = 1
)

// Options configures EigenRange.
type Options struct {
	Method  Method
	Tol     float64
	MaxIter int
	Seed    uint64
}

// DefaultOptions returns the Bisection backend with the default numeric policy.
func DefaultOptions() Options {
	return Options{
		Method:  Bisection,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
		Seed:    DefaultSeed,
	}
}

// Eigen is an ascending band of eigenpairs. Column j of Vectors has unit
// Euclidean norm and belongs to Values[j].
type Eigen struct {
	Values  []float64
	Vectors *mat.Dense
}

// EigenRange computes eigenpairs lo..hi (0-indexed, inclusive) of the
// ascending spectrum of t.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateBand, ValidateOptions. Nothing is
//     allocated before validation passes.
//   - Stage 2: Dispatch on opts.Method (Bisection or QL).
//
// Returns:
//   - *Eigen: hi−lo+1 values in non-decreasing order and an n×(hi−lo+1)
//     matrix of orthonormal eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrBadBand, ErrBadOption (fault.ErrValidation).
//   - ErrNonConvergence (fault.ErrNumerical).
//
// Determinism:
//   - Identical inputs and Seed give identical output, including signs.
func EigenRange(t *SymTridiagonal, lo, hi int, opts Options) (*Eigen, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tridiagErrorf(opEigenRange, err)
	}
	if err := ValidateBand(lo, hi, t.N()); err != nil {
		return nil, tridiagErrorf(opEigenRange, err)
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, tridiagErrorf(opEigenRange, err)
	}

	var (
		eig *Eigen
		err error
	)
	switch opts.Method {
	case QL:
		eig, err = eigenQL(t, lo, hi, opts)
	default:
		eig, err = eigenBisection(t, lo, hi, opts)
	}
	if err != nil {
		return nil, tridiagErrorf(opEigenRange, err)
	}

	return eig, nil
}

func eigenBisection(t *SymTridiagonal, lo, hi int, opts Options) (*Eigen, error) {
	values, err := bisect(t, lo, hi)
	if err != nil {
		return nil, err
	}
	vecs, err := inverseIteration(t, values, lo, opts)
	if err != nil {
		return nil, err
	}

	return &Eigen{Values: values, Vectors: vecs}, nil
}

// eigenQL takes the whole spectrum from Dsterf (root-free implicit QL, O(n²))
// and recovers vectors for lo..hi by inverse iteration.
func eigenQL(t *SymTridiagonal, lo, hi int, opts Options) (*Eigen, error) {
	d := t.Diag()
	e := t.Off()

	var impl lapackimpl.Implementation
	if ok := impl.Dsterf(t.N(), d, e); !ok {
		return nil, fault.Numerical("eigenvalue", lo, ErrNonConvergence)
	}

	values := make([]float64, hi-lo+1)
	copy(values, d[lo:hi+1])
	vecs, err := inverseIteration(t, values, lo, opts)
	if err != nil {
		return nil, err
	}

	return &Eigen{Values: values, Vectors: vecs}, nil
}

// Values returns the whole ascending spectrum of t without eigenvectors
// (gonum Dsterf, root-free QL). Complexity: O(n²).
func Values(t *SymTridiagonal) ([]float64, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tridiagErrorf(opValues, err)
	}
	d := t.Diag()
	e := t.Off()

	var impl lapackimpl.Implementation
	if ok := impl.Dsterf(t.N(), d, e); !ok {
		return nil, tridiagErrorf(opValues, fault.Numerical("eigenvalue", 0, ErrNonConvergence))
	}

	return d, nil
}
