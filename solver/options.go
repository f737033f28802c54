// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/sgl1d/tridiag"
)

const (
	panicToleranceInvalid = "solver: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "solver: WithMaxIter: maxIter must be >= 1"
)

// Option adjusts the eigen backend. Constructors panic only on nonsensical
// values (programmer error); runtime input is validated by Solve.
type Option func(*tridiag.Options)

// WithMethod selects the eigen backend (tridiag.Bisection by default).
func WithMethod(m tridiag.Method) Option {
	return func(o *tridiag.Options) { o.Method = m }
}

// WithTolerance sets the relative inverse-iteration residual tolerance.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *tridiag.Options) { o.Tol = tol }
}

// WithMaxIter caps inverse-iteration solves per eigenvector.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *tridiag.Options) { o.MaxIter = n }
}

// WithSeed sets the seed of the inverse-iteration start vectors.
func WithSeed(seed uint64) Option {
	return func(o *tridiag.Options) { o.Seed = seed }
}

func gatherOptions(opts []Option) tridiag.Options {
	o := tridiag.DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
