// SPDX-License-Identifier: MIT

package potential

import "errors"

// Sentinels are returned wrapped in a *fault.FieldError of kind
// fault.ErrValidation; match them with errors.Is.
var (
	// ErrInvalidMethod is returned for a method outside {linear, polynomial, cspline}.
	ErrInvalidMethod = errors.New("potential: invalid interpolation method")

	// ErrInsufficientPoints is returned when fewer support points than the
	// method needs are supplied.
	ErrInsufficientPoints = errors.New("potential: insufficient support points")

	// ErrMismatchedLength is returned when x and y support slices differ in length.
	ErrMismatchedLength = errors.New("potential: support x and y lengths differ")

	// ErrNotIncreasing is returned when support x values are not strictly increasing.
	ErrNotIncreasing = errors.New("potential: support x values not strictly increasing")

	// ErrNaNInf is returned when a support value is NaN or ±Inf.
	ErrNaNInf = errors.New("potential: NaN or Inf in support points")

	// ErrOutOfDomain is returned by callers that evaluate a Func outside Domain.
	ErrOutOfDomain = errors.New("potential: evaluation outside interpolation domain")
)
