// SPDX-License-Identifier: MIT

package inout

import "errors"

var (
	// ErrMalformedInput is wrapped by every schrodinger.inp parse failure.
	ErrMalformedInput = errors.New("inout: malformed input file")

	// ErrMalformedTable is returned when a table has ragged or non-numeric rows.
	ErrMalformedTable = errors.New("inout: malformed table")

	// ErrEmptyTable is returned when a table holds no rows.
	ErrEmptyTable = errors.New("inout: empty table")

	// ErrIncompleteSolution is returned when a Solution's parts disagree in length.
	ErrIncompleteSolution = errors.New("inout: incomplete solution")
)
