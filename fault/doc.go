// Package fault defines the error taxonomy shared by every sgl1d package.
//
// Three categories exist:
//
//   - ErrValidation    — a bad grid, band, method or support-point set was
//     passed to a core call. Detected before any heavy computation.
//   - ErrNumerical     — the numerics failed (eigensolver did not converge,
//     a zero vector cannot be normalized). Fatal to the single request.
//   - ErrConfiguration — an upstream record (input file, config file) is
//     malformed. The core never guesses defaults for such records.
//
// Packages declare their own specific sentinels (grid.ErrInvalidGrid,
// wavefunc.ErrDegenerateVector, ...) and return them wrapped in a
// *FieldError so that callers can match either level:
//
//	_, err := solver.Solve(0, 4, 2000, 1, v, 3, 1)
//	errors.Is(err, solver.ErrInvalidRange) // true
//	errors.Is(err, fault.ErrValidation)    // true
//
//	var fe *fault.FieldError
//	if errors.As(err, &fe) {
//		fmt.Println(fe.Field) // "first"
//	}
package fault
