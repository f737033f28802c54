package potential

import (
	"strings"

	"github.com/katalvlaran/sgl1d/fault"
)

// Method selects the interpolation scheme. The zero value is invalid.
type Method uint8

const (
	// Linear is piecewise-linear interpolation.
	Linear Method = iota + 1
	// Polynomial is global Lagrange interpolation.
	Polynomial
	// CSpline is the natural cubic spline.
	CSpline
)

// Method names as they appear in input files.
const (
	nameLinear     = "linear"
	namePolynomial = "polynomial"
	nameCSpline    = "cspline"
)

// String returns the input-file name of the method.
func (m Method) String() string {
	switch m {
	case Linear:
		return nameLinear
	case Polynomial:
		return namePolynomial
	case CSpline:
		return nameCSpline
	}

	return "invalid"
}

// Valid reports whether m is one of the three methods.
func (m Method) Valid() bool {
	return m >= Linear && m <= CSpline
}

// MinPoints returns the number of support points the method needs.
// A natural spline through two points degenerates to a line, so three are
// required for CSpline.
func (m Method) MinPoints() int {
	if m == CSpline {
		return 3
	}

	return 2
}

// ParseMethod maps "linear", "polynomial" or "cspline" (case-insensitive,
// surrounding blanks ignored) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case nameLinear:
		return Linear, nil
	case namePolynomial:
		return Polynomial, nil
	case nameCSpline:
		return CSpline, nil
	}

	return 0, fault.Validation("interpol_method", s, ErrInvalidMethod)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fault.Validation("interpol_method", uint8(m), ErrInvalidMethod)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
