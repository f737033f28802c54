// SPDX-License-Identifier: MIT

package fault

import (
	"errors"
	"fmt"
)

// Category sentinels. Specific errors always unwrap to exactly one of them.
var (
	// ErrValidation marks bad parameters detected at the boundary of a core call.
	ErrValidation = errors.New("validation error")

	// ErrNumerical marks a failed numerical step (non-convergence, zero norm).
	ErrNumerical = errors.New("numerical error")

	// ErrConfiguration marks a malformed upstream record (input or config file).
	ErrConfiguration = errors.New("configuration error")
)

// FieldError carries the offending field, its value, the specific sentinel
// and the category. It is the only error type the core returns for
// user-triggered conditions.
type FieldError struct {
	Kind  error // one of ErrValidation, ErrNumerical, ErrConfiguration
	Field string
	Value any
	Err   error
}

// Error formats as "<kind>: <field>=<value>: <err>".
func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	if e.Value == nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Field, e.Err)
	}

	return fmt.Sprintf("%v: %s=%v: %v", e.Kind, e.Field, e.Value, e.Err)
}

// Unwrap exposes both the specific sentinel and the category to errors.Is.
func (e *FieldError) Unwrap() []error {
	return []error{e.Err, e.Kind}
}

// Validation wraps err as an ErrValidation for field with the given value.
func Validation(field string, value any, err error) error {
	return &FieldError{Kind: ErrValidation, Field: field, Value: value, Err: err}
}

// Numerical wraps err as an ErrNumerical for field with the given value.
func Numerical(field string, value any, err error) error {
	return &FieldError{Kind: ErrNumerical, Field: field, Value: value, Err: err}
}

// Configuration wraps err as an ErrConfiguration for field with the given value.
func Configuration(field string, value any, err error) error {
	return &FieldError{Kind: ErrConfiguration, Field: field, Value: value, Err: err}
}

// Field returns the offending field name carried by err, or "" when err
// does not contain a *FieldError.
func Field(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}

	return ""
}
