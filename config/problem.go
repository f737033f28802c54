// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/sgl1d/fault"
	"github.com/katalvlaran/sgl1d/potential"
	"github.com/katalvlaran/sgl1d/solver"
	"github.com/katalvlaran/sgl1d/tridiag"
)

// ErrInvalidProblem is wrapped by every Problem validation failure.
var ErrInvalidProblem = errors.New("config: invalid problem")

// Problem is the parameter record of a single solve.
type Problem struct {
	Name        string    `mapstructure:"name" yaml:"name" validate:"required"`
	Mass        float64   `mapstructure:"mass" yaml:"mass" validate:"gt=0"`
	XMin        float64   `mapstructure:"xMin" yaml:"xMin"`
	XMax        float64   `mapstructure:"xMax" yaml:"xMax" validate:"gtfield=XMin"`
	NPoint      int       `mapstructure:"nPoint" yaml:"nPoint" validate:"gte=2"`
	First       int       `mapstructure:"first" yaml:"first" validate:"gte=1,ltefield=Last"`
	Last        int       `mapstructure:"last" yaml:"last" validate:"ltefield=NPoint"`
	Method      string    `mapstructure:"interpol_method" yaml:"interpol_method" validate:"required,oneof=linear polynomial cspline"`
	InterpolNum int       `mapstructure:"interpol_num" yaml:"interpol_num" validate:"gte=2"`
	XDecl       []float64 `mapstructure:"x_decl" yaml:"x_decl,flow" validate:"required"`
	YDecl       []float64 `mapstructure:"y_decl" yaml:"y_decl,flow" validate:"required"`

	// EigenMethod optionally pins the eigen backend ("bisection" or "ql").
	EigenMethod string `mapstructure:"eigen_method" yaml:"eigen_method,omitempty" validate:"omitempty,oneof=bisection ql"`
}

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their file key rather than the Go name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks p and returns every violation joined together. Each one
// is a *fault.FieldError with Kind fault.ErrConfiguration.
func (p Problem) Validate() error {
	var errs []error
	if err := validate.Struct(p); err != nil {
		errs = append(errs, fieldErrors(err, ErrInvalidProblem)...)
	}
	errs = append(errs, p.crossCheck()...)

	return errors.Join(errs...)
}

// InterpolMethod parses the Method field.
func (p Problem) InterpolMethod() (potential.Method, error) {
	m, err := potential.ParseMethod(p.Method)
	if err != nil {
		return 0, fault.Configuration("interpol_method", p.Method, fmt.Errorf("%w: %w", ErrInvalidProblem, err))
	}

	return m, nil
}

// Potential builds V(x) from the support points.
func (p Problem) Potential() (potential.Func, error) {
	m, err := p.InterpolMethod()
	if err != nil {
		return nil, err
	}

	return potential.Interpolate(p.XDecl, p.YDecl, m)
}

// SolverOptions translates EigenMethod into solver options.
func (p Problem) SolverOptions() ([]solver.Option, error) {
	if p.EigenMethod == "" {
		return nil, nil
	}
	m, err := tridiag.ParseMethod(p.EigenMethod)
	if err != nil {
		return nil, fault.Configuration("eigen_method", p.EigenMethod, fmt.Errorf("%w: %w", ErrInvalidProblem, err))
	}

	return []solver.Option{solver.WithMethod(m)}, nil
}

func (p Problem) crossCheck() []error {
	var errs []error
	bad := func(field string, value any, format string, args ...any) {
		errs = append(errs, fault.Configuration(field, value,
			fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidProblem)))
	}

	for _, f := range []struct {
		name string
		v    float64
	}{{"mass", p.Mass}, {"xMin", p.XMin}, {"xMax", p.XMax}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			bad(f.name, f.v, "not finite")
		}
	}
	if len(p.XDecl) != p.InterpolNum {
		bad("x_decl", len(p.XDecl), "want %d values (interpol_num)", p.InterpolNum)
	}
	if len(p.YDecl) != p.InterpolNum {
		bad("y_decl", len(p.YDecl), "want %d values (interpol_num)", p.InterpolNum)
	}
	for i, x := range p.XDecl {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			bad(fmt.Sprintf("x_decl[%d]", i), x, "not finite")
		} else if i > 0 && x <= p.XDecl[i-1] {
			bad(fmt.Sprintf("x_decl[%d]", i), x, "not strictly increasing")
		}
	}
	for i, y := range p.YDecl {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			bad(fmt.Sprintf("y_decl[%d]", i), y, "not finite")
		}
	}

	return errs
}

// fieldErrors converts validator output into fault.FieldErrors wrapping
// sentinel.
func fieldErrors(err, sentinel error) []error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []error{fault.Configuration("", nil, fmt.Errorf("%w: %w", sentinel, err))}
	}
	out := make([]error, 0, len(ves))
	for _, fe := range ves {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out = append(out, fault.Configuration(fe.Field(), fe.Value(),
			fmt.Errorf("violates %s: %w", rule, sentinel)))
	}

	return out
}
