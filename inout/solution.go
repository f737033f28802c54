// SPDX-License-Identifier: MIT

package inout

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sgl1d/fault"
	"github.com/katalvlaran/sgl1d/wavefunc"
)

// Output file names.
const (
	PotentialFile = "potential.dat"
	EnergiesFile  = "energies.dat"
	WavefuncsFile = "wavefuncs.dat"
	ExpValuesFile = "expvalues.dat"
	SummaryFile   = "summary.yaml"
)

const opWriteSolution = "WriteSolution"

// Solution is everything one solve produces, in output-ready form.
type Solution struct {
	Name        string
	RunID       string
	Mass        float64
	First, Last int
	Method      string

	X         []float64 // grid points
	Potential []float64 // V(x_i)
	Energies  []float64
	Wavefuncs *mat.Dense // nPoint × (last−first+1), quadrature-normalized
	Moments   wavefunc.Moments
}

// Summary is the YAML digest written next to the tables.
type Summary struct {
	Name     string    `yaml:"name"`
	RunID    string    `yaml:"run_id,omitempty"`
	Mass     float64   `yaml:"mass"`
	Method   string    `yaml:"interpol_method"`
	NPoint   int       `yaml:"nPoint"`
	First    int       `yaml:"first"`
	Last     int       `yaml:"last"`
	Energies []float64 `yaml:"energies,flow"`
	ExpX     []float64 `yaml:"expectation_x,flow"`
	SigmaX   []float64 `yaml:"sigma_x,flow"`
}

// Summary condenses s.
func (s *Solution) Summary() Summary {
	return Summary{
		Name:     s.Name,
		RunID:    s.RunID,
		Mass:     s.Mass,
		Method:   s.Method,
		NPoint:   len(s.X),
		First:    s.First,
		Last:     s.Last,
		Energies: s.Energies,
		ExpX:     s.Moments.X,
		SigmaX:   s.Moments.Sigma,
	}
}

func (s *Solution) check() error {
	n := len(s.X)
	k := len(s.Energies)
	switch {
	case n == 0 || k == 0:
		return fault.Validation("solution", s.Name, ErrIncompleteSolution)
	case len(s.Potential) != n:
		return fault.Validation("potential", len(s.Potential), ErrIncompleteSolution)
	case s.Wavefuncs == nil:
		return fault.Validation("wavefuncs", nil, ErrIncompleteSolution)
	case len(s.Moments.X) != k || len(s.Moments.Sigma) != k:
		return fault.Validation("moments", len(s.Moments.X), ErrIncompleteSolution)
	}
	if r, c := s.Wavefuncs.Dims(); r != n || c != k {
		return fault.Validation("wavefuncs", fmt.Sprintf("%dx%d", r, c), ErrIncompleteSolution)
	}

	return nil
}

// WriteSolution creates dir if needed and writes the four tables and the
// summary into it.
func WriteSolution(dir string, s *Solution) error {
	if err := s.check(); err != nil {
		return fmt.Errorf("%s: %w", opWriteSolution, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", opWriteSolution, err)
	}

	n, k := len(s.X), len(s.Energies)
	pot := mat.NewDense(n, 2, nil)
	pot.SetCol(0, s.X)
	pot.SetCol(1, s.Potential)

	wf := mat.NewDense(n, k+1, nil)
	wf.SetCol(0, s.X)
	wf.Slice(0, n, 1, k+1).(*mat.Dense).Copy(s.Wavefuncs)

	exp := mat.NewDense(k, 2, nil)
	exp.SetCol(0, s.Moments.X)
	exp.SetCol(1, s.Moments.Sigma)

	tables := []struct {
		name string
		m    mat.Matrix
	}{
		{PotentialFile, pot},
		{EnergiesFile, mat.NewVecDense(k, append([]float64(nil), s.Energies...))},
		{WavefuncsFile, wf},
		{ExpValuesFile, exp},
	}
	for _, t := range tables {
		if err := writeFile(filepath.Join(dir, t.name), func(f *os.File) error { return WriteTable(f, t.m) }); err != nil {
			return fmt.Errorf("%s: %w", opWriteSolution, err)
		}
	}

	out, err := yaml.Marshal(s.Summary())
	if err != nil {
		return fmt.Errorf("%s: %w", opWriteSolution, err)
	}
	if err := os.WriteFile(filepath.Join(dir, SummaryFile), out, 0o644); err != nil {
		return fmt.Errorf("%s: %w", opWriteSolution, err)
	}

	return nil
}

// ReadSummary loads a summary.yaml file.
func ReadSummary(path string) (Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fault.Configuration("path", path, err)
	}
	var s Summary
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Summary{}, fault.Configuration("path", path, err)
	}

	return s, nil
}

func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
