// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sgl1d/analytic"
	"github.com/katalvlaran/sgl1d/fault"
	"github.com/katalvlaran/sgl1d/inout"
)

// Reference systems.
const (
	systemInfinite = "infinite"
	systemHarmonic = "harmonic"
	systemFinite   = "finite"
)

var (
	errUnknownSystem = errors.New("unknown reference system")
	errTolerance     = errors.New("energies differ from reference")
)

type referenceFlags struct {
	system      string
	mass        float64
	width       float64
	k           float64
	depth       float64
	first, last int
	compare     string
	rtol        float64
}

func newReferenceCmd() *cobra.Command {
	var f referenceFlags

	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Print analytic energies and optionally compare an energies.dat",
		Long: `Print closed-form energies of the infinite well (width), the harmonic
oscillator V = ½kx² (k) or the finite well centred at 0 (depth, width).
With --compare, the energies.dat of a solve is checked against them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			want, err := f.energies()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if f.compare == "" {
				for i, e := range want {
					fmt.Fprintf(out, "%d %.10e\n", f.first+i, e)
				}

				return nil
			}

			got, err := inout.ReadTableFile(f.compare)
			if err != nil {
				return err
			}
			col := mat.Col(nil, 0, got)
			if len(col) != len(want) {
				return fault.Validation("compare", len(col),
					fmt.Errorf("want %d energies: %w", len(want), errTolerance))
			}
			worst := 0.0
			for i := range want {
				rel := math.Abs(col[i]-want[i]) / math.Max(math.Abs(want[i]), math.SmallestNonzeroFloat64)
				worst = math.Max(worst, rel)
				fmt.Fprintf(out, "%d %.10e %.10e %.3e\n", f.first+i, want[i], col[i], rel)
			}
			if worst > f.rtol {
				return fmt.Errorf("max relative deviation %.3e > %.3e: %w", worst, f.rtol, errTolerance)
			}

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.system, "system", systemHarmonic, "Reference system: infinite, harmonic or finite")
	fl.Float64Var(&f.mass, "mass", 1, "Particle mass")
	fl.Float64Var(&f.width, "width", 4, "Well width (infinite, finite)")
	fl.Float64Var(&f.k, "k", 1, "Oscillator stiffness (harmonic)")
	fl.Float64Var(&f.depth, "depth", 10, "Well depth (finite)")
	fl.IntVar(&f.first, "first", 1, "First level (1 = ground state)")
	fl.IntVar(&f.last, "last", 5, "Last level")
	fl.StringVar(&f.compare, "compare", "", "energies.dat to compare against the reference")
	fl.Float64Var(&f.rtol, "rtol", 0.02, "Accepted relative deviation with --compare")

	return cmd
}

func (f referenceFlags) energies() ([]float64, error) {
	switch f.system {
	case systemInfinite:
		return analytic.InfiniteWell(f.mass, f.width, f.first, f.last)
	case systemHarmonic:
		return analytic.Harmonic(f.mass, f.k, f.first, f.last)
	case systemFinite:
		return analytic.FiniteWell(f.mass, f.depth, f.width, f.first, f.last)
	}

	return nil, fault.Validation("system", f.system, errUnknownSystem)
}
