// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sgl1d/inout"
	"github.com/katalvlaran/sgl1d/pipeline"
)

func newSolveCmd(a *app) *cobra.Command {
	var noWrite bool

	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Solve one problem",
		Long: `Solve one problem read from a schrodinger.inp file, a directory holding one,
or a yaml/json/toml problem file. The input defaults to ./schrodinger.inp.
Results go to <output-dir>/<problem name>/.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			p, err := pipeline.Load(path)
			if err != nil {
				return err
			}
			s, err := a.runner.Run(cmd.Context(), p)
			if err != nil {
				return err
			}
			if !noWrite {
				dir := filepath.Join(a.settings.OutputDir, s.Name)
				if err := inout.WriteSolution(dir, s); err != nil {
					return err
				}
				a.log.WithField("dir", dir).Info("results written")
			}

			return printSolution(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().BoolVar(&noWrite, "no-write", false, "Print results without writing output files")

	return cmd
}

// printSolution prints one row per state: index, energy, ⟨x⟩, σ_x.
func printSolution(w io.Writer, s *inout.Solution) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "# %s\t\t\t\t\n", s.Name)
	fmt.Fprintln(tw, "n\tE\t<x>\tsigma_x\t")
	for j, e := range s.Energies {
		fmt.Fprintf(tw, "%d\t%.8f\t%.6f\t%.6f\t\n", s.First+j, e, s.Moments.X[j], s.Moments.Sigma[j])
	}

	return tw.Flush()
}
