// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sgl1d/inout"
	"github.com/katalvlaran/sgl1d/pipeline"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch input...",
		Short: "Solve several independent problems concurrently",
		Long: `Solve every input concurrently (see solve for accepted inputs). Problem names
must be unique. The first failure stops the batch; nothing is written then.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := pipeline.LoadAll(args)
			if err != nil {
				return err
			}
			sols, err := a.runner.RunBatch(cmd.Context(), problems, a.settings.Workers)
			if err != nil {
				return err
			}
			for _, s := range sols {
				if err := inout.WriteSolution(filepath.Join(a.settings.OutputDir, s.Name), s); err != nil {
					return err
				}
				if err := printSolution(cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			a.log.WithField("dir", a.settings.OutputDir).Info("results written")

			return nil
		},
	}
}
