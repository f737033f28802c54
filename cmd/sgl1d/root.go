// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sgl1d/config"
	"github.com/katalvlaran/sgl1d/logging"
	"github.com/katalvlaran/sgl1d/pipeline"
	"github.com/katalvlaran/sgl1d/solver"
	"github.com/katalvlaran/sgl1d/tridiag"
)

// app is the state shared by all subcommands once settings are loaded.
type app struct {
	v          *viper.Viper
	configPath string
	settings   config.Settings
	log        *logrus.Logger
	runner     *pipeline.Runner
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "sgl1d",
		Short: "1D stationary Schrödinger equation solver",
		Long: `sgl1d discretizes the 1D time-independent Schrödinger equation on a uniform
grid, diagonalizes the finite-difference Hamiltonian for a band of states and
writes energies, normalized wavefunctions and position moments.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Settings file (yaml, json or toml)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")
	pf.StringP("output-dir", "o", ".", "Directory receiving one sub-directory per problem")
	pf.Int("workers", 0, "Concurrent solves in batch mode (0 = GOMAXPROCS)")
	pf.String("eigen-method", "", "Eigen backend: bisection or ql (default bisection)")

	if err := bindFlags(a.v, pf, settingFlags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newSolveCmd(a),
		newBatchCmd(a),
		newReferenceCmd(),
		newVersionCmd(),
	)

	return root
}

// settingFlags maps settings keys to the persistent flags that override them.
var settingFlags = map[string]string{
	config.KeyLogLevel:    "log-level",
	config.KeyLogFormat:   "log-format",
	config.KeyOutputDir:   "output-dir",
	config.KeyWorkers:     "workers",
	config.KeyEigenMethod: "eigen-method",
}

// bindFlags binds each flag in keys to its settings key. A missing flag is an error.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("bind %q: no flag %q", key, name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind %q: %w", key, err)
		}
	}

	return nil
}

// setup loads settings and builds the logger and runner.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(a.v, a.configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(s.LogLevel, s.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var opts []solver.Option
	if s.EigenMethod != "" {
		m, err := tridiag.ParseMethod(s.EigenMethod)
		if err != nil {
			return err
		}
		opts = append(opts, solver.WithMethod(m))
	}

	a.settings = s
	a.log = log
	a.runner = pipeline.New(log, opts...)
	log.WithFields(logrus.Fields{
		"output_dir":   s.OutputDir,
		"eigen_method": s.EigenMethod,
		"config":       a.v.ConfigFileUsed(),
	}).Debug("settings loaded")

	return nil
}
