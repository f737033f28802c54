// Package config holds the solver's parameter record and the application
// settings of the sgl1d command.
//
// A Problem is the complete description of one solve: particle mass, grid,
// requested band, interpolation method and the support points of the
// potential. It can be read from a structured file through viper
// (LoadProblem: yaml, json or toml, keys as below) or from a legacy
// schrodinger.inp file through package inout.
//
//	name: harmonic
//	mass: 4.0
//	xMin: -5.0
//	xMax: 5.0
//	nPoint: 1999
//	first: 1
//	last: 5
//	interpol_method: cspline
//	interpol_num: 3
//	x_decl: [-5, 0, 5]
//	y_decl: [12.5, 0, 12.5]
//
// Problem.Validate checks the record with go-playground/validator struct
// tags plus the cross-field rules (lengths match interpol_num, x_decl
// strictly increasing, all numbers finite). Every failure is a
// *fault.FieldError wrapping fault.ErrConfiguration and ErrInvalidProblem;
// malformed records are rejected, never patched with defaults.
//
// Settings carries the ambient knobs of the CLI (log level and format,
// output directory, worker count, eigen backend). NewViper registers the
// defaults and the SGL1D_ environment prefix.
package config
