// SPDX-License-Identifier: MIT

// Command sgl1d solves the 1D stationary Schrödinger equation for
// potentials given as interpolation support points.
//
//	sgl1d solve examples/harmonic_potential_well
//	sgl1d batch --workers 4 examples/*
//	sgl1d reference --system harmonic --mass 4 --k 1 --first 1 --last 5
//
// Settings come from flags, SGL1D_* environment variables and an optional
// --config file, in that order of precedence.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "sgl1d:", err)
		stop()
		os.Exit(1)
	}
}
