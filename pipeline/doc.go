// Package pipeline wires the core stages into a complete solve:
//
//	config.Problem → potential.Func → solver.Solve → wavefunc.Normalize
//	              → wavefunc.Expectation → inout.Solution
//
// A Runner owns the logger and the solver options that apply to every
// problem (for example the eigen backend chosen on the command line; a
// problem's own eigen_method wins). Each Run gets a fresh run id and logs
// stage timings at Debug and the outcome at Info.
//
// RunBatch solves independent problems concurrently on an errgroup with a
// bounded number of workers. A single solve is never interrupted; the
// context only stops new problems from being scheduled, and the first
// failure cancels the rest of the batch.
package pipeline
