// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sgl1d/config"
	"github.com/katalvlaran/sgl1d/fault"
	"github.com/katalvlaran/sgl1d/inout"
	"github.com/katalvlaran/sgl1d/logging"
	"github.com/katalvlaran/sgl1d/solver"
	"github.com/katalvlaran/sgl1d/wavefunc"
)

// ErrDuplicateName is returned when two problems of a batch share a name
// (their outputs would collide).
var ErrDuplicateName = errors.New("pipeline: duplicate problem name")

// Runner solves problems with a shared logger and option set.
type Runner struct {
	log  logrus.FieldLogger
	opts []solver.Option
}

// New returns a Runner. A nil logger discards output.
func New(log logrus.FieldLogger, opts ...solver.Option) *Runner {
	if log == nil {
		log = logging.Discard()
	}

	return &Runner{log: log, opts: opts}
}

// Run solves a single problem.
func Run(ctx context.Context, p config.Problem) (*inout.Solution, error) {
	return New(nil).Run(ctx, p)
}

// RunBatch solves problems with at most workers concurrent solves.
func RunBatch(ctx context.Context, problems []config.Problem, workers int) ([]*inout.Solution, error) {
	return New(nil).RunBatch(ctx, problems, workers)
}

// Run validates p, solves it and returns the normalized states and their
// moments. The run id of the solve is recorded in the Solution.
func (r *Runner) Run(ctx context.Context, p config.Problem) (*inout.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := r.log.WithFields(logrus.Fields{"problem": p.Name, "run_id": runID})
	start := time.Now()

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	v, err := p.Potential()
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	popts, err := p.SolverOptions()
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	opts := append(append([]solver.Option(nil), r.opts...), popts...)

	t := time.Now()
	res, err := solver.Solve(p.XMin, p.XMax, p.NPoint, p.Mass, v, p.First, p.Last, opts...)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	log.WithField("elapsed", time.Since(t)).Debug("eigenpairs computed")

	t = time.Now()
	psi, err := wavefunc.Normalize(res.Vectors, res.Grid)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	m, err := wavefunc.Expectation(psi, res.Grid)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	log.WithField("elapsed", time.Since(t)).Debug("wavefunctions normalized")

	log.WithFields(logrus.Fields{
		"states":  len(res.Energies),
		"e_first": res.Energies[0],
		"elapsed": time.Since(start),
	}).Info("problem solved")

	return &inout.Solution{
		Name:      p.Name,
		RunID:     runID,
		Mass:      p.Mass,
		First:     p.First,
		Last:      p.Last,
		Method:    p.Method,
		X:         res.X,
		Potential: res.Potential,
		Energies:  res.Energies,
		Wavefuncs: psi,
		Moments:   m,
	}, nil
}

// RunBatch solves problems concurrently and returns the solutions in input
// order. workers ≤ 0 means GOMAXPROCS.
func (r *Runner) RunBatch(ctx context.Context, problems []config.Problem, workers int) ([]*inout.Solution, error) {
	seen := make(map[string]struct{}, len(problems))
	for _, p := range problems {
		if _, dup := seen[p.Name]; dup {
			return nil, fault.Validation("name", p.Name, ErrDuplicateName)
		}
		seen[p.Name] = struct{}{}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	out := make([]*inout.Solution, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range problems {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			s, err := r.Run(gctx, p)
			if err != nil {
				return err
			}
			out[i] = s

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait returns nil when ctx was cancelled before anything failed.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.log.WithFields(logrus.Fields{
		"problems": len(problems),
		"workers":  workers,
		"elapsed":  time.Since(start),
	}).Info("batch finished")

	return out, nil
}

// Load reads a problem from a legacy input (a schrodinger.inp file or the
// directory holding one) or a structured yaml, json or toml file.
func Load(path string) (config.Problem, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return config.LoadProblem(path)
	}

	return inout.ReadInp(path)
}

// LoadAll loads every path in order and stops at the first failure.
func LoadAll(paths []string) ([]config.Problem, error) {
	out := make([]config.Problem, 0, len(paths))
	for _, path := range paths {
		p, err := Load(path)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
