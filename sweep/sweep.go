// SPDX-License-Identifier: MIT

// Package sweep solves one problem for several initial penalties at once.
//
// Each rho gets its own problem instance (instances cache factorizations and
// are not safe for concurrent use), its own goroutine, and its own metrics
// run label. Runs are independent; the first construction or solver error
// cancels the runs that have not started yet.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/admm/admm"
	"github.com/katalvlaran/admm/metrics"
	"github.com/katalvlaran/admm/problems"
)

// DefaultWorkers bounds concurrency when WithWorkers is not given.
const DefaultWorkers = 4

// ErrNoPenalties indicates an empty rho list.
var ErrNoPenalties = errors.New("sweep: no penalties to try")

// Build returns a fresh problem instance. It is called once per run, from
// the run's goroutine.
type Build func() (*problems.Instance, error)

// Outcome summarizes one run of the sweep.
type Outcome struct {
	Rho            float64 // initial penalty
	FinalRho       float64 // penalty at exit
	Status         admm.Status
	Iterations     int
	Elapsed        time.Duration
	PrimalResidual float64
	DualResidual   float64
	Objective      float64 // f(x) + g(y) at the returned iterates
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers  int
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// WithWorkers bounds the number of concurrent solves. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sweep: WithWorkers: n must be >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger handed to every solve, tagged with its rho.
// Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("sweep: WithLogger: logger must be non-nil")
	}

	return func(o *options) { o.logger = logger }
}

// WithRecorder records every run under the label "rho=<value>". Panics on nil.
func WithRecorder(rec *metrics.Recorder) Option {
	if rec == nil {
		panic("sweep: WithRecorder: recorder must be non-nil")
	}

	return func(o *options) { o.recorder = rec }
}

// Run solves build() once per rho, with params.Rho replaced by that rho.
// Outcomes are returned in the order of rhos.
//
// Errors:
//   - ErrNoPenalties if rhos is empty.
//   - the first error from build or admm.Solve, tagged with its rho.
//   - ctx.Err() if ctx was cancelled before every run started.
func Run(ctx context.Context, build Build, params admm.Params, rhos []float64, opts ...Option) ([]Outcome, error) {
	if len(rhos) == 0 {
		return nil, ErrNoPenalties
	}
	o := options{workers: DefaultWorkers, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]Outcome, len(rhos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, rho := range rhos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			oc, err := runOne(build, params, rho, o)
			if err != nil {
				return fmt.Errorf("rho=%g: %w", rho, err)
			}
			out[i] = oc

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// runOne builds and solves a single instance.
func runOne(build Build, params admm.Params, rho float64, o options) (Outcome, error) {
	inst, err := build()
	if err != nil {
		return Outcome{}, err
	}
	params.Rho = rho
	label := "rho=" + strconv.FormatFloat(rho, 'g', -1, 64)

	exit := &exitRho{rho: rho}
	solveOpts := []admm.Option{
		admm.WithLogger(o.logger.With(slog.Float64("rho0", rho))),
		admm.WithObserver(exit),
	}
	if o.recorder != nil {
		solveOpts = append(solveOpts, admm.WithObserver(o.recorder.Run(label)))
	}
	res, err := inst.Solve(params, solveOpts...)
	if err != nil {
		return Outcome{}, err
	}

	primal, dual := res.FinalResiduals()

	return Outcome{
		Rho:            rho,
		FinalRho:       exit.rho,
		Status:         res.Status,
		Iterations:     res.Iterations(),
		Elapsed:        res.Elapsed,
		PrimalResidual: primal,
		DualResidual:   dual,
		Objective:      inst.Objective(res.X, res.Y),
	}, nil
}

// exitRho keeps the penalty reported in the run summary, which includes the
// update made on the last iteration.
type exitRho struct{ rho float64 }

func (e *exitRho) ObserveIteration(admm.IterationInfo) {}

func (e *exitRho) ObserveResult(s admm.Summary) { e.rho = s.Rho }

// Best returns the index of the converged outcome with the fewest
// iterations (ties broken by objective), or -1 if none converged.
func Best(outcomes []Outcome) int {
	best := -1
	for i, oc := range outcomes {
		if oc.Status != admm.Converged {
			continue
		}
		if best < 0 || oc.Iterations < outcomes[best].Iterations ||
			(oc.Iterations == outcomes[best].Iterations && less(oc.Objective, outcomes[best].Objective)) {
			best = i
		}
	}

	return best
}

// less orders NaN last.
func less(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}

	return a < b
}
