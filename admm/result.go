// SPDX-License-Identifier: MIT

// Package admm: termination status, run result and observer records.
package admm

import (
	"fmt"
	"time"
)

// Status describes why the loop stopped.
type Status int

const (
	// IterationLimit: MaxIterations were executed without meeting the
	// residual tolerances. This is the status preset before the loop runs.
	IterationLimit Status = iota

	// Converged: both residuals fell below their tolerances.
	Converged

	// TimeLimit: the elapsed time measured at the top of an iteration
	// exceeded MaxComputationTime.
	TimeLimit
)

// String returns a short status name.
func (s Status) String() string {
	switch s {
	case IterationLimit:
		return "ITERATION_LIMIT"
	case Converged:
		return "CONVERGED"
	case TimeLimit:
		return "TIME_LIMIT"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Iterate is one recorded (x, y) pair.
type Iterate[X, Y any] struct {
	X X
	Y Y
}

// Result is the output of Solve. The four per-iteration slices are parallel
// and always have length Iterations().
type Result[X, Y any] struct {
	// Status is the termination reason.
	Status Status

	// X and Y are the final iterates (x0, y0 when no iteration ran).
	X X
	Y Y

	// Time holds the elapsed time measured at the start of each iteration.
	Time []time.Duration

	// PrimalResiduals holds |Ax + By - c| after each iteration.
	PrimalResiduals []float64

	// DualResiduals holds |rho·Aᵀ·B·(y - y_prev)| after each iteration.
	DualResiduals []float64

	// PenaltyParameters holds the rho used by each iteration.
	PenaltyParameters []float64

	// Iterates is the (x, y) trajectory; empty unless Params.LogIterates.
	Iterates []Iterate[X, Y]

	// Elapsed is the total running time of the loop.
	Elapsed time.Duration
}

// Iterations returns the number of executed iterations.
func (r *Result[X, Y]) Iterations() int {
	return len(r.PrimalResiduals)
}

// FinalResiduals returns the last primal and dual residual norms, or
// (NaN, NaN) when no iteration ran.
func (r *Result[X, Y]) FinalResiduals() (primal, dual float64) {
	n := len(r.PrimalResiduals)
	if n == 0 {
		return nan, nan
	}

	return r.PrimalResiduals[n-1], r.DualResiduals[n-1]
}

// IterationInfo is the per-iteration record handed to an Observer.
type IterationInfo struct {
	Iteration      int           // zero-based iteration index
	Elapsed        time.Duration // elapsed time at the start of the iteration
	PrimalResidual float64       // |r|
	DualResidual   float64       // |s|
	Rho            float64       // penalty used in this iteration
	EpsPrimal      float64       // primal tolerance at this iteration
	EpsDual        float64       // dual tolerance at this iteration
}

// Summary is the end-of-run record handed to an Observer.
type Summary struct {
	Status         Status
	Iterations     int
	Elapsed        time.Duration
	PrimalResidual float64 // NaN when no iteration ran
	DualResidual   float64 // NaN when no iteration ran
	Rho            float64 // penalty at loop exit
}

// Observer receives diagnostics from Solve. Calls are synchronous and come
// from the goroutine running Solve; implementations shared across concurrent
// runs must synchronise themselves.
type Observer interface {
	ObserveIteration(info IterationInfo)
	ObserveResult(summary Summary)
}
