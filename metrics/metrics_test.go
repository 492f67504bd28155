// SPDX-License-Identifier: MIT

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/admm/admm"
	"github.com/katalvlaran/admm/linalg"
	"github.com/katalvlaran/admm/metrics"
	"github.com/katalvlaran/admm/problems"
)

// TestRecorderObserver feeds synthetic callbacks and reads the families back.
func TestRecorderObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	obs := rec.Run("a")
	obs.ObserveIteration(admm.IterationInfo{Iteration: 0, PrimalResidual: 3, DualResidual: 2, Rho: 1})
	obs.ObserveIteration(admm.IterationInfo{Iteration: 1, PrimalResidual: 0.5, DualResidual: 0.25, Rho: 2})
	obs.ObserveResult(admm.Summary{Status: admm.Converged, Iterations: 2, Elapsed: time.Millisecond})

	expected := `
# HELP admm_iterations_total ADMM iterations executed
# TYPE admm_iterations_total counter
admm_iterations_total{run="a"} 2
# HELP admm_penalty Penalty parameter used at the latest iteration
# TYPE admm_penalty gauge
admm_penalty{run="a"} 2
# HELP admm_primal_residual Norm of the primal residual at the latest iteration
# TYPE admm_primal_residual gauge
admm_primal_residual{run="a"} 0.5
# HELP admm_runs_total Finished ADMM runs by termination status
# TYPE admm_runs_total counter
admm_runs_total{status="CONVERGED"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"admm_iterations_total", "admm_penalty", "admm_primal_residual", "admm_runs_total"))
	n, err := testutil.GatherAndCount(reg, "admm_run_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

// TestRecorderWithSolve wires a Recorder into a real solve.
func TestRecorderWithSolve(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	inst, err := problems.Consensus(linalg.Vector{1}, linalg.Vector{3})
	require.NoError(t, err)
	params := admm.DefaultParams()
	params.MaxIterations = 3

	res, err := inst.Solve(params, admm.WithObserver(rec.Run("consensus")))
	require.NoError(t, err)
	require.Equal(t, admm.IterationLimit, res.Status)

	n, err := testutil.GatherAndCount(reg, "admm_iterations_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		switch mf.GetName() {
		case "admm_iterations_total":
			require.Equal(t, 3.0, mf.GetMetric()[0].GetCounter().GetValue())
		case "admm_runs_total":
			require.Equal(t, "ITERATION_LIMIT", mf.GetMetric()[0].GetLabel()[0].GetValue())
		}
	}
}

// TestNewRecorderDuplicatePanics documents the promauto registration policy.
func TestNewRecorderDuplicatePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	require.Panics(t, func() { metrics.NewRecorder(reg) })
}
