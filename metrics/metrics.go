// SPDX-License-Identifier: MIT

// Package metrics exports ADMM solver progress as Prometheus metrics.
//
// A Recorder owns the metric families; Recorder.Run returns an admm.Observer
// bound to one run label, so concurrent solves (see package sweep) report
// side by side:
//
//	rec := metrics.NewRecorder(prometheus.NewRegistry())
//	res, err := admm.Solve(p, x0, y0, data, params, admm.WithObserver(rec.Run("rho=1")))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/admm/admm"
)

const (
	namespace = "admm"
	labelRun  = "run"
)

// Recorder holds the metric families written by its run observers.
type Recorder struct {
	iterations    *prometheus.CounterVec
	primal        *prometheus.GaugeVec
	dual          *prometheus.GaugeVec
	penalty       *prometheus.GaugeVec
	runs          *prometheus.CounterVec
	runDuration   prometheus.Histogram
	runIterations prometheus.Histogram
}

// NewRecorder registers the ADMM metric families on reg. It panics if the
// families are already registered there, like promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		iterations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "ADMM iterations executed",
		}, []string{labelRun}),
		primal: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "primal_residual",
			Help:      "Norm of the primal residual at the latest iteration",
		}, []string{labelRun}),
		dual: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dual_residual",
			Help:      "Norm of the dual residual at the latest iteration",
		}, []string{labelRun}),
		penalty: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "penalty",
			Help:      "Penalty parameter used at the latest iteration",
		}, []string{labelRun}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished ADMM runs by termination status",
		}, []string{"status"}),
		runDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of finished ADMM runs",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 7),
		}),
		runIterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_iterations",
			Help:      "Iterations executed by finished ADMM runs",
			Buckets:   []float64{1, 10, 100, 1000, 10000, 100000},
		}),
	}
}

// Run returns an observer that records under the given run label.
func (r *Recorder) Run(run string) admm.Observer {
	return &runObserver{
		rec:        r,
		iterations: r.iterations.WithLabelValues(run),
		primal:     r.primal.WithLabelValues(run),
		dual:       r.dual.WithLabelValues(run),
		penalty:    r.penalty.WithLabelValues(run),
	}
}

// runObserver is the admm.Observer for one run label.
type runObserver struct {
	rec        *Recorder
	iterations prometheus.Counter
	primal     prometheus.Gauge
	dual       prometheus.Gauge
	penalty    prometheus.Gauge
}

func (o *runObserver) ObserveIteration(info admm.IterationInfo) {
	o.iterations.Inc()
	o.primal.Set(info.PrimalResidual)
	o.dual.Set(info.DualResidual)
	o.penalty.Set(info.Rho)
}

func (o *runObserver) ObserveResult(s admm.Summary) {
	o.rec.runs.WithLabelValues(s.Status.String()).Inc()
	o.rec.runDuration.Observe(s.Elapsed.Seconds())
	o.rec.runIterations.Observe(float64(s.Iterations))
}
