// SPDX-License-Identifier: MIT

package admm

import (
	"context"
	"log/slog"
	"strconv"
	"time"
)

// Progress stream message keys.
const (
	msgStart     = "admm optimization"
	msgIteration = "admm iteration"
	msgFinish    = "admm finished"
)

// reporter writes the human-readable progress stream. It is a no-op unless
// Params.Verbose is set.
type reporter struct {
	logger    *slog.Logger
	enabled   bool
	precision int
	params    Params
}

func newReporter(logger *slog.Logger, params Params) reporter {
	return reporter{
		logger:    logger,
		enabled:   params.Verbose,
		precision: params.Precision,
		params:    params,
	}
}

// sci formats v in scientific notation with the configured precision.
func (r reporter) sci(v float64) string {
	return strconv.FormatFloat(v, 'e', r.precision, 64)
}

func (r reporter) start() {
	if !r.enabled {
		return
	}
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, msgStart,
		slog.Int("max_iterations", r.params.MaxIterations),
		slog.String("rho", r.sci(r.params.Rho)),
		slog.String("penalty_adaptation", r.params.PenaltyAdaptation.String()),
	)
}

func (r reporter) iteration(info IterationInfo) {
	if !r.enabled {
		return
	}
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, msgIteration,
		slog.Int("iter", info.Iteration),
		slog.String("time", r.sci(info.Elapsed.Seconds())),
		slog.String("primal_residual", r.sci(info.PrimalResidual)),
		slog.String("dual_residual", r.sci(info.DualResidual)),
		slog.String("penalty", r.sci(info.Rho)),
	)
}

func (r reporter) finish(s Summary) {
	if !r.enabled {
		return
	}
	attrs := []slog.Attr{
		slog.String("status", s.Status.String()),
		slog.String("reason", r.reason(s)),
		slog.Int("iterations", s.Iterations),
		slog.String("primal_residual", r.sci(s.PrimalResidual)),
		slog.String("dual_residual", r.sci(s.DualResidual)),
		slog.Duration("elapsed", s.Elapsed),
	}
	level := slog.LevelInfo
	if s.Status != Converged {
		level = slog.LevelWarn
	}
	r.logger.LogAttrs(context.Background(), level, msgFinish, attrs...)
}

// reason is the one-line explanation of the termination status.
func (r reporter) reason(s Summary) string {
	switch s.Status {
	case Converged:
		return "found minimizer"
	case IterationLimit:
		return "exceeded maximum number of iterations"
	case TimeLimit:
		return "exceeded maximum computation time: " +
			s.Elapsed.Round(time.Microsecond).String() + " > " + r.params.MaxComputationTime.String()
	default:
		return s.Status.String()
	}
}
