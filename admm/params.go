// SPDX-License-Identifier: MIT

// Package admm: run configuration.
//
// Params is a plain value: build it with DefaultParams, override fields, and
// pass it to Solve. Solve validates it once and never mutates it.
package admm

import (
	"fmt"
	"math"
	"time"
)

// AdaptationMode selects the penalty-parameter strategy.
type AdaptationMode int

const (
	// NoAdaptation is vanilla ADMM: rho stays at Params.Rho.
	NoAdaptation AdaptationMode = iota

	// ResidualBalanceMode scales rho by tau whenever one residual exceeds
	// mu times the other ("Alternating Direction Method with Self-Adaptive
	// Penalty Parameters", He, Yang & Wang).
	ResidualBalanceMode

	// SpectralMode uses Barzilai–Borwein curvature estimates of the dual
	// ("Adaptive ADMM with Spectral Penalty Parameter Selection", Xu,
	// Figueiredo & Goldstein).
	SpectralMode
)

// Mode names used by String and ParseAdaptationMode.
const (
	modeNameNone            = "none"
	modeNameResidualBalance = "residual_balance"
	modeNameSpectral        = "spectral"
)

// String returns the configuration name of the mode.
func (m AdaptationMode) String() string {
	switch m {
	case NoAdaptation:
		return modeNameNone
	case ResidualBalanceMode:
		return modeNameResidualBalance
	case SpectralMode:
		return modeNameSpectral
	default:
		return fmt.Sprintf("AdaptationMode(%d)", int(m))
	}
}

// ParseAdaptationMode is the inverse of AdaptationMode.String.
func ParseAdaptationMode(s string) (AdaptationMode, error) {
	switch s {
	case modeNameNone, "":
		return NoAdaptation, nil
	case modeNameResidualBalance:
		return ResidualBalanceMode, nil
	case modeNameSpectral:
		return SpectralMode, nil
	default:
		return NoAdaptation, paramErrorf("PenaltyAdaptation", "unknown mode", s)
	}
}

// Defaults (single source of truth for DefaultParams).
const (
	DefaultMaxIterations              = 1000
	DefaultPrecision                  = 3
	DefaultRho                        = 1.0
	DefaultPenaltyAdaptationPeriod    = 2
	DefaultPenaltyAdaptationWindow    = 1000
	DefaultResidualBalanceMu          = 10.0
	DefaultResidualBalanceTau         = 2.0
	DefaultSpectralMinimumCorrelation = 0.2
	DefaultEpsAbsPrimal               = 1e-2
	DefaultEpsAbsDual                 = 1e-2
	DefaultEpsRel                     = 1e-3
)

// Params configures one Solve call.
//
// Stopping test at iteration k, with r_k = Ax + By - c and
// s_k = rho·Aᵀ·B·(y_k - y_{k-1}):
//
//	eps_pri  = EpsAbsPrimal + EpsRel·max(|Ax|, |By|, |c|)
//	eps_dual = EpsAbsDual   + EpsRel·|Aᵀλ|
//	stop when |r_k| < eps_pri and |s_k| < eps_dual
type Params struct {
	// MaxIterations caps the number of iterations. Zero is legal and makes
	// Solve return (x0, y0) with IterationLimit and empty logs.
	MaxIterations int

	// MaxComputationTime is the wall-clock budget, checked at the top of
	// every iteration. Zero means unlimited.
	MaxComputationTime time.Duration

	// Verbose emits one progress record per iteration and a summary.
	Verbose bool

	// Precision is the number of significant digits in progress records.
	Precision int

	// LogIterates records every (x, y) pair in Result.Iterates.
	LogIterates bool

	// Rho is the initial penalty parameter; must be finite and > 0.
	Rho float64

	// PenaltyAdaptation selects the rho update strategy.
	PenaltyAdaptation AdaptationMode

	// PenaltyAdaptationPeriod: rho is updated on iterations i with
	// i % period == 0. Must be ≥ 1.
	PenaltyAdaptationPeriod int

	// PenaltyAdaptationWindow: rho is never updated once i ≥ window, so the
	// penalty is eventually constant and the usual convergence theory applies.
	// Inside the window an update that would leave (0, +Inf) keeps the
	// previous rho.
	PenaltyAdaptationWindow int

	// ResidualBalanceMu is the admissible primal/dual residual ratio (> 1).
	ResidualBalanceMu float64

	// ResidualBalanceTau is the multiplicative rho step (> 1).
	ResidualBalanceTau float64

	// SpectralMinimumCorrelation is the minimum curvature-fit quality for a
	// spectral estimate to be accepted, in (0, 1).
	SpectralMinimumCorrelation float64

	// EpsAbsPrimal, EpsAbsDual and EpsRel are the stopping tolerances (≥ 0).
	EpsAbsPrimal float64
	EpsAbsDual   float64
	EpsRel       float64
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		MaxIterations:              DefaultMaxIterations,
		Precision:                  DefaultPrecision,
		Rho:                        DefaultRho,
		PenaltyAdaptation:          NoAdaptation,
		PenaltyAdaptationPeriod:    DefaultPenaltyAdaptationPeriod,
		PenaltyAdaptationWindow:    DefaultPenaltyAdaptationWindow,
		ResidualBalanceMu:          DefaultResidualBalanceMu,
		ResidualBalanceTau:         DefaultResidualBalanceTau,
		SpectralMinimumCorrelation: DefaultSpectralMinimumCorrelation,
		EpsAbsPrimal:               DefaultEpsAbsPrimal,
		EpsAbsDual:                 DefaultEpsAbsDual,
		EpsRel:                     DefaultEpsRel,
	}
}

// Validate checks every field against its domain and returns the first
// violation wrapped around ErrInvalidParams.
//
// Strategy-specific fields are only checked when their strategy is selected,
// so a Params with NoAdaptation may carry arbitrary mu/tau values.
func (p Params) Validate() error {
	switch {
	case p.MaxIterations < 0:
		return paramErrorf("MaxIterations", ">= 0", p.MaxIterations)
	case p.MaxComputationTime < 0:
		return paramErrorf("MaxComputationTime", ">= 0", p.MaxComputationTime)
	case p.Precision < 0:
		return paramErrorf("Precision", ">= 0", p.Precision)
	case !isPositiveFinite(p.Rho):
		return paramErrorf("Rho", "finite and > 0", p.Rho)
	case !isNonNegativeFinite(p.EpsAbsPrimal):
		return paramErrorf("EpsAbsPrimal", "finite and >= 0", p.EpsAbsPrimal)
	case !isNonNegativeFinite(p.EpsAbsDual):
		return paramErrorf("EpsAbsDual", "finite and >= 0", p.EpsAbsDual)
	case !isNonNegativeFinite(p.EpsRel):
		return paramErrorf("EpsRel", "finite and >= 0", p.EpsRel)
	}

	switch p.PenaltyAdaptation {
	case NoAdaptation:
		return nil
	case ResidualBalanceMode:
		if !(p.ResidualBalanceMu > 1) || math.IsInf(p.ResidualBalanceMu, 0) {
			return paramErrorf("ResidualBalanceMu", "finite and > 1", p.ResidualBalanceMu)
		}
		if !(p.ResidualBalanceTau > 1) || math.IsInf(p.ResidualBalanceTau, 0) {
			return paramErrorf("ResidualBalanceTau", "finite and > 1", p.ResidualBalanceTau)
		}
	case SpectralMode:
		if !(p.SpectralMinimumCorrelation > 0 && p.SpectralMinimumCorrelation < 1) {
			return paramErrorf("SpectralMinimumCorrelation", "in (0, 1)", p.SpectralMinimumCorrelation)
		}
	default:
		return paramErrorf("PenaltyAdaptation", "unknown mode", int(p.PenaltyAdaptation))
	}

	// Period and window only matter when some adaptation is active.
	if p.PenaltyAdaptationPeriod < 1 {
		return paramErrorf("PenaltyAdaptationPeriod", ">= 1", p.PenaltyAdaptationPeriod)
	}
	if p.PenaltyAdaptationWindow < 0 {
		return paramErrorf("PenaltyAdaptationWindow", ">= 0", p.PenaltyAdaptationWindow)
	}

	return nil
}

// adaptsAt reports whether iteration i is a penalty checkpoint.
func (p Params) adaptsAt(i int) bool {
	return p.PenaltyAdaptation != NoAdaptation &&
		i%p.PenaltyAdaptationPeriod == 0 &&
		i < p.PenaltyAdaptationWindow
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func isNonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
