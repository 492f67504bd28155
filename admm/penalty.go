// SPDX-License-Identifier: MIT

// Package admm: penalty-parameter update rules.
package admm

import "math"

var nan = math.NaN()

// ResidualBalance implements the residual-balancing rule (Boyd et al.,
// "Distributed Optimization and Statistical Learning via ADMM", eq. 3.13):
//
//	rho·tau  if primal > mu·dual
//	rho/tau  if dual   > mu·primal
//	rho      otherwise
//
// If the scaled value overflows to +Inf or underflows to 0, rho is returned
// unchanged, so the penalty stays positive and finite however long the
// adaptation window is.
//
// Pure, O(1). mu and tau are expected to be > 1.
func ResidualBalance(primal, dual, mu, tau, rho float64) float64 {
	next := rho
	switch {
	case primal > mu*dual:
		next = tau * rho
	case dual > mu*primal:
		next = rho / tau
	}
	if !isPositiveFinite(next) {
		return rho
	}

	return next
}

// SpectralEstimate holds the intermediate quantities of one spectral update.
type SpectralEstimate struct {
	AlphaSD, AlphaMG float64 // steepest-descent / minimum-gradient estimates for Ĥ
	BetaSD, BetaMG   float64 // steepest-descent / minimum-gradient estimates for Ĝ
	Alpha, Beta      float64 // hybrid estimates
	AlphaCor         float64 // <Δλ̂, ΔĤ> / (|Δλ̂|·|ΔĤ|)
	BetaCor          float64 // <Δλ, ΔĜ> / (|Δλ|·|ΔĜ|)
}

// EstimateSpectral computes the Barzilai–Borwein curvature estimates of
// "Adaptive ADMM with Spectral Penalty Parameter Selection" (Xu, Figueiredo
// & Goldstein), eqs. (26)–(29):
//
//	αSD = <Δλ̂,Δλ̂>/<ΔĤ,Δλ̂>    αMG = <ΔĤ,Δλ̂>/<ΔĤ,ΔĤ>
//	βSD = <Δλ,Δλ>/<ΔĜ,Δλ>      βMG = <ΔĜ,Δλ>/<ΔĜ,ΔĜ>
//	α   = αMG if 2αMG > αSD else αSD − αMG/2   (β likewise)
//
// Degenerate deltas produce NaN or ±Inf entries; SpectralPenalty decides
// what to do with them.
func EstimateSpectral[R, D any](
	dLambdaHat, dLambda, dHHat, dGHat R,
	inner InnerProduct[R, D],
	data D,
) SpectralEstimate {
	// pair-wise inner products for the alphas
	llHat := inner(dLambdaHat, dLambdaHat, data)
	hlHat := inner(dHHat, dLambdaHat, data)
	hh := inner(dHHat, dHHat, data)

	// pair-wise inner products for the betas
	ll := inner(dLambda, dLambda, data)
	gl := inner(dGHat, dLambda, data)
	gg := inner(dGHat, dGHat, data)

	var e SpectralEstimate
	e.AlphaSD = llHat / hlHat
	e.AlphaMG = hlHat / hh
	e.BetaSD = ll / gl
	e.BetaMG = gl / gg

	e.Alpha = hybrid(e.AlphaSD, e.AlphaMG)
	e.Beta = hybrid(e.BetaSD, e.BetaMG)

	e.AlphaCor = hlHat / (math.Sqrt(hh) * math.Sqrt(llHat))
	e.BetaCor = gl / (math.Sqrt(gg) * math.Sqrt(ll))

	return e
}

// hybrid is the Zhou–Gao–Dai switching rule between the two BB steps.
func hybrid(sd, mg float64) float64 {
	if 2*mg > sd {
		return mg
	}

	return sd - mg/2
}

// SpectralPenalty returns the safeguarded spectral penalty (eq. 30):
//
//	both directions trusted  → sqrt(α·β)
//	only α trusted           → α
//	only β trusted           → β
//	neither                  → rho
//
// A direction is trusted when its correlation exceeds epsCor and its hybrid
// estimate is finite and positive. NaN correlations (zero-length deltas)
// are never trusted. If the selected value is still not finite and
// positive, rho is returned unchanged, so a degenerate checkpoint can never
// poison the penalty.
//
// dHHat and dGHat follow the sign convention of the paper, i.e. the caller
// passes -A(x - x_k0) and -B(y - y_k0).
func SpectralPenalty[R, D any](
	dLambdaHat, dLambda, dHHat, dGHat R,
	inner InnerProduct[R, D],
	data D,
	epsCor, rho float64,
) float64 {
	e := EstimateSpectral(dLambdaHat, dLambda, dHHat, dGHat, inner, data)

	return e.safeguard(epsCor, rho)
}

// safeguard applies eq. (30) with the finiteness guard.
func (e SpectralEstimate) safeguard(epsCor, rho float64) float64 {
	alphaOK := e.AlphaCor > epsCor && isPositiveFinite(e.Alpha)
	betaOK := e.BetaCor > epsCor && isPositiveFinite(e.Beta)

	var next float64
	switch {
	case alphaOK && betaOK:
		next = math.Sqrt(e.Alpha * e.Beta)
	case alphaOK:
		next = e.Alpha
	case betaOK:
		next = e.Beta
	default:
		return rho
	}

	if !isPositiveFinite(next) {
		return rho
	}

	return next
}
