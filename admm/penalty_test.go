// SPDX-License-Identifier: MIT

package admm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/admm/admm"
	"github.com/katalvlaran/admm/linalg"
)

// TestResidualBalance covers the three branches of the balancing rule.
func TestResidualBalance(t *testing.T) {
	cases := []struct {
		name                       string
		primal, dual, mu, tau, rho float64
		want                       float64
	}{
		{"primal dominates", 10, 1, 5, 2, 1, 2},
		{"dual dominates", 1, 10, 5, 2, 1, 0.5},
		{"balanced", 1, 1, 5, 2, 1, 1},
		{"within band", 4, 1, 5, 2, 3, 3},
		{"overflow keeps rho", 10, 1, 5, 10, math.MaxFloat64, math.MaxFloat64},
		{"underflow keeps rho", 1, 10, 5, 10, 5e-324, 5e-324},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := admm.ResidualBalance(tc.primal, tc.dual, tc.mu, tc.tau, tc.rho)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestEstimateSpectralHybrid exercises both branches of the hybrid rule.
func TestEstimateSpectralHybrid(t *testing.T) {
	// αSD = 1, αMG = 0.5 → 2αMG ≤ αSD → α = αSD − αMG/2 = 0.75.
	// βSD = βMG = 8 → β = βMG = 8.
	e := admm.EstimateSpectral(
		linalg.Vector{1, 0}, linalg.Vector{8, 0},
		linalg.Vector{1, 1}, linalg.Vector{1, 0},
		linalg.Dot[none], none{},
	)
	require.InDelta(t, 1.0, e.AlphaSD, 1e-12)
	require.InDelta(t, 0.5, e.AlphaMG, 1e-12)
	require.InDelta(t, 0.75, e.Alpha, 1e-12)
	require.InDelta(t, 8.0, e.Beta, 1e-12)
	require.InDelta(t, 1/math.Sqrt2, e.AlphaCor, 1e-12)
	require.InDelta(t, 1.0, e.BetaCor, 1e-12)
}

// TestSpectralPenaltySafeguard covers every branch of the safeguarded update.
func TestSpectralPenaltySafeguard(t *testing.T) {
	const rho = 3.0
	v := func(x ...float64) linalg.Vector { return linalg.Vector(x) }

	cases := []struct {
		name                        string
		dLambdaHat, dLambda, dH, dG linalg.Vector
		want                        float64
	}{
		// α = 2, β = 8, both correlations 1 → sqrt(16).
		{"both trusted", v(2), v(8), v(1), v(1), 4},
		// β correlation −1.
		{"alpha only", v(2), v(8), v(1), v(-1), 2},
		// α correlation −1.
		{"beta only", v(2), v(8), v(-1), v(1), 8},
		{"neither", v(2), v(8), v(-1), v(-1), rho},
		// All inner products vanish; every estimate is NaN.
		{"zero deltas", v(0), v(0), v(0), v(0), rho},
		// Correlation 1/sqrt(101) ≈ 0.0995 is below the threshold for both.
		{"weak correlation", v(1, 0), v(1, 0), v(1, 10), v(1, 10), rho},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := admm.SpectralPenalty(tc.dLambdaHat, tc.dLambda, tc.dH, tc.dG,
				linalg.Dot[none], none{}, 0.2, rho)
			require.InDelta(t, tc.want, got, 1e-12)
			require.False(t, math.IsNaN(got))
		})
	}
}

// TestSpectralPenaltyZeroCurvature guards against a division producing ±Inf:
// ΔĤ ⟂ Δλ̂ makes αSD infinite, which must never be adopted.
func TestSpectralPenaltyZeroCurvature(t *testing.T) {
	got := admm.SpectralPenalty(
		linalg.Vector{1, 0}, linalg.Vector{0, 0},
		linalg.Vector{0, 1}, linalg.Vector{0, 0},
		linalg.Dot[none], none{}, 0.2, 5,
	)
	require.Equal(t, 5.0, got)
}
