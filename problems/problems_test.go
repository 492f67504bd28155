// SPDX-License-Identifier: MIT

package problems_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/admm/admm"
	"github.com/katalvlaran/admm/linalg"
	"github.com/katalvlaran/admm/problems"
)

// identity returns the n×n identity as a *mat.Dense.
func identity(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}

	return d
}

// TestConsensus solves to the midpoint and reports the objective there.
func TestConsensus(t *testing.T) {
	inst, err := problems.Consensus(linalg.Vector{1, 2, -4}, linalg.Vector{3, 0, 4})
	require.NoError(t, err)
	require.Equal(t, "consensus", inst.Name)
	require.Equal(t, 3, inst.Dim())

	res, err := inst.Solve(admm.DefaultParams())
	require.NoError(t, err)
	require.Equal(t, admm.Converged, res.Status)
	require.True(t, res.X.Equal(linalg.Vector{2, 1, 0}, 2e-2), "x=%v", res.X)

	// ½(1+1+16) + ½(1+1+16) at the exact midpoint.
	require.InDelta(t, 18.0, inst.Objective(linalg.Vector{2, 1, 0}, linalg.Vector{2, 1, 0}), 1e-12)
}

// TestConsensusErrors covers every constructor check.
func TestConsensusErrors(t *testing.T) {
	_, err := problems.Consensus(nil, nil)
	require.ErrorIs(t, err, problems.ErrEmpty)

	_, err = problems.Consensus(linalg.Vector{1}, linalg.Vector{1, 2})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = problems.Consensus(linalg.Vector{1}, linalg.Vector{math.NaN()})
	require.ErrorIs(t, err, linalg.ErrNaNInf)
}

// TestLassoIdentity: with D = I the lasso solution is S(b, reg).
func TestLassoIdentity(t *testing.T) {
	b := linalg.Vector{3, -0.5, 1}
	inst, err := problems.Lasso(identity(3), b, 1)
	require.NoError(t, err)
	require.Equal(t, "lasso", inst.Name)

	res, err := inst.Solve(admm.DefaultParams())
	require.NoError(t, err)
	require.Equal(t, admm.Converged, res.Status)
	require.True(t, res.Y.Equal(linalg.Vector{2, 0, 0}, 2e-2), "y=%v", res.Y)
	require.Zero(t, res.Y[1]) // thresholded exactly
	require.Zero(t, res.Y[2])
}

// TestLassoRecoversSparseSignal checks the objective reached on synthetic data.
func TestLassoRecoversSparseSignal(t *testing.T) {
	syn, err := problems.Random(problems.RandomSpec{Rows: 40, Cols: 10, Support: 3, Seed: 7})
	require.NoError(t, err)

	const reg = 1e-3
	inst, err := problems.Lasso(syn.D, syn.B, reg)
	require.NoError(t, err)

	params := admm.DefaultParams()
	params.MaxIterations = 20000
	params.EpsAbsPrimal, params.EpsAbsDual, params.EpsRel = 1e-8, 1e-8, 0
	params.PenaltyAdaptation = admm.ResidualBalanceMode

	res, err := inst.Solve(params)
	require.NoError(t, err)
	require.Equal(t, admm.Converged, res.Status)

	// x* is feasible with zero residual, so the optimum is at most reg·|x*|₁.
	best := inst.Objective(syn.XTrue, syn.XTrue)
	require.InDelta(t, reg*syn.XTrue.Norm1(), best, 1e-9)
	require.LessOrEqual(t, inst.Objective(res.X, res.Y), best+1e-3)
	require.True(t, res.Y.Equal(syn.XTrue, 1e-2), "y=%v want %v", res.Y, syn.XTrue)
}

// TestLassoErrors covers the constructor checks.
func TestLassoErrors(t *testing.T) {
	_, err := problems.Lasso(identity(2), linalg.Vector{1, 2}, -1)
	require.ErrorIs(t, err, problems.ErrInvalidRegularization)

	_, err = problems.Lasso(identity(2), linalg.Vector{1, 2}, math.NaN())
	require.ErrorIs(t, err, problems.ErrInvalidRegularization)

	_, err = problems.Lasso(nil, linalg.Vector{1, 2}, 1)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	_, err = problems.Lasso(identity(2), linalg.Vector{1}, 1)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = problems.Lasso(identity(2), linalg.Vector{1, math.Inf(-1)}, 1)
	require.ErrorIs(t, err, linalg.ErrNaNInf)
}

// TestNonNegativeLeastSquaresIdentity: with D = I the solution is max(b, 0).
func TestNonNegativeLeastSquaresIdentity(t *testing.T) {
	inst, err := problems.NonNegativeLeastSquares(identity(3), linalg.Vector{1, -2, 3})
	require.NoError(t, err)
	require.Equal(t, "nnls", inst.Name)

	res, err := inst.Solve(admm.DefaultParams())
	require.NoError(t, err)
	require.Equal(t, admm.Converged, res.Status)
	require.True(t, res.Y.Equal(linalg.Vector{1, 0, 3}, 2e-2), "y=%v", res.Y)
	for _, yi := range res.Y {
		require.GreaterOrEqual(t, yi, 0.0)
	}

	require.True(t, math.IsInf(inst.Objective(res.X, linalg.Vector{-1, 0, 0}), 1))
	require.InDelta(t, 2.0, inst.Objective(linalg.Vector{1, 0, 3}, linalg.Vector{1, 0, 3}), 1e-12)
}

// TestProx checks the two proximal operators element-wise.
func TestProx(t *testing.T) {
	require.Equal(t, linalg.Vector{2, 0, 0, -1}, problems.SoftThreshold(linalg.Vector{3, 0.5, -1, -2}, 1))
	require.Equal(t, linalg.Vector{0, 0, 2}, problems.ProjectNonNegative(linalg.Vector{-1, 0, 2}))
}

// TestRandom checks shapes, support size, determinism and validation.
func TestRandom(t *testing.T) {
	spec := problems.RandomSpec{Rows: 8, Cols: 5, Support: 2, Noise: 0.1, NonNegative: true}
	s1, err := problems.Random(spec)
	require.NoError(t, err)
	s2, err := problems.Random(spec)
	require.NoError(t, err)

	r, c := s1.D.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 5, c)
	require.Len(t, s1.B, 8)
	require.True(t, mat.Equal(s1.D, s2.D))
	require.Equal(t, s1.B, s2.B)

	nonZero := 0
	for _, v := range s1.XTrue {
		require.GreaterOrEqual(t, v, 0.0)
		if v != 0 {
			nonZero++
		}
	}
	require.Equal(t, 2, nonZero)

	for _, bad := range []problems.RandomSpec{
		{Rows: 0, Cols: 1, Support: 1},
		{Rows: 1, Cols: 1, Support: 2},
		{Rows: 1, Cols: 1, Support: 1, Noise: -1},
	} {
		_, err = problems.Random(bad)
		require.ErrorIs(t, err, problems.ErrInvalidShape)
	}
}
