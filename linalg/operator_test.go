// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/admm/linalg"
)

// TestNewOperatorNil rejects both an untyped and a typed nil matrix.
func TestNewOperatorNil(t *testing.T) {
	_, err := linalg.NewOperator(nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	var d *mat.Dense
	_, err = linalg.NewOperator(d)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}

// TestOperatorApply checks M·v and Mᵀ·v on a 2×3 matrix.
func TestOperatorApply(t *testing.T) {
	m, err := linalg.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	op, err := linalg.NewOperator(m)
	require.NoError(t, err)

	r, c := op.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	out, err := op.Apply(linalg.Vector{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, linalg.Vector{-2, -2}, out)

	adj := op.T()
	r, c = adj.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, linalg.Vector{9, 12, 15}, adj.MustApply(linalg.Vector{1, 2}))

	_, err = op.Apply(linalg.Vector{1, 2})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	require.Panics(t, func() { op.MustApply(linalg.Vector{1}) })
}

// TestAdapters checks Linear, Identity and Negated in admm form.
func TestAdapters(t *testing.T) {
	m, err := linalg.FromRows([][]float64{{2, 0}, {0, 3}})
	require.NoError(t, err)
	op, err := linalg.NewOperator(m)
	require.NoError(t, err)

	lin := linalg.Linear[struct{}](op)
	require.Equal(t, linalg.Vector{2, 3}, lin(linalg.Vector{1, 1}, struct{}{}))

	neg := linalg.Negated(lin)
	require.Equal(t, linalg.Vector{-2, -3}, neg(linalg.Vector{1, 1}, struct{}{}))

	id := linalg.Identity[struct{}]()
	in := linalg.Vector{7, 8}
	out := id(in, struct{}{})
	require.Equal(t, in, out)
	out[0] = 0
	require.Equal(t, 7.0, in[0]) // identity returns a copy
}
