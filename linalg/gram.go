// SPDX-License-Identifier: MIT

// Package linalg - cached solver for shifted normal equations.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ShiftedGram solves (MᵀM + ρI)·x = b for a fixed M and a shift ρ that
// changes rarely. The Gram matrix is formed once; the Cholesky factor is
// recomputed only when Solve is called with a different shift.
//
// A ShiftedGram is not safe for concurrent use (the factor cache is mutated
// by Solve). Build one per goroutine.
type ShiftedGram struct {
	gram  *mat.SymDense // MᵀM, n×n
	n     int
	shift float64
	chol  mat.Cholesky
	ready bool
}

// NewShiftedGram precomputes MᵀM.
//
// Complexity: O(rows·cols²) time, O(cols²) memory.
func NewShiftedGram(m mat.Matrix) (*ShiftedGram, error) {
	if m == nil {
		return nil, linalgErrorf(opNewGram, ErrNilMatrix)
	}
	_, c := m.Dims()
	var gram mat.SymDense
	gram.SymOuterK(1, m.T()) // (Mᵀ)(Mᵀ)ᵀ = MᵀM

	return &ShiftedGram{gram: &gram, n: c}, nil
}

// Dim returns n, the size of the system.
func (g *ShiftedGram) Dim() int { return g.n }

// Gram returns a copy of MᵀM.
func (g *ShiftedGram) Gram() *mat.SymDense {
	out := mat.NewSymDense(g.n, nil)
	out.CopySym(g.gram)

	return out
}

// Solve returns x with (MᵀM + shift·I)·x = b.
//
// Errors:
//   - ErrDimensionMismatch if len(b) != n.
//   - ErrNotPositiveDefinite if the shifted matrix cannot be factorized.
//
// Complexity: O(n³) when the shift changed since the previous call,
// O(n²) otherwise.
func (g *ShiftedGram) Solve(shift float64, b Vector) (Vector, error) {
	if err := ValidateVecLen(b, g.n); err != nil {
		return nil, linalgErrorf(opGramSolve, err)
	}
	if !g.ready || shift != g.shift {
		if err := g.factorize(shift); err != nil {
			return nil, linalgErrorf(opGramSolve, err)
		}
	}

	var x mat.VecDense
	if err := g.chol.SolveVecTo(&x, mat.NewVecDense(g.n, b)); err != nil {
		return nil, linalgErrorf(opGramSolve, err)
	}

	return Vector(x.RawVector().Data), nil
}

// factorize computes the Cholesky factor of MᵀM + shift·I.
func (g *ShiftedGram) factorize(shift float64) error {
	g.ready = false
	a := mat.NewSymDense(g.n, nil)
	a.CopySym(g.gram)
	for i := 0; i < g.n; i++ {
		a.SetSym(i, i, a.At(i, i)+shift)
	}
	if ok := g.chol.Factorize(a); !ok {
		return fmt.Errorf("shift %g: %w", shift, ErrNotPositiveDefinite)
	}
	g.shift, g.ready = shift, true

	return nil
}
