// SPDX-License-Identifier: MIT

package problems

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/admm/linalg"
)

// leastSquares is the shared f(x) = ½|Dx − b|² half of Lasso and
// NonNegativeLeastSquares.
type leastSquares struct {
	op   *linalg.Operator
	gram *linalg.ShiftedGram
	dtb  linalg.Vector // Dᵀb, computed once
	b    linalg.Vector
}

// newLeastSquares validates (D, b) and precomputes DᵀD and Dᵀb.
//
// Implementation:
//   - Stage 1: wrap D (rejects nil) and check len(b) == rows(D).
//   - Stage 2: reject non-finite entries in b.
//   - Stage 3: form the Gram matrix and Dᵀb.
func newLeastSquares(d mat.Matrix, b linalg.Vector) (*leastSquares, error) {
	op, err := linalg.NewOperator(d)
	if err != nil {
		return nil, err
	}
	rows, _ := op.Dims()
	if err = linalg.ValidateVecLen(b, rows); err != nil {
		return nil, err
	}
	if err = linalg.ValidateFinite(b); err != nil {
		return nil, err
	}
	gram, err := linalg.NewShiftedGram(d)
	if err != nil {
		return nil, err
	}
	b = b.Clone()

	return &leastSquares{op: op, gram: gram, dtb: op.T().MustApply(b), b: b}, nil
}

// minX solves (DᵀD + ρI)x = Dᵀb − λ + ρy.
//
// DᵀD + ρI is positive definite for every ρ > 0 admm.Solve can hand us, so
// a factorization failure means corrupted data and panics.
func (ls *leastSquares) minX(_, y, lambda linalg.Vector, rho float64, _ Data) linalg.Vector {
	rhs := ls.dtb.Sub(lambda).AddScaled(rho, y)
	x, err := ls.gram.Solve(rho, rhs)
	if err != nil {
		panic(fmt.Sprintf("problems: least-squares x-update: %v", err))
	}

	return x
}

// objective returns ½|Dx − b|².
func (ls *leastSquares) objective(x linalg.Vector) float64 {
	r := ls.op.MustApply(x).Sub(ls.b)

	return 0.5 * r.Dot(r)
}

// dim returns the number of columns of D.
func (ls *leastSquares) dim() int {
	_, cols := ls.op.Dims()

	return cols
}

// Lasso builds min ½|Dx − b|² + reg·|y|₁ s.t. x = y.
//
// The y-update is soft thresholding: y = S(x + λ/ρ, reg/ρ).
//
// Errors:
//   - linalg.ErrNilMatrix if D is nil.
//   - linalg.ErrDimensionMismatch if len(b) != rows(D).
//   - linalg.ErrNaNInf if b holds a non-finite value.
//   - ErrInvalidRegularization if reg < 0, NaN or infinite.
//
// Complexity: O(m·n²) setup; each x-update costs O(n²), plus O(n³) whenever
// ρ changed since the previous update.
func Lasso(d mat.Matrix, b linalg.Vector, reg float64) (*Instance, error) {
	if !(reg >= 0) || math.IsInf(reg, 1) {
		return nil, problemsErrorf(opLasso, fmt.Errorf("reg=%v: %w", reg, ErrInvalidRegularization))
	}
	ls, err := newLeastSquares(d, b)
	if err != nil {
		return nil, problemsErrorf(opLasso, err)
	}
	n := ls.dim()

	minY := func(x, _, lambda linalg.Vector, rho float64, _ Data) linalg.Vector {
		return SoftThreshold(x.AddScaled(1/rho, lambda), reg/rho)
	}

	return &Instance{
		Name:    "lasso",
		Problem: identityCoupling(ls.minX, minY, n),
		X0:      linalg.Zeros(n),
		Y0:      linalg.Zeros(n),
		f:       ls.objective,
		g:       func(y linalg.Vector) float64 { return reg * y.Norm1() },
	}, nil
}

// NonNegativeLeastSquares builds min ½|Dx − b|² s.t. x = y, y ≥ 0.
//
// The y-update is the projection y = max(x + λ/ρ, 0).
//
// Errors: as Lasso, minus the regularization check.
func NonNegativeLeastSquares(d mat.Matrix, b linalg.Vector) (*Instance, error) {
	ls, err := newLeastSquares(d, b)
	if err != nil {
		return nil, problemsErrorf(opNNLS, err)
	}
	n := ls.dim()

	minY := func(x, _, lambda linalg.Vector, rho float64, _ Data) linalg.Vector {
		return ProjectNonNegative(x.AddScaled(1/rho, lambda))
	}

	return &Instance{
		Name:    "nnls",
		Problem: identityCoupling(ls.minX, minY, n),
		X0:      linalg.Zeros(n),
		Y0:      linalg.Zeros(n),
		f:       ls.objective,
		g:       nonNegativeIndicator,
	}, nil
}
