// SPDX-License-Identifier: MIT

// Package linalg - matrix-backed linear operators and admm adapters.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/admm/admm"
)

// Operator is the linear map v ↦ M·v for a fixed gonum matrix M.
// Operator never copies or mutates M; callers must not mutate it either
// while the operator is in use.
type Operator struct {
	m          mat.Matrix
	rows, cols int
}

// NewOperator wraps m. Returns ErrNilMatrix for a nil matrix.
func NewOperator(m mat.Matrix) (*Operator, error) {
	if m == nil {
		return nil, linalgErrorf(opNewOperator, ErrNilMatrix)
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return nil, linalgErrorf(opNewOperator, ErrNilMatrix)
	}
	r, c := m.Dims()

	return &Operator{m: m, rows: r, cols: c}, nil
}

// Dims returns (rows, cols) of the underlying matrix, i.e. the output and
// input dimensions of the map.
func (o *Operator) Dims() (rows, cols int) { return o.rows, o.cols }

// Matrix returns the wrapped matrix.
func (o *Operator) Matrix() mat.Matrix { return o.m }

// T returns the adjoint operator v ↦ Mᵀ·v (a view; no copy).
func (o *Operator) T() *Operator {
	return &Operator{m: o.m.T(), rows: o.cols, cols: o.rows}
}

// Apply returns M·v in a freshly allocated Vector.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch when v is nil or len(v) != cols.
//
// Complexity: O(rows*cols).
func (o *Operator) Apply(v Vector) (Vector, error) {
	if err := ValidateVecLen(v, o.cols); err != nil {
		return nil, linalgErrorf(opApply, err)
	}
	out := make(Vector, o.rows)
	dst := mat.NewVecDense(o.rows, out)
	dst.MulVec(o.m, mat.NewVecDense(o.cols, v))

	return out, nil
}

// MustApply is Apply for call sites whose shapes were validated up front.
// It panics on a length mismatch.
func (o *Operator) MustApply(v Vector) Vector {
	out, err := o.Apply(v)
	if err != nil {
		panic(fmt.Sprintf("linalg: MustApply: %v", err))
	}

	return out
}

// Linear adapts o to an admm.LinearOperator. The context value is ignored.
func Linear[D any](o *Operator) admm.LinearOperator[Vector, Vector, D] {
	return func(v Vector, _ D) Vector {
		return o.MustApply(v)
	}
}

// Identity is the identity operator; it returns a copy of its input.
func Identity[D any]() admm.LinearOperator[Vector, Vector, D] {
	return func(v Vector, _ D) Vector {
		return v.Clone()
	}
}

// Negated returns v ↦ -op(v).
func Negated[D any](op admm.LinearOperator[Vector, Vector, D]) admm.LinearOperator[Vector, Vector, D] {
	return func(v Vector, data D) Vector {
		return op(v, data).Scale(-1)
	}
}
