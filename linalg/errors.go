// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with an
// operation tag via linalgErrorf); tests match them with errors.Is.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that a row table is ragged.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. a
	// vector whose length differs from the operator's column count.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix or vector was passed.
	ErrNilMatrix = errors.New("linalg: nil operand")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrNotPositiveDefinite is returned when MᵀM + ρI cannot be Cholesky
	// factorized (ρ ≤ 0 with a rank-deficient M, or non-finite data).
	ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")
)

// Operation tags for error wrapping.
const (
	opNewDense    = "NewDense"
	opFromRows    = "FromRows"
	opNewOperator = "NewOperator"
	opApply       = "Apply"
	opNewGram     = "NewShiftedGram"
	opGramSolve   = "ShiftedGram.Solve"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
