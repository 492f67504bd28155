// SPDX-License-Identifier: MIT

// Package linalg - validated construction of gonum dense matrices.
//
// Purpose:
//   - Guarantee safety at the public surface: constructors return sentinel
//     errors instead of the panics gonum raises on bad shapes.
//   - Enforce the finite-value policy (no NaN/Inf in problem data) in one place.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NewDense returns a rows×cols matrix backed by a copy of data (row-major).
// A nil data slice yields the zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: validate len(data) == rows*cols and finiteness.
//   - Stage 3: copy into a fresh buffer and wrap with mat.NewDense.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, data []float64) (*mat.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, linalgErrorf(opNewDense, ErrInvalidDimensions)
	}
	buf := make([]float64, rows*cols)
	if data != nil {
		if len(data) != rows*cols {
			return nil, linalgErrorf(opNewDense, ErrDimensionMismatch)
		}
		if err := ValidateFinite(data); err != nil {
			return nil, linalgErrorf(opNewDense, err)
		}
		copy(buf, data)
	}

	return mat.NewDense(rows, cols, buf), nil
}

// FromRows builds a matrix from a row table. All rows must be non-empty and
// of equal length.
//
// Errors:
//   - ErrInvalidDimensions (empty or ragged table), ErrNaNInf.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, linalgErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, linalgErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w",
				i, len(row), c, ErrInvalidDimensions))
		}
		buf = append(buf, row...)
	}
	if err := ValidateFinite(buf); err != nil {
		return nil, linalgErrorf(opFromRows, err)
	}

	return mat.NewDense(r, c, buf), nil
}

// ValidateFinite returns ErrNaNInf (with the offending index) if x holds a
// NaN or an infinity.
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ValidateFinite: index %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// ValidateVecLen ensures x is non-nil with exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return fmt.Errorf("ValidateVecLen: %w", ErrNilMatrix)
	}
	if len(x) != n {
		return fmt.Errorf("ValidateVecLen: got %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}
