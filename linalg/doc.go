// SPDX-License-Identifier: MIT

// Package linalg is the dense variable space used with package admm.
//
// The package provides:
//
//   - Vector, a []float64 with value-semantics Add/Sub/Scale, so it
//     satisfies admm.Vector[Vector] and can stand for x, y, λ and c.
//   - Operator, a matrix-backed linear map with shape checks, and adapters
//     (Linear, Identity, Negated) producing admm.LinearOperator values.
//   - Dot, the Euclidean inner product as an admm.InnerProduct.
//   - ShiftedGram, a cached Cholesky solver for (MᵀM + ρI)x = b, the
//     workhorse of least-squares x-updates whose shift ρ changes only when
//     the penalty adapts.
//
// All arithmetic runs on gonum (floats for vector kernels, mat for
// matrix-vector products and factorizations).
//
// Vector methods follow gonum/floats: mismatched lengths are programmer
// errors and panic. Constructors and Operator.Apply validate their inputs
// and return the sentinel errors from errors.go instead.
package linalg
