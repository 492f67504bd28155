// SPDX-License-Identifier: MIT

// Package linalg - Vector: flat float64 storage with value semantics.
//
// Purpose:
//   - Satisfy admm.Vector[Vector] (Add, Sub, Scale) without operator overloading.
//   - Never alias: every arithmetic method allocates its result, so the ADMM loop
//     may cache previous iterates safely.
//
// Complexity quicksheet:
//   - Add/Sub/Scale/AddScaled: O(n) time, O(n) fresh memory.
//   - Dot/Norm: O(n) time, no allocation.

package linalg

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/admm/admm"
)

// Vector is a dense real vector.
type Vector []float64

// Compile-time assertion: Vector is a valid ADMM variable type.
var _ admm.Vector[Vector] = Vector(nil)

// Zeros returns the zero vector of length n.
func Zeros(n int) Vector {
	return make(Vector, n)
}

// Filled returns a vector of length n with every entry equal to v.
func Filled(n int, v float64) Vector {
	out := make(Vector, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// Len returns the number of entries.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Add returns v + w. Panics if the lengths differ.
func (v Vector) Add(w Vector) Vector {
	out := make(Vector, len(v))
	floats.AddTo(out, v, w)

	return out
}

// Sub returns v - w. Panics if the lengths differ.
func (v Vector) Sub(w Vector) Vector {
	out := make(Vector, len(v))
	floats.SubTo(out, v, w)

	return out
}

// Scale returns alpha·v.
func (v Vector) Scale(alpha float64) Vector {
	out := make(Vector, len(v))
	floats.ScaleTo(out, alpha, v)

	return out
}

// AddScaled returns v + alpha·w. Panics if the lengths differ.
func (v Vector) AddScaled(alpha float64, w Vector) Vector {
	out := make(Vector, len(v))
	floats.AddScaledTo(out, v, alpha, w)

	return out
}

// Dot returns <v, w>. Panics if the lengths differ.
func (v Vector) Dot(w Vector) float64 {
	return floats.Dot(v, w)
}

// Norm returns the Euclidean norm |v|₂.
func (v Vector) Norm() float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

// Norm1 returns the ℓ₁ norm Σ|v_i|.
func (v Vector) Norm1() float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 1)
}

// Equal reports whether v and w have the same length and entries within tol.
func (v Vector) Equal(w Vector, tol float64) bool {
	return len(v) == len(w) && floats.EqualApprox(v, w, tol)
}

// Dot is the Euclidean inner product in admm.InnerProduct form; the context
// value is ignored.
//
//	p := admm.Uniform(minX, minY, A, B, At, linalg.Dot[struct{}], c)
func Dot[D any](u, v Vector, _ D) float64 {
	return floats.Dot(u, v)
}
