// SPDX-License-Identifier: MIT

// Package admm: algebraic contracts and collaborator signatures.
package admm

// Vector is the minimal algebra the loop needs from a variable type.
// Implementations must have value semantics: none of the methods may
// modify the receiver or the argument, and the returned value must not
// alias storage that the loop keeps (the loop caches previous iterates).
//
// The type parameter is the implementing type itself, so a dense vector
// type V satisfies Vector[V] when it has
//
//	func (v V) Add(w V) V
//	func (v V) Sub(w V) V
//	func (v V) Scale(alpha float64) V
type Vector[V any] interface {
	// Add returns v + w.
	Add(w V) V

	// Sub returns v - w.
	Sub(w V) V

	// Scale returns alpha·v.
	Scale(alpha float64) V
}

// LinearOperator maps In to Out. data is the caller's context value and is
// passed through unchanged on every call. Operators must be linear and must
// not depend on invocation order.
type LinearOperator[In, Out, D any] func(in In, data D) Out

// InnerProduct is a symmetric positive-definite bilinear form on V.
type InnerProduct[V, D any] func(u, v V, data D) float64

// MinimizerX returns argmin_x L_rho(x, y, lambda). The incoming x is the
// previous iterate and may be used as a warm start.
type MinimizerX[X, Y, R, D any] func(x X, y Y, lambda R, rho float64, data D) X

// MinimizerY returns argmin_y L_rho(x, y, lambda). It is always called with
// the x produced by MinimizerX in the same iteration.
type MinimizerY[X, Y, R, D any] func(x X, y Y, lambda R, rho float64, data D) Y

// Problem bundles the collaborators of one ADMM formulation.
//
//	X: first block variable, Y: second block variable,
//	R: constraint/dual space (Ax, By, c and λ live here),
//	D: opaque context value forwarded to every callback.
//
// All function fields are required.
type Problem[X Vector[X], Y Vector[Y], R Vector[R], D any] struct {
	MinX MinimizerX[X, Y, R, D] // argmin over the first block
	MinY MinimizerY[X, Y, R, D] // argmin over the second block

	A  LinearOperator[X, R, D] // A: X → R
	B  LinearOperator[Y, R, D] // B: Y → R
	At LinearOperator[R, X, D] // Aᵀ: R → X (dual residual and dual tolerance)

	InnerX InnerProduct[X, D] // norms of the dual residual and Aᵀλ
	InnerR InnerProduct[R, D] // norms of the primal residual, Ax, By, c

	C R // constraint target c
}

// Uniform builds a Problem in which a single type V represents x, y and the
// constraint space, and a single inner product serves both norms.
func Uniform[V Vector[V], D any](
	minX MinimizerX[V, V, V, D],
	minY MinimizerY[V, V, V, D],
	a, b, at LinearOperator[V, V, D],
	inner InnerProduct[V, D],
	c V,
) Problem[V, V, V, D] {
	return Problem[V, V, V, D]{
		MinX:   minX,
		MinY:   minY,
		A:      a,
		B:      b,
		At:     at,
		InnerX: inner,
		InnerR: inner,
		C:      c,
	}
}

// validate reports the first missing collaborator.
func (p *Problem[X, Y, R, D]) validate() error {
	switch {
	case p.MinX == nil:
		return collaboratorErrorf("MinX")
	case p.MinY == nil:
		return collaboratorErrorf("MinY")
	case p.A == nil:
		return collaboratorErrorf("A")
	case p.B == nil:
		return collaboratorErrorf("B")
	case p.At == nil:
		return collaboratorErrorf("At")
	case p.InnerX == nil:
		return collaboratorErrorf("InnerX")
	case p.InnerR == nil:
		return collaboratorErrorf("InnerR")
	}

	return nil
}
