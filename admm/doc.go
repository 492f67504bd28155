// SPDX-License-Identifier: MIT

// Package admm implements the Alternating Direction Method of Multipliers
// for convex problems of the form
//
//	minimize   f(x) + g(y)
//	subject to Ax + By = c
//
// using the unscaled augmented Lagrangian
//
//	L_rho(x, y, λ) = f(x) + g(y) + <λ, Ax + By - c> + (rho/2)·|Ax + By - c|²
//
// The package is only the outer control loop. The caller supplies:
//   - the two block minimizers argmin_x L_rho and argmin_y L_rho,
//   - the linear operators A, B and Aᵀ,
//   - inner products on the X space and on the constraint space R,
//   - the constraint target c, a starting point (x0, y0) and an opaque
//     context value D that is handed unchanged to every callback.
//
// Variable types are arbitrary as long as they satisfy Vector (Add, Sub,
// Scale with value semantics). See package linalg for a dense implementation
// on top of gonum.
//
// ✨ Key features:
//   - Gauss–Seidel block updates (the y-step sees the new x)
//   - residual-based stopping test with absolute + relative tolerances
//   - penalty adaptation: residual balancing (He, Yang & Wang) or spectral
//     Barzilai–Borwein estimates (Xu, Figueiredo & Goldstein), both frozen
//     after a configurable window so that rho is eventually constant
//   - full iteration history (time, residuals, rho) and an optional
//     trajectory of iterates
//   - optional slog progress stream and an Observer hook for metrics
//
// ⚙️ Usage:
//
//	p := admm.Uniform(minX, minY, A, B, At, dot, c)
//	params := admm.DefaultParams()
//	params.PenaltyAdaptation = admm.ResidualBalanceMode
//
//	res, err := admm.Solve(p, x0, y0, data, params)
//	if err != nil {
//	  // ErrNilCollaborator or ErrInvalidParams
//	}
//	fmt.Println(res.Status, res.Iterations())
//
// Termination is reported through Result.Status, never through an error:
// Converged, IterationLimit or TimeLimit.
//
// Complexity per iteration: two subproblem solves, three applications of A
// or B, two of Aᵀ and five inner products. Spectral checkpoints add one more
// application of B for λ̂ and one each of A and B for the curvature deltas.
package admm
