// SPDX-License-Identifier: MIT

// Package problems provides ready-made ADMM instances over linalg.Vector.
//
// Every instance splits its objective as f(x) + g(y) subject to x − y = 0,
// so A = I, B = −I and c = 0. The x-update is a closed-form or factorized
// least-squares step; the y-update is the proximal operator of g:
//
//   - Consensus(a, b):               f = ½|x − a|², g = ½|y − b|²
//   - Lasso(D, b, reg):              f = ½|Dx − b|², g = reg·|y|₁
//   - NonNegativeLeastSquares(D, b): f = ½|Dx − b|², g = indicator(y ≥ 0)
//
// Problem data is captured by the closures; the admm context value is the
// empty Data struct.
//
// Concurrency:
//   - Lasso and NonNegativeLeastSquares cache a Cholesky factor of DᵀD + ρI
//     inside the instance. Do not Solve the same instance from several
//     goroutines; build one instance per goroutine instead.
//
// Usage:
//
//	inst, err := problems.Lasso(d, b, 0.1)
//	if err != nil { ... }
//	res, err := inst.Solve(admm.DefaultParams())
//	fmt.Println(res.Status, inst.Objective(res.X, res.Y))
package problems
