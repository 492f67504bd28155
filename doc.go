// Package admm is a generic engine for the alternating direction method of
// multipliers, plus the pieces needed to run it on real problems.
//
// ADMM solves
//
//	minimize f(x) + g(y)  subject to  A x + B y = c
//
// by alternating a minimization over x, a minimization over y and a dual
// ascent step on λ, adapting the penalty ρ on the way.
//
// What's inside:
//
//	admm/     the iteration engine: Problem, Params, Solve, Result,
//	          residual balancing and spectral penalty updates
//	linalg/   linalg.Vector and matrix operators on top of gonum
//	problems/ consensus, lasso and non-negative least squares instances
//	config/   YAML run descriptions validated with struct tags
//	metrics/  Prometheus observer for solver progress
//	sweep/    concurrent solves over a grid of initial penalties
//	cmd/admm  command-line front end (solve, sweep, template)
//
// Quick example:
//
//	inst, _ := problems.Lasso(d, b, 0.1)
//	params := admm.DefaultParams()
//	params.PenaltyAdaptation = admm.SpectralMode
//	res, err := inst.Solve(params)
//	if err != nil { ... }
//	fmt.Println(res.Status, res.Iterations())
//
// Bring your own variable types by implementing admm.Vector (Add, Sub,
// Scale) and the collaborator functions of admm.Problem.
//
//	go get github.com/katalvlaran/admm
package admm
