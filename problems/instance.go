// SPDX-License-Identifier: MIT

package problems

import (
	"github.com/katalvlaran/admm/admm"
	"github.com/katalvlaran/admm/linalg"
)

// Data is the (empty) context value passed through admm.Solve.
type Data = struct{}

// Problem is the admm problem shape shared by every instance in this package.
type Problem = admm.Problem[linalg.Vector, linalg.Vector, linalg.Vector, Data]

// Result is the admm result shape shared by every instance in this package.
type Result = admm.Result[linalg.Vector, linalg.Vector]

// Instance bundles a Problem with its starting point and objective.
type Instance struct {
	// Name identifies the problem family ("consensus", "lasso", "nnls").
	Name string

	// Problem holds the collaborators handed to admm.Solve.
	Problem Problem

	// X0, Y0 are the starting iterates (zero vectors by default).
	X0, Y0 linalg.Vector

	f func(x linalg.Vector) float64
	g func(y linalg.Vector) float64
}

// Solve runs admm.Solve on the instance from (X0, Y0).
func (in *Instance) Solve(params admm.Params, opts ...admm.Option) (*Result, error) {
	return admm.Solve(in.Problem, in.X0, in.Y0, Data{}, params, opts...)
}

// Objective returns f(x) + g(y). For NonNegativeLeastSquares it is +Inf when
// y has a negative entry.
func (in *Instance) Objective(x, y linalg.Vector) float64 {
	return in.f(x) + in.g(y)
}

// Dim returns the length of the decision vectors.
func (in *Instance) Dim() int { return len(in.X0) }

// identityCoupling fills the x − y = 0 coupling shared by every instance.
func identityCoupling(minX admm.MinimizerX[linalg.Vector, linalg.Vector, linalg.Vector, Data],
	minY admm.MinimizerY[linalg.Vector, linalg.Vector, linalg.Vector, Data], n int) Problem {
	id := linalg.Identity[Data]()

	return admm.Uniform[linalg.Vector, Data](minX, minY, id, linalg.Negated(id), id,
		linalg.Dot[Data], linalg.Zeros(n))
}
