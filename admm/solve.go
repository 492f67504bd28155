// SPDX-License-Identifier: MIT

package admm

import (
	"math"
	"time"
)

// spectralCheckpoint is the state cached at the last spectral adaptation.
// It only exists when Params.PenaltyAdaptation == SpectralMode.
type spectralCheckpoint[X, Y, R any] struct {
	x         X // x_k0
	y         Y // y_k0
	lambda    R // λ_k0
	lambdaHat R // λ̂_k0
}

// Solve runs ADMM on p starting from (x0, y0).
//
// Algorithm Outline:
//  1. x = x0, y = y_prev = y0, rho = params.Rho, λ = rho·(A x0 + B y0 − c).
//  2. For i = 0 .. MaxIterations−1:
//     a. stop with TimeLimit if the elapsed time exceeds MaxComputationTime;
//     b. x = MinX(x, y, λ, rho); y = MinY(x, y, λ, rho)   (Gauss–Seidel);
//     c. r = Ax + By − c;
//     d. spectral checkpoint: λ̂ = λ + rho·(Ax + B y_prev − c) with the old λ;
//     e. λ = λ + rho·r;
//     f. s = rho·Aᵀ(B(y − y_prev));
//     g. record time, |r|, |s|, rho (and (x, y) if LogIterates);
//     h. stop with Converged if |r| < eps_pri and |s| < eps_dual;
//     i. on checkpoints (i % period == 0, i < window) update rho;
//     j. y_prev = y.
//  3. Return the final (x, y) with the history.
//
// Errors:
//   - ErrNilCollaborator if a Problem function is nil.
//   - ErrInvalidParams if params.Validate fails.
//
// The loop itself never fails: non-convergence is reported through
// Result.Status (IterationLimit or TimeLimit).
//
// Solve keeps all state local, so independent problems may be solved from
// several goroutines at once. The time limit is cooperative: a slow
// subproblem solve can overrun the budget by one iteration.
func Solve[X Vector[X], Y Vector[Y], R Vector[R], D any](
	p Problem[X, Y, R, D],
	x0 X,
	y0 Y,
	data D,
	params Params,
	opts ...Option,
) (*Result[X, Y], error) {
	// Validate collaborators and parameters before touching any of them.
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	rep := newReporter(o.logger, params)

	res := &Result[X, Y]{Status: IterationLimit, X: x0, Y: y0}
	historyCap := min(params.MaxIterations, maxPreallocatedHistory)
	res.Time = make([]time.Duration, 0, historyCap)
	res.PrimalResiduals = make([]float64, 0, historyCap)
	res.DualResiduals = make([]float64, 0, historyCap)
	res.PenaltyParameters = make([]float64, 0, historyCap)

	// Initialization
	x, y, yPrev := x0, y0, y0
	rho := params.Rho
	lambda := p.A(x, data).Add(p.B(y, data)).Sub(p.C).Scale(rho)
	cNorm := norm(p.InnerR, p.C, data)

	var cp *spectralCheckpoint[X, Y, R]
	if params.PenaltyAdaptation == SpectralMode {
		cp = &spectralCheckpoint[X, Y, R]{x: x, y: y, lambda: lambda, lambdaHat: lambda}
	}

	rep.start()
	primal, dual := nan, nan
	start := o.now()
	for i := 0; i < params.MaxIterations; i++ {
		// Elapsed time at the START of this iteration.
		elapsed := o.now().Sub(start)
		if params.MaxComputationTime > 0 && elapsed > params.MaxComputationTime {
			res.Status = TimeLimit
			break
		}

		// Block updates; y sees the new x.
		x = p.MinX(x, y, lambda, rho, data)
		y = p.MinY(x, y, lambda, rho, data)

		// Primal residual.
		ax := p.A(x, data)
		by := p.B(y, data)
		r := ax.Add(by).Sub(p.C)

		// λ̂ must be formed from the pre-update λ and the previous y.
		checkpoint := params.adaptsAt(i)
		var lambdaHat R
		if cp != nil && checkpoint {
			lambdaHat = lambda.Add(ax.Add(p.B(yPrev, data)).Sub(p.C).Scale(rho))
		}

		// Dual update.
		lambda = lambda.Add(r.Scale(rho))

		// Dual residual.
		s := p.At(p.B(y.Sub(yPrev), data), data).Scale(rho)
		primal = norm(p.InnerR, r, data)
		dual = norm(p.InnerX, s, data)

		// Adaptive stopping tolerances.
		epsPrimal := params.EpsAbsPrimal +
			params.EpsRel*max(norm(p.InnerR, ax, data), norm(p.InnerR, by, data), cNorm)
		epsDual := params.EpsAbsDual + params.EpsRel*norm(p.InnerX, p.At(lambda, data), data)

		// Record output.
		res.Time = append(res.Time, elapsed)
		res.PrimalResiduals = append(res.PrimalResiduals, primal)
		res.DualResiduals = append(res.DualResiduals, dual)
		res.PenaltyParameters = append(res.PenaltyParameters, rho)
		if params.LogIterates {
			res.Iterates = append(res.Iterates, Iterate[X, Y]{X: x, Y: y})
		}
		info := IterationInfo{
			Iteration:      i,
			Elapsed:        elapsed,
			PrimalResidual: primal,
			DualResidual:   dual,
			Rho:            rho,
			EpsPrimal:      epsPrimal,
			EpsDual:        epsDual,
		}
		rep.iteration(info)
		for _, obs := range o.observers {
			obs.ObserveIteration(info)
		}

		if primal < epsPrimal && dual < epsDual {
			res.Status = Converged
			break
		}

		// Penalty update.
		if checkpoint {
			switch params.PenaltyAdaptation {
			case ResidualBalanceMode:
				rho = ResidualBalance(primal, dual, params.ResidualBalanceMu, params.ResidualBalanceTau, rho)
			case SpectralMode:
				// The paper negates the residual relative to our Lagrangian,
				// hence the minus signs on the operator images.
				dLambda := lambda.Sub(cp.lambda)
				dLambdaHat := lambdaHat.Sub(cp.lambdaHat)
				dH := p.A(x.Sub(cp.x), data).Scale(-1)
				dG := p.B(y.Sub(cp.y), data).Scale(-1)
				rho = SpectralPenalty(dLambdaHat, dLambda, dH, dG, p.InnerR, data,
					params.SpectralMinimumCorrelation, rho)

				cp.x, cp.y, cp.lambda, cp.lambdaHat = x, y, lambda, lambdaHat
			}
		}

		yPrev = y
	}

	// Final output.
	res.X, res.Y = x, y
	res.Elapsed = o.now().Sub(start)

	summary := Summary{
		Status:         res.Status,
		Iterations:     res.Iterations(),
		Elapsed:        res.Elapsed,
		PrimalResidual: primal,
		DualResidual:   dual,
		Rho:            rho,
	}
	rep.finish(summary)
	for _, obs := range o.observers {
		obs.ObserveResult(summary)
	}

	return res, nil
}

// maxPreallocatedHistory caps the initial capacity of the history slices.
const maxPreallocatedHistory = 1024

// norm returns sqrt(<v, v>).
func norm[V, D any](inner InnerProduct[V, D], v V, data D) float64 {
	return math.Sqrt(inner(v, v, data))
}
