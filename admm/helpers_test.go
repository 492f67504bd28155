// SPDX-License-Identifier: MIT

package admm_test

import (
	"time"

	"github.com/katalvlaran/admm/admm"
	"github.com/katalvlaran/admm/linalg"
)

// none is the context type used by the test problems.
type none = struct{}

// consensus builds min ½|x−a|² + ½|y−b|² s.t. x − y = 0, whose minimizer is
// x = y = (a+b)/2.
func consensus(a, b linalg.Vector) admm.Problem[linalg.Vector, linalg.Vector, linalg.Vector, none] {
	minX := func(_ linalg.Vector, y, lambda linalg.Vector, rho float64, _ none) linalg.Vector {
		return a.Sub(lambda).Add(y.Scale(rho)).Scale(1 / (1 + rho))
	}
	minY := func(x, _ linalg.Vector, lambda linalg.Vector, rho float64, _ none) linalg.Vector {
		return b.Add(lambda).Add(x.Scale(rho)).Scale(1 / (1 + rho))
	}

	return admm.Uniform[linalg.Vector, none](
		minX,
		minY,
		linalg.Identity[none](),
		linalg.Negated(linalg.Identity[none]()),
		linalg.Identity[none](),
		linalg.Dot[none],
		linalg.Zeros(len(a)),
	)
}

// tickingClock returns a clock that advances by step on every reading.
func tickingClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return func() time.Time {
		t := now
		now = now.Add(step)

		return t
	}
}

// recorder is an admm.Observer that keeps everything it is told.
type recorder struct {
	iterations []admm.IterationInfo
	summaries  []admm.Summary
}

func (r *recorder) ObserveIteration(info admm.IterationInfo) {
	r.iterations = append(r.iterations, info)
}

func (r *recorder) ObserveResult(s admm.Summary) {
	r.summaries = append(r.summaries, s)
}
