// SPDX-License-Identifier: MIT

package problems

import (
	"fmt"

	"github.com/katalvlaran/admm/linalg"
)

// Consensus builds min ½|x − a|² + ½|y − b|² s.t. x = y. The minimizer is
// x = y = (a + b)/2, which makes it the reference problem for tests.
//
// Both updates are closed form:
//
//	x = (a − λ + ρy)/(1 + ρ)
//	y = (b + λ + ρx)/(1 + ρ)
//
// Errors:
//   - ErrEmpty if a is empty.
//   - linalg.ErrDimensionMismatch if len(a) != len(b).
//   - linalg.ErrNaNInf if a or b holds a non-finite value.
func Consensus(a, b linalg.Vector) (*Instance, error) {
	if len(a) == 0 {
		return nil, problemsErrorf(opConsensus, ErrEmpty)
	}
	if err := linalg.ValidateVecLen(b, len(a)); err != nil {
		return nil, problemsErrorf(opConsensus, err)
	}
	if err := linalg.ValidateFinite(a); err != nil {
		return nil, problemsErrorf(opConsensus, fmt.Errorf("a: %w", err))
	}
	if err := linalg.ValidateFinite(b); err != nil {
		return nil, problemsErrorf(opConsensus, fmt.Errorf("b: %w", err))
	}
	a, b = a.Clone(), b.Clone()

	minX := func(_, y, lambda linalg.Vector, rho float64, _ Data) linalg.Vector {
		return a.Sub(lambda).AddScaled(rho, y).Scale(1 / (1 + rho))
	}
	minY := func(x, _, lambda linalg.Vector, rho float64, _ Data) linalg.Vector {
		return b.Add(lambda).AddScaled(rho, x).Scale(1 / (1 + rho))
	}
	half := func(c linalg.Vector) func(linalg.Vector) float64 {
		return func(v linalg.Vector) float64 {
			d := v.Sub(c)
			return 0.5 * d.Dot(d)
		}
	}

	return &Instance{
		Name:    "consensus",
		Problem: identityCoupling(minX, minY, len(a)),
		X0:      linalg.Zeros(len(a)),
		Y0:      linalg.Zeros(len(a)),
		f:       half(a),
		g:       half(b),
	}, nil
}
