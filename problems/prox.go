// SPDX-License-Identifier: MIT

package problems

import (
	"math"

	"github.com/katalvlaran/admm/linalg"
)

// SoftThreshold returns the proximal operator of kappa·|·|₁:
// sign(v_i)·max(|v_i| − kappa, 0), element-wise.
func SoftThreshold(v linalg.Vector, kappa float64) linalg.Vector {
	out := make(linalg.Vector, len(v))
	for i, vi := range v {
		switch {
		case vi > kappa:
			out[i] = vi - kappa
		case vi < -kappa:
			out[i] = vi + kappa
		}
	}

	return out
}

// ProjectNonNegative returns max(v, 0), element-wise.
func ProjectNonNegative(v linalg.Vector) linalg.Vector {
	out := make(linalg.Vector, len(v))
	for i, vi := range v {
		out[i] = math.Max(vi, 0)
	}

	return out
}

// nonNegativeIndicator is 0 on the non-negative orthant and +Inf elsewhere.
func nonNegativeIndicator(y linalg.Vector) float64 {
	for _, yi := range y {
		if yi < 0 {
			return math.Inf(1)
		}
	}

	return 0
}
