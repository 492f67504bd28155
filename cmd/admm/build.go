// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/admm/config"
	"github.com/katalvlaran/admm/problems"
)

// instanceBuilder returns a builder for the configured synthetic problem.
// The data is drawn once; every call returns a fresh instance over it.
func instanceBuilder(p config.Problem) (func() (*problems.Instance, error), error) {
	spec := problems.RandomSpec{
		Rows:        p.Rows,
		Cols:        p.Cols,
		Support:     p.Support,
		Noise:       p.Noise,
		NonNegative: p.Kind == "nnls",
		Seed:        p.Seed,
	}
	if p.Kind == "consensus" {
		// Consensus between the planted vector and its noisy square image.
		spec.Rows = p.Cols
	}
	syn, err := problems.Random(spec)
	if err != nil {
		return nil, err
	}

	switch p.Kind {
	case "consensus":
		return func() (*problems.Instance, error) { return problems.Consensus(syn.XTrue, syn.B) }, nil
	case "lasso":
		return func() (*problems.Instance, error) { return problems.Lasso(syn.D, syn.B, p.Reg) }, nil
	case "nnls":
		return func() (*problems.Instance, error) { return problems.NonNegativeLeastSquares(syn.D, syn.B) }, nil
	default:
		return nil, fmt.Errorf("unknown problem kind %q", p.Kind)
	}
}
