// SPDX-License-Identifier: MIT

package problems

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/admm/linalg"
)

// defaultSeed replaces a zero seed so the zero RandomSpec is reproducible.
const defaultSeed int64 = 1

// RandomSpec describes a synthetic sparse regression problem b = D·x* + noise.
type RandomSpec struct {
	Rows, Cols  int     // shape of D; both must be > 0
	Support     int     // number of non-zero entries in x*, 0 < Support <= Cols
	Noise       float64 // standard deviation of the additive noise, >= 0
	NonNegative bool    // draw |x*| so the data suits NonNegativeLeastSquares
	Seed        int64   // 0 selects a fixed default seed
}

// Synthetic is a generated data set together with the coefficients it was
// generated from.
type Synthetic struct {
	D     *mat.Dense
	B     linalg.Vector
	XTrue linalg.Vector
}

// Random draws a synthetic problem. Entries of D are N(0, 1/Rows), so the
// columns have unit expected norm; the support of x* is a uniformly random
// subset of size Support with N(0, 1) values.
//
// The same spec always yields the same data.
//
// Errors:
//   - ErrInvalidShape for non-positive dimensions, a support outside
//     (0, Cols], or a negative or non-finite noise level.
func Random(spec RandomSpec) (*Synthetic, error) {
	switch {
	case spec.Rows <= 0 || spec.Cols <= 0:
		return nil, problemsErrorf(opRandom, fmt.Errorf("rows=%d cols=%d: %w", spec.Rows, spec.Cols, ErrInvalidShape))
	case spec.Support <= 0 || spec.Support > spec.Cols:
		return nil, problemsErrorf(opRandom, fmt.Errorf("support=%d: %w", spec.Support, ErrInvalidShape))
	case !(spec.Noise >= 0) || math.IsInf(spec.Noise, 1):
		return nil, problemsErrorf(opRandom, fmt.Errorf("noise=%v: %w", spec.Noise, ErrInvalidShape))
	}
	seed := spec.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	scale := 1 / math.Sqrt(float64(spec.Rows))
	data := make([]float64, spec.Rows*spec.Cols)
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}
	d := mat.NewDense(spec.Rows, spec.Cols, data)

	xTrue := linalg.Zeros(spec.Cols)
	for _, j := range rng.Perm(spec.Cols)[:spec.Support] {
		v := rng.NormFloat64()
		if spec.NonNegative {
			v = math.Abs(v)
		}
		xTrue[j] = v
	}

	b := make(linalg.Vector, spec.Rows)
	mat.NewVecDense(spec.Rows, b).MulVec(d, mat.NewVecDense(spec.Cols, xTrue))
	for i := range b {
		b[i] += spec.Noise * rng.NormFloat64()
	}

	return &Synthetic{D: d, B: b, XTrue: xTrue}, nil
}
