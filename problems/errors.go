// SPDX-License-Identifier: MIT

package problems

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a zero-length data vector.
	ErrEmpty = errors.New("problems: empty data")

	// ErrInvalidRegularization indicates a negative or non-finite weight.
	ErrInvalidRegularization = errors.New("problems: regularization must be finite and >= 0")

	// ErrInvalidShape indicates generator dimensions that cannot be honored.
	ErrInvalidShape = errors.New("problems: invalid shape")
)

// Operation tags for error wrapping.
const (
	opConsensus = "Consensus"
	opLasso     = "Lasso"
	opNNLS      = "NonNegativeLeastSquares"
	opRandom    = "RandomLeastSquares"
)

// problemsErrorf wraps err with an operation tag.
func problemsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
