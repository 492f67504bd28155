// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a document that parsed but failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrParse indicates malformed YAML or an unknown key.
	ErrParse = errors.New("config: parse error")
)

// Operation tags for error wrapping.
const (
	opLoad   = "Load"
	opParse  = "Parse"
	opParams = "File.Params"
)

// configErrorf wraps err with an operation tag.
func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
