// SPDX-License-Identifier: MIT

// Package admm: sentinel errors.
//
// Solve only fails before the first iteration, on programmer errors. Once the
// loop starts every outcome is reported through Result.Status. Match errors
// with errors.Is; the returned values wrap these sentinels with the offending
// field name.
package admm

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCollaborator indicates that a required Problem function is nil.
	ErrNilCollaborator = errors.New("admm: nil collaborator")

	// ErrInvalidParams indicates that a Params field is outside its domain.
	ErrInvalidParams = errors.New("admm: invalid parameters")
)

// collaboratorErrorf tags ErrNilCollaborator with the Problem field name.
func collaboratorErrorf(field string) error {
	return fmt.Errorf("Problem.%s: %w", field, ErrNilCollaborator)
}

// paramErrorf tags ErrInvalidParams with the Params field name and the
// violated constraint.
func paramErrorf(field, constraint string, v any) error {
	return fmt.Errorf("Params.%s=%v (%s): %w", field, v, constraint, ErrInvalidParams)
}
