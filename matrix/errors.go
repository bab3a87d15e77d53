// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels wrapped with an operation tag; tests check
// them via errors.Is. No exported function panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested order n is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Bool was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotReflexive signals a zero on the diagonal where a reflexive relation
	// was required.
	ErrNotReflexive = errors.New("matrix: relation is not reflexive")

	// ErrAsymmetry signals M[i][j] != M[j][i] for some pair.
	ErrAsymmetry = errors.New("matrix: relation is not symmetric")

	// ErrNotTransitive signals M[i][k] && M[k][j] without M[i][j].
	ErrNotTransitive = errors.New("matrix: relation is not transitive")
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
