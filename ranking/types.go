// SPDX-License-Identifier: MIT

package ranking

import "errors"

var (
	// ErrEmptyLevel is returned when a level holds no identifiers.
	ErrEmptyLevel = errors.New("ranking: empty level")

	// ErrDuplicateObject is returned when an identifier appears more than once
	// in the same ranking (across levels or inside one level).
	ErrDuplicateObject = errors.New("ranking: duplicate object")
)

// ObjectID identifies one ranked object. Identifiers are unique within the
// universe of a merge; their numeric order defines the shared Index.
type ObjectID int

// Level is one rank position. Members are tied with each other.
// Levels produced by New are sorted ascending.
type Level []ObjectID

// Ranking is an ordered sequence of levels; index 0 is the best level.
type Ranking []Level
