// SPDX-License-Identifier: MIT

package consensus

import (
	"fmt"

	"github.com/Alexsandra-Z/system-analysis-2025/matrix"
)

// Equivalence derives the tie relation E = C ∧ Cᵀ: E[i][j] = 1 iff i and j
// dominate each other under the consensus.
// Complexity: Time O(n²), Space O(n²).
func Equivalence(c *matrix.Bool) (*matrix.Bool, error) {
	ct, err := matrix.Transpose(c)
	if err != nil {
		return nil, fmt.Errorf("Equivalence: %w", err)
	}
	e, err := matrix.And(c, ct)
	if err != nil {
		return nil, fmt.Errorf("Equivalence: %w", err)
	}

	return e, nil
}

// Closure makes "tied with" transitive: E* is the Warshall closure of e, so
// i ~ j and j ~ k imply i ~ k even when i and k never dominated each other.
// For a reflexive, symmetric e the result is an equivalence relation.
// Complexity: Time O(n³), Space O(n²).
func Closure(e *matrix.Bool) (*matrix.Bool, error) {
	star, err := matrix.Closure(e)
	if err != nil {
		return nil, fmt.Errorf("Closure: %w", err)
	}

	return star, nil
}
