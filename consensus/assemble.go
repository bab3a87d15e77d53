// SPDX-License-Identifier: MIT

package consensus

import (
	"fmt"

	"github.com/Alexsandra-Z/system-analysis-2025/matrix"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

// Assemble builds the consensus relation C = ya ∧ yb, then forces
// C[i][j] = C[j][i] = 1 for every contradiction pair. A strict disagreement
// thereby becomes mutual dominance, which the equivalence stage turns into a tie.
//
// Errors: matrix.ErrNilMatrix / matrix.ErrDimensionMismatch from the conjunction,
// ErrIndexMismatch when ya does not match idx or a pair names an unknown object.
// Complexity: Time O(n² + #pairs), Space O(n²).
func Assemble(ya, yb *matrix.Bool, pairs []Pair, idx *ranking.Index) (*matrix.Bool, error) {
	c, err := matrix.And(ya, yb)
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	if idx == nil || c.Size() != idx.Len() {
		return nil, fmt.Errorf("Assemble: matrix order %d: %w", c.Size(), ErrIndexMismatch)
	}

	for _, p := range pairs {
		i, okA := idx.Pos(p.A)
		j, okB := idx.Pos(p.B)
		if !okA || !okB {
			return nil, fmt.Errorf("Assemble: pair (%d,%d): %w", p.A, p.B, ErrIndexMismatch)
		}
		_ = c.Set(i, j, true)
		_ = c.Set(j, i, true)
	}

	return c, nil
}
