// SPDX-License-Identifier: MIT

package consensus

import (
	"fmt"

	"github.com/Alexsandra-Z/system-analysis-2025/matrix"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

// Dominance builds the "at least as good as" matrix of r over idx:
// Y[i][j] = 1 iff level(j) >= level(i), i.e. object i dominates object j.
//
// Every object dominates itself and everything ranked at or below it. Objects of
// idx that r does not list sit on r's implicit trailing level.
//
// Stage 1 (Prepare): resolve per-position levels once.
// Stage 2 (Execute): fill each row by comparing levels, fixed i→j order.
// Complexity: Time O(n²), Space O(n²).
func Dominance(r ranking.Ranking, idx *ranking.Index) (*matrix.Bool, error) {
	if idx == nil || idx.Len() == 0 {
		return nil, fmt.Errorf("Dominance: empty index: %w", ErrIndexMismatch)
	}

	lvl := r.Positions(idx)
	n := len(lvl)
	y, err := matrix.NewBool(n)
	if err != nil {
		return nil, fmt.Errorf("Dominance: %w", err)
	}

	for i := 0; i < n; i++ {
		li := lvl[i]
		for j := 0; j < n; j++ {
			if lvl[j] >= li {
				_ = y.Set(i, j, true) // bounds-safe: i, j < n
			}
		}
	}

	return y, nil
}
