// SPDX-License-Identifier: MIT

package consensus

import "github.com/Alexsandra-Z/system-analysis-2025/ranking"

// Contradictions returns every unordered pair of distinct objects whose strict
// order is reversed between a and b: one ranking puts i strictly before j while
// the other puts j strictly before i. A tie in either ranking never produces a
// contradiction on its own.
//
// Each pair is inspected exactly once (i < j by index position), so the output
// is sorted by (A, B) and the detector is symmetric: swapping a and b yields the
// same pairs.
// Complexity: Time O(n²), Space O(#pairs).
func Contradictions(a, b ranking.Ranking, idx *ranking.Index) []Pair {
	if idx == nil {
		return nil
	}

	la := a.Positions(idx)
	lb := b.Positions(idx)
	n := idx.Len()

	var out []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, aji := la[i] < la[j], la[j] < la[i]
			bij, bji := lb[i] < lb[j], lb[j] < lb[i]
			if (aij && bji) || (aji && bij) {
				out = append(out, Pair{A: idx.ID(i), B: idx.ID(j)})
			}
		}
	}

	return out
}
