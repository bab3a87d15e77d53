// SPDX-License-Identifier: MIT

// Package ranking models a preference order with ties.
//
// What:
//
//   - Ranking: an ordered sequence of levels, index 0 = best.
//   - Level: a non-empty set of object identifiers tied at one rank.
//   - Index: a fixed bijection between a sorted object universe and the
//     row/column positions 0..n-1 of relation matrices.
//
// Why:
//   - Every relation matrix in the consensus pipeline is interpreted against one
//     shared Index, built once per merge and threaded explicitly through each stage.
//   - Level lookups (LevelMap, Positions) make pairwise comparisons O(1).
//
// Invariants:
//
//   - Every identifier appears in exactly one level of a given ranking.
//   - No level is empty.
//   - Levels are kept sorted ascending so equal rankings compare equal.
//
// Errors:
//
//   - ErrEmptyLevel       a level holds no identifiers
//   - ErrDuplicateObject  an identifier appears twice in one ranking
//
// Complexity:
//
//   - New / Validate:  O(n log n) (per-level sort)
//   - NewIndex:        O(n log n)
//   - Positions:       O(n)
package ranking
